// Package config loads game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"parques/dice"
	"parques/game"
	"parques/meta"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Release   Release           `yaml:"release"`
	TieBreak  string            `yaml:"tie_break"` // first or last
	Names     map[string]string `yaml:"names"`     // Display name by color
	Dice      Dice              `yaml:"dice"`
	SafeCells []int             `yaml:"safe_cells"` // Replaces the standard safe cells when set
}

type Release struct {
	Policy   string `yaml:"policy"` // pair or pip
	Pip      int    `yaml:"pip"`
	Attempts int    `yaml:"attempts"`
}

type Dice struct {
	Delay time.Duration `yaml:"delay"`
	Seed  uint64        `yaml:"seed"` // 0 seeds from the clock
}

func Default() *Config {
	return &Config{
		Release: Release{
			Policy:   "pair",
			Pip:      meta.RELEASE_PIP,
			Attempts: meta.RELEASE_ATTEMPTS,
		},
		TieBreak: "first",
		Dice: Dice{
			Delay: meta.DICE_DELAY,
		},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := c.Rules(); err != nil {
		return err
	}
	if _, err := c.Topology(); err != nil {
		return err
	}
	for name := range c.Names {
		if _, err := game.ParseColor(name); err != nil {
			return fmt.Errorf("invalid names: %w", err)
		}
	}
	if c.Dice.Delay < 0 {
		return fmt.Errorf("invalid dice delay %s", c.Dice.Delay)
	}
	return nil
}

func (c *Config) Rules() (*game.StandardRules, error) {
	rules := game.NewStandardRules()

	switch c.Release.Policy {
	case "pair":
		rules.Release = game.PairRelease{}
	case "pip":
		if c.Release.Pip < 1 || c.Release.Pip > game.DieFaces {
			return nil, fmt.Errorf("invalid release pip %d", c.Release.Pip)
		}
		rules.Release = game.PipRelease{Pip: c.Release.Pip}
	default:
		return nil, fmt.Errorf("unknown release policy %q", c.Release.Policy)
	}

	switch c.TieBreak {
	case "first":
		rules.TieBreak = game.FirstRolledWins
	case "last":
		rules.TieBreak = game.LastRolledWins
	default:
		return nil, fmt.Errorf("unknown tie break %q", c.TieBreak)
	}

	if c.Release.Attempts < 1 {
		return nil, fmt.Errorf("invalid release attempts %d", c.Release.Attempts)
	}
	rules.MaxReleaseTries = c.Release.Attempts
	return rules, nil
}

func (c *Config) Topology() (*game.Topology, error) {
	t := game.CreateTopology()
	if len(c.SafeCells) > 0 {
		t = t.WithSafeCells(c.SafeCells)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewGame creates a game with the configured rules, board and names.
func (c *Config) NewGame() (*game.GameState, error) {
	rules, err := c.Rules()
	if err != nil {
		return nil, err
	}
	t, err := c.Topology()
	if err != nil {
		return nil, err
	}

	gs := game.NewGameState(t, rules)
	for name, display := range c.Names {
		color, err := game.ParseColor(name)
		if err != nil {
			return nil, err
		}
		gs.SetName(color, display)
	}
	return gs, nil
}

func (c *Config) Seed() uint64 {
	if c.Dice.Seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return c.Dice.Seed
}

func (c *Config) Roller() *dice.Roller {
	return dice.NewRoller(dice.NewRandomSource(c.Seed()), dice.WithDelay(c.Dice.Delay))
}
