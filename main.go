package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"parques/config"
	"parques/experiments"
	"parques/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML file with rules and dice settings")
	experiment := flag.String("experiment", "strategy", "Experiment to run: strategy or parallelization")
	games := flag.Int("games", meta.GAMES, "Number of games per lineup")
	seed := flag.Uint64("seed", 0, "Seed for dice and agents, overriding the config (0 keeps it)")
	out := flag.String("out", "experiments", "Folder the records are written to")
	debug := flag.Bool("debug", false, "Log every roll and move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed != 0 {
		cfg.Dice.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings := experiments.Settings{
		Config: cfg,
		Games:  *games,
		Seed:   cfg.Seed(),
		OutDir: *out,
	}

	var dir string
	var err error
	switch *experiment {
	case "strategy":
		dir, err = experiments.RunStrategyExperiment(ctx, settings)
	case "parallelization":
		dir, err = experiments.RunParallelizationExperiment(ctx, settings)
	default:
		log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Str("dir", dir).Msg("done")
}
