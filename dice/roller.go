package dice

import (
	"context"
	"parques/meta"
	"time"
)

type Option func(r *Roller)

// Roller asks a source for one die at a time, reporting the value after a
// delay that paces the dice animation.
type Roller struct {
	source Source
	delay  time.Duration
}

func WithDelay(delay time.Duration) Option {
	return func(r *Roller) {
		if delay >= 0 {
			r.delay = delay
		}
	}
}

func NewRoller(source Source, options ...Option) *Roller {
	r := &Roller{ // Default values
		source: source,
		delay:  meta.DICE_DELAY,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Roll waits out the delay and returns a value, or the context's error if it
// is done first.
func (r *Roller) Roll(ctx context.Context) (int, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.source.Roll(), nil
}

// Request rolls in the background and calls onResult exactly once.
func (r *Roller) Request(ctx context.Context, onResult func(value int, err error)) {
	go func() {
		onResult(r.Roll(ctx))
	}()
}
