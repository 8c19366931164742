package electrical

import (
	"context"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ramp moves a value smoothly from start to end over a duration, calling
// set with each intermediate frame. Used to simulate inertia in electrical
// quantities, a battery doesn't jump from idle to full power.
type Ramp struct {
	Duration time.Duration
	Tick     time.Duration
	Easing   ease.TweenFunc
}

type RampOption func(*Ramp)

var DefaultRampOptions = []RampOption{
	WithDuration(time.Second),
	WithTick(100 * time.Millisecond),
	WithEasing(ease.InOutQuad),
}

func WithDuration(duration time.Duration) RampOption {
	return func(r *Ramp) {
		r.Duration = duration
	}
}

// WithTick configures how often set is called during the ramp.
func WithTick(tick time.Duration) RampOption {
	return func(r *Ramp) {
		r.Tick = tick
	}
}

func WithEasing(easing ease.TweenFunc) RampOption {
	return func(r *Ramp) {
		r.Easing = easing
	}
}

func NewRamp(opts ...RampOption) *Ramp {
	r := &Ramp{}
	for _, opt := range DefaultRampOptions {
		opt(r)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Play runs the ramp from start to end, blocking until the ramp completes
// or ctx is done. The final frame always lands exactly on end unless ctx
// is cancelled first.
func (r *Ramp) Play(ctx context.Context, start, end float64, set func(float64)) error {
	tween := gween.New(float32(start), float32(end), float32(r.Duration.Milliseconds()), r.Easing)
	startTime := time.Now()

	ticker := time.NewTicker(r.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			playTime := now.Sub(startTime)
			value, finished := tween.Set(float32(playTime.Milliseconds()))
			set(float64(value))
			if finished {
				return nil
			}
		}
	}
}
