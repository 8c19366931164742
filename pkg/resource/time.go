package resource

import "time"

// Clock is the source of change times recorded by resources. Tests swap it
// out via WithClock to get deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a func into a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// WallClock returns a Clock backed by the time package.
func WallClock() Clock {
	return ClockFunc(time.Now)
}
