package resource

import (
	"testing"
	"time"
)

func waitForChan[T any](t *testing.T, c <-chan T, wait time.Duration) T {
	t.Helper()
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case v := <-c:
		return v
	case <-timer.C:
		t.Fatalf("no value on chan within %v", wait)
		var zero T
		return zero
	}
}

func noEmitWithin[T any](t *testing.T, c <-chan T, wait time.Duration) {
	t.Helper()
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case v := <-c:
		t.Fatalf("unexpected value on chan: %v", v)
	case <-timer.C:
	}
}
