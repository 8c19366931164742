package resource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	scmp "github.com/microgrid-os/mg-golang/pkg/cmp"
)

func named(name string) *componentspb.Component {
	return componentspb.NewComponent().SetId(1).SetName(name)
}

func TestValue_Pull(t *testing.T) {
	t.Run("SeedValue", func(t *testing.T) {
		now := time.UnixMilli(0)
		clock := ClockFunc(func() time.Time {
			return now
		})

		v := NewValue(WithInitialValue(named("one")), WithClock(clock))

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := v.Pull(ctx, WithBackpressure(false))

		// first value when not using UpdatesOnly should say it's not an update
		seed := waitForChan(t, changes, time.Second)
		want := &ValueChange{
			ChangeTime: now,
			Value:      named("one"),
			SeedValue:  true,
		}
		if diff := cmp.Diff(want, seed, protocmp.Transform()); diff != "" {
			t.Fatalf("Seed Value (-want,+got)\n%s", diff)
		}

		// second value should be an update
		v.Set(named("two"))
		next := waitForChan(t, changes, time.Second)
		want = &ValueChange{
			ChangeTime: now,
			Value:      named("two"),
			SeedValue:  false,
		}
		if diff := cmp.Diff(want, next, protocmp.Transform()); diff != "" {
			t.Fatalf("Next Value (-want,+got)\n%s", diff)
		}
	})

	t.Run("SeedValue updatesOnly", func(t *testing.T) {
		v := NewValue(WithInitialValue(named("one")))

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := v.Pull(ctx, WithBackpressure(false), WithUpdatesOnly(true))

		// with updates only, there should be no waiting event
		noEmitWithin(t, changes, 50*time.Millisecond)

		v.Set(named("two"))
		change := waitForChan(t, changes, time.Second)
		if got := componentspb.AsComponent(change.Value).Name(); got != "two" {
			t.Fatalf("Value name %q, want two", got)
		}
	})

	t.Run("equivalence dedup", func(t *testing.T) {
		v := NewValue(
			WithInitialValue(named("one")),
			WithMessageEquivalence(scmp.Equal()),
		)

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := v.Pull(ctx, WithBackpressure(false), WithUpdatesOnly(true))

		// writing an equivalent value should not emit
		v.Set(named("one"))
		noEmitWithin(t, changes, 50*time.Millisecond)

		v.Set(named("two"))
		change := waitForChan(t, changes, time.Second)
		if got := componentspb.AsComponent(change.Value).Name(); got != "two" {
			t.Fatalf("Value name %q, want two", got)
		}
	})
}

func TestValue_Set(t *testing.T) {
	t.Run("update mask", func(t *testing.T) {
		v := NewValue(WithInitialValue(named("one").SetManufacturer("ACME")))

		_, err := v.Set(named("two"), WithUpdatePaths("name"))
		if err != nil {
			t.Fatal(err)
		}
		got := componentspb.AsComponent(v.Get())
		if got.Name() != "two" {
			t.Fatalf("Name %q, want two", got.Name())
		}
		if got.Manufacturer() != "ACME" {
			t.Fatalf("Manufacturer %q, want ACME", got.Manufacturer())
		}
	})

	t.Run("expected value", func(t *testing.T) {
		v := NewValue(WithInitialValue(named("one")))

		_, err := v.Set(named("three"), WithExpectedValue(named("two")))
		if !errors.Is(err, ErrExpectedValueMismatch) {
			t.Fatalf("err %v, want ErrExpectedValueMismatch", err)
		}

		if _, err := v.Set(named("two"), WithExpectedValue(named("one"))); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("writable fields", func(t *testing.T) {
		v := NewValue(
			WithInitialValue(named("one")),
			WithWritablePaths(componentspb.NewComponent(), "id", "name"),
		)

		// non-writable fields are silently dropped from the write
		if _, err := v.Set(named("two").SetManufacturer("ACME")); err != nil {
			t.Fatal(err)
		}
		got := componentspb.AsComponent(v.Get())
		if got.Name() != "two" {
			t.Fatalf("Name %q, want two", got.Name())
		}
		if got.Manufacturer() != "" {
			t.Fatalf("Manufacturer %q, want empty", got.Manufacturer())
		}

		// an explicit mask naming a read-only field is rejected
		if _, err := v.Set(named("three"), WithUpdatePaths("manufacturer")); err == nil {
			t.Fatal("update mask naming a read-only field succeeded")
		}
	})
}
