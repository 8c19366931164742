package resource

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
)

func record(id uint64, name string) *componentspb.Component {
	return componentspb.NewComponent().SetId(id).SetName(name)
}

func TestCollection_Pull(t *testing.T) {
	t.Run("SeedValue", func(t *testing.T) {
		now := time.UnixMilli(0)
		clock := ClockFunc(func() time.Time {
			return now
		})

		c := NewCollection(WithClock(clock))
		c.Add("three", record(3, "three"))
		c.Add("one", record(1, "one"))

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := c.Pull(ctx, WithBackpressure(false))

		// first value when not using UpdatesOnly should say it's not an update
		seed := waitForChan(t, changes, time.Second)
		want := &CollectionChange{
			Id:            "one",
			ChangeTime:    now,
			ChangeType:    ChangeTypeAdd,
			NewValue:      record(1, "one"),
			SeedValue:     true,
			LastSeedValue: false,
		}
		if diff := cmp.Diff(want, seed, protocmp.Transform()); diff != "" {
			t.Fatalf("Seed Value (-want,+got)\n%s", diff)
		}
		// second value is still a seed value, but should say its the last seed value
		seed = waitForChan(t, changes, time.Second)
		want = &CollectionChange{
			Id:            "three",
			ChangeTime:    now,
			ChangeType:    ChangeTypeAdd,
			NewValue:      record(3, "three"),
			SeedValue:     true,
			LastSeedValue: true,
		}
		if diff := cmp.Diff(want, seed, protocmp.Transform()); diff != "" {
			t.Fatalf("Seed Value (-want,+got)\n%s", diff)
		}

		// third value should be an update
		c.Update("one", record(1, "one again"))
		next := waitForChan(t, changes, time.Second)
		want = &CollectionChange{
			Id:         "one",
			ChangeTime: now,
			ChangeType: ChangeTypeUpdate,
			OldValue:   record(1, "one"),
			NewValue:   record(1, "one again"),
		}
		if diff := cmp.Diff(want, next, protocmp.Transform()); diff != "" {
			t.Fatalf("Next Value (-want,+got)\n%s", diff)
		}

		// adding after the seed doesn't report as a SeedValue
		c.Update("two", record(2, "two"), WithCreateIfAbsent())
		next = waitForChan(t, changes, time.Second)
		want = &CollectionChange{
			Id:         "two",
			ChangeTime: now,
			ChangeType: ChangeTypeAdd,
			NewValue:   record(2, "two"),
		}
		if diff := cmp.Diff(want, next, protocmp.Transform()); diff != "" {
			t.Fatalf("Add Value (-want,+got)\n%s", diff)
		}

		c.Delete("two")
		next = waitForChan(t, changes, time.Second)
		want = &CollectionChange{
			Id:         "two",
			ChangeTime: now,
			ChangeType: ChangeTypeRemove,
			OldValue:   record(2, "two"),
		}
		if diff := cmp.Diff(want, next, protocmp.Transform()); diff != "" {
			t.Fatalf("Remove Value (-want,+got)\n%s", diff)
		}
	})

	t.Run("UpdatesOnly", func(t *testing.T) {
		c := NewCollection()
		c.Add("one", record(1, "one"))

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := c.Pull(ctx, WithBackpressure(false), WithUpdatesOnly(true))

		noEmitWithin(t, changes, 50*time.Millisecond)

		c.Update("one", record(1, "one again"))
		change := waitForChan(t, changes, time.Second)
		if change.ChangeType != ChangeTypeUpdate {
			t.Fatalf("ChangeType %v, want UPDATE", change.ChangeType)
		}
	})

	t.Run("Include filter", func(t *testing.T) {
		c := NewCollection()
		c.Add("one", record(1, "one"))
		c.Add("two", record(2, "two"))

		ctx, stop := context.WithCancel(context.Background())
		t.Cleanup(stop)
		changes := c.Pull(ctx, WithBackpressure(false), WithInclude(func(id string, _ proto.Message) bool {
			return id == "two"
		}))

		seed := waitForChan(t, changes, time.Second)
		if seed.Id != "two" {
			t.Fatalf("seed id %q, want two", seed.Id)
		}
	})
}

func TestCollection_Add(t *testing.T) {
	c := NewCollection()
	if _, err := c.Add("one", record(1, "one")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Add("one", record(1, "dup")); err == nil {
		t.Fatal("duplicate Add succeeded")
	}

	got, ok := c.Get("one")
	if !ok {
		t.Fatal("Get(one) not found")
	}
	if diff := cmp.Diff(record(1, "one"), componentspb.AsComponent(got), protocmp.Transform()); diff != "" {
		t.Fatalf("Get (-want,+got)\n%s", diff)
	}
}

func TestCollection_AddFn(t *testing.T) {
	c := NewCollection()
	ids := map[string]bool{}
	for i := 0; i < 10; i++ {
		_, id, err := c.AddFn(func(id string) proto.Message {
			return record(uint64(i+1), id)
		})
		if err != nil {
			t.Fatal(err)
		}
		if ids[id] {
			t.Fatalf("AddFn produced duplicate id %q", id)
		}
		ids[id] = true
	}
}

func TestCollection_List_sorted(t *testing.T) {
	c := NewCollection()
	c.Add("b", record(2, "b"))
	c.Add("a", record(1, "a"))
	c.Add("c", record(3, "c"))

	var names []string
	for _, msg := range c.List() {
		names = append(names, componentspb.AsComponent(msg).Name())
	}
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("List (-want,+got)\n%s", diff)
	}
}
