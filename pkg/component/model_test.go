package component

import (
	"context"
	"testing"
	"time"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
)

func testComponent(id uint64, name string) *componentspb.Component {
	return componentspb.NewComponent().
		SetId(id).
		SetName(name).
		SetCategory(componentspb.CategoryMeter).
		SetStatus(componentspb.StatusActive)
}

func TestModel_AddComponent(t *testing.T) {
	m := NewModel()
	if _, err := m.AddComponent(testComponent(1, "meter-1")); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddComponent(testComponent(1, "meter-1b")); err == nil {
		t.Fatal("adding a duplicate id succeeded")
	}
	if _, err := m.AddComponent(componentspb.NewComponent().SetName("no-id")); err == nil {
		t.Fatal("adding a component without an id succeeded")
	}

	got, ok := m.GetComponent(1)
	if !ok {
		t.Fatal("GetComponent(1) not found")
	}
	if got.Name() != "meter-1" {
		t.Fatalf("Name %q, want meter-1", got.Name())
	}
	if _, ok := m.GetComponent(99); ok {
		t.Fatal("GetComponent(99) found")
	}
}

func TestModel_ListComponents_idOrder(t *testing.T) {
	m := NewModel(WithInitialComponents(
		testComponent(10, "c"),
		testComponent(2, "b"),
		testComponent(1, "a"),
	))
	got := m.ListComponents()
	if len(got) != 3 {
		t.Fatalf("len %d, want 3", len(got))
	}
	// numeric order, not lexicographic
	for i, want := range []uint64{1, 2, 10} {
		if got[i].Id() != want {
			t.Fatalf("component[%d].Id = %d, want %d", i, got[i].Id(), want)
		}
	}
}

func TestModel_RemoveComponent(t *testing.T) {
	m := NewModel(WithInitialComponents(testComponent(5, "inv-5")))
	old, existed := m.RemoveComponent(5)
	if !existed {
		t.Fatal("RemoveComponent(5) did not exist")
	}
	if old.Name() != "inv-5" {
		t.Fatalf("removed %q", old.Name())
	}
	if _, existed := m.RemoveComponent(5); existed {
		t.Fatal("second RemoveComponent(5) existed")
	}
}

func TestModel_PullComponents(t *testing.T) {
	m := NewModel()
	ctx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	changes := m.PullComponents(ctx)

	if _, err := m.AddComponent(testComponent(3, "bat-3")); err != nil {
		t.Fatal(err)
	}
	change := waitForChange(t, changes, time.Second)
	if change.Type() != componentspb.ChangeAdd {
		t.Fatalf("change type %v, want ADD", change.Type())
	}
	if change.NewValue().Id() != 3 {
		t.Fatalf("NewValue id %d, want 3", change.NewValue().Id())
	}

	if _, err := m.UpdateComponent(testComponent(3, "bat-3b")); err != nil {
		t.Fatal(err)
	}
	change = waitForChange(t, changes, time.Second)
	if change.Type() != componentspb.ChangeUpdate {
		t.Fatalf("change type %v, want UPDATE", change.Type())
	}
	if change.OldValue().Name() != "bat-3" || change.NewValue().Name() != "bat-3b" {
		t.Fatalf("old %q new %q", change.OldValue().Name(), change.NewValue().Name())
	}

	m.RemoveComponent(3)
	change = waitForChange(t, changes, time.Second)
	if change.Type() != componentspb.ChangeRemove {
		t.Fatalf("change type %v, want REMOVE", change.Type())
	}
}

func waitForChange(t *testing.T, c <-chan *componentspb.WatchComponentsResponse, wait time.Duration) *componentspb.WatchComponentsResponse {
	t.Helper()
	select {
	case change := <-c:
		return change
	case <-time.After(wait):
		t.Fatal("timeout waiting for change")
		return nil
	}
}
