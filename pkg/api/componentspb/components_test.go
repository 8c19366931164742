package componentspb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestFile(t *testing.T) {
	fd := File()
	if fd == nil {
		t.Fatal("File returned nil")
	}
	if fd != File() {
		t.Fatal("File is not idempotent")
	}
	if got, want := fd.Path(), FilePath; got != want {
		t.Fatalf("path %q, want %q", got, want)
	}
	if got, want := string(fd.Package()), Package; got != want {
		t.Fatalf("package %q, want %q", got, want)
	}
	svc := fd.Services().ByName("ComponentRegistry")
	if svc == nil {
		t.Fatal("ComponentRegistry service missing")
	}
	if got, want := string(svc.FullName()), ComponentRegistryName; got != want {
		t.Fatalf("service %q, want %q", got, want)
	}
	for _, name := range []string{"GetComponent", "ListComponents", "WatchComponents"} {
		if svc.Methods().ByName(protoreflect.Name(name)) == nil {
			t.Errorf("method %s missing", name)
		}
	}
}

func TestComponent(t *testing.T) {
	installed := time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC)
	c := NewComponent().
		SetId(42).
		SetName("battery-1").
		SetCategory(CategoryBattery).
		SetManufacturer("ACME").
		SetModelName("BX-900").
		SetStatus(StatusActive).
		SetInstalledAt(installed)

	if c.Id() != 42 {
		t.Errorf("Id %d, want 42", c.Id())
	}
	if c.Category() != CategoryBattery {
		t.Errorf("Category %v, want %v", c.Category(), CategoryBattery)
	}
	if !c.InstalledAt().Equal(installed) {
		t.Errorf("InstalledAt %v, want %v", c.InstalledAt(), installed)
	}

	// survives the wire
	data, err := proto.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	got := NewComponent()
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(proto.Message(c), proto.Message(got), protocmp.Transform()); diff != "" {
		t.Fatalf("round trip (-want,+got)\n%s", diff)
	}
}

func TestComponent_cloneIsDetached(t *testing.T) {
	c := NewComponent().SetId(1).SetName("meter-1")
	clone := AsComponent(proto.Clone(c))
	clone.SetName("meter-2")
	if got := c.Name(); got != "meter-1" {
		t.Fatalf("clone write leaked into original, name %q", got)
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{CategoryInverter.String(), "COMPONENT_CATEGORY_INVERTER"},
		{CategoryUnspecified.String(), "COMPONENT_CATEGORY_UNSPECIFIED"},
		{StatusInactive.String(), "COMPONENT_STATUS_INACTIVE"},
		{ChangeAdd.String(), "CHANGE_TYPE_ADD"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestListComponentsResponse(t *testing.T) {
	res := NewListComponentsResponse().
		AddComponents(
			NewComponent().SetId(1).SetName("a"),
			NewComponent().SetId(2).SetName("b"),
		).
		SetNextPageToken("2").
		SetTotalSize(5)

	got := res.Components()
	if len(got) != 2 {
		t.Fatalf("Components len %d, want 2", len(got))
	}
	if got[0].Id() != 1 || got[1].Id() != 2 {
		t.Fatalf("Components ids %d,%d want 1,2", got[0].Id(), got[1].Id())
	}
	if res.NextPageToken() != "2" {
		t.Errorf("NextPageToken %q", res.NextPageToken())
	}
}

func TestWatchComponentsResponse(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	res := NewWatchComponentsResponse().
		SetType(ChangeUpdate).
		SetOldValue(NewComponent().SetId(7).SetName("old")).
		SetNewValue(NewComponent().SetId(7).SetName("new")).
		SetChangeTime(now)

	if res.Type() != ChangeUpdate {
		t.Errorf("Type %v", res.Type())
	}
	if res.OldValue() == nil || res.OldValue().Name() != "old" {
		t.Errorf("OldValue %v", res.OldValue())
	}
	if res.NewValue().Name() != "new" {
		t.Errorf("NewValue %v", res.NewValue())
	}
	if !res.ChangeTime().Equal(now) {
		t.Errorf("ChangeTime %v, want %v", res.ChangeTime(), now)
	}

	// absent message fields read as nil, not empty
	empty := NewWatchComponentsResponse()
	if empty.OldValue() != nil {
		t.Errorf("empty OldValue %v, want nil", empty.OldValue())
	}

	// and getters on the nil result return zero values
	if got := empty.OldValue().Name(); got != "" {
		t.Errorf("OldValue().Name() on empty response = %q, want empty", got)
	}
	if got := empty.OldValue().Id(); got != 0 {
		t.Errorf("OldValue().Id() on empty response = %d, want 0", got)
	}
}
