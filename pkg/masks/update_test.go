package masks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
)

// Scalar fields should be updated only if they appear in the mask.
// Repeated fields are appended if they appear in the mask.
func TestFieldUpdater_Merge(t *testing.T) {
	dst := metricspb.NewMetricSample().
		SetMetric(metricspb.MetricBatterySoc).
		SetValue(50).
		AddBounds(metricspb.NewBounds(0, 100))

	src := metricspb.NewMetricSample().
		SetMetric(metricspb.MetricBatterySoc).
		SetValue(75).
		AddBounds(metricspb.NewBounds(20, 80))

	mask, err := fieldmaskpb.New(dst, "value", "bounds")
	if err != nil {
		t.Fatal(err)
	}

	expect := metricspb.NewMetricSample().
		SetMetric(metricspb.MetricBatterySoc).
		SetValue(75).
		AddBounds(metricspb.NewBounds(0, 100)).
		AddBounds(metricspb.NewBounds(20, 80))

	updater := NewFieldUpdater(WithUpdateMask(mask))
	if err := updater.Validate(src); err != nil {
		t.Fatal(err)
	}
	updater.Merge(dst, src)

	if diff := cmp.Diff(expect, dst, protocmp.Transform()); diff != "" {
		t.Fatalf("Merge (-want,+got)\n%s", diff)
	}
}

func TestFieldUpdater_Merge_noMask(t *testing.T) {
	dst := componentspb.NewComponent().SetId(1).SetName("old").SetManufacturer("ACME")
	src := componentspb.NewComponent().SetId(1).SetName("new")

	updater := NewFieldUpdater()
	updater.Merge(dst, src)

	// without a mask dst becomes src, absent fields clear
	if diff := cmp.Diff(src, dst, protocmp.Transform()); diff != "" {
		t.Fatalf("Merge (-want,+got)\n%s", diff)
	}
}

func TestFieldUpdater_Merge_writableFields(t *testing.T) {
	dst := componentspb.NewComponent().SetId(1).SetName("old").SetManufacturer("ACME")
	src := componentspb.NewComponent().SetId(1).SetName("new").SetManufacturer("Umbrella")

	updater := NewFieldUpdater(WithWritableFields(&fieldmaskpb.FieldMask{Paths: []string{"id", "name"}}))
	updater.Merge(dst, src)

	got := componentspb.AsComponent(dst)
	if got.Name() != "new" {
		t.Errorf("Name %q, want new", got.Name())
	}
	// manufacturer is not writable, the write doesn't touch it
	if got.Manufacturer() != "ACME" {
		t.Errorf("Manufacturer %q, want ACME", got.Manufacturer())
	}
}

func TestFieldUpdater_Validate(t *testing.T) {
	m := componentspb.NewComponent()

	bad := NewFieldUpdater(WithUpdateMask(&fieldmaskpb.FieldMask{Paths: []string{"no_such_field"}}))
	if err := bad.Validate(m); err == nil {
		t.Error("unknown field in update mask validated")
	}

	readOnly := NewFieldUpdater(
		WithWritableFields(&fieldmaskpb.FieldMask{Paths: []string{"name"}}),
		WithUpdateMask(&fieldmaskpb.FieldMask{Paths: []string{"manufacturer"}}),
	)
	if err := readOnly.Validate(m); err == nil {
		t.Error("read-only field in update mask validated")
	}

	ok := NewFieldUpdater(
		WithWritableFields(&fieldmaskpb.FieldMask{Paths: []string{"name"}}),
		WithUpdateMask(&fieldmaskpb.FieldMask{Paths: []string{"name"}}),
	)
	if err := ok.Validate(m); err != nil {
		t.Errorf("valid mask rejected: %v", err)
	}
}
