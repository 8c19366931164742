package metricspb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
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
	if fd.Services().ByName("MetricsStream") == nil {
		t.Fatal("MetricsStream service missing")
	}
}

func TestMetricSample(t *testing.T) {
	at := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s := NewMetricSample().
		SetSampledAt(at).
		SetMetric(MetricAcActivePower).
		SetValue(1500).
		AddBounds(NewBounds(-2000, 2000))

	if s.Metric() != MetricAcActivePower {
		t.Errorf("Metric %v", s.Metric())
	}
	if !s.SampledAt().Equal(at) {
		t.Errorf("SampledAt %v, want %v", s.SampledAt(), at)
	}

	data, err := proto.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := NewMetricSample()
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(proto.Message(s), proto.Message(got), protocmp.Transform()); diff != "" {
		t.Fatalf("round trip (-want,+got)\n%s", diff)
	}
}

func TestMetricSample_InBounds(t *testing.T) {
	s := NewMetricSample().SetMetric(MetricBatterySoc).SetValue(80)
	if !s.InBounds() {
		t.Error("sample without bounds should be in bounds")
	}
	s.AddBounds(NewBounds(0, 100))
	if !s.InBounds() {
		t.Error("80 in [0,100] should be in bounds")
	}
	s.AddBounds(NewBounds(20, 60))
	if s.InBounds() {
		t.Error("80 outside [20,60] should be out of bounds")
	}
}

func TestAggregatedMetricSample_SetRawValues(t *testing.T) {
	a := NewAggregatedMetricSample().
		SetMetric(MetricTemperature).
		SetRawValues(20, 30, 25)

	if got := a.Avg(); got != 25 {
		t.Errorf("Avg %v, want 25", got)
	}
	if got := a.Min(); got != 20 {
		t.Errorf("Min %v, want 20", got)
	}
	if got := a.Max(); got != 30 {
		t.Errorf("Max %v, want 30", got)
	}
	if got := a.RawValues(); len(got) != 3 {
		t.Errorf("RawValues %v", got)
	}
}

func TestMetricString(t *testing.T) {
	if got, want := MetricDcVoltage.String(), "METRIC_DC_VOLTAGE"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := Metric(99).String(), "99"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
