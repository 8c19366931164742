package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
)

func sample(metric metricspb.Metric, value float64) *metricspb.MetricSample {
	return metricspb.NewMetricSample().
		SetSampledAt(time.Now()).
		SetMetric(metric).
		SetValue(value)
}

func TestModel_RecordSample(t *testing.T) {
	m := NewModel()
	if _, ok := m.GetSample(metricspb.MetricBatterySoc); ok {
		t.Fatal("sample found before recording")
	}

	if _, err := m.RecordSample(sample(metricspb.MetricBatterySoc, 80)); err != nil {
		t.Fatal(err)
	}
	got, ok := m.GetSample(metricspb.MetricBatterySoc)
	if !ok {
		t.Fatal("sample not found after recording")
	}
	if got.Value() != 80 {
		t.Fatalf("Value %v, want 80", got.Value())
	}

	// latest wins
	if _, err := m.RecordSample(sample(metricspb.MetricBatterySoc, 79)); err != nil {
		t.Fatal(err)
	}
	got, _ = m.GetSample(metricspb.MetricBatterySoc)
	if got.Value() != 79 {
		t.Fatalf("Value %v, want 79", got.Value())
	}

	if n := len(m.ListSamples()); n != 1 {
		t.Fatalf("ListSamples len %d, want 1", n)
	}
}

func TestModel_PullSamples(t *testing.T) {
	m := NewModel()
	ctx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	samples := m.PullSamples(ctx)

	if _, err := m.RecordSample(sample(metricspb.MetricTemperature, 21.5)); err != nil {
		t.Fatal(err)
	}
	got := waitForSample(t, samples, time.Second)
	if got.Metric() != metricspb.MetricTemperature || got.Value() != 21.5 {
		t.Fatalf("got %v %v", got.Metric(), got.Value())
	}
}

func TestModel_OnOutOfBounds(t *testing.T) {
	m := NewModel()
	ctx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	alerts, done := m.OnOutOfBounds(ctx)
	t.Cleanup(done)

	// in bounds, no alert
	in := sample(metricspb.MetricBatterySoc, 50).AddBounds(metricspb.NewBounds(20, 80))
	if _, err := m.RecordSample(in); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-alerts:
		t.Fatalf("unexpected alert %v", got)
	case <-time.After(50 * time.Millisecond):
	}

	// out of bounds alerts
	out := sample(metricspb.MetricBatterySoc, 95).AddBounds(metricspb.NewBounds(20, 80))
	if _, err := m.RecordSample(out); err != nil {
		t.Fatal(err)
	}
	got := waitForSample(t, alerts, time.Second)
	if got.Value() != 95 {
		t.Fatalf("alert value %v, want 95", got.Value())
	}
}

func waitForSample(t *testing.T, c <-chan *metricspb.MetricSample, wait time.Duration) *metricspb.MetricSample {
	t.Helper()
	select {
	case s := <-c:
		return s
	case <-time.After(wait):
		t.Fatal("timeout waiting for sample")
		return nil
	}
}
