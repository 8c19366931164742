package electrical

import (
	"context"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

func dcState(voltage, current, power float64) *electricalpb.Dc {
	return electricalpb.NewDc().
		SetVoltage(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcVoltage).SetValue(voltage)).
		SetCurrent(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcCurrent).SetValue(current)).
		SetPower(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcPower).SetValue(power))
}

func TestModel_SetDc(t *testing.T) {
	m := NewModel()
	if m.Dc() == nil {
		t.Fatal("initial Dc is nil")
	}

	if _, err := m.SetDc(dcState(48, 10, 480)); err != nil {
		t.Fatal(err)
	}
	if got := m.Dc().Power().Value(); got != 480 {
		t.Fatalf("Power %v, want 480", got)
	}

	// masked write only touches the asked for fields
	_, err := m.SetDc(dcState(50, 0, 9999),
		resource.WithUpdatePaths("voltage"))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Dc().Voltage().Value(); got != 50 {
		t.Fatalf("Voltage %v, want 50", got)
	}
	if got := m.Dc().Power().Value(); got != 480 {
		t.Fatalf("Power %v, want 480 after masked write", got)
	}
}

func TestModel_Ac_maskedRead(t *testing.T) {
	m := NewModel(WithInitialAc(electricalpb.NewAc().
		SetFrequency(metricspb.NewMetricSample().SetMetric(metricspb.MetricAcFrequency).SetValue(50)).
		SetPhaseA(electricalpb.NewAcPhase().
			SetVoltage(metricspb.NewMetricSample().SetMetric(metricspb.MetricAcVoltage).SetValue(230)))))

	got := m.Ac(resource.WithReadMask(&fieldmaskpb.FieldMask{Paths: []string{"frequency"}}))
	if got.Frequency() == nil || got.Frequency().Value() != 50 {
		t.Fatalf("Frequency %v", got.Frequency())
	}
	if got.PhaseA() != nil {
		t.Fatalf("masked PhaseA %v, want nil", got.PhaseA())
	}
}

func TestModel_PullDc(t *testing.T) {
	m := NewModel()
	ctx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	changes := m.PullDc(ctx, resource.WithUpdatesOnly(true))

	if _, err := m.SetDc(dcState(48, 5, 240)); err != nil {
		t.Fatal(err)
	}
	select {
	case change := <-changes:
		if got := change.Value.Current().Value(); got != 5 {
			t.Fatalf("Current %v, want 5", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for change")
	}
}

func TestRamp_Play(t *testing.T) {
	r := NewRamp(
		WithDuration(100*time.Millisecond),
		WithTick(10*time.Millisecond),
	)

	var got []float64
	err := r.Play(context.Background(), 0, 1000, func(v float64) {
		got = append(got, v)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("no frames played")
	}
	if last := got[len(got)-1]; last != 1000 {
		t.Fatalf("final frame %v, want 1000", last)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("ramp not monotonic: %v", got)
		}
	}
}

func TestRamp_Play_cancelled(t *testing.T) {
	r := NewRamp(WithDuration(time.Hour))
	ctx, stop := context.WithCancel(context.Background())
	stop()
	err := r.Play(ctx, 0, 1, func(float64) {})
	if err != context.Canceled {
		t.Fatalf("err %v, want context.Canceled", err)
	}
}
