// Command simulator serves a simulated battery-inverter site over the
// microgrid common API. Component inventory, telemetry and electrical
// state are all backed by in-memory models and animated over time.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/component"
	"github.com/microgrid-os/mg-golang/pkg/electrical"
	"github.com/microgrid-os/mg-golang/pkg/server"
	"github.com/microgrid-os/mg-golang/pkg/telemetry"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Could not create logger: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	components := component.NewModel(component.WithInitialComponents(
		newComponent(1, "grid-connection", componentspb.CategoryGridConnectionPoint),
		newComponent(2, "site-meter", componentspb.CategoryMeter),
		newComponent(3, "inverter-1", componentspb.CategoryInverter),
		newComponent(4, "battery-1", componentspb.CategoryBattery),
	))
	metrics := telemetry.NewModel()
	state := electrical.NewModel()

	s := server.NewServer(logger)
	s.Register(server.Collection(
		component.NewModelServer(components),
		telemetry.NewModelServer(metrics),
		electrical.NewModelServer(state),
	))

	addr, err := url.Parse("tcp://127.0.0.1:23557")
	if err != nil {
		logger.Fatal("Could not parse address", zap.Error(err))
	}
	done := s.Startup(addr)

	go logAlerts(ctx, logger, metrics)
	go simulate(ctx, logger, metrics, state)

	select {
	case err := <-done:
		if err != nil {
			logger.Error("Shutting down", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		s.Shutdown()
	}
}

func newComponent(id uint64, name string, category componentspb.ComponentCategory) *componentspb.Component {
	return componentspb.NewComponent().
		SetId(id).
		SetName(name).
		SetCategory(category).
		SetStatus(componentspb.StatusActive).
		SetInstalledAt(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
}

// simulate cycles the battery between charging and discharging, ramping the
// DC power between setpoints and publishing SOC readings as it goes.
func simulate(ctx context.Context, logger *zap.Logger, metrics *telemetry.Model, state *electrical.Model) {
	ramp := electrical.NewRamp(
		electrical.WithDuration(5*time.Second),
		electrical.WithTick(200*time.Millisecond),
	)

	soc := 52.0
	setpoints := []float64{2000, -1500, 500, -3000}
	for i := 0; ; i++ {
		target := setpoints[i%len(setpoints)]
		start := state.Dc().Power().Value()
		logger.Info("ramping battery power",
			zap.Float64("from", start), zap.Float64("to", target))

		err := ramp.Play(ctx, start, target, func(power float64) {
			_, err := state.SetDc(dcState(power))
			if err != nil {
				logger.Warn("dc update failed", zap.Error(err))
			}
		})
		if err != nil {
			return // ctx done
		}

		// SOC drifts with the direction of power flow
		if target > 0 {
			soc -= 2
		} else {
			soc += 1.5
		}
		sample := metricspb.NewMetricSample().
			SetSampledAt(time.Now()).
			SetMetric(metricspb.MetricBatterySoc).
			SetValue(soc).
			AddBounds(metricspb.NewBounds(20, 80))
		if _, err := metrics.RecordSample(sample); err != nil {
			logger.Warn("sample record failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func dcState(power float64) *electricalpb.Dc {
	voltage := 700.0
	return electricalpb.NewDc().
		SetVoltage(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcVoltage).SetValue(voltage)).
		SetCurrent(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcCurrent).SetValue(power / voltage)).
		SetPower(metricspb.NewMetricSample().SetMetric(metricspb.MetricDcPower).SetValue(power))
}

func logAlerts(ctx context.Context, logger *zap.Logger, metrics *telemetry.Model) {
	alerts, done := metrics.OnOutOfBounds(ctx)
	defer done()
	for alert := range alerts {
		logger.Warn("metric out of bounds",
			zap.String("metric", alert.Metric().String()),
			zap.Float64("value", alert.Value()))
	}
}
