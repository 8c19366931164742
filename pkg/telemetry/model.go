// Package telemetry models the latest metric readings of a component and
// exposes them as a MetricsStream gRPC service. Samples that land outside
// their bounds fan out as alerts.
package telemetry

import (
	"context"

	"github.com/olebedev/emitter"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

const outOfBoundsTopic = "outOfBounds"

// Model holds the most recent sample of each metric.
type Model struct {
	samples *resource.Collection

	alerts *emitter.Emitter
}

func NewModel(opts ...resource.Option) *Model {
	return &Model{
		samples: resource.NewCollection(opts...),
		alerts:  &emitter.Emitter{},
	}
}

// RecordSample stores s as the latest reading for its metric, replacing any
// earlier reading. Samples whose value falls outside their bounds are also
// published to OnOutOfBounds listeners.
func (m *Model) RecordSample(s *metricspb.MetricSample, opts ...resource.WriteOption) (*metricspb.MetricSample, error) {
	opts = append([]resource.WriteOption{resource.WithCreateIfAbsent()}, opts...)
	msg, err := m.samples.Update(s.Metric().String(), s, opts...)
	if err != nil {
		return nil, err
	}
	stored := metricspb.AsMetricSample(msg)
	if !stored.InBounds() {
		m.alerts.Emit(outOfBoundsTopic, stored)
	}
	return stored, nil
}

// GetSample returns the latest reading for metric, or nil, false when no
// reading was recorded yet.
func (m *Model) GetSample(metric metricspb.Metric, opts ...resource.ReadOption) (*metricspb.MetricSample, bool) {
	msg, ok := m.samples.Get(metric.String(), opts...)
	if !ok {
		return nil, false
	}
	return metricspb.AsMetricSample(msg), true
}

// ListSamples returns the latest reading of every metric that has one.
func (m *Model) ListSamples(opts ...resource.ReadOption) []*metricspb.MetricSample {
	msgs := m.samples.List(opts...)
	samples := make([]*metricspb.MetricSample, len(msgs))
	for i, msg := range msgs {
		samples[i] = metricspb.AsMetricSample(msg)
	}
	return samples
}

// PullSamples emits the latest reading of each metric as it changes.
// Restrict to a subset of metrics via WithInclude or the metrics arg of
// ModelServer.StreamMetricSamples.
func (m *Model) PullSamples(ctx context.Context, opts ...resource.ReadOption) <-chan *metricspb.MetricSample {
	out := make(chan *metricspb.MetricSample)
	changes := m.samples.Pull(ctx, opts...)

	go func() {
		defer close(out)
		for change := range changes {
			if change.NewValue == nil {
				continue
			}
			select {
			case out <- metricspb.AsMetricSample(change.NewValue):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// OnOutOfBounds notifies when a recorded sample falls outside its bounds.
// The returned done func unsubscribes, which also closes the channel.
func (m *Model) OnOutOfBounds(ctx context.Context) (alerts <-chan *metricspb.MetricSample, done func()) {
	on := m.alerts.On(outOfBoundsTopic)
	typed := make(chan *metricspb.MetricSample)
	go func() {
		defer close(typed)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-on:
				if !ok {
					return
				}
				select {
				case typed <- event.Args[0].(*metricspb.MetricSample):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return typed, func() {
		m.alerts.Off(outOfBoundsTopic, on)
	}
}
