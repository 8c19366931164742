package metricspb

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

// Metric identifies a kind of reading a component can report.
type Metric int32

const (
	MetricUnspecified     Metric = 0
	MetricDcVoltage       Metric = 1
	MetricDcCurrent       Metric = 2
	MetricDcPower         Metric = 3
	MetricAcFrequency     Metric = 4
	MetricAcVoltage       Metric = 5
	MetricAcCurrent       Metric = 6
	MetricAcActivePower   Metric = 7
	MetricAcReactivePower Metric = 8
	MetricAcApparentPower Metric = 9
	MetricAcPowerFactor   Metric = 10
	MetricBatterySoc      Metric = 11
	MetricTemperature     Metric = 12
)

func (m Metric) String() string {
	File()
	if v := metricEnum.Values().ByNumber(protoreflect.EnumNumber(m)); v != nil {
		return string(v.Name())
	}
	return fmt.Sprintf("%d", m)
}

// Bounds is an inclusive [lower, upper] limit pair the system applies to a
// metric, like the usable charge power window of a battery.
type Bounds struct {
	m protoreflect.Message
}

func NewBounds(lower, upper float64) *Bounds {
	File()
	b := &Bounds{m: dynamicpb.NewMessage(boundsDesc)}
	b.m.Set(boundsFields.lower, protoreflect.ValueOfFloat64(lower))
	b.m.Set(boundsFields.upper, protoreflect.ValueOfFloat64(upper))
	return b
}

func (x *Bounds) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(boundsDesc)
	}
	return x.m
}

func (x *Bounds) Lower() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(boundsFields.lower).Float()
}

func (x *Bounds) Upper() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(boundsFields.upper).Float()
}

// Contains reports whether v falls inside the bounds.
func (x *Bounds) Contains(v float64) bool {
	return v >= x.Lower() && v <= x.Upper()
}

// MetricSample is one reading of one metric at one point in time.
type MetricSample struct {
	m protoreflect.Message
}

func NewMetricSample() *MetricSample {
	return &MetricSample{m: dynamicpb.NewMessage(MetricSampleDescriptor())}
}

// AsMetricSample wraps an existing message sharing the MetricSample
// descriptor. It panics when given a message of a different type.
func AsMetricSample(msg proto.Message) *MetricSample {
	if msg == nil {
		return nil
	}
	if s, ok := msg.(*MetricSample); ok {
		return s
	}
	m := msg.ProtoReflect()
	if m.Descriptor() != MetricSampleDescriptor() {
		panic(fmt.Sprintf("metricspb: cannot wrap %v as MetricSample", m.Descriptor().FullName()))
	}
	return &MetricSample{m: m}
}

func (x *MetricSample) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		x.m = dynamicpb.NewMessage(MetricSampleDescriptor())
	}
	return x.m
}

func (x *MetricSample) SampledAt() time.Time {
	if x == nil {
		return time.Time{}
	}
	return schema.GetTime(x.ProtoReflect(), sampleFields.sampledAt)
}

func (x *MetricSample) SetSampledAt(t time.Time) *MetricSample {
	schema.SetTime(x.ProtoReflect(), sampleFields.sampledAt, t)
	return x
}

func (x *MetricSample) Metric() Metric {
	if x == nil {
		return MetricUnspecified
	}
	return Metric(x.ProtoReflect().Get(sampleFields.metric).Enum())
}

func (x *MetricSample) SetMetric(m Metric) *MetricSample {
	x.ProtoReflect().Set(sampleFields.metric, protoreflect.ValueOfEnum(protoreflect.EnumNumber(m)))
	return x
}

func (x *MetricSample) Value() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(sampleFields.value).Float()
}

func (x *MetricSample) SetValue(v float64) *MetricSample {
	x.ProtoReflect().Set(sampleFields.value, protoreflect.ValueOfFloat64(v))
	return x
}

func (x *MetricSample) Bounds() []*Bounds {
	if x == nil {
		return nil
	}
	list := x.ProtoReflect().Get(sampleFields.bounds).List()
	out := make([]*Bounds, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, &Bounds{m: list.Get(i).Message()})
	}
	return out
}

func (x *MetricSample) AddBounds(bounds ...*Bounds) *MetricSample {
	list := x.ProtoReflect().Mutable(sampleFields.bounds).List()
	for _, b := range bounds {
		list.Append(protoreflect.ValueOfMessage(b.ProtoReflect()))
	}
	return x
}

// InBounds reports whether the sample value falls inside every bound.
// A sample without bounds is always in bounds.
func (x *MetricSample) InBounds() bool {
	for _, b := range x.Bounds() {
		if !b.Contains(x.Value()) {
			return false
		}
	}
	return true
}

// AggregatedMetricSample summarises many raw readings of one metric over a
// sampling window.
type AggregatedMetricSample struct {
	m protoreflect.Message
}

func NewAggregatedMetricSample() *AggregatedMetricSample {
	File()
	return &AggregatedMetricSample{m: dynamicpb.NewMessage(aggDesc)}
}

func (x *AggregatedMetricSample) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(aggDesc)
	}
	return x.m
}

func (x *AggregatedMetricSample) SampledAt() time.Time {
	if x == nil {
		return time.Time{}
	}
	return schema.GetTime(x.ProtoReflect(), aggFields.sampledAt)
}

func (x *AggregatedMetricSample) SetSampledAt(t time.Time) *AggregatedMetricSample {
	schema.SetTime(x.ProtoReflect(), aggFields.sampledAt, t)
	return x
}

func (x *AggregatedMetricSample) Metric() Metric {
	if x == nil {
		return MetricUnspecified
	}
	return Metric(x.ProtoReflect().Get(aggFields.metric).Enum())
}

func (x *AggregatedMetricSample) SetMetric(m Metric) *AggregatedMetricSample {
	x.ProtoReflect().Set(aggFields.metric, protoreflect.ValueOfEnum(protoreflect.EnumNumber(m)))
	return x
}

func (x *AggregatedMetricSample) Avg() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(aggFields.avg).Float()
}

func (x *AggregatedMetricSample) Min() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(aggFields.min).Float()
}

func (x *AggregatedMetricSample) Max() float64 {
	if x == nil {
		return 0
	}
	return x.ProtoReflect().Get(aggFields.max).Float()
}

func (x *AggregatedMetricSample) RawValues() []float64 {
	if x == nil {
		return nil
	}
	list := x.ProtoReflect().Get(aggFields.rawValues).List()
	out := make([]float64, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Get(i).Float())
	}
	return out
}

// SetRawValues replaces the raw readings and recomputes avg, min and max.
func (x *AggregatedMetricSample) SetRawValues(values ...float64) *AggregatedMetricSample {
	m := x.ProtoReflect()
	list := m.Mutable(aggFields.rawValues).List()
	list.Truncate(0)
	var sum, low, high float64
	for i, v := range values {
		list.Append(protoreflect.ValueOfFloat64(v))
		sum += v
		if i == 0 || v < low {
			low = v
		}
		if i == 0 || v > high {
			high = v
		}
	}
	if len(values) > 0 {
		m.Set(aggFields.avg, protoreflect.ValueOfFloat64(sum/float64(len(values))))
		m.Set(aggFields.min, protoreflect.ValueOfFloat64(low))
		m.Set(aggFields.max, protoreflect.ValueOfFloat64(high))
	} else {
		m.Clear(aggFields.avg)
		m.Clear(aggFields.min)
		m.Clear(aggFields.max)
	}
	return x
}
