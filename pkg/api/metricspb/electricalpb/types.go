package electricalpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
)

func getSample(m protoreflect.Message, fd protoreflect.FieldDescriptor) *metricspb.MetricSample {
	if !m.Has(fd) {
		return nil
	}
	return metricspb.AsMetricSample(m.Get(fd).Message().Interface())
}

func setSample(m protoreflect.Message, fd protoreflect.FieldDescriptor, s *metricspb.MetricSample) {
	if s == nil {
		m.Clear(fd)
		return
	}
	m.Set(fd, protoreflect.ValueOfMessage(s.ProtoReflect()))
}

// AcPhase holds the readings of a single AC phase.
type AcPhase struct {
	m protoreflect.Message
}

func NewAcPhase() *AcPhase {
	File()
	return &AcPhase{m: dynamicpb.NewMessage(acPhaseDesc)}
}

func (x *AcPhase) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(acPhaseDesc)
	}
	return x.m
}

func (x *AcPhase) Voltage() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.voltage)
}
func (x *AcPhase) Current() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.current)
}
func (x *AcPhase) ActivePower() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.activePower)
}
func (x *AcPhase) ReactivePower() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.reactivePower)
}
func (x *AcPhase) ApparentPower() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.apparentPower)
}
func (x *AcPhase) PowerFactor() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acPhaseFields.powerFactor)
}

func (x *AcPhase) SetVoltage(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.voltage, s)
	return x
}
func (x *AcPhase) SetCurrent(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.current, s)
	return x
}
func (x *AcPhase) SetActivePower(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.activePower, s)
	return x
}
func (x *AcPhase) SetReactivePower(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.reactivePower, s)
	return x
}
func (x *AcPhase) SetApparentPower(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.apparentPower, s)
	return x
}
func (x *AcPhase) SetPowerFactor(s *metricspb.MetricSample) *AcPhase {
	setSample(x.ProtoReflect(), acPhaseFields.powerFactor, s)
	return x
}

// Ac is the three phase AC state of a component.
type Ac struct {
	m protoreflect.Message
}

func NewAc() *Ac {
	return &Ac{m: dynamicpb.NewMessage(AcDescriptor())}
}

// AsAc wraps an existing message sharing the Ac descriptor. It panics when
// given a message of a different type.
func AsAc(msg proto.Message) *Ac {
	if msg == nil {
		return nil
	}
	if a, ok := msg.(*Ac); ok {
		return a
	}
	m := msg.ProtoReflect()
	if m.Descriptor() != AcDescriptor() {
		panic(fmt.Sprintf("electricalpb: cannot wrap %v as Ac", m.Descriptor().FullName()))
	}
	return &Ac{m: m}
}

func (x *Ac) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		x.m = dynamicpb.NewMessage(AcDescriptor())
	}
	return x.m
}

func (x *Ac) Frequency() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), acFields.frequency)
}

func (x *Ac) SetFrequency(s *metricspb.MetricSample) *Ac {
	setSample(x.ProtoReflect(), acFields.frequency, s)
	return x
}

func (x *Ac) phase(fd protoreflect.FieldDescriptor) *AcPhase {
	m := x.ProtoReflect()
	if !m.Has(fd) {
		return nil
	}
	return &AcPhase{m: m.Get(fd).Message()}
}

func (x *Ac) setPhase(fd protoreflect.FieldDescriptor, p *AcPhase) *Ac {
	m := x.ProtoReflect()
	if p == nil {
		m.Clear(fd)
		return x
	}
	m.Set(fd, protoreflect.ValueOfMessage(p.ProtoReflect()))
	return x
}

func (x *Ac) PhaseA() *AcPhase {
	if x == nil {
		return nil
	}
	return x.phase(acFields.phaseA)
}
func (x *Ac) PhaseB() *AcPhase {
	if x == nil {
		return nil
	}
	return x.phase(acFields.phaseB)
}
func (x *Ac) PhaseC() *AcPhase {
	if x == nil {
		return nil
	}
	return x.phase(acFields.phaseC)
}
func (x *Ac) Total() *AcPhase {
	if x == nil {
		return nil
	}
	return x.phase(acFields.total)
}
func (x *Ac) SetPhaseA(p *AcPhase) *Ac    { return x.setPhase(acFields.phaseA, p) }
func (x *Ac) SetPhaseB(p *AcPhase) *Ac    { return x.setPhase(acFields.phaseB, p) }
func (x *Ac) SetPhaseC(p *AcPhase) *Ac    { return x.setPhase(acFields.phaseC, p) }
func (x *Ac) SetTotal(p *AcPhase) *Ac     { return x.setPhase(acFields.total, p) }

// Dc is the DC state of a component.
type Dc struct {
	m protoreflect.Message
}

func NewDc() *Dc {
	return &Dc{m: dynamicpb.NewMessage(DcDescriptor())}
}

// AsDc wraps an existing message sharing the Dc descriptor. It panics when
// given a message of a different type.
func AsDc(msg proto.Message) *Dc {
	if msg == nil {
		return nil
	}
	if d, ok := msg.(*Dc); ok {
		return d
	}
	m := msg.ProtoReflect()
	if m.Descriptor() != DcDescriptor() {
		panic(fmt.Sprintf("electricalpb: cannot wrap %v as Dc", m.Descriptor().FullName()))
	}
	return &Dc{m: m}
}

func (x *Dc) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		x.m = dynamicpb.NewMessage(DcDescriptor())
	}
	return x.m
}

func (x *Dc) Voltage() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), dcFields.voltage)
}
func (x *Dc) Current() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), dcFields.current)
}
func (x *Dc) Power() *metricspb.MetricSample {
	if x == nil {
		return nil
	}
	return getSample(x.ProtoReflect(), dcFields.power)
}

func (x *Dc) SetVoltage(s *metricspb.MetricSample) *Dc {
	setSample(x.ProtoReflect(), dcFields.voltage, s)
	return x
}
func (x *Dc) SetCurrent(s *metricspb.MetricSample) *Dc {
	setSample(x.ProtoReflect(), dcFields.current, s)
	return x
}
func (x *Dc) SetPower(s *metricspb.MetricSample) *Dc {
	setSample(x.ProtoReflect(), dcFields.power, s)
	return x
}
