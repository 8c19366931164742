// Package electricalpb declares the
// microgrid/api/common/v1/metrics/electrical.proto schema: AC and DC
// electrical readings composed from metric samples, and the
// ElectricalStream service.
//
// The schema imports metrics.proto, so loading this file also loads the
// metrics schema.
package electricalpb

import (
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

const (
	// FilePath is the schema path this package registers itself under.
	FilePath = "microgrid/api/common/v1/metrics/electrical.proto"
	// Package is the proto package the schema declares.
	Package = "microgrid.api.common.v1.metrics"
)

const (
	fqn    = "." + Package
	sample = ".microgrid.api.common.v1.MetricSample"
)

var (
	registerOnce sync.Once
	file         protoreflect.FileDescriptor
	registerErr  error
)

// File registers the electrical schema (and its metrics dependency) on
// first use and returns its descriptor.
func File() protoreflect.FileDescriptor {
	registerOnce.Do(func() {
		metricspb.File() // the import must be registered first
		file, registerErr = schema.Default.Register(fileProto())
		if registerErr == nil {
			cacheDescriptors()
		}
	})
	if registerErr != nil {
		panic(registerErr)
	}
	return file
}

func fileProto() *descriptorpb.FileDescriptorProto {
	f := schema.File(FilePath, Package,
		metricspb.FilePath,
		"google/protobuf/field_mask.proto",
	)
	f.MessageType = []*descriptorpb.DescriptorProto{
		schema.Message("AcPhase",
			schema.MessageField("voltage", 1, sample),
			schema.MessageField("current", 2, sample),
			schema.MessageField("active_power", 3, sample),
			schema.MessageField("reactive_power", 4, sample),
			schema.MessageField("apparent_power", 5, sample),
			schema.MessageField("power_factor", 6, sample),
		),
		schema.Message("Ac",
			schema.MessageField("frequency", 1, sample),
			schema.MessageField("phase_a", 2, fqn+".AcPhase"),
			schema.MessageField("phase_b", 3, fqn+".AcPhase"),
			schema.MessageField("phase_c", 4, fqn+".AcPhase"),
			schema.MessageField("total", 5, fqn+".AcPhase"),
		),
		schema.Message("Dc",
			schema.MessageField("voltage", 1, sample),
			schema.MessageField("current", 2, sample),
			schema.MessageField("power", 3, sample),
		),
		schema.Message("GetAcRequest",
			schema.MessageField("read_mask", 1, ".google.protobuf.FieldMask"),
		),
		schema.Message("StreamAcRequest",
			schema.BoolField("updates_only", 1),
		),
		schema.Message("GetDcRequest",
			schema.MessageField("read_mask", 1, ".google.protobuf.FieldMask"),
		),
		schema.Message("StreamDcRequest",
			schema.BoolField("updates_only", 1),
		),
	}
	f.Service = []*descriptorpb.ServiceDescriptorProto{
		schema.Service("ElectricalStream",
			schema.Method("GetAc", fqn+".GetAcRequest", fqn+".Ac"),
			schema.ServerStream(schema.Method("StreamAc", fqn+".StreamAcRequest", fqn+".Ac")),
			schema.Method("GetDc", fqn+".GetDcRequest", fqn+".Dc"),
			schema.ServerStream(schema.Method("StreamDc", fqn+".StreamDcRequest", fqn+".Dc")),
		),
	}
	return f
}

var (
	acPhaseDesc   protoreflect.MessageDescriptor
	acPhaseFields struct{ voltage, current, activePower, reactivePower, apparentPower, powerFactor protoreflect.FieldDescriptor }

	acDesc   protoreflect.MessageDescriptor
	acFields struct{ frequency, phaseA, phaseB, phaseC, total protoreflect.FieldDescriptor }

	dcDesc   protoreflect.MessageDescriptor
	dcFields struct{ voltage, current, power protoreflect.FieldDescriptor }

	getAcRequestDesc    protoreflect.MessageDescriptor
	getAcReadMask       protoreflect.FieldDescriptor
	streamAcRequestDesc protoreflect.MessageDescriptor
	streamAcUpdatesOnly protoreflect.FieldDescriptor
	getDcRequestDesc    protoreflect.MessageDescriptor
	getDcReadMask       protoreflect.FieldDescriptor
	streamDcRequestDesc protoreflect.MessageDescriptor
	streamDcUpdatesOnly protoreflect.FieldDescriptor
)

func cacheDescriptors() {
	messages := file.Messages()

	acPhaseDesc = messages.ByName("AcPhase")
	acPhaseFields.voltage = schema.MustField(acPhaseDesc, "voltage")
	acPhaseFields.current = schema.MustField(acPhaseDesc, "current")
	acPhaseFields.activePower = schema.MustField(acPhaseDesc, "active_power")
	acPhaseFields.reactivePower = schema.MustField(acPhaseDesc, "reactive_power")
	acPhaseFields.apparentPower = schema.MustField(acPhaseDesc, "apparent_power")
	acPhaseFields.powerFactor = schema.MustField(acPhaseDesc, "power_factor")

	acDesc = messages.ByName("Ac")
	acFields.frequency = schema.MustField(acDesc, "frequency")
	acFields.phaseA = schema.MustField(acDesc, "phase_a")
	acFields.phaseB = schema.MustField(acDesc, "phase_b")
	acFields.phaseC = schema.MustField(acDesc, "phase_c")
	acFields.total = schema.MustField(acDesc, "total")

	dcDesc = messages.ByName("Dc")
	dcFields.voltage = schema.MustField(dcDesc, "voltage")
	dcFields.current = schema.MustField(dcDesc, "current")
	dcFields.power = schema.MustField(dcDesc, "power")

	getAcRequestDesc = messages.ByName("GetAcRequest")
	getAcReadMask = schema.MustField(getAcRequestDesc, "read_mask")
	streamAcRequestDesc = messages.ByName("StreamAcRequest")
	streamAcUpdatesOnly = schema.MustField(streamAcRequestDesc, "updates_only")
	getDcRequestDesc = messages.ByName("GetDcRequest")
	getDcReadMask = schema.MustField(getDcRequestDesc, "read_mask")
	streamDcRequestDesc = messages.ByName("StreamDcRequest")
	streamDcUpdatesOnly = schema.MustField(streamDcRequestDesc, "updates_only")
}

// AcDescriptor returns the message descriptor for Ac.
func AcDescriptor() protoreflect.MessageDescriptor {
	File()
	return acDesc
}

// DcDescriptor returns the message descriptor for Dc.
func DcDescriptor() protoreflect.MessageDescriptor {
	File()
	return dcDesc
}
