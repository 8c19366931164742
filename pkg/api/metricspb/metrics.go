// Package metricspb declares the microgrid/api/common/v1/metrics.proto
// schema: metric identifiers, sampled readings with system bounds, and the
// MetricsStream service for reading them live.
package metricspb

import (
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

const (
	// FilePath is the schema path this package registers itself under.
	FilePath = "microgrid/api/common/v1/metrics.proto"
	// Package is the proto package the schema declares.
	Package = "microgrid.api.common.v1"
)

const fqn = "." + Package

var (
	registerOnce sync.Once
	file         protoreflect.FileDescriptor
	registerErr  error
)

// File registers the metrics schema on first use and returns its descriptor.
func File() protoreflect.FileDescriptor {
	registerOnce.Do(func() {
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
		"google/protobuf/timestamp.proto",
		"google/protobuf/field_mask.proto",
	)
	f.EnumType = []*descriptorpb.EnumDescriptorProto{
		schema.Enum("Metric",
			schema.EnumValue("METRIC_UNSPECIFIED", 0),
			schema.EnumValue("METRIC_DC_VOLTAGE", 1),
			schema.EnumValue("METRIC_DC_CURRENT", 2),
			schema.EnumValue("METRIC_DC_POWER", 3),
			schema.EnumValue("METRIC_AC_FREQUENCY", 4),
			schema.EnumValue("METRIC_AC_VOLTAGE", 5),
			schema.EnumValue("METRIC_AC_CURRENT", 6),
			schema.EnumValue("METRIC_AC_ACTIVE_POWER", 7),
			schema.EnumValue("METRIC_AC_REACTIVE_POWER", 8),
			schema.EnumValue("METRIC_AC_APPARENT_POWER", 9),
			schema.EnumValue("METRIC_AC_POWER_FACTOR", 10),
			schema.EnumValue("METRIC_BATTERY_SOC", 11),
			schema.EnumValue("METRIC_TEMPERATURE", 12),
		),
	}
	f.MessageType = []*descriptorpb.DescriptorProto{
		schema.Message("Bounds",
			schema.DoubleField("lower", 1),
			schema.DoubleField("upper", 2),
		),
		schema.Message("MetricSample",
			schema.MessageField("sampled_at", 1, ".google.protobuf.Timestamp"),
			schema.EnumField("metric", 2, fqn+".Metric"),
			schema.DoubleField("value", 3),
			schema.Repeated(schema.MessageField("bounds", 4, fqn+".Bounds")),
		),
		schema.Message("AggregatedMetricSample",
			schema.MessageField("sampled_at", 1, ".google.protobuf.Timestamp"),
			schema.EnumField("metric", 2, fqn+".Metric"),
			schema.DoubleField("avg", 3),
			schema.DoubleField("min", 4),
			schema.DoubleField("max", 5),
			schema.Repeated(schema.DoubleField("raw_values", 6)),
		),
		schema.Message("GetMetricSampleRequest",
			schema.EnumField("metric", 1, fqn+".Metric"),
			schema.MessageField("read_mask", 2, ".google.protobuf.FieldMask"),
		),
		schema.Message("StreamMetricSamplesRequest",
			schema.Repeated(schema.EnumField("metrics", 1, fqn+".Metric")),
			schema.BoolField("updates_only", 2),
		),
	}
	f.Service = []*descriptorpb.ServiceDescriptorProto{
		schema.Service("MetricsStream",
			schema.Method("GetMetricSample", fqn+".GetMetricSampleRequest", fqn+".MetricSample"),
			schema.ServerStream(schema.Method("StreamMetricSamples", fqn+".StreamMetricSamplesRequest", fqn+".MetricSample")),
		),
	}
	return f
}

var (
	boundsDesc   protoreflect.MessageDescriptor
	boundsFields struct{ lower, upper protoreflect.FieldDescriptor }

	sampleDesc   protoreflect.MessageDescriptor
	sampleFields struct{ sampledAt, metric, value, bounds protoreflect.FieldDescriptor }

	aggDesc   protoreflect.MessageDescriptor
	aggFields struct{ sampledAt, metric, avg, min, max, rawValues protoreflect.FieldDescriptor }

	getRequestDesc   protoreflect.MessageDescriptor
	getRequestFields struct{ metric, readMask protoreflect.FieldDescriptor }

	streamRequestDesc   protoreflect.MessageDescriptor
	streamRequestFields struct{ metrics, updatesOnly protoreflect.FieldDescriptor }

	metricEnum protoreflect.EnumDescriptor
)

func cacheDescriptors() {
	messages := file.Messages()

	boundsDesc = messages.ByName("Bounds")
	boundsFields.lower = schema.MustField(boundsDesc, "lower")
	boundsFields.upper = schema.MustField(boundsDesc, "upper")

	sampleDesc = messages.ByName("MetricSample")
	sampleFields.sampledAt = schema.MustField(sampleDesc, "sampled_at")
	sampleFields.metric = schema.MustField(sampleDesc, "metric")
	sampleFields.value = schema.MustField(sampleDesc, "value")
	sampleFields.bounds = schema.MustField(sampleDesc, "bounds")

	aggDesc = messages.ByName("AggregatedMetricSample")
	aggFields.sampledAt = schema.MustField(aggDesc, "sampled_at")
	aggFields.metric = schema.MustField(aggDesc, "metric")
	aggFields.avg = schema.MustField(aggDesc, "avg")
	aggFields.min = schema.MustField(aggDesc, "min")
	aggFields.max = schema.MustField(aggDesc, "max")
	aggFields.rawValues = schema.MustField(aggDesc, "raw_values")

	getRequestDesc = messages.ByName("GetMetricSampleRequest")
	getRequestFields.metric = schema.MustField(getRequestDesc, "metric")
	getRequestFields.readMask = schema.MustField(getRequestDesc, "read_mask")

	streamRequestDesc = messages.ByName("StreamMetricSamplesRequest")
	streamRequestFields.metrics = schema.MustField(streamRequestDesc, "metrics")
	streamRequestFields.updatesOnly = schema.MustField(streamRequestDesc, "updates_only")

	metricEnum = file.Enums().ByName("Metric")
}

// MetricSampleDescriptor returns the message descriptor for MetricSample.
func MetricSampleDescriptor() protoreflect.MessageDescriptor {
	File()
	return sampleDesc
}
