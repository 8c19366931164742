package metricspb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/microgrid-os/mg-golang/pkg/api/schema"
)

// MetricsStream service stubs, hand written in the shape of
// protoc-gen-go-grpc output.

const (
	// MetricsStreamName is the fully qualified service name.
	MetricsStreamName = Package + ".MetricsStream"

	methodGetMetricSample     = "/" + MetricsStreamName + "/GetMetricSample"
	methodStreamMetricSamples = "/" + MetricsStreamName + "/StreamMetricSamples"
)

type GetMetricSampleRequest struct {
	m protoreflect.Message
}

func NewGetMetricSampleRequest() *GetMetricSampleRequest {
	File()
	return &GetMetricSampleRequest{m: dynamicpb.NewMessage(getRequestDesc)}
}

func (x *GetMetricSampleRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(getRequestDesc)
	}
	return x.m
}

func (x *GetMetricSampleRequest) Metric() Metric {
	if x == nil {
		return MetricUnspecified
	}
	return Metric(x.ProtoReflect().Get(getRequestFields.metric).Enum())
}

func (x *GetMetricSampleRequest) SetMetric(m Metric) *GetMetricSampleRequest {
	x.ProtoReflect().Set(getRequestFields.metric, protoreflect.ValueOfEnum(protoreflect.EnumNumber(m)))
	return x
}

func (x *GetMetricSampleRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), getRequestFields.readMask)
}

func (x *GetMetricSampleRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *GetMetricSampleRequest {
	schema.SetFieldMask(x.ProtoReflect(), getRequestFields.readMask, mask)
	return x
}

type StreamMetricSamplesRequest struct {
	m protoreflect.Message
}

func NewStreamMetricSamplesRequest() *StreamMetricSamplesRequest {
	File()
	return &StreamMetricSamplesRequest{m: dynamicpb.NewMessage(streamRequestDesc)}
}

func (x *StreamMetricSamplesRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(streamRequestDesc)
	}
	return x.m
}

func (x *StreamMetricSamplesRequest) Metrics() []Metric {
	if x == nil {
		return nil
	}
	list := x.ProtoReflect().Get(streamRequestFields.metrics).List()
	out := make([]Metric, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, Metric(list.Get(i).Enum()))
	}
	return out
}

func (x *StreamMetricSamplesRequest) AddMetrics(metrics ...Metric) *StreamMetricSamplesRequest {
	list := x.ProtoReflect().Mutable(streamRequestFields.metrics).List()
	for _, m := range metrics {
		list.Append(protoreflect.ValueOfEnum(protoreflect.EnumNumber(m)))
	}
	return x
}

func (x *StreamMetricSamplesRequest) UpdatesOnly() bool {
	if x == nil {
		return false
	}
	return x.ProtoReflect().Get(streamRequestFields.updatesOnly).Bool()
}

func (x *StreamMetricSamplesRequest) SetUpdatesOnly(updatesOnly bool) *StreamMetricSamplesRequest {
	x.ProtoReflect().Set(streamRequestFields.updatesOnly, protoreflect.ValueOfBool(updatesOnly))
	return x
}

type MetricsStreamClient interface {
	// GetMetricSample returns the latest sample of the requested metric.
	GetMetricSample(ctx context.Context, in *GetMetricSampleRequest, opts ...grpc.CallOption) (*MetricSample, error)
	// StreamMetricSamples streams samples for the requested metrics as they
	// are recorded.
	StreamMetricSamples(ctx context.Context, in *StreamMetricSamplesRequest, opts ...grpc.CallOption) (MetricsStream_StreamMetricSamplesClient, error)
}

type metricsStreamClient struct {
	cc grpc.ClientConnInterface
}

func NewMetricsStreamClient(cc grpc.ClientConnInterface) MetricsStreamClient {
	File()
	return &metricsStreamClient{cc}
}

func (c *metricsStreamClient) GetMetricSample(ctx context.Context, in *GetMetricSampleRequest, opts ...grpc.CallOption) (*MetricSample, error) {
	out := NewMetricSample()
	if err := c.cc.Invoke(ctx, methodGetMetricSample, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *metricsStreamClient) StreamMetricSamples(ctx context.Context, in *StreamMetricSamplesRequest, opts ...grpc.CallOption) (MetricsStream_StreamMetricSamplesClient, error) {
	stream, err := c.cc.NewStream(ctx, &MetricsStreamServiceDesc.Streams[0], methodStreamMetricSamples, opts...)
	if err != nil {
		return nil, err
	}
	x := &metricsStreamStreamMetricSamplesClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type MetricsStream_StreamMetricSamplesClient interface {
	Recv() (*MetricSample, error)
	grpc.ClientStream
}

type metricsStreamStreamMetricSamplesClient struct {
	grpc.ClientStream
}

func (x *metricsStreamStreamMetricSamplesClient) Recv() (*MetricSample, error) {
	m := NewMetricSample()
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type MetricsStreamServer interface {
	GetMetricSample(context.Context, *GetMetricSampleRequest) (*MetricSample, error)
	StreamMetricSamples(*StreamMetricSamplesRequest, MetricsStream_StreamMetricSamplesServer) error
}

// UnimplementedMetricsStreamServer can be embedded for forward compatible
// implementations.
type UnimplementedMetricsStreamServer struct{}

func (UnimplementedMetricsStreamServer) GetMetricSample(context.Context, *GetMetricSampleRequest) (*MetricSample, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMetricSample not implemented")
}

func (UnimplementedMetricsStreamServer) StreamMetricSamples(*StreamMetricSamplesRequest, MetricsStream_StreamMetricSamplesServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamMetricSamples not implemented")
}

type MetricsStream_StreamMetricSamplesServer interface {
	Send(*MetricSample) error
	grpc.ServerStream
}

type metricsStreamStreamMetricSamplesServer struct {
	grpc.ServerStream
}

func (x *metricsStreamStreamMetricSamplesServer) Send(m *MetricSample) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterMetricsStreamServer(s grpc.ServiceRegistrar, srv MetricsStreamServer) {
	File()
	s.RegisterService(&MetricsStreamServiceDesc, srv)
}

func getMetricSampleHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := NewGetMetricSampleRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MetricsStreamServer).GetMetricSample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetMetricSample,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MetricsStreamServer).GetMetricSample(ctx, req.(*GetMetricSampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func streamMetricSamplesHandler(srv any, stream grpc.ServerStream) error {
	in := NewStreamMetricSamplesRequest()
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(MetricsStreamServer).StreamMetricSamples(in, &metricsStreamStreamMetricSamplesServer{stream})
}

// MetricsStreamServiceDesc is the grpc.ServiceDesc for the MetricsStream
// service.
var MetricsStreamServiceDesc = grpc.ServiceDesc{
	ServiceName: MetricsStreamName,
	HandlerType: (*MetricsStreamServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMetricSample",
			Handler:    getMetricSampleHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamMetricSamples",
			Handler:       streamMetricSamplesHandler,
			ServerStreams: true,
		},
	},
	Metadata: FilePath,
}
