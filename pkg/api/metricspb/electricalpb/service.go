package electricalpb

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

// ElectricalStream service stubs, hand written in the shape of
// protoc-gen-go-grpc output.

const (
	// ElectricalStreamName is the fully qualified service name.
	ElectricalStreamName = Package + ".ElectricalStream"

	methodGetAc    = "/" + ElectricalStreamName + "/GetAc"
	methodStreamAc = "/" + ElectricalStreamName + "/StreamAc"
	methodGetDc    = "/" + ElectricalStreamName + "/GetDc"
	methodStreamDc = "/" + ElectricalStreamName + "/StreamDc"
)

type GetAcRequest struct {
	m protoreflect.Message
}

func NewGetAcRequest() *GetAcRequest {
	File()
	return &GetAcRequest{m: dynamicpb.NewMessage(getAcRequestDesc)}
}

func (x *GetAcRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(getAcRequestDesc)
	}
	return x.m
}

func (x *GetAcRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), getAcReadMask)
}

func (x *GetAcRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *GetAcRequest {
	schema.SetFieldMask(x.ProtoReflect(), getAcReadMask, mask)
	return x
}

type StreamAcRequest struct {
	m protoreflect.Message
}

func NewStreamAcRequest() *StreamAcRequest {
	File()
	return &StreamAcRequest{m: dynamicpb.NewMessage(streamAcRequestDesc)}
}

func (x *StreamAcRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(streamAcRequestDesc)
	}
	return x.m
}

func (x *StreamAcRequest) UpdatesOnly() bool {
	if x == nil {
		return false
	}
	return x.ProtoReflect().Get(streamAcUpdatesOnly).Bool()
}

func (x *StreamAcRequest) SetUpdatesOnly(updatesOnly bool) *StreamAcRequest {
	x.ProtoReflect().Set(streamAcUpdatesOnly, protoreflect.ValueOfBool(updatesOnly))
	return x
}

type GetDcRequest struct {
	m protoreflect.Message
}

func NewGetDcRequest() *GetDcRequest {
	File()
	return &GetDcRequest{m: dynamicpb.NewMessage(getDcRequestDesc)}
}

func (x *GetDcRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(getDcRequestDesc)
	}
	return x.m
}

func (x *GetDcRequest) ReadMask() *fieldmaskpb.FieldMask {
	if x == nil {
		return nil
	}
	return schema.GetFieldMask(x.ProtoReflect(), getDcReadMask)
}

func (x *GetDcRequest) SetReadMask(mask *fieldmaskpb.FieldMask) *GetDcRequest {
	schema.SetFieldMask(x.ProtoReflect(), getDcReadMask, mask)
	return x
}

type StreamDcRequest struct {
	m protoreflect.Message
}

func NewStreamDcRequest() *StreamDcRequest {
	File()
	return &StreamDcRequest{m: dynamicpb.NewMessage(streamDcRequestDesc)}
}

func (x *StreamDcRequest) ProtoReflect() protoreflect.Message {
	if x.m == nil {
		File()
		x.m = dynamicpb.NewMessage(streamDcRequestDesc)
	}
	return x.m
}

func (x *StreamDcRequest) UpdatesOnly() bool {
	if x == nil {
		return false
	}
	return x.ProtoReflect().Get(streamDcUpdatesOnly).Bool()
}

func (x *StreamDcRequest) SetUpdatesOnly(updatesOnly bool) *StreamDcRequest {
	x.ProtoReflect().Set(streamDcUpdatesOnly, protoreflect.ValueOfBool(updatesOnly))
	return x
}

type ElectricalStreamClient interface {
	// GetAc returns the current AC state.
	GetAc(ctx context.Context, in *GetAcRequest, opts ...grpc.CallOption) (*Ac, error)
	// StreamAc streams AC state changes.
	StreamAc(ctx context.Context, in *StreamAcRequest, opts ...grpc.CallOption) (ElectricalStream_StreamAcClient, error)
	// GetDc returns the current DC state.
	GetDc(ctx context.Context, in *GetDcRequest, opts ...grpc.CallOption) (*Dc, error)
	// StreamDc streams DC state changes.
	StreamDc(ctx context.Context, in *StreamDcRequest, opts ...grpc.CallOption) (ElectricalStream_StreamDcClient, error)
}

type electricalStreamClient struct {
	cc grpc.ClientConnInterface
}

func NewElectricalStreamClient(cc grpc.ClientConnInterface) ElectricalStreamClient {
	File()
	return &electricalStreamClient{cc}
}

func (c *electricalStreamClient) GetAc(ctx context.Context, in *GetAcRequest, opts ...grpc.CallOption) (*Ac, error) {
	out := NewAc()
	if err := c.cc.Invoke(ctx, methodGetAc, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *electricalStreamClient) StreamAc(ctx context.Context, in *StreamAcRequest, opts ...grpc.CallOption) (ElectricalStream_StreamAcClient, error) {
	stream, err := c.cc.NewStream(ctx, &ElectricalStreamServiceDesc.Streams[0], methodStreamAc, opts...)
	if err != nil {
		return nil, err
	}
	x := &electricalStreamStreamAcClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *electricalStreamClient) GetDc(ctx context.Context, in *GetDcRequest, opts ...grpc.CallOption) (*Dc, error) {
	out := NewDc()
	if err := c.cc.Invoke(ctx, methodGetDc, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *electricalStreamClient) StreamDc(ctx context.Context, in *StreamDcRequest, opts ...grpc.CallOption) (ElectricalStream_StreamDcClient, error) {
	stream, err := c.cc.NewStream(ctx, &ElectricalStreamServiceDesc.Streams[1], methodStreamDc, opts...)
	if err != nil {
		return nil, err
	}
	x := &electricalStreamStreamDcClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ElectricalStream_StreamAcClient interface {
	Recv() (*Ac, error)
	grpc.ClientStream
}

type electricalStreamStreamAcClient struct {
	grpc.ClientStream
}

func (x *electricalStreamStreamAcClient) Recv() (*Ac, error) {
	m := NewAc()
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ElectricalStream_StreamDcClient interface {
	Recv() (*Dc, error)
	grpc.ClientStream
}

type electricalStreamStreamDcClient struct {
	grpc.ClientStream
}

func (x *electricalStreamStreamDcClient) Recv() (*Dc, error) {
	m := NewDc()
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ElectricalStreamServer interface {
	GetAc(context.Context, *GetAcRequest) (*Ac, error)
	StreamAc(*StreamAcRequest, ElectricalStream_StreamAcServer) error
	GetDc(context.Context, *GetDcRequest) (*Dc, error)
	StreamDc(*StreamDcRequest, ElectricalStream_StreamDcServer) error
}

// UnimplementedElectricalStreamServer can be embedded for forward
// compatible implementations.
type UnimplementedElectricalStreamServer struct{}

func (UnimplementedElectricalStreamServer) GetAc(context.Context, *GetAcRequest) (*Ac, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAc not implemented")
}

func (UnimplementedElectricalStreamServer) StreamAc(*StreamAcRequest, ElectricalStream_StreamAcServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamAc not implemented")
}

func (UnimplementedElectricalStreamServer) GetDc(context.Context, *GetDcRequest) (*Dc, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDc not implemented")
}

func (UnimplementedElectricalStreamServer) StreamDc(*StreamDcRequest, ElectricalStream_StreamDcServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamDc not implemented")
}

type ElectricalStream_StreamAcServer interface {
	Send(*Ac) error
	grpc.ServerStream
}

type electricalStreamStreamAcServer struct {
	grpc.ServerStream
}

func (x *electricalStreamStreamAcServer) Send(m *Ac) error {
	return x.ServerStream.SendMsg(m)
}

type ElectricalStream_StreamDcServer interface {
	Send(*Dc) error
	grpc.ServerStream
}

type electricalStreamStreamDcServer struct {
	grpc.ServerStream
}

func (x *electricalStreamStreamDcServer) Send(m *Dc) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterElectricalStreamServer(s grpc.ServiceRegistrar, srv ElectricalStreamServer) {
	File()
	s.RegisterService(&ElectricalStreamServiceDesc, srv)
}

func getAcHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := NewGetAcRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElectricalStreamServer).GetAc(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetAc,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ElectricalStreamServer).GetAc(ctx, req.(*GetAcRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getDcHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := NewGetDcRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElectricalStreamServer).GetDc(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetDc,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ElectricalStreamServer).GetDc(ctx, req.(*GetDcRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func streamAcHandler(srv any, stream grpc.ServerStream) error {
	in := NewStreamAcRequest()
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ElectricalStreamServer).StreamAc(in, &electricalStreamStreamAcServer{stream})
}

func streamDcHandler(srv any, stream grpc.ServerStream) error {
	in := NewStreamDcRequest()
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ElectricalStreamServer).StreamDc(in, &electricalStreamStreamDcServer{stream})
}

// ElectricalStreamServiceDesc is the grpc.ServiceDesc for the
// ElectricalStream service.
var ElectricalStreamServiceDesc = grpc.ServiceDesc{
	ServiceName: ElectricalStreamName,
	HandlerType: (*ElectricalStreamServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAc",
			Handler:    getAcHandler,
		},
		{
			MethodName: "GetDc",
			Handler:    getDcHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamAc",
			Handler:       streamAcHandler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamDc",
			Handler:       streamDcHandler,
			ServerStreams: true,
		},
	},
	Metadata: FilePath,
}
