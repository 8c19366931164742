package componentspb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ComponentRegistry service stubs. These follow the shape protoc-gen-go-grpc
// would emit so servers and clients compose with the wider grpc ecosystem.

const (
	// ComponentRegistryName is the fully qualified service name.
	ComponentRegistryName = Package + ".ComponentRegistry"

	methodGetComponent    = "/" + ComponentRegistryName + "/GetComponent"
	methodListComponents  = "/" + ComponentRegistryName + "/ListComponents"
	methodWatchComponents = "/" + ComponentRegistryName + "/WatchComponents"
)

type ComponentRegistryClient interface {
	// GetComponent returns the component with the given id.
	GetComponent(ctx context.Context, in *GetComponentRequest, opts ...grpc.CallOption) (*Component, error)
	// ListComponents pages through all components known to the registry.
	ListComponents(ctx context.Context, in *ListComponentsRequest, opts ...grpc.CallOption) (*ListComponentsResponse, error)
	// WatchComponents streams changes to the registry, starting with the
	// current contents unless updates_only is set.
	WatchComponents(ctx context.Context, in *WatchComponentsRequest, opts ...grpc.CallOption) (ComponentRegistry_WatchComponentsClient, error)
}

type componentRegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewComponentRegistryClient(cc grpc.ClientConnInterface) ComponentRegistryClient {
	File()
	return &componentRegistryClient{cc}
}

func (c *componentRegistryClient) GetComponent(ctx context.Context, in *GetComponentRequest, opts ...grpc.CallOption) (*Component, error) {
	out := NewComponent()
	if err := c.cc.Invoke(ctx, methodGetComponent, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *componentRegistryClient) ListComponents(ctx context.Context, in *ListComponentsRequest, opts ...grpc.CallOption) (*ListComponentsResponse, error) {
	out := NewListComponentsResponse()
	if err := c.cc.Invoke(ctx, methodListComponents, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *componentRegistryClient) WatchComponents(ctx context.Context, in *WatchComponentsRequest, opts ...grpc.CallOption) (ComponentRegistry_WatchComponentsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ComponentRegistryServiceDesc.Streams[0], methodWatchComponents, opts...)
	if err != nil {
		return nil, err
	}
	x := &componentRegistryWatchComponentsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ComponentRegistry_WatchComponentsClient interface {
	Recv() (*WatchComponentsResponse, error)
	grpc.ClientStream
}

type componentRegistryWatchComponentsClient struct {
	grpc.ClientStream
}

func (x *componentRegistryWatchComponentsClient) Recv() (*WatchComponentsResponse, error) {
	m := NewWatchComponentsResponse()
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ComponentRegistryServer interface {
	GetComponent(context.Context, *GetComponentRequest) (*Component, error)
	ListComponents(context.Context, *ListComponentsRequest) (*ListComponentsResponse, error)
	WatchComponents(*WatchComponentsRequest, ComponentRegistry_WatchComponentsServer) error
}

// UnimplementedComponentRegistryServer can be embedded for forward
// compatible implementations.
type UnimplementedComponentRegistryServer struct{}

func (UnimplementedComponentRegistryServer) GetComponent(context.Context, *GetComponentRequest) (*Component, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComponent not implemented")
}

func (UnimplementedComponentRegistryServer) ListComponents(context.Context, *ListComponentsRequest) (*ListComponentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListComponents not implemented")
}

func (UnimplementedComponentRegistryServer) WatchComponents(*WatchComponentsRequest, ComponentRegistry_WatchComponentsServer) error {
	return status.Errorf(codes.Unimplemented, "method WatchComponents not implemented")
}

type ComponentRegistry_WatchComponentsServer interface {
	Send(*WatchComponentsResponse) error
	grpc.ServerStream
}

type componentRegistryWatchComponentsServer struct {
	grpc.ServerStream
}

func (x *componentRegistryWatchComponentsServer) Send(m *WatchComponentsResponse) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterComponentRegistryServer(s grpc.ServiceRegistrar, srv ComponentRegistryServer) {
	File()
	s.RegisterService(&ComponentRegistryServiceDesc, srv)
}

func getComponentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := NewGetComponentRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComponentRegistryServer).GetComponent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodGetComponent,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ComponentRegistryServer).GetComponent(ctx, req.(*GetComponentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listComponentsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := NewListComponentsRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComponentRegistryServer).ListComponents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: methodListComponents,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ComponentRegistryServer).ListComponents(ctx, req.(*ListComponentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func watchComponentsHandler(srv any, stream grpc.ServerStream) error {
	in := NewWatchComponentsRequest()
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ComponentRegistryServer).WatchComponents(in, &componentRegistryWatchComponentsServer{stream})
}

// ComponentRegistryServiceDesc is the grpc.ServiceDesc for the
// ComponentRegistry service.
var ComponentRegistryServiceDesc = grpc.ServiceDesc{
	ServiceName: ComponentRegistryName,
	HandlerType: (*ComponentRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetComponent",
			Handler:    getComponentHandler,
		},
		{
			MethodName: "ListComponents",
			Handler:    listComponentsHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchComponents",
			Handler:       watchComponentsHandler,
			ServerStreams: true,
		},
	},
	Metadata: FilePath,
}
