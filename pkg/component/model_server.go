package component

import (
	"context"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/masks"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// ModelServer exposes Model as a componentspb.ComponentRegistryServer.
type ModelServer struct {
	componentspb.UnimplementedComponentRegistryServer
	model *Model
}

func NewModelServer(model *Model) *ModelServer {
	return &ModelServer{model: model}
}

func (m *ModelServer) Register(server grpc.ServiceRegistrar) {
	componentspb.RegisterComponentRegistryServer(server, m)
}

func (m *ModelServer) GetComponent(_ context.Context, request *componentspb.GetComponentRequest) (*componentspb.Component, error) {
	c, ok := m.model.GetComponent(request.Id(), resource.WithReadMask(request.ReadMask()))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "component %d not known", request.Id())
	}
	return c, nil
}

func (m *ModelServer) ListComponents(_ context.Context, request *componentspb.ListComponentsRequest) (*componentspb.ListComponentsResponse, error) {
	lastId, err := decodePageToken(request.PageToken())
	if err != nil {
		return nil, err
	}
	if request.PageSize() < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "page_size %d is negative", request.PageSize())
	}
	pageSize := capPageSize(int(request.PageSize()))

	all := m.model.ListComponents()
	// List returns id order already, Search relies on it
	nextIndex := 0
	if lastId != 0 {
		nextIndex = sort.Search(len(all), func(i int) bool {
			return all[i].Id() > lastId
		})
	}

	result := componentspb.NewListComponentsResponse().
		SetTotalSize(int32(len(all)))
	upperBound := nextIndex + pageSize
	if upperBound >= len(all) {
		upperBound = len(all)
	} else {
		result.SetNextPageToken(encodePageToken(all[upperBound-1].Id()))
	}

	mask := masks.NewResponseFilter(masks.WithFieldMask(request.ReadMask()))
	for _, c := range all[nextIndex:upperBound] {
		result.AddComponents(componentspb.AsComponent(mask.FilterClone(c)))
	}
	return result, nil
}

func (m *ModelServer) WatchComponents(request *componentspb.WatchComponentsRequest, server componentspb.ComponentRegistry_WatchComponentsServer) error {
	opts := []resource.ReadOption{
		resource.WithReadMask(request.ReadMask()),
		resource.WithUpdatesOnly(request.UpdatesOnly()),
	}
	for change := range m.model.PullComponents(server.Context(), opts...) {
		if err := server.Send(change); err != nil {
			return err
		}
	}
	return nil
}
