package electrical

import (
	"context"

	"google.golang.org/grpc"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// ModelServer exposes Model as an electricalpb.ElectricalStreamServer.
type ModelServer struct {
	electricalpb.UnimplementedElectricalStreamServer
	model *Model
}

func NewModelServer(model *Model) *ModelServer {
	return &ModelServer{model: model}
}

func (m *ModelServer) Register(server grpc.ServiceRegistrar) {
	electricalpb.RegisterElectricalStreamServer(server, m)
}

func (m *ModelServer) GetAc(_ context.Context, request *electricalpb.GetAcRequest) (*electricalpb.Ac, error) {
	return m.model.Ac(resource.WithReadMask(request.ReadMask())), nil
}

func (m *ModelServer) StreamAc(request *electricalpb.StreamAcRequest, server electricalpb.ElectricalStream_StreamAcServer) error {
	opts := []resource.ReadOption{
		resource.WithUpdatesOnly(request.UpdatesOnly()),
	}
	for change := range m.model.PullAc(server.Context(), opts...) {
		if err := server.Send(change.Value); err != nil {
			return err
		}
	}
	return nil
}

func (m *ModelServer) GetDc(_ context.Context, request *electricalpb.GetDcRequest) (*electricalpb.Dc, error) {
	return m.model.Dc(resource.WithReadMask(request.ReadMask())), nil
}

func (m *ModelServer) StreamDc(request *electricalpb.StreamDcRequest, server electricalpb.ElectricalStream_StreamDcServer) error {
	opts := []resource.ReadOption{
		resource.WithUpdatesOnly(request.UpdatesOnly()),
	}
	for change := range m.model.PullDc(server.Context(), opts...) {
		if err := server.Send(change.Value); err != nil {
			return err
		}
	}
	return nil
}
