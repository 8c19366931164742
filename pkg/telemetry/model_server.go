package telemetry

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/microgrid-os/mg-golang/pkg/api/metricspb"
	"github.com/microgrid-os/mg-golang/pkg/resource"
)

// ModelServer exposes Model as a metricspb.MetricsStreamServer.
type ModelServer struct {
	metricspb.UnimplementedMetricsStreamServer
	model *Model
}

func NewModelServer(model *Model) *ModelServer {
	return &ModelServer{model: model}
}

func (m *ModelServer) Register(server grpc.ServiceRegistrar) {
	metricspb.RegisterMetricsStreamServer(server, m)
}

func (m *ModelServer) GetMetricSample(_ context.Context, request *metricspb.GetMetricSampleRequest) (*metricspb.MetricSample, error) {
	s, ok := m.model.GetSample(request.Metric(), resource.WithReadMask(request.ReadMask()))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no sample for %v", request.Metric())
	}
	return s, nil
}

func (m *ModelServer) StreamMetricSamples(request *metricspb.StreamMetricSamplesRequest, server metricspb.MetricsStream_StreamMetricSamplesServer) error {
	opts := []resource.ReadOption{
		resource.WithUpdatesOnly(request.UpdatesOnly()),
	}
	if metrics := request.Metrics(); len(metrics) > 0 {
		want := make(map[string]bool, len(metrics))
		for _, metric := range metrics {
			want[metric.String()] = true
		}
		opts = append(opts, resource.WithInclude(func(id string, _ proto.Message) bool {
			return want[id]
		}))
	}
	for sample := range m.model.PullSamples(server.Context(), opts...) {
		if err := server.Send(sample); err != nil {
			return err
		}
	}
	return nil
}
