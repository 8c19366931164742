// Package server hosts the microgrid model servers behind a single gRPC
// server with health and reflection registered.
package server

import (
	"net"
	"net/url"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	logger       *zap.Logger
}

func NewServer(logger *zap.Logger, opts ...grpc.ServerOption) *Server {
	grpcServer := grpc.NewServer(opts...)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register adds api to the services this server hosts.
// Must be called before Startup.
func (s *Server) Register(api GrpcApi) {
	api.Register(s.grpcServer)
}

// Startup binds to address and serves in the background. The returned chan
// receives the error Serve exits with.
//
// address is a url like tcp://localhost:23557, the scheme and host are
// passed to net.Listen.
func (s *Server) Startup(address *url.URL) chan error {
	lis, err := net.Listen(address.Scheme, address.Host)
	if err != nil {
		s.logger.Fatal("could not bind listen address", zap.String("address", address.String()), zap.Error(err))
	}
	s.logger.Debug("server started", zap.String("address", address.String()))

	done := make(chan error)
	go func() { done <- s.grpcServer.Serve(lis) }()
	return done
}

// Serve runs the gRPC server on lis, blocking until Shutdown or failure.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

func (s *Server) Shutdown() {
	s.logger.Debug("server shutting down")
	s.grpcServer.GracefulStop()
	s.healthServer.Shutdown()
}
