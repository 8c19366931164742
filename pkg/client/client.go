// Package client connects to a microgrid API server and wraps the common
// read patterns, paging and streaming, behind plain method calls.
package client

import (
	"context"
	"time"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/microgrid-os/mg-golang/pkg/api/componentspb"
	"github.com/microgrid-os/mg-golang/pkg/api/metricspb/electricalpb"
)

type Client struct {
	conn        *grpc.ClientConn
	retryPolicy []grpc.CallOption
	logger      *zap.Logger
}

func NewClient(target string, logger *zap.Logger, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts,
		grpc.WithUnaryInterceptor(grpc_retry.UnaryClientInterceptor()),
	)
	conn, err := grpc.Dial(target, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn,
		[]grpc.CallOption{
			grpc_retry.WithMax(5),
			grpc_retry.WithPerRetryTimeout(2 * time.Second),
			grpc_retry.WithBackoff(grpc_retry.BackoffExponentialWithJitter(100*time.Millisecond, 0.01)),
		},
		logger,
	}, nil
}

// Conn exposes the underlying connection for service clients this package
// has no helper for.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Shutdown this connection to the server
func (c *Client) Shutdown() error {
	return c.conn.Close()
}

// ListAllComponents pages through the component registry and returns every
// known component.
func (c *Client) ListAllComponents(ctx context.Context) ([]*componentspb.Component, error) {
	registry := componentspb.NewComponentRegistryClient(c.conn)

	var components []*componentspb.Component
	token := ""
	for {
		resp, err := registry.ListComponents(ctx,
			componentspb.NewListComponentsRequest().SetPageToken(token),
			c.retryPolicy...)
		if err != nil {
			return nil, err
		}
		components = append(components, resp.Components()...)
		token = resp.NextPageToken()
		if token == "" {
			return components, nil
		}
	}
}

// GetComponent returns the component with the given id.
func (c *Client) GetComponent(ctx context.Context, id uint64) (*componentspb.Component, error) {
	registry := componentspb.NewComponentRegistryClient(c.conn)
	return registry.GetComponent(ctx, componentspb.NewGetComponentRequest().SetId(id), c.retryPolicy...)
}

// WatchComponents streams component changes until ctx is done.
func (c *Client) WatchComponents(ctx context.Context) (<-chan *componentspb.WatchComponentsResponse, error) {
	registry := componentspb.NewComponentRegistryClient(c.conn)
	stream, err := registry.WatchComponents(ctx, componentspb.NewWatchComponentsRequest())
	if err != nil {
		return nil, err
	}

	out := make(chan *componentspb.WatchComponentsResponse)
	go func() {
		defer close(out)
		for {
			change, err := stream.Recv()
			if err != nil {
				if ctx.Err() == nil {
					c.logger.Warn("component stream ended", zap.Error(err))
				}
				return
			}
			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// StreamAc streams AC electrical state until ctx is done.
func (c *Client) StreamAc(ctx context.Context) (<-chan *electricalpb.Ac, error) {
	electrical := electricalpb.NewElectricalStreamClient(c.conn)
	stream, err := electrical.StreamAc(ctx, electricalpb.NewStreamAcRequest())
	if err != nil {
		return nil, err
	}

	out := make(chan *electricalpb.Ac)
	go func() {
		defer close(out)
		for {
			state, err := stream.Recv()
			if err != nil {
				if ctx.Err() == nil {
					c.logger.Warn("ac stream ended", zap.Error(err))
				}
				return
			}
			select {
			case out <- state:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
