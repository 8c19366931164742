// Command watch connects to a microgrid API server, prints the component
// inventory and then follows component changes and AC telemetry.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/microgrid-os/mg-golang/pkg/client"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Could not create logger: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	con, err := client.NewClient("127.0.0.1:23557", logger,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Could not create connection to server", zap.Error(err))
	}
	defer func() { _ = con.Shutdown() }()

	components, err := con.ListAllComponents(ctx)
	if err != nil {
		logger.Fatal("Could not get component list", zap.Error(err))
	}
	for _, c := range components {
		logger.Info("component",
			zap.Uint64("id", c.Id()),
			zap.String("name", c.Name()),
			zap.String("category", c.Category().String()))
	}

	changes, err := con.WatchComponents(ctx)
	if err != nil {
		logger.Fatal("Could not watch components", zap.Error(err))
	}
	acStates, err := con.StreamAc(ctx)
	if err != nil {
		logger.Fatal("Could not stream ac state", zap.Error(err))
	}

	for changes != nil || acStates != nil {
		select {
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			c := change.NewValue()
			if c == nil {
				c = change.OldValue()
			}
			logger.Info("component change",
				zap.String("type", change.Type().String()),
				zap.Uint64("id", c.Id()))
		case ac, ok := <-acStates:
			if !ok {
				acStates = nil
				continue
			}
			if f := ac.Frequency(); f != nil {
				logger.Info("ac state", zap.Float64("frequency", f.Value()))
			}
		case <-ctx.Done():
			return
		}
	}
}
