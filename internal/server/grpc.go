package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/data-catalog/internal/config"
	myGRPC "github.com/MKhiriev/data-catalog/internal/handler/grpc"
	"github.com/MKhiriev/data-catalog/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.ConnectionTimeout(cfg.RequestTimeout))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		server:  srv,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// serve reports SERVING once the listener is bound.
func (g *grpcServer) serve(ln net.Listener) error {
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", g.address)
		if err != nil {
			return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
		}
	}

	g.logger.Info().Str("address", ln.Addr().String()).Msg("launching gRPC server")
	g.handler.SetServing(true)

	if err := g.server.Serve(ln); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown falls back to a hard stop when ctx ends before in-flight RPCs
// finish.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
