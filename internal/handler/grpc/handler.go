package grpc

import (
	"github.com/MKhiriev/data-catalog/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health check service name reported next to the
// overall ("") server status.
const ServiceName = "datacatalog.Catalog"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service and server
// reflection. The catalog itself is served over HTTP only; the gRPC
// endpoint lets orchestrators probe readiness.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health status is NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing flips the reported status of both health entries.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown reports NOT_SERVING for every service and ignores later
// status updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
