package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/data-catalog/internal/app"
	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

// newHTTPServer bounds header reads and handler execution by the request
// timeout. Timed out requests get 503 with a JSON message.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.Handler = http.TimeoutHandler(handler, cfg.RequestTimeout, fmt.Sprintf(`{"message":%q}`, app.MsgRequestTimedOut))
	}

	return &httpServer{
		server: srv,
		logger: logger,
	}
}

// serve blocks until the server is shut down. ln may be nil, in which case
// the configured address is used.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", h.server.Addr).Msg("launching HTTP server")

	var err error
	if ln != nil {
		err = h.server.Serve(ln)
	} else {
		err = h.server.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
