package workers

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/models"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the maintenance workers enabled by cfg. The temp
// sweeper covers every partition directory and the user database directory.
func NewWorkers(cfg config.Workers, storage config.Storage, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SweepInterval > 0 {
		dirs := make([]string, 0, len(models.LocationDataTypes())+1)
		for _, t := range models.LocationDataTypes() {
			dirs = append(dirs, filepath.Join(storage.DataDir, t.String()))
		}
		if storage.UserDBPath != "" {
			dirs = append(dirs, filepath.Dir(storage.UserDBPath))
		}
		w.workers = append(w.workers, NewTempSweeper(dirs, cfg.SweepInterval, cfg.TempMaxAge, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts all workers and waits for them. It returns the first worker
// error, if any.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
