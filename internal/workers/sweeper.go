// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/store"
)

// TempSweeper removes temporary files left behind by interrupted atomic
// writes. Only regular files named like store temp files and older than
// maxAge are removed; in-flight writes are younger than that.
type TempSweeper struct {
	dirs     []string
	interval time.Duration
	maxAge   time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewTempSweeper(dirs []string, interval, maxAge time.Duration, logger *logger.Logger) *TempSweeper {
	return &TempSweeper{
		dirs:     dirs,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
// Sweep failures are logged and never stop the worker.
func (s *TempSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if removed, err := s.Sweep(ctx); err != nil {
			s.logger.Err(err).Int("removed", removed).Msg("temp sweep failed")
		} else if removed > 0 {
			s.logger.Info().Int("removed", removed).Msg("stale temp files removed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep performs a single pass and returns the number of removed files.
// Missing directories are skipped.
func (s *TempSweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	var errs []error

	for _, dir := range s.dirs {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() || !store.IsTempFile(entry.Name()) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				// removed concurrently by the writer
				continue
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
				continue
			}
			s.logger.Debug().Str("path", path).Time("mod_time", info.ModTime()).Msg("removed stale temp file")
			removed++
		}
	}

	return removed, errors.Join(errs...)
}
