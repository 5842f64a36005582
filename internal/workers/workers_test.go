// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that counts runs and blocks until the context ends.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.err != nil {
		return m.err
	}
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, ws.Run(ctx))
	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_ErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &mockWorker{}
	ws := &Workers{workers: []Worker{blocking, &mockWorker{err: boom}}}

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), blocking.runCount.Load())
}

func TestNewWorkers(t *testing.T) {
	storage := config.Storage{DataDir: "/data", UserDBPath: "/etc/catalog/userdb.json"}

	ws := NewWorkers(config.Workers{SweepInterval: time.Minute, TempMaxAge: time.Hour}, storage, logger.Nop())
	require.Len(t, ws.workers, 1)

	sweeper, ok := ws.workers[0].(*TempSweeper)
	require.True(t, ok)
	assert.Equal(t, []string{
		"/data/dataset",
		"/data/storage_target",
		"/data/airflow_connections",
		"/etc/catalog",
	}, sweeper.dirs)

	disabled := NewWorkers(config.Workers{}, storage, logger.Nop())
	assert.Empty(t, disabled.workers)
}
