// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/store"
)

// TempSweepWorker periodically removes temporary snapshot files left behind
// by a write that was interrupted before its rename.
type TempSweepWorker struct {
	sweeper  store.TempSweeper
	interval time.Duration
	maxAge   time.Duration

	logger *logger.Logger
}

func NewTempSweepWorker(sweeper store.TempSweeper, interval, maxAge time.Duration, logger *logger.Logger) *TempSweepWorker {
	return &TempSweepWorker{
		sweeper:  sweeper,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run sweeps once at start-up and then on every tick until ctx is done.
func (w *TempSweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "*TempSweepWorker.Run").Msg("temp sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *TempSweepWorker) sweep(ctx context.Context) {
	removed, err := w.sweeper.SweepStaleTemp(ctx, w.maxAge)
	if err != nil {
		w.logger.Err(err).Str("func", "*TempSweepWorker.sweep").Msg("error sweeping temporary files")
		return
	}
	if removed > 0 {
		w.logger.Info().Str("func", "*TempSweepWorker.sweep").Int("removed", removed).Msg("stale temporary files removed")
	}
}
