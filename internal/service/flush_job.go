// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DefaultFlushInterval is used when Start gets a non-positive interval.
const DefaultFlushInterval = 30 * time.Second

type flushJob struct {
	flusher Flusher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFlushJob creates a flushJob that calls flusher.Flush on a ticker. The
// job is idle until Start is called.
func NewFlushJob(flusher Flusher) FlushJob {
	return &flushJob{flusher: flusher}
}

// Start implements FlushJob. It stops any previously running job, then
// launches a background goroutine that calls Flush every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *flushJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.flusher.Flush(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).
						Str("func", "flushJob.Start").
						Msg("background flush failed, will retry")
				}
			}
		}
	}()
}

// Stop implements FlushJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *flushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
