package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
)

// DefaultAutoLockInterval is used when the configured check interval is
// not positive.
const DefaultAutoLockInterval = time.Minute

type autoLockJob struct {
	custodian KeyCustodian
	clock     clock.Clock
	idle      time.Duration
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewAutoLockJob creates a job that checks every interval whether the vault
// has been idle for at least idle and locks it. The job is idle until Run
// is called.
func NewAutoLockJob(custodian KeyCustodian, clk clock.Clock, idle, interval time.Duration, log *logger.Logger) AutoLockJob {
	if interval <= 0 {
		interval = DefaultAutoLockInterval
	}
	return &autoLockJob{
		custodian: custodian,
		clock:     clk,
		idle:      idle,
		interval:  interval,
		logger:    log,
	}
}

// Run stops any previously running loop, then starts a new one in the
// background. It returns immediately. A non-positive idle duration disables
// the job.
func (j *autoLockJob) Run(ctx context.Context) {
	if j.idle <= 0 {
		j.logger.Info().Msg("auto-lock disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	ticker := j.clock.NewTicker(j.interval)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				if j.custodian.LockIfIdle(jobCtx, j.idle) {
					j.logger.Info().Dur("idle", j.idle).Msg("vault auto-locked")
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the job
// is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
