// Package tracker promotes pending ledger entries once the network confirms
// or abandons their transactions. Confirmation is asynchronous on the network
// side, so the tracker polls in rate-limited sweeps.
package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/clock"
	"github.com/permapress/permapress-backend/internal/model"
	"github.com/permapress/permapress-backend/pkg/sweep"
)

// Config tunes sweep parallelism and the promotion rules.
type Config struct {
	// Workers bounds the number of concurrent status lookups per sweep.
	Workers int
	// MinConfirmations is the inclusion depth required before an entry is
	// promoted to confirmed.
	MinConfirmations uint64
	// StaleAfter is how long an entry may stay pending before it is written
	// off as failed.
	StaleAfter time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Workers:          4,
		MinConfirmations: 1,
		StaleAfter:       24 * time.Hour,
	}
}

// Verification is the outcome of a single status check.
type Verification struct {
	Confirmed     bool
	Confirmations uint64
	Status        model.Status
}

// Tracker polls pending submissions and promotes them in the ledger.
type Tracker struct {
	status  StatusClient
	book    Book
	metrics TrackMetrics
	limiter ratelimit.Limiter
	now     clock.NowFunc
	cfg     Config
	logger  *zap.Logger
}

// New builds a tracker. limiter bounds the gateway status request rate across
// all sweep workers.
func New(status StatusClient, book Book, metrics TrackMetrics, limiter ratelimit.Limiter, now clock.NowFunc, cfg Config, logger *zap.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		status:  status,
		book:    book,
		metrics: metrics,
		limiter: limiter,
		now:     now,
		cfg:     cfg,
		logger:  logger,
	}
}

// VerifyOne checks a single submission without touching the ledger.
func (t *Tracker) VerifyOne(ctx context.Context, submissionID string) (Verification, error) {
	t.limiter.Take()
	inclusion, err := t.status.TxStatus(ctx, submissionID)
	if err != nil {
		return Verification{}, fmt.Errorf("query status of %s: %w", submissionID, err)
	}
	if inclusion.Included && inclusion.Confirmations >= t.cfg.MinConfirmations {
		return Verification{Confirmed: true, Confirmations: inclusion.Confirmations, Status: model.StatusConfirmed}, nil
	}
	return Verification{Confirmations: inclusion.Confirmations, Status: model.StatusPending}, nil
}

// PollOnce sweeps every pending ledger entry. Per-entry failures are logged
// and leave the entry pending for the next sweep; only context cancellation
// is an error.
func (t *Tracker) PollOnce(ctx context.Context) error {
	started := time.Now()
	pending := t.book.Pending()
	t.logger.Debug("starting confirmation sweep", zap.Int("pending", len(pending)))

	err := sweep.Run(ctx, t.cfg.Workers, pending, t.checkEntry, func(entry model.LedgerEntry, err error) {
		t.logger.Warn("status check failed, entry stays pending",
			zap.String("submission_id", entry.SubmissionID),
			zap.Error(err))
	})
	t.metrics.ObserveSweep(err, started)
	return err
}

// Run sweeps on the given interval until the context is cancelled.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) error {
	for {
		if err := t.PollOnce(ctx); err != nil {
			return err
		}
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}

func (t *Tracker) checkEntry(ctx context.Context, entry model.LedgerEntry) error {
	verification, err := t.VerifyOne(ctx, entry.SubmissionID)
	if err != nil {
		return err
	}

	if verification.Confirmed {
		if err := t.book.UpdateStatus(entry.SubmissionID, model.StatusConfirmed); err != nil {
			return fmt.Errorf("promote %s to confirmed: %w", entry.SubmissionID, err)
		}
		t.metrics.ObservePromotion(string(model.StatusConfirmed))
		t.logger.Info("submission confirmed",
			zap.String("submission_id", entry.SubmissionID),
			zap.Uint64("confirmations", verification.Confirmations))
		return nil
	}

	if age := t.now().Sub(entry.Timestamp); age > t.cfg.StaleAfter {
		if err := t.book.UpdateStatus(entry.SubmissionID, model.StatusFailed); err != nil {
			return fmt.Errorf("promote %s to failed: %w", entry.SubmissionID, err)
		}
		t.metrics.ObservePromotion(string(model.StatusFailed))
		t.logger.Warn("submission written off as failed",
			zap.String("submission_id", entry.SubmissionID),
			zap.Duration("age", age))
	}
	return nil
}
