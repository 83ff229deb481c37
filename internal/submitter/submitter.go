// Package submitter drives a processed artifact through pricing, transaction
// assembly, signing and posting, and records the accepted submission in the
// ledger.
package submitter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/fault"
	"github.com/permapress/permapress-backend/internal/model"
	"github.com/permapress/permapress-backend/internal/tx"
)

// ProgressFunc receives coarse stage updates during a submit. percent is a
// value in [0, 100]; a retried attempt restarts from the pricing stage.
type ProgressFunc func(message string, percent int)

// Config tunes the retry loop and the optional metadata tags.
type Config struct {
	MaxRetries    uint64
	InitialDelay  time.Duration
	BackoffFactor float64
	TagMetadata   bool
	AppName       string
}

// DefaultConfig returns the production defaults. Metadata tagging stays off
// unless explicitly enabled.
func DefaultConfig() Config {
	return Config{
		MaxRetries:    3,
		InitialDelay:  500 * time.Millisecond,
		BackoffFactor: 2,
		AppName:       "permapress",
	}
}

// Request describes one artifact to submit. OriginalBytes and FileName refer
// to the source file before normalization; they only feed the ledger entry.
type Request struct {
	Artifact      model.ProcessedArtifact
	FileName      string
	OriginalBytes int64
	ContentType   string
	Tags          []model.Tag
}

// Submitter posts signed transactions to the network.
type Submitter struct {
	gateway Gateway
	pricer  Pricer
	signer  Signer
	ledger  Recorder
	metrics SubmitMetrics
	cfg     Config
	logger  *zap.Logger
}

// New builds a submitter.
func New(gateway Gateway, pricer Pricer, signer Signer, ledger Recorder, metrics SubmitMetrics, cfg Config, logger *zap.Logger) *Submitter {
	return &Submitter{
		gateway: gateway,
		pricer:  pricer,
		signer:  signer,
		ledger:  ledger,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// Submit runs the full submission sequence for one artifact. Transient
// failures anywhere in the sequence retry the whole attempt with exponential
// backoff up to MaxRetries; exhaustion reports upload failure wrapping the
// last cause. The returned handle is valid the moment the network accepts the
// transaction; block inclusion remains asynchronous and is tracked through
// the ledger.
func (s *Submitter) Submit(ctx context.Context, req Request, progress ProgressFunc) (handle model.SubmissionHandle, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSubmit(err, req.Artifact.Bytes, started)
	}()

	if progress == nil {
		progress = func(string, int) {}
	}

	progress("validating artifact", 5)
	if err = ctx.Err(); err != nil {
		return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
	}
	data, err := os.ReadFile(req.Artifact.Path)
	if err != nil {
		return model.SubmissionHandle{}, fault.Errorf(fault.KindInvalidInput, "read artifact: %w", err)
	}
	if len(data) == 0 {
		return model.SubmissionHandle{}, fault.Errorf(fault.KindInvalidInput, "artifact %s is empty", req.Artifact.Path)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.InitialDelay
	policy.Multiplier = s.cfg.BackoffFactor
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	attempts := 0
	operation := func() error {
		attempts++
		attemptHandle, attemptErr := s.attempt(ctx, req, data, progress)
		s.metrics.ObserveAttempt(attemptErr)
		if attemptErr == nil {
			handle = attemptHandle
			return nil
		}
		kind := fault.KindOf(attemptErr)
		s.logger.Warn("submission attempt failed",
			zap.Int("attempt", attempts),
			zap.String("kind", kind.String()),
			zap.Error(attemptErr))
		if !fault.Retryable(kind) {
			return backoff.Permanent(attemptErr)
		}
		return attemptErr
	}

	err = backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(policy, ctx), s.cfg.MaxRetries))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
		}
		if fault.Retryable(fault.KindOf(err)) {
			return model.SubmissionHandle{}, fault.Errorf(fault.KindUploadFailed, "submit exhausted after %d attempts: %w", attempts, err)
		}
		return model.SubmissionHandle{}, err
	}

	s.logger.Info("transaction accepted",
		zap.String("submission_id", handle.ID),
		zap.Int64("bytes", int64(len(data))),
		zap.String("native_cost", handle.Cost.NativeAmount))

	entry := model.LedgerEntry{
		Timestamp:      time.Now().UTC(),
		FileName:       req.FileName,
		OriginalBytes:  req.OriginalBytes,
		ProcessedBytes: req.Artifact.Bytes,
		SavedPercent:   req.Artifact.ReductionPercent,
		NativeCost:     handle.Cost.NativeAmount,
		FiatCost:       handle.Cost.FiatAmount,
		SubmissionID:   handle.ID,
		Status:         model.StatusPending,
		ContentType:    req.ContentType,
	}
	if err = s.ledger.Record(entry); err != nil {
		// The network already holds the transaction; losing the ledger entry
		// must not look like an upload failure.
		s.logger.Error("recording accepted submission failed",
			zap.String("submission_id", handle.ID), zap.Error(err))
	}
	err = nil

	progress("accepted", 100)
	return handle, nil
}

// attempt runs one pricing→building→signing→posting pass. Each stage checks
// for cancellation first; cancellation is terminal, never retried.
func (s *Submitter) attempt(ctx context.Context, req Request, data []byte, progress ProgressFunc) (model.SubmissionHandle, error) {
	progress("pricing storage", 20)
	if err := ctx.Err(); err != nil {
		return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
	}
	quote, err := s.pricer.Quote(ctx, int64(len(data)))
	if err != nil {
		return model.SubmissionHandle{}, fmt.Errorf("price artifact: %w", err)
	}

	progress("building transaction", 40)
	if err := ctx.Err(); err != nil {
		return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
	}
	anchor, err := s.gateway.Anchor(ctx)
	if err != nil {
		return model.SubmissionHandle{}, fmt.Errorf("fetch anchor: %w", err)
	}
	transaction := tx.Build(data, s.buildTags(req), anchor, quote.SubUnits, s.signer.Owner())

	progress("signing transaction", 60)
	if err := ctx.Err(); err != nil {
		return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
	}
	if err := tx.Sign(transaction, s.signer); err != nil {
		return model.SubmissionHandle{}, fmt.Errorf("sign transaction: %w", err)
	}

	progress("posting transaction", 80)
	if err := ctx.Err(); err != nil {
		return model.SubmissionHandle{}, fault.New(fault.KindCancelled, err)
	}
	if err := s.gateway.PostTransaction(ctx, transaction); err != nil {
		return model.SubmissionHandle{}, fmt.Errorf("post transaction: %w", err)
	}

	return model.SubmissionHandle{
		ID:          transaction.ID,
		LocationURI: s.gateway.AssetURL(transaction.ID),
		Cost:        quote.Estimate,
		Pending:     true,
	}, nil
}

// buildTags always attaches the content type. The descriptive tags, user
// supplied ones included, are opt-in via TagMetadata.
func (s *Submitter) buildTags(req Request) []model.Tag {
	tags := []model.Tag{{Name: "Content-Type", Value: req.ContentType}}
	if !s.cfg.TagMetadata {
		return tags
	}
	tags = append(tags,
		model.Tag{Name: "App-Name", Value: s.cfg.AppName},
		model.Tag{Name: "Created", Value: time.Now().UTC().Format(time.RFC3339)},
	)
	return append(tags, req.Tags...)
}
