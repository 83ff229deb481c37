package gateway

import (
	"context"
	"time"

	"github.com/permapress/permapress-backend/internal/tx"
)

type (
	// Metrics records metrics for gateway calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Observed wraps a gateway client with metrics instrumentation.
type Observed struct {
	client  *Client
	metrics Metrics
}

// NewObserved constructs an instrumented gateway client.
func NewObserved(client *Client, metrics Metrics) *Observed {
	return &Observed{
		client:  client,
		metrics: metrics,
	}
}

// Price returns the sub-unit cost of storing byteLength bytes.
func (o *Observed) Price(ctx context.Context, byteLength int64) (price uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("price", err, started)
	}()
	return o.client.Price(ctx, byteLength)
}

// Anchor returns a recent transaction anchor.
func (o *Observed) Anchor(ctx context.Context) (anchor string, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("anchor", err, started)
	}()
	return o.client.Anchor(ctx)
}

// Balance returns the wallet's balance in sub-units.
func (o *Observed) Balance(ctx context.Context, address string) (balance uint64, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("balance", err, started)
	}()
	return o.client.Balance(ctx, address)
}

// PostTransaction submits a signed transaction.
func (o *Observed) PostTransaction(ctx context.Context, transaction *tx.Transaction) (err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("post_transaction", err, started)
	}()
	return o.client.PostTransaction(ctx, transaction)
}

// TxStatus returns the inclusion status of a transaction.
func (o *Observed) TxStatus(ctx context.Context, id string) (status InclusionStatus, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("tx_status", err, started)
	}()
	return o.client.TxStatus(ctx, id)
}

// AssetURL returns the public retrieval URL for a submission id.
func (o *Observed) AssetURL(id string) string {
	return o.client.AssetURL(id)
}
