// Package ledger keeps the durable, append-only record of every accepted
// submission together with its aggregate totals.
package ledger

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/model"
)

// Book serializes all ledger access behind a single lock so a record from
// an active submission and a status update from a concurrent poll sweep can
// never lose each other's writes.
type Book struct {
	mu     sync.Mutex
	store  KV
	doc    document
	logger *zap.Logger
}

// Open loads the ledger document from the store, transparently upgrading
// legacy entries. A missing document yields an empty ledger.
func Open(store KV, logger *zap.Logger) (*Book, error) {
	raw, found, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	book := &Book{store: store, logger: logger}
	if found {
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, err
		}
		book.doc = doc
	}
	return book, nil
}

// Record appends an entry and persists the document with recomputed totals
// in the same update.
func (b *Book) Record(entry model.LedgerEntry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	b.doc.Entries = append(b.doc.Entries, entry)
	return b.persist()
}

// UpdateStatus promotes the entry with the given submission id. A missing
// id is a no-op, not an error: status updates can legitimately race with a
// ledger clear.
func (b *Book) UpdateStatus(submissionID string, status model.Status) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.doc.Entries {
		if b.doc.Entries[i].SubmissionID != submissionID {
			continue
		}
		b.doc.Entries[i].Status = status
		return b.persist()
	}

	b.logger.Debug("status update for unknown submission ignored",
		zap.String("submission_id", submissionID),
		zap.String("status", string(status)))
	return nil
}

// Aggregate recomputes the derived totals by summing every entry.
func (b *Book) Aggregate() model.LedgerAggregate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return aggregate(b.doc.Entries)
}

// Entries returns a copy of the ordered entry list.
func (b *Book) Entries() []model.LedgerEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.LedgerEntry, len(b.doc.Entries))
	copy(out, b.doc.Entries)
	return out
}

// Pending returns the entries still awaiting confirmation.
func (b *Book) Pending() []model.LedgerEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []model.LedgerEntry
	for _, entry := range b.doc.Entries {
		if entry.Status == model.StatusPending {
			out = append(out, entry)
		}
	}
	return out
}

// Clear drops every entry and persists the empty document.
func (b *Book) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.doc = document{}
	return b.persist()
}

// persist recomputes totals and writes the document. Callers must hold the
// lock.
func (b *Book) persist() error {
	agg := aggregate(b.doc.Entries)
	b.doc.Count = agg.Count
	b.doc.OriginalBytes = agg.OriginalBytes
	b.doc.ProcessedBytes = agg.ProcessedBytes
	b.doc.NativeCost = agg.NativeCost
	b.doc.FiatCost = agg.FiatCost

	raw, err := json.Marshal(b.doc)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := b.store.Put(StorageKey, raw); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

func aggregate(entries []model.LedgerEntry) model.LedgerAggregate {
	agg := model.LedgerAggregate{Count: len(entries)}
	native := decimal.Zero
	fiat := decimal.Zero

	for _, entry := range entries {
		agg.OriginalBytes += entry.OriginalBytes
		agg.ProcessedBytes += entry.ProcessedBytes
		native = native.Add(parseAmount(entry.NativeCost))
		fiat = fiat.Add(parseAmount(entry.FiatCost))
	}

	agg.NativeCost = native.StringFixed(8)
	agg.FiatCost = fiat.StringFixed(2)
	return agg
}

func parseAmount(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
