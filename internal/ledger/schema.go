package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/permapress/permapress-backend/internal/model"
)

// StorageKey is the fixed key the ledger document lives under in the host
// key/value persistence.
const StorageKey = "upload-ledger"

// document is the persisted shape: aggregate fields plus the ordered entry
// list. The schema is versioned implicitly by field presence; decode sniffs
// each entry and upgrades legacy ones so the rest of the system only ever
// sees the current shape.
type document struct {
	Count          int                 `json:"count"`
	OriginalBytes  int64               `json:"originalBytes"`
	ProcessedBytes int64               `json:"processedBytes"`
	NativeCost     string              `json:"nativeCost"`
	FiatCost       string              `json:"fiatCost"`
	Entries        []model.LedgerEntry `json:"entries"`
}

type rawDocument struct {
	Count          int               `json:"count"`
	OriginalBytes  int64             `json:"originalBytes"`
	ProcessedBytes int64             `json:"processedBytes"`
	NativeCost     string            `json:"nativeCost"`
	FiatCost       string            `json:"fiatCost"`
	Entries        []json.RawMessage `json:"entries"`
}

// legacyEntry is the first ledger schema: no saved-percent, no fiat cost, no
// status field.
type legacyEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	FileName       string    `json:"fileName"`
	OriginalBytes  int64     `json:"originalBytes"`
	ProcessedBytes int64     `json:"processedBytes"`
	NativeCost     string    `json:"nativeCost"`
	SubmissionID   string    `json:"submissionId"`
	ContentType    string    `json:"contentType"`
}

func decodeDocument(raw []byte) (document, error) {
	var outer rawDocument
	if err := json.Unmarshal(raw, &outer); err != nil {
		return document{}, fmt.Errorf("decode ledger document: %w", err)
	}

	doc := document{
		Count:          outer.Count,
		OriginalBytes:  outer.OriginalBytes,
		ProcessedBytes: outer.ProcessedBytes,
		NativeCost:     outer.NativeCost,
		FiatCost:       outer.FiatCost,
		Entries:        make([]model.LedgerEntry, 0, len(outer.Entries)),
	}

	for i, rawEntry := range outer.Entries {
		entry, err := decodeEntry(rawEntry)
		if err != nil {
			return document{}, fmt.Errorf("decode ledger entry %d: %w", i, err)
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

func decodeEntry(raw json.RawMessage) (model.LedgerEntry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.LedgerEntry{}, err
	}

	if _, current := fields["status"]; current {
		var entry model.LedgerEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return model.LedgerEntry{}, err
		}
		return entry, nil
	}

	// Legacy shape: everything it did carry is preserved, absent fields
	// default to zero and the status to confirmed.
	var legacy legacyEntry
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return model.LedgerEntry{}, err
	}
	return model.LedgerEntry{
		Timestamp:      legacy.Timestamp,
		FileName:       legacy.FileName,
		OriginalBytes:  legacy.OriginalBytes,
		ProcessedBytes: legacy.ProcessedBytes,
		SavedPercent:   0,
		NativeCost:     legacy.NativeCost,
		FiatCost:       "",
		SubmissionID:   legacy.SubmissionID,
		Status:         model.StatusConfirmed,
		ContentType:    legacy.ContentType,
	}, nil
}
