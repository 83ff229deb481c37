package model

import "time"

// LedgerEntry is the durable record of one accepted submission. Entries are
// appended by the submitter and mutated only by the confirmation tracker
// (status) or an explicit clear; they are never deleted individually.
type LedgerEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	FileName       string    `json:"fileName"`
	OriginalBytes  int64     `json:"originalBytes"`
	ProcessedBytes int64     `json:"processedBytes"`
	SavedPercent   float64   `json:"savedPercent"`
	NativeCost     string    `json:"nativeCost"`
	FiatCost       string    `json:"fiatCost,omitempty"`
	SubmissionID   string    `json:"submissionId"`
	Status         Status    `json:"status"`
	ContentType    string    `json:"contentType"`
}

// LedgerAggregate holds derived totals over all entries. It must equal the
// sum of the entry fields at all times.
type LedgerAggregate struct {
	Count          int    `json:"count"`
	OriginalBytes  int64  `json:"originalBytes"`
	ProcessedBytes int64  `json:"processedBytes"`
	NativeCost     string `json:"nativeCost"`
	FiatCost       string `json:"fiatCost"`
}
