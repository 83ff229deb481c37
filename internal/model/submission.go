package model

// Status tracks a submitted transaction's inclusion in the network ledger.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status will never change again.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// CostEstimate carries decimal-string amounts. Native token amounts are
// sub-unit integers converted to high-precision decimals; floating point
// would lose precision across the conversion chain. An empty FiatAmount
// means the rate oracle was unreachable, which is a degraded result, not
// an error.
type CostEstimate struct {
	NativeAmount string
	FiatAmount   string
}

// Tag is a name/value pair attached to a storage transaction.
type Tag struct {
	Name  string
	Value string
}

// SubmissionHandle is created the instant the network accepts a transaction,
// before it is confirmed. The handle is never mutated afterward; confirmation
// status lives in the ledger.
type SubmissionHandle struct {
	ID          string
	LocationURI string
	Cost        CostEstimate
	Pending     bool
}
