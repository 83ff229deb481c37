package submitter

import (
	"context"
	"time"

	"github.com/permapress/permapress-backend/internal/model"
	"github.com/permapress/permapress-backend/internal/pricing"
	"github.com/permapress/permapress-backend/internal/tx"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gateway is the slice of the network client the submitter needs.
	Gateway interface {
		Anchor(ctx context.Context) (string, error)
		PostTransaction(ctx context.Context, transaction *tx.Transaction) error
		AssetURL(id string) string
	}

	// Pricer quotes the storage cost of a payload.
	Pricer interface {
		Quote(ctx context.Context, byteLength int64) (pricing.Quote, error)
	}

	// Signer authorizes transactions. Satisfied by wallet.Credential.
	Signer interface {
		Owner() string
		Sign(digest []byte) ([]byte, error)
	}

	// Recorder persists accepted submissions.
	Recorder interface {
		Record(entry model.LedgerEntry) error
	}

	// SubmitMetrics tracks attempt and submit outcomes.
	SubmitMetrics interface {
		ObserveAttempt(err error)
		ObserveSubmit(err error, artifactBytes int64, started time.Time)
	}
)
