package tracker

import (
	"context"
	"time"

	"github.com/permapress/permapress-backend/internal/gateway"
	"github.com/permapress/permapress-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StatusClient is the slice of the network client the tracker needs.
	StatusClient interface {
		TxStatus(ctx context.Context, id string) (gateway.InclusionStatus, error)
	}

	// Book is the ledger surface the tracker reads and promotes through.
	Book interface {
		Pending() []model.LedgerEntry
		UpdateStatus(submissionID string, status model.Status) error
	}

	// TrackMetrics tracks sweep outcomes and entry promotions.
	TrackMetrics interface {
		ObserveSweep(err error, started time.Time)
		ObservePromotion(to string)
	}
)
