package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PriceSource returns the network's sub-unit price for storing a payload.
	PriceSource interface {
		Price(ctx context.Context, byteLength int64) (uint64, error)
	}
	// RateSource returns the native-to-fiat conversion rate.
	RateSource interface {
		NativeToFiat(ctx context.Context) (decimal.Decimal, error)
	}
	// BalanceSource returns a wallet's balance in sub-units.
	BalanceSource interface {
		Balance(ctx context.Context, address string) (uint64, error)
	}
	// OracleMetrics records oracle lookup outcomes.
	OracleMetrics interface {
		ObserveLookup(oracle string, err error)
		ObserveFallback()
	}
)
