// Package pricing computes the cost of storing a payload on the network,
// with a local approximation when the price oracle is unreachable and an
// optional fiat conversion that degrades gracefully.
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/model"
	"github.com/permapress/permapress-backend/pkg/safe"
)

const (
	// subUnitScale is the decimal exponent between the native unit and its
	// smallest denomination: 1 native unit = 10^12 sub-units.
	subUnitScale = 12
	// nativePlaces is the display precision for native amounts.
	nativePlaces = 8
	// fiatPlaces is the display precision for fiat amounts.
	fiatPlaces = 2
	// fallbackBytesPerUnit approximates one native unit per GiB stored when
	// the price oracle is unreachable. Distinctly less accurate than the
	// oracle price.
	fallbackBytesPerUnit = 1 << 30
)

// Quote is a priced estimate carrying both the exact sub-unit amount used
// for transaction rewards and the caller-facing decimal strings.
type Quote struct {
	SubUnits uint64
	Native   decimal.Decimal
	Estimate model.CostEstimate
}

// Sufficiency is a pre-submission balance decision aid. No transaction
// occurs when computing it.
type Sufficiency struct {
	Sufficient bool
	Balance    string
	Required   string
}

// Estimator prices storage submissions.
type Estimator struct {
	prices   PriceSource
	rates    RateSource
	balances BalanceSource
	metrics  OracleMetrics
	logger   *zap.Logger
}

// NewEstimator builds an estimator with the given oracles.
func NewEstimator(prices PriceSource, rates RateSource, balances BalanceSource, metrics OracleMetrics, logger *zap.Logger) *Estimator {
	return &Estimator{
		prices:   prices,
		rates:    rates,
		balances: balances,
		metrics:  metrics,
		logger:   logger,
	}
}

// Estimate prices the storage of byteLength bytes. A rate oracle failure
// leaves FiatAmount empty and is never an error.
func (e *Estimator) Estimate(ctx context.Context, byteLength int64) (model.CostEstimate, error) {
	quote, err := e.Quote(ctx, byteLength)
	if err != nil {
		return model.CostEstimate{}, err
	}
	return quote.Estimate, nil
}

// Quote prices the storage of byteLength bytes and retains the sub-unit
// amount for transaction building.
func (e *Estimator) Quote(ctx context.Context, byteLength int64) (Quote, error) {
	if byteLength <= 0 {
		return Quote{}, fmt.Errorf("byte length %d must be positive", byteLength)
	}

	native, subUnits, err := e.nativePrice(ctx, byteLength)
	if err != nil {
		return Quote{}, err
	}

	estimate := model.CostEstimate{NativeAmount: native.StringFixed(nativePlaces)}

	rate, err := e.rates.NativeToFiat(ctx)
	e.metrics.ObserveLookup("rate", err)
	if err != nil {
		e.logger.Debug("rate oracle unreachable, omitting fiat amount", zap.Error(err))
	} else {
		estimate.FiatAmount = native.Mul(rate).StringFixed(fiatPlaces)
	}

	return Quote{SubUnits: subUnits, Native: native, Estimate: estimate}, nil
}

// CheckSufficiency composes a balance lookup with an estimate. It is purely
// a decision aid for the caller.
func (e *Estimator) CheckSufficiency(ctx context.Context, address string, byteLength int64) (Sufficiency, error) {
	balanceSubUnits, err := e.balances.Balance(ctx, address)
	if err != nil {
		return Sufficiency{}, fmt.Errorf("look up balance: %w", err)
	}

	quote, err := e.Quote(ctx, byteLength)
	if err != nil {
		return Sufficiency{}, err
	}

	balance := decimal.NewFromUint64(balanceSubUnits).Shift(-subUnitScale)
	return Sufficiency{
		Sufficient: balance.GreaterThanOrEqual(quote.Native),
		Balance:    balance.StringFixed(nativePlaces),
		Required:   quote.Estimate.NativeAmount,
	}, nil
}

func (e *Estimator) nativePrice(ctx context.Context, byteLength int64) (decimal.Decimal, uint64, error) {
	subUnits, err := e.prices.Price(ctx, byteLength)
	e.metrics.ObserveLookup("price", err)
	if err == nil {
		return decimal.NewFromUint64(subUnits).Shift(-subUnitScale), subUnits, nil
	}

	// Single local approximation, returned immediately without retrying the
	// oracle.
	e.logger.Warn("price oracle unreachable, using local approximation", zap.Error(err))
	e.metrics.ObserveFallback()

	native := decimal.NewFromInt(byteLength).Div(decimal.NewFromInt(fallbackBytesPerUnit))
	approx, err := safe.Uint64(native.Shift(subUnitScale).IntPart())
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("approximate price: %w", err)
	}
	return native, approx, nil
}
