// Package units converts between USD amounts, token units and energy.
package units

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// TokenUnits is the number of minimal units per whole token.
	TokenUnits = 1_000_000
	// EnergyScale scales the whole-token daily limit into energy points.
	EnergyScale = 10_000
	// MaxEnergyMultiplier caps how much a single click can be boosted by energy.
	MaxEnergyMultiplier = 2
)

// ErrTokenOverflow is returned when a conversion does not fit in int64 token units.
var ErrTokenOverflow = errors.New("token amount overflows int64")

var (
	maxTokens     = decimal.NewFromInt(math.MaxInt64)
	hundred       = decimal.NewFromInt(100)
	maxMultiplier = decimal.NewFromInt(MaxEnergyMultiplier)
	tokenUnits    = decimal.NewFromInt(TokenUnits)
)

// USDToTokens converts usd at price (USD per token) into token units,
// rounding down. price must be positive. A result that would not fit in
// int64 yields ErrTokenOverflow.
func USDToTokens(usd decimal.Decimal, price float64) (int64, error) {
	tokens := usd.Div(decimal.NewFromFloat(price)).Mul(tokenUnits).Floor()
	if tokens.GreaterThan(maxTokens) {
		return 0, ErrTokenOverflow
	}
	return tokens.IntPart(), nil
}

// EnergyMultiplier returns min(energy/100, 2), never negative.
func EnergyMultiplier(energyConsumed int) decimal.Decimal {
	if energyConsumed <= 0 {
		return decimal.Zero
	}
	return decimal.Min(decimal.NewFromInt(int64(energyConsumed)).Div(hundred), maxMultiplier)
}

// ClickEarning is the raw USD earned by one click before any limit is applied.
func ClickEarning(base decimal.Decimal, energyConsumed int) decimal.Decimal {
	return base.Mul(EnergyMultiplier(energyConsumed))
}

// DailyLimitTokens is floor(limitUSD * price) scaled by EnergyScale.
func DailyLimitTokens(limitUSD decimal.Decimal, price float64) int64 {
	return limitUSD.Mul(decimal.NewFromFloat(price)).Floor().IntPart() * EnergyScale
}

// QuantizeCharge rounds a per-second charge to 3 decimals and then down to
// the nearest 0.05.
func QuantizeCharge(charge float64) float64 {
	rounded := math.Round(charge*1000) / 1000
	return math.Floor(rounded*20) / 20
}
