package risk

import (
	"math"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/shopspring/decimal"
)

// Inputs describes a planned trade for position sizing.
type Inputs struct {
	Balance    float64
	RiskPct    float64 // percent of balance, 1 means 1%
	EntryPrice float64
	StopPrice  float64
	Symbol     string
}

// Result carries the size together with the numbers that produced it.
type Result struct {
	Size       float64 // lots for forex, whole units otherwise
	StopPips   float64 // forex only
	PriceRisk  float64
	RiskAmount float64
}

// Calculate sizes a position so that hitting the stop loses RiskPct of
// the balance. Forex sizes are lots rounded to two decimals, everything
// else is floored to whole units. A stop at the entry price gives 0.
func Calculate(in Inputs) Result {
	r := Result{
		RiskAmount: in.Balance * in.RiskPct / 100,
		PriceRisk:  math.Abs(in.EntryPrice - in.StopPrice),
	}
	if r.PriceRisk == 0 {
		return r
	}

	meta, ok := market.ForexMeta(in.Symbol)
	if !ok {
		r.Size = math.Floor(r.RiskAmount / r.PriceRisk)
		return r
	}

	r.StopPips = r.PriceRisk / meta.PipSize
	perLot := r.StopPips * meta.PipValue
	if perLot == 0 {
		return r
	}
	r.Size = round2(r.RiskAmount / perLot)
	return r
}

// PositionSize returns only the size from Calculate.
func PositionSize(balance, riskPct, entry, stop float64, symbol string) float64 {
	return Calculate(Inputs{
		Balance:    balance,
		RiskPct:    riskPct,
		EntryPrice: entry,
		StopPrice:  stop,
		Symbol:     symbol,
	}).Size
}

func round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
