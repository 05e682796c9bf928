// Package pnl turns journal trades into profit and loss figures.
package pnl

import (
	"math"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/trade"
)

// DefaultLeverage is the account leverage assumed for forex percentage
// gain when nothing else is configured.
const DefaultLeverage = 50.0

// Result is the P/L breakdown of one trade. Pips is only set for forex.
// PercentageGain is net over margin for forex and net over cost times
// 100 for crypto and equities.
type Result struct {
	PnL            float64 `json:"pnl"`
	Pips           float64 `json:"pips,omitempty"`
	Commission     float64 `json:"commission"`
	NetPnL         float64 `json:"netPnl"`
	PercentageGain float64 `json:"percentageGain"`
	RiskReward     float64 `json:"riskRewardRatio,omitempty"`
}

// Calculator holds the account assumptions used by the forex path.
// The zero value uses DefaultLeverage.
type Calculator struct {
	Leverage float64
}

func New(leverage float64) Calculator {
	return Calculator{Leverage: leverage}
}

func (c Calculator) leverage() float64 {
	if c.Leverage <= 0 {
		return DefaultLeverage
	}
	return c.Leverage
}

// Compute calculates P/L for t using an already classified instrument.
func (c Calculator) Compute(t trade.Trade, in market.Instrument) Result {
	if !t.HasExit() {
		return Result{
			Commission: t.Commission,
			NetPnL:     -t.Commission,
		}
	}

	diff := priceDiff(t)

	var r Result
	if in.IsForex() {
		r = c.forex(t, in.Meta, diff)
	} else {
		r = spot(t, diff)
	}
	r.RiskReward = riskReward(diff, t.EntryPrice)
	return r
}

// Calculate classifies the trade symbol and routes it to the matching
// formula. Unknown six letter symbols take the forex path.
func (c Calculator) Calculate(t trade.Trade) Result {
	return c.Compute(t, market.Lookup(t.Symbol))
}

// Enrich returns a copy of trades with ProfitLoss, ProfitLossPercent
// and Pips filled in. The input slice is left untouched.
func (c Calculator) Enrich(trades []trade.Trade) []trade.Trade {
	out := make([]trade.Trade, len(trades))
	for i, t := range trades {
		r := c.Calculate(t)
		t.ProfitLoss = r.NetPnL
		t.ProfitLossPercent = r.PercentageGain
		t.Pips = r.Pips
		out[i] = t
	}
	return out
}

// Calculate uses a Calculator with DefaultLeverage.
func Calculate(t trade.Trade) Result {
	return Calculator{}.Calculate(t)
}

// Enrich uses a Calculator with DefaultLeverage.
func Enrich(trades []trade.Trade) []trade.Trade {
	return Calculator{}.Enrich(trades)
}

// priceDiff is exit-entry for buys and entry-exit for sells.
func priceDiff(t trade.Trade) float64 {
	return t.Side.Sign() * (t.ExitPrice - t.EntryPrice)
}

func (c Calculator) forex(t trade.Trade, meta market.InstrumentMeta, diff float64) Result {
	pipSize := meta.PipSize
	if pipSize == 0 {
		pipSize = market.DefaultPipSize
	}
	pips := diff / pipSize
	gross := pips * meta.PipValue * t.Quantity
	net := gross - t.Commission

	// gain on the margin at the configured leverage, as a plain ratio
	margin := t.Quantity * market.LotSize * t.EntryPrice / c.leverage()

	return Result{
		PnL:            gross,
		Pips:           pips,
		Commission:     t.Commission,
		NetPnL:         net,
		PercentageGain: ratio(net, margin),
	}
}

func spot(t trade.Trade, diff float64) Result {
	gross := diff * t.Quantity
	net := gross - t.Commission

	return Result{
		PnL:            gross,
		Commission:     t.Commission,
		NetPnL:         net,
		PercentageGain: ratio(net, t.EntryPrice*t.Quantity) * 100,
	}
}

// riskReward is the size of the move as a percentage of entry. It is
// a price move proxy and does not look at the stop loss.
func riskReward(diff, entry float64) float64 {
	return ratio(math.Abs(diff), entry) * 100
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
