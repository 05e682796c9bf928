package risk

import "github.com/rustyeddy/tradejournal/market"

// DefaultLeverage matches pnl.DefaultLeverage.
const DefaultLeverage = 50.0

// Margin is the capital needed to hold quantity at price. Forex
// quantities are lots of market.LotSize units. Other instruments are
// only divided by leverage when it is above 1.
func Margin(symbol string, price, quantity, leverage float64) float64 {
	if market.Classify(symbol) == market.Forex {
		if leverage <= 0 {
			leverage = DefaultLeverage
		}
		return quantity * market.LotSize * price / leverage
	}

	notional := quantity * price
	if leverage > 1 {
		return notional / leverage
	}
	return notional
}
