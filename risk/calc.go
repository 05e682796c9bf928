package risk

import "math"

// RR is the planned reward to risk multiple from the stop and target
// levels. It is 0 when either level is missing or the stop sits at
// entry.
func RR(entry, stop, takeProfit float64) float64 {
	if stop <= 0 || takeProfit <= 0 {
		return 0
	}
	risk := math.Abs(entry - stop)
	if risk == 0 {
		return 0
	}
	return math.Abs(takeProfit-entry) / risk
}

// RiskPct is the planned loss as a percentage of equity.
func RiskPct(plannedRisk, equity float64) float64 {
	if equity <= 0 {
		return 0
	}
	return plannedRisk / equity * 100
}
