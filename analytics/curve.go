package analytics

import "github.com/rustyeddy/tradejournal/trade"

// StartLabel is the Date of the synthetic origin point of every curve.
const StartLabel = "Start"

// CurvePoint is one step of the running equity curve. Drawdown is in
// account currency, unlike Statistics.MaxDrawdown which is a percent.
type CurvePoint struct {
	Date     string  `json:"date"`
	Equity   float64 `json:"equity"`
	Drawdown float64 `json:"drawdown"`
	Peak     float64 `json:"peak"`
}

// BuildCurve folds the closed trades in close order into a running
// equity series. The first point is always the zero origin.
func BuildCurve(trades []trade.Trade) []CurvePoint {
	chrono := chronological(trade.Closed(trades))

	points := make([]CurvePoint, 0, len(chrono)+1)
	points = append(points, CurvePoint{Date: StartLabel})

	var equity, peak float64
	for _, t := range chrono {
		equity += t.ProfitLoss
		peak = max(peak, equity)

		var date string
		if ct := t.CloseTime(); !ct.IsZero() {
			date = ct.UTC().Format(dayLayout)
		}
		points = append(points, CurvePoint{
			Date:     date,
			Equity:   equity,
			Drawdown: peak - equity,
			Peak:     peak,
		})
	}
	return points
}
