package analytics

import "github.com/rustyeddy/tradejournal/trade"

// Result is a snapshot of every analytic for one trade set.
type Result struct {
	Statistics Statistics   `json:"statistics"`
	Segments   Segments     `json:"segments"`
	Curve      []CurvePoint `json:"curve"`
}

// Analyze runs the aggregator, segmenter and curve builder over the
// same enriched trades.
func Analyze(trades []trade.Trade, startingBalance float64) Result {
	return Result{
		Statistics: AggregateFrom(trades, startingBalance),
		Segments:   Segment(trades),
		Curve:      BuildCurve(trades),
	}
}
