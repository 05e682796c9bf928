package analytics_test

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/pnl"
	"github.com/rustyeddy/tradejournal/report"
	"github.com/rustyeddy/tradejournal/trade"
	"github.com/stretchr/testify/assert"
)

func TestJournalEndToEnd(t *testing.T) {
	t.Parallel()

	open := time.Date(2024, 3, 11, 8, 30, 0, 0, time.UTC)
	raw := []trade.Trade{
		{ID: "1", Symbol: "EURUSD", Side: trade.Buy, Quantity: 1, EntryPrice: 1.0800, ExitPrice: 1.0850, EntryDate: open, ExitDate: open.Add(2 * time.Hour)},
		{ID: "2", Symbol: "GBPUSD", Side: trade.Sell, Quantity: 0.5, EntryPrice: 1.2700, ExitPrice: 1.2750, EntryDate: open.AddDate(0, 0, 1), ExitDate: open.AddDate(0, 0, 1).Add(time.Hour)},
		{ID: "3", Symbol: "AAPL", Side: trade.Buy, Quantity: 10, EntryPrice: 150, ExitPrice: 140, EntryDate: open.AddDate(0, 0, 2).Add(8 * time.Hour), ExitDate: open.AddDate(0, 0, 3)},
	}

	trades := pnl.Enrich(raw)
	assert.InDelta(t, 500.0, trades[0].ProfitLoss, 1e-6)
	assert.InDelta(t, -250.0, trades[1].ProfitLoss, 1e-6)
	assert.InDelta(t, -100.0, trades[2].ProfitLoss, 1e-9)

	s := analytics.Aggregate(trades)
	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 2, s.LosingTrades)
	assert.Equal(t, 33.33, report.Round2(s.WinRate))
	assert.Equal(t, "+33.33%", report.FormatPercent(s.WinRate))
	assert.InDelta(t, 150.0, s.TotalPnL, 1e-6)
	assert.InDelta(t, 500.0/350.0, s.ProfitFactor, 1e-9)
	assert.InDelta(t, 70.0, s.MaxDrawdown, 1e-6)
	assert.Equal(t, 3, s.TradingDays)

	seg := analytics.Segment(trades)
	assert.Equal(t, "EURUSD", seg.BestSymbol.Symbol)
	assert.Equal(t, "GBPUSD", seg.WorstSymbol.Symbol)
	assert.Equal(t, analytics.Europe, seg.BestSession)
	assert.Equal(t, 1, seg.Direction.Short.Trades)

	curve := analytics.BuildCurve(trades)
	assert.Len(t, curve, 4)
	assert.InDelta(t, 150.0, curve[3].Equity, 1e-6)
	assert.InDelta(t, 350.0, curve[3].Drawdown, 1e-6)
}
