package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/trade"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	open := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	close := time.Date(2024, 3, 15, 14, 20, 30, 0, time.UTC)

	tr := trade.Trade{
		ID:                "trade-12345678-abcd",
		Symbol:            "EURUSD",
		Side:              trade.Buy,
		Quantity:          1,
		EntryPrice:        1.08500,
		ExitPrice:         1.08750,
		EntryDate:         open,
		ExitDate:          close,
		StopLoss:          1.08300,
		Commission:        2,
		Notes:             "trend-following",
		ProfitLoss:        248,
		ProfitLossPercent: 11.43,
		Pips:              25,
	}

	result := FormatTradeOrg(tr)

	assert.Contains(t, result, "** Trade: EURUSD BUY (trade-12)")

	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: trade-12345678-abcd")
	assert.Contains(t, result, ":SYMBOL: EURUSD")
	assert.Contains(t, result, ":STATUS: closed")
	assert.Contains(t, result, ":QUANTITY: 1\n")
	assert.Contains(t, result, ":ENTRY_PRICE: 1.08500")
	assert.Contains(t, result, ":EXIT_PRICE: 1.08750")
	assert.Contains(t, result, ":OPEN_TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":CLOSE_TIME: 2024-03-15T14:20:30Z")
	assert.Contains(t, result, ":STOP_LOSS: 1.08300")
	assert.NotContains(t, result, ":TAKE_PROFIT:")
	assert.NotContains(t, result, ":PLANNED_RR:")
	assert.Contains(t, result, ":PROFIT_LOSS: 248.00")
	assert.Contains(t, result, ":PROFIT_LOSS_PCT: 11.43")
	assert.Contains(t, result, ":PIPS: 25.0")
	assert.Contains(t, result, ":END:")

	assert.Contains(t, result, "*** Thesis\n- trend-following\n")
	assert.Contains(t, result, "*** Execution")
	assert.Contains(t, result, "*** Review")
}

func TestFormatTradeOrgPlannedRR(t *testing.T) {
	t.Parallel()

	tr := trade.Trade{ID: "rr", Symbol: "EURUSD", Side: trade.Buy, Quantity: 1, EntryPrice: 1.1000, StopLoss: 1.0950, TakeProfit: 1.1100}
	assert.Contains(t, FormatTradeOrg(tr), ":PLANNED_RR: 2.00")
}

func TestFormatTradeOrgOpenTrade(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(trade.Trade{ID: "short", Symbol: "AAPL", Side: trade.Sell, Quantity: 10, EntryPrice: 190})

	assert.Contains(t, result, "** Trade: AAPL SELL (short)")
	assert.Contains(t, result, ":STATUS: open")
	assert.NotContains(t, result, ":EXIT_PRICE:")
	assert.NotContains(t, result, ":OPEN_TIME:")
	assert.NotContains(t, result, ":PIPS:")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	trades := []trade.Trade{
		sampleTrade("trade-001", base),
		{ID: "trade-002", Symbol: "GBPUSD", Side: trade.Sell, Quantity: 0.5, EntryPrice: 1.25},
	}

	result := FormatTradesOrg(trades)

	assert.Contains(t, result, "EURUSD")
	assert.Contains(t, result, "GBPUSD")
	assert.Contains(t, result, "trade-001")
	assert.Contains(t, result, "trade-002")

	parts := strings.Split(result, "\n\n\n")
	assert.Len(t, parts, 2, "Expected two trades separated by blank lines")

	assert.Empty(t, FormatTradesOrg(nil))
	assert.NotContains(t, FormatTradesOrg(trades[:1]), "\n\n\n")
}

func TestShortID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"long ID gets truncated", "trade-12345678-abcdef-more-chars", "trade-12"},
		{"exactly 8 characters", "12345678", "12345678"},
		{"less than 8 characters", "short", "short"},
		{"empty string", "", ""},
		{"exactly 9 characters gets truncated", "123456789", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shortID(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatTradeOrgStructure(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(sampleTrade("structure-test", time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)))

	lines := strings.Split(result, "\n")
	require.Greater(t, len(lines), 10)
	assert.True(t, strings.HasPrefix(lines[0], "** Trade:"))

	propertiesStart, propertiesEnd := -1, -1
	for i, line := range lines {
		if line == ":PROPERTIES:" {
			propertiesStart = i
		}
		if line == ":END:" && propertiesStart >= 0 {
			propertiesEnd = i
			break
		}
	}
	assert.Greater(t, propertiesStart, 0)
	assert.Greater(t, propertiesEnd, propertiesStart)

	thesis := strings.Index(result, "*** Thesis")
	execution := strings.Index(result, "*** Execution")
	review := strings.Index(result, "*** Review")
	assert.Greater(t, thesis, strings.Index(result, ":END:"))
	assert.Greater(t, execution, thesis)
	assert.Greater(t, review, execution)
}
