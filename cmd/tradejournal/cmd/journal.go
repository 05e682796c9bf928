package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/trade"
)

var (
	rangeFrom string
	rangeTo   string
)

// addRangeFlags adds --from/--to close date filters to a command.
func addRangeFlags(c *cobra.Command) {
	c.Flags().StringVar(&rangeFrom, "from", "", "only trades closed on or after this day (YYYY-MM-DD)")
	c.Flags().StringVar(&rangeTo, "to", "", "only trades closed on or before this day (YYYY-MM-DD)")
}

// loadTrades reads the journal, applies the date range and enriches
// the trades with P/L. Open trades are dropped when a range is given.
func loadTrades() ([]trade.Trade, error) {
	j, err := openJournal()
	if err != nil {
		return nil, err
	}
	defer j.Close()

	var trades []trade.Trade
	if rangeFrom == "" && rangeTo == "" {
		trades, err = j.ListTrades()
	} else {
		var start, end time.Time
		if start, end, err = rangeBounds(time.UTC, rangeFrom, rangeTo); err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		trades, err = j.ListTradesClosedBetween(start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}

	logger.Debug("trades loaded", zap.Int("count", len(trades)))
	return calculator().Enrich(trades), nil
}

// rangeBounds turns inclusive days into a [start, end) interval. An
// empty side is left open. Days are UTC like every analytics bucket.
func rangeBounds(loc *time.Location, from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	if from != "" {
		s, _, err := dayBounds(loc, from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = s
	}
	if to != "" {
		_, e, err := dayBounds(loc, to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = e
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return start, end, nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
