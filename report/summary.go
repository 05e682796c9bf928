package report

import (
	"fmt"
	"io"

	"github.com/rustyeddy/tradejournal/analytics"
)

const rule = "--------------------------------------------------"

// WriteSummary prints a plain text performance summary.
func WriteSummary(w io.Writer, res analytics.Result, currencyCode string) {
	s := res.Statistics
	money := func(x float64) string { return FormatCurrency(x, currencyCode) }

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Closed Trades: %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Open Trades:   %d\n", s.OpenTrades)
	fmt.Fprintf(w, "Wins:          %d\n", s.WinningTrades)
	fmt.Fprintf(w, "Losses:        %d\n", s.LosingTrades)
	fmt.Fprintf(w, "Breakeven:     %d\n", s.BreakevenTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", Round2(s.WinRate))
	fmt.Fprintf(w, "Trading Days:  %d\n", s.TradingDays)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Profit and Loss")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Net P/L:       %s\n", money(s.TotalPnL))
	fmt.Fprintf(w, "Average Trade: %s\n", money(s.AverageProfitLoss))
	fmt.Fprintf(w, "Average Win:   %s\n", money(s.AverageWin))
	fmt.Fprintf(w, "Average Loss:  %s\n", money(s.AverageLoss))
	fmt.Fprintf(w, "Largest Win:   %s\n", money(s.LargestWin))
	fmt.Fprintf(w, "Largest Loss:  %s\n", money(s.LargestLoss))
	fmt.Fprintf(w, "Commission:    %s\n", money(s.TotalCommission))
	fmt.Fprintf(w, "Profit Factor: %s\n", FormatRatio(s.ProfitFactor))
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", Round2(s.MaxDrawdown))

	seg := res.Segments
	if s.TotalTrades > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Highlights")
		fmt.Fprintln(w, rule)
		if seg.BestSymbol != nil {
			fmt.Fprintf(w, "Best Symbol:   %s (%s)\n", seg.BestSymbol.Symbol, money(seg.BestSymbol.Profit))
		}
		if seg.WorstSymbol != nil {
			fmt.Fprintf(w, "Worst Symbol:  %s (%s)\n", seg.WorstSymbol.Symbol, money(seg.WorstSymbol.Profit))
		}
		if seg.BestSession != "" {
			fmt.Fprintf(w, "Best Session:  %s\n", seg.BestSession)
		}
		if seg.BestTime != nil {
			fmt.Fprintf(w, "Best Time:     %s %02d:00 UTC (%s)\n", seg.BestTime.Day, seg.BestTime.Hour, money(seg.BestTime.Profit))
		}
		if seg.WorstTime != nil {
			fmt.Fprintf(w, "Worst Time:    %s %02d:00 UTC (%s)\n", seg.WorstTime.Day, seg.WorstTime.Hour, money(seg.WorstTime.Profit))
		}
		fmt.Fprintf(w, "Long Win Rate: %.2f%% (%d trades)\n", Round2(seg.Direction.Long.WinRate), seg.Direction.Long.Trades)
		fmt.Fprintf(w, "Short Win Rate: %.2f%% (%d trades)\n", Round2(seg.Direction.Short.WinRate), seg.Direction.Short.Trades)
	}

	fmt.Fprintln(w)
}

// WriteCurve prints the equity curve as aligned columns.
func WriteCurve(w io.Writer, curve []analytics.CurvePoint, currencyCode string) {
	fmt.Fprintf(w, "%-12s %14s %14s %14s\n", "Date", "Equity", "Peak", "Drawdown")
	for _, p := range curve {
		fmt.Fprintf(w, "%-12s %14s %14s %14s\n", p.Date,
			FormatCurrency(p.Equity, currencyCode),
			FormatCurrency(p.Peak, currencyCode),
			FormatCurrency(p.Drawdown, currencyCode))
	}
}
