package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/analytics"
	"github.com/rustyeddy/tradejournal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print performance statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Print breakdowns by side, weekday, session, symbol, hour and month",
	Args:  cobra.NoArgs,
	RunE:  runSegments,
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the equity and drawdown curve",
	Args:  cobra.NoArgs,
	RunE:  runCurve,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an Org-mode performance report",
	Long: `Render statistics, sessions, weekdays, symbols and the equity curve
as an Org-mode document.

Example:
  tradejournal report --from 2024-06-01 --to 2024-06-30 --title June -o june.org`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var (
	asJSON      bool
	reportTitle string
	reportOut   string
)

func init() {
	for _, c := range []*cobra.Command{statsCmd, segmentsCmd, curveCmd} {
		rootCmd.AddCommand(c)
		addRangeFlags(c)
		c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	}

	rootCmd.AddCommand(reportCmd)
	addRangeFlags(reportCmd)
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "output file (default stdout)")
}

func analyze() (analytics.Result, error) {
	trades, err := loadTrades()
	if err != nil {
		return analytics.Result{}, err
	}
	return analytics.Analyze(trades, cfg.Account.StartingBalance), nil
}

func runStats(cmd *cobra.Command, args []string) error {
	res, err := analyze()
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), res.Statistics)
	}
	report.WriteSummary(cmd.OutOrStdout(), res, cfg.Account.Currency)
	return nil
}

func runSegments(cmd *cobra.Command, args []string) error {
	res, err := analyze()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, res.Segments)
	}

	seg := res.Segments
	money := func(x float64) string { return report.FormatCurrency(x, cfg.Account.Currency) }

	fmt.Fprintln(out, "Direction")
	fmt.Fprintf(out, "  %-8s %6d trades %7.2f%% win %14s\n", "Long", seg.Direction.Long.Trades, report.Round2(seg.Direction.Long.WinRate), money(seg.Direction.Long.Profit))
	fmt.Fprintf(out, "  %-8s %6d trades %7.2f%% win %14s\n", "Short", seg.Direction.Short.Trades, report.Round2(seg.Direction.Short.WinRate), money(seg.Direction.Short.Profit))

	fmt.Fprintln(out, "\nDay of Week")
	for _, d := range seg.DaysOfWeek {
		fmt.Fprintf(out, "  %-10s %6d trades %14s\n", d.Day, d.Trades, money(d.Profit))
	}

	fmt.Fprintln(out, "\nSessions (UTC)")
	for _, s := range seg.Sessions {
		fmt.Fprintf(out, "  %-8s %6d trades %7.2f%% win %14s\n", s.Session, s.Trades, report.Round2(s.WinRate), money(s.Profit))
	}

	fmt.Fprintln(out, "\nSymbols")
	for _, s := range seg.MostTraded {
		fmt.Fprintf(out, "  %-10s %6d trades %7.2f%% win %14s\n", s.Symbol, s.Trades, report.Round2(s.WinRate), money(s.Profit))
	}

	fmt.Fprintln(out, "\nMonths")
	for _, m := range seg.Months {
		fmt.Fprintf(out, "  %-8s %6d trades %14s\n", m.Month, m.Trades, money(m.Profit))
	}

	if seg.BestTime != nil && seg.WorstTime != nil {
		fmt.Fprintf(out, "\nBest time:  %s %02d:00 UTC %s\n", seg.BestTime.Day, seg.BestTime.Hour, money(seg.BestTime.Profit))
		fmt.Fprintf(out, "Worst time: %s %02d:00 UTC %s\n", seg.WorstTime.Day, seg.WorstTime.Hour, money(seg.WorstTime.Profit))
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	res, err := analyze()
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), res.Curve)
	}
	report.WriteCurve(cmd.OutOrStdout(), res.Curve, cfg.Account.Currency)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	res, err := analyze()
	if err != nil {
		return err
	}
	doc := report.Document{
		Title:           reportTitle,
		Created:         time.Now(),
		Currency:        cfg.Account.Currency,
		StartingBalance: cfg.Account.StartingBalance,
		Result:          res,
	}

	if reportOut == "" {
		return report.WriteOrg(cmd.OutOrStdout(), doc)
	}
	fh, err := os.Create(reportOut)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteOrg(fh, doc); err != nil {
		_ = fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", reportOut)
	return nil
}
