package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/report"
	"github.com/rustyeddy/tradejournal/trade"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Add, list, show and delete journal trades",
	Long: `Manage the trades stored in the journal.

Examples:
  tradejournal trade add --symbol EURUSD --side buy --qty 1 --entry 1.0850 --exit 1.0950
  tradejournal trade list --from 2024-06-01 --to 2024-06-30
  tradejournal trade show 01HZX3...
  tradejournal trade delete 01HZX3...`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade (an existing id is replaced)",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades with their P/L",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show one trade as an Org-mode block",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	addID         string
	addSymbol     string
	addSide       string
	addQty        float64
	addEntry      float64
	addExit       float64
	addEntryDate  string
	addExitDate   string
	addCommission float64
	addStop       float64
	addTarget     float64
	addStatus     string
	addNotes      string

	showJSON bool
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeShowCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	f := tradeAddCmd.Flags()
	f.StringVar(&addID, "id", "", "trade id (default: new ULID)")
	f.StringVarP(&addSymbol, "symbol", "s", "", "instrument symbol, e.g. EURUSD, BTCUSD, AAPL")
	f.StringVar(&addSide, "side", "buy", "buy|sell (long|short accepted)")
	f.Float64VarP(&addQty, "qty", "q", 0, "quantity: lots for forex, units otherwise")
	f.Float64Var(&addEntry, "entry", 0, "entry price")
	f.Float64Var(&addExit, "exit", 0, "exit price (omit for an open trade)")
	f.StringVar(&addEntryDate, "entry-date", "", "entry time (RFC3339 or YYYY-MM-DD)")
	f.StringVar(&addExitDate, "exit-date", "", "exit time (RFC3339 or YYYY-MM-DD)")
	f.Float64Var(&addCommission, "commission", 0, "commission paid")
	f.Float64Var(&addStop, "sl", 0, "stop loss price")
	f.Float64Var(&addTarget, "tp", 0, "take profit price")
	f.StringVar(&addStatus, "status", "", "open|closed|cancelled (default: derived)")
	f.StringVar(&addNotes, "notes", "", "free text notes")
	_ = tradeAddCmd.MarkFlagRequired("symbol")
	_ = tradeAddCmd.MarkFlagRequired("qty")
	_ = tradeAddCmd.MarkFlagRequired("entry")

	addRangeFlags(tradeListCmd)
	tradeShowCmd.Flags().BoolVar(&showJSON, "json", false, "print the enriched trade as JSON")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	side, err := trade.ParseSide(addSide)
	if err != nil {
		return err
	}
	entryDate, err := journal.ParseDate(addEntryDate)
	if err != nil {
		return fmt.Errorf("entry-date: %w", err)
	}
	exitDate, err := journal.ParseDate(addExitDate)
	if err != nil {
		return fmt.Errorf("exit-date: %w", err)
	}

	t := trade.Trade{
		ID:         addID,
		Symbol:     strings.ToUpper(addSymbol),
		Side:       side,
		Quantity:   addQty,
		EntryPrice: addEntry,
		ExitPrice:  addExit,
		EntryDate:  entryDate,
		ExitDate:   exitDate,
		Commission: addCommission,
		StopLoss:   addStop,
		TakeProfit: addTarget,
		Status:     trade.Status(strings.ToLower(addStatus)),
		Notes:      addNotes,
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.RecordTrade(t); err != nil {
		return err
	}
	logger.Info("trade recorded", zap.String("symbol", t.Symbol), zap.String("side", string(t.Side)))

	res := calculator().Calculate(t)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %s %s %s: net %s\n",
		t.Symbol, t.Side, f2(t.Quantity), report.FormatCurrency(res.NetPnL, cfg.Account.Currency))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}
	writeTradeTable(cmd.OutOrStdout(), trades)
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}
	t = calculator().Enrich([]trade.Trade{t})[0]

	out := cmd.OutOrStdout()
	if showJSON {
		return writeJSON(out, t)
	}
	fmt.Fprintln(out, journal.FormatTradeOrg(t))
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
	return nil
}

func writeTradeTable(w io.Writer, trades []trade.Trade) {
	ccy := cfg.Account.Currency
	fmt.Fprintf(w, "%-26s %-8s %-4s %10s %12s %12s %-9s %14s %10s\n",
		"ID", "Symbol", "Side", "Qty", "Entry", "Exit", "Status", "P/L", "P/L %")
	for _, t := range trades {
		exit := "-"
		if t.HasExit() {
			exit = fmt.Sprintf("%.5g", t.ExitPrice)
		}
		fmt.Fprintf(w, "%-26s %-8s %-4s %10s %12.5g %12s %-9s %14s %10s\n",
			t.ID, t.Symbol, t.Side, f2(t.Quantity), t.EntryPrice, exit, t.CurrentStatus(),
			report.FormatCurrency(t.ProfitLoss, ccy), report.FormatPercent(t.ProfitLossPercent))
	}
	fmt.Fprintf(w, "%d trades\n", len(trades))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func f2(x float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", x), "0"), ".")
}
