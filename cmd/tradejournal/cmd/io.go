package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Import trades from a CSV file",
	Long: `Read trades from a CSV file and record them in the journal. Columns
are matched by header name (id, symbol, side, quantity, entry_price,
exit_price, entry_date, exit_date, commission, stop_loss, take_profit,
status, notes). Invalid rows are skipped with a warning. Use "-" for stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <trades.csv>",
	Short: "Export journal trades to a CSV file",
	Long:  `Write every journal trade to a CSV file. Use "-" for stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	addRangeFlags(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		defer fh.Close()
		r = fh
	}

	trades, err := journal.ReadCSV(r, logger)
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	for _, t := range trades {
		if err := j.RecordTrade(t); err != nil {
			return err
		}
	}
	logger.Info("import finished", zap.String("file", args[0]), zap.Int("trades", len(trades)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d trades from %s\n", len(trades), args[0])
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	if args[0] == "-" {
		return journal.WriteCSV(cmd.OutOrStdout(), trades)
	}

	fh, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := journal.WriteCSV(fh, trades); err != nil {
		_ = fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades to %s\n", len(trades), args[0])
	return nil
}
