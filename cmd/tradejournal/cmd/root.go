package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/logging"
	"github.com/rustyeddy/tradejournal/pnl"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A trade journal with P&L and performance analytics",
	Long: `Tradejournal keeps a log of forex, crypto and equity trades and
computes their performance.

It provides tools for:
  - Recording, importing and exporting trades (SQLite or CSV)
  - Forex aware P/L in pips and account currency
  - Win rate, profit factor, drawdown and streak statistics
  - Breakdowns by side, weekday, session, symbol and hour
  - Equity curves and Org-mode performance reports
  - Margin and risk-based position sizing`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	cfgFile    string
	dbOverride string
	logLevel   string
)

var (
	cfg    = config.Default()
	logger = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbOverride, "db", "d", "", "journal path, overrides the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if dbOverride != "" {
		if loaded.Journal.Type == "csv" {
			loaded.Journal.CSVPath = dbOverride
		} else {
			loaded.Journal.DBPath = dbOverride
		}
	}

	l, err := logging.New(loaded.Log.Level, loaded.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	cfg, logger = loaded, l
	logger.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("journal", cfg.Journal.Type),
		zap.Float64("leverage", cfg.Analytics.Leverage))
	return nil
}

func openJournal() (journal.Journal, error) {
	var (
		j   journal.Journal
		err error
	)
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.CSVPath, logger)
	default:
		j, err = journal.NewSQLite(cfg.Journal.DBPath, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func calculator() pnl.Calculator {
	return pnl.New(leverage())
}
