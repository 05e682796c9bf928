package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/report"
	"github.com/rustyeddy/tradejournal/risk"
	"github.com/rustyeddy/tradejournal/trade"
)

var pnlCmd = &cobra.Command{
	Use:   "pnl <symbol> <buy|sell> <qty> <entry> <exit>",
	Short: "Compute the P/L of a hypothetical trade",
	Example: `  tradejournal pnl EURUSD buy 1 1.0850 1.0950
  tradejournal pnl BTCUSD buy 0.1 50000 55000 --commission 10`,
	Args: cobra.ExactArgs(5),
	RunE: runPnL,
}

var marginCmd = &cobra.Command{
	Use:     "margin <symbol> <price> <qty>",
	Short:   "Compute the margin required to open a position",
	Example: `  tradejournal margin EURUSD 1.0850 1 --leverage 30`,
	Args:    cobra.ExactArgs(3),
	RunE:    runMargin,
}

var sizeCmd = &cobra.Command{
	Use:   "size <symbol> <entry> <stop>",
	Short: "Size a position so the stop risks a fixed share of the balance",
	Example: `  tradejournal size EURUSD 1.0850 1.0800 --balance 10000 --risk 1
  tradejournal size AAPL 190 185`,
	Args: cobra.ExactArgs(3),
	RunE: runSize,
}

var classifyCmd = &cobra.Command{
	Use:   "classify <symbol>...",
	Short: "Show the instrument class and pip constants of symbols",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

var (
	calcCommission float64
	calcLeverage   float64
	sizeBalance    float64
	sizeRisk       float64
)

func init() {
	rootCmd.AddCommand(pnlCmd, marginCmd, sizeCmd, classifyCmd)

	pnlCmd.Flags().Float64Var(&calcCommission, "commission", 0, "commission paid")
	pnlCmd.Flags().Float64Var(&calcLeverage, "leverage", 0, "leverage for the forex percent gain (default from config)")
	marginCmd.Flags().Float64Var(&calcLeverage, "leverage", 0, "leverage (default from config)")
	sizeCmd.Flags().Float64Var(&sizeBalance, "balance", 0, "account balance (default from config)")
	sizeCmd.Flags().Float64Var(&sizeRisk, "risk", 0, "percent of balance to risk (default from config)")
}

// leverage is the --leverage flag when given, else the configured one.
func leverage() float64 {
	if calcLeverage > 0 {
		return calcLeverage
	}
	return cfg.Analytics.Leverage
}

func runPnL(cmd *cobra.Command, args []string) error {
	side, err := trade.ParseSide(args[1])
	if err != nil {
		return err
	}
	nums, err := parseFloats(args[2:]...)
	if err != nil {
		return err
	}
	t := trade.Trade{
		Symbol:     strings.ToUpper(args[0]),
		Side:       side,
		Quantity:   nums[0],
		EntryPrice: nums[1],
		ExitPrice:  nums[2],
		Commission: calcCommission,
	}
	if err := t.Validate(); err != nil {
		return err
	}

	in := market.Lookup(t.Symbol)
	res := calculator().Compute(t, in)

	ccy := cfg.Account.Currency
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Instrument: %s (%s)\n", in.Symbol, in.Class)
	if in.IsForex() {
		fmt.Fprintf(out, "Pips:       %s\n", report.FormatPips(res.Pips))
	}
	fmt.Fprintf(out, "Gross P/L:  %s\n", report.FormatCurrency(res.PnL, ccy))
	fmt.Fprintf(out, "Commission: %s\n", report.FormatCurrency(res.Commission, ccy))
	fmt.Fprintf(out, "Net P/L:    %s\n", report.FormatCurrency(res.NetPnL, ccy))
	fmt.Fprintf(out, "Return:     %s\n", report.FormatPercent(res.PercentageGain))
	fmt.Fprintf(out, "Move:       %.2f%%\n", report.Round2(res.RiskReward))
	return nil
}

func runMargin(cmd *cobra.Command, args []string) error {
	nums, err := parseFloats(args[1:]...)
	if err != nil {
		return err
	}
	lev := leverage()
	m := risk.Margin(args[0], nums[0], nums[1], lev)
	fmt.Fprintf(cmd.OutOrStdout(), "Margin: %s at %.0f:1\n", report.FormatCurrency(m, cfg.Account.Currency), lev)
	return nil
}

func runSize(cmd *cobra.Command, args []string) error {
	nums, err := parseFloats(args[1:]...)
	if err != nil {
		return err
	}
	in := risk.Inputs{
		Balance:    cfg.Account.StartingBalance,
		RiskPct:    cfg.Analytics.RiskPercent,
		EntryPrice: nums[0],
		StopPrice:  nums[1],
		Symbol:     args[0],
	}
	if sizeBalance > 0 {
		in.Balance = sizeBalance
	}
	if sizeRisk > 0 {
		in.RiskPct = sizeRisk
	}

	res := risk.Calculate(in)
	ccy := cfg.Account.Currency
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Risk:   %s (%.2f%% of %s)\n", report.FormatCurrency(res.RiskAmount, ccy),
		risk.RiskPct(res.RiskAmount, in.Balance), report.FormatCurrency(in.Balance, ccy))
	if market.Lookup(args[0]).IsForex() {
		fmt.Fprintf(out, "Stop:   %.1f pips\n", res.StopPips)
		fmt.Fprintf(out, "Size:   %.2f lots\n", res.Size)
	} else {
		fmt.Fprintf(out, "Stop:   %g\n", res.PriceRisk)
		fmt.Fprintf(out, "Size:   %.0f units\n", res.Size)
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, s := range args {
		in := market.Lookup(s)
		if !in.IsForex() {
			fmt.Fprintf(out, "%-10s %s\n", in.Symbol, in.Class)
			continue
		}
		known := ""
		if !in.Meta.Known {
			known = " (not in pair table)"
		}
		fmt.Fprintf(out, "%-10s %s pip=%g pip_value=%g%s\n", in.Symbol, in.Class, in.Meta.PipSize, in.Meta.PipValue, known)
	}
	return nil
}

func parseFloats(args ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", a)
		}
		out[i] = x
	}
	return out, nil
}
