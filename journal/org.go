package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradejournal/risk"
	"github.com/rustyeddy/tradejournal/trade"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting into a journal.
// It includes narrative placeholders (Thesis/Execution/Review) while keeping all
// structured facts in a PROPERTIES drawer for easy search. P&L properties
// are only meaningful on enriched trades.
func FormatTradeOrg(t trade.Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, strings.ToUpper(string(t.Side)), shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":SYMBOL: %s\n", t.Symbol)
	fmt.Fprintf(&b, ":SIDE: %s\n", t.Side)
	fmt.Fprintf(&b, ":STATUS: %s\n", t.CurrentStatus())
	fmt.Fprintf(&b, ":QUANTITY: %s\n", f(t.Quantity))
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.5f\n", t.EntryPrice)
	if t.HasExit() {
		fmt.Fprintf(&b, ":EXIT_PRICE: %.5f\n", t.ExitPrice)
	}
	if !t.EntryDate.IsZero() {
		fmt.Fprintf(&b, ":OPEN_TIME: %s\n", t.EntryDate.UTC().Format(time.RFC3339))
	}
	if !t.ExitDate.IsZero() {
		fmt.Fprintf(&b, ":CLOSE_TIME: %s\n", t.ExitDate.UTC().Format(time.RFC3339))
	}
	if t.StopLoss > 0 {
		fmt.Fprintf(&b, ":STOP_LOSS: %.5f\n", t.StopLoss)
	}
	if t.TakeProfit > 0 {
		fmt.Fprintf(&b, ":TAKE_PROFIT: %.5f\n", t.TakeProfit)
	}
	if rr := risk.RR(t.EntryPrice, t.StopLoss, t.TakeProfit); rr > 0 {
		fmt.Fprintf(&b, ":PLANNED_RR: %.2f\n", rr)
	}
	fmt.Fprintf(&b, ":COMMISSION: %.2f\n", t.Commission)
	fmt.Fprintf(&b, ":PROFIT_LOSS: %.2f\n", t.ProfitLoss)
	fmt.Fprintf(&b, ":PROFIT_LOSS_PCT: %.2f\n", t.ProfitLossPercent)
	if t.Pips != 0 {
		fmt.Fprintf(&b, ":PIPS: %.1f\n", t.Pips)
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- ")
	b.WriteString(t.Notes)
	b.WriteString("\n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []trade.Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
