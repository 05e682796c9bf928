package trade

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide accepts buy/sell and the long/short aliases, any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "long":
		return Buy, nil
	case "sell", "short":
		return Sell, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// Sign is +1 for buys and -1 for sells.
func (s Side) Sign() float64 {
	if s == Sell {
		return -1
	}
	return 1
}

type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// Trade is a single journal entry. Zero values mean "absent" for the
// optional fields: ExitPrice, ExitDate, EntryDate, StopLoss and
// TakeProfit.
type Trade struct {
	ID       string  `json:"id" yaml:"id"`
	Symbol   string  `json:"symbol" yaml:"symbol"`
	Side     Side    `json:"side" yaml:"side"`
	Quantity float64 `json:"quantity" yaml:"quantity"`

	EntryPrice float64   `json:"entryPrice" yaml:"entry_price"`
	ExitPrice  float64   `json:"exitPrice,omitempty" yaml:"exit_price,omitempty"`
	EntryDate  time.Time `json:"entryDate" yaml:"entry_date"`
	ExitDate   time.Time `json:"exitDate,omitempty" yaml:"exit_date,omitempty"`

	Commission float64 `json:"commission" yaml:"commission"`
	StopLoss   float64 `json:"stopLoss,omitempty" yaml:"stop_loss,omitempty"`
	TakeProfit float64 `json:"takeProfit,omitempty" yaml:"take_profit,omitempty"`

	// Status only needs to be set for cancelled trades, open and
	// closed are derived from the exit fields.
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`
	Notes  string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Filled in by pnl.Enrich.
	ProfitLoss        float64 `json:"profitLoss" yaml:"profit_loss"`
	ProfitLossPercent float64 `json:"profitLossPercent" yaml:"profit_loss_percent"`
	Pips              float64 `json:"pips,omitempty" yaml:"pips,omitempty"`
}

// HasExit reports whether an exit price was recorded.
func (t Trade) HasExit() bool {
	return t.ExitPrice > 0
}

// CurrentStatus derives the status. An explicit cancelled or closed
// status is honored, otherwise the trade is closed once it has an
// exit price.
func (t Trade) CurrentStatus() Status {
	switch {
	case t.Status == StatusCancelled:
		return StatusCancelled
	case t.Status == StatusClosed:
		return StatusClosed
	case t.HasExit():
		return StatusClosed
	}
	return StatusOpen
}

func (t Trade) IsClosed() bool {
	return t.CurrentStatus() == StatusClosed
}

// CloseTime is the exit date, falling back to the entry date.
func (t Trade) CloseTime() time.Time {
	if !t.ExitDate.IsZero() {
		return t.ExitDate
	}
	return t.EntryDate
}

var ErrInvalid = errors.New("invalid trade")

// Validate checks the shape of a record before it is stored. The
// analytics packages never call it.
func (t Trade) Validate() error {
	var errs []string

	if strings.TrimSpace(t.Symbol) == "" {
		errs = append(errs, "symbol is required")
	}
	if t.Side != Buy && t.Side != Sell {
		errs = append(errs, fmt.Sprintf("side must be buy or sell, got %q", t.Side))
	}
	if t.Quantity <= 0 {
		errs = append(errs, "quantity must be positive")
	}
	if t.EntryPrice <= 0 {
		errs = append(errs, "entry price must be positive")
	}
	if t.ExitPrice < 0 {
		errs = append(errs, "exit price must be positive when set")
	}
	if t.Commission < 0 {
		errs = append(errs, "commission cannot be negative")
	}
	if !t.ExitDate.IsZero() && !t.EntryDate.IsZero() && t.ExitDate.Before(t.EntryDate) {
		errs = append(errs, "exit date is before entry date")
	}
	switch t.Status {
	case "", StatusOpen, StatusClosed, StatusCancelled:
	default:
		errs = append(errs, fmt.Sprintf("unknown status %q", t.Status))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %s: %s", ErrInvalid, t.ID, strings.Join(errs, "; "))
	}
	return nil
}

// Closed returns the closed trades, preserving order.
func Closed(trades []Trade) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			out = append(out, t)
		}
	}
	return out
}
