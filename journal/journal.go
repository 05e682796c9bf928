package journal

import (
	"errors"
	"time"

	"github.com/rustyeddy/tradejournal/trade"
)

var (
	ErrNotFound     = errors.New("trade not found")
	ErrInvalidTrade = errors.New("invalid trade")
)

// Journal is the persistent home of the trade log. Analytics never
// read it directly; callers load trades and hand them to pnl.Enrich.
type Journal interface {
	RecordTrade(trade.Trade) error
	GetTrade(id string) (trade.Trade, error)
	ListTrades() ([]trade.Trade, error)
	// ListTradesClosedBetween skips open trades and dates the rest by
	// exit date, else entry date, within [start, end).
	ListTradesClosedBetween(start, end time.Time) ([]trade.Trade, error)
	DeleteTrade(id string) error
	Close() error
}
