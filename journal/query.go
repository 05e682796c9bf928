package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/trade"
)

const tradeColumns = `id, symbol, side, quantity, entry_price, exit_price, entry_date, exit_date,
	commission, stop_loss, take_profit, status, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (trade.Trade, error) {
	var (
		t           trade.Trade
		side        string
		status      string
		entry, exit sql.NullTime
	)
	err := s.Scan(
		&t.ID,
		&t.Symbol,
		&side,
		&t.Quantity,
		&t.EntryPrice,
		&t.ExitPrice,
		&entry,
		&exit,
		&t.Commission,
		&t.StopLoss,
		&t.TakeProfit,
		&status,
		&t.Notes,
	)
	if err != nil {
		return trade.Trade{}, err
	}
	t.Side = trade.Side(side)
	t.Status = trade.Status(status)
	if entry.Valid {
		t.EntryDate = entry.Time.UTC()
	}
	if exit.Valid {
		t.ExitDate = exit.Time.UTC()
	}
	return t, nil
}

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(tradeID string) (trade.Trade, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trade.Trade{}, fmt.Errorf("%w: %q", ErrNotFound, tradeID)
		}
		return trade.Trade{}, fmt.Errorf("get trade %s: %w", tradeID, err)
	}
	return t, nil
}

// ListTrades returns every trade ordered by entry date, undated trades
// first.
func (j *SQLite) ListTrades() ([]trade.Trade, error) {
	return j.query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY entry_date ASC, id ASC`)
}

// ListTradesClosedBetween returns the trades that are not open whose
// close time is within [start, end). The close time is exit_date,
// falling back to entry_date.
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]trade.Trade, error) {
	trades, err := j.query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE COALESCE(exit_date, entry_date) >= ? AND COALESCE(exit_date, entry_date) < ?
		ORDER BY COALESCE(exit_date, entry_date) ASC, id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return notOpen(trades), nil
}

func notOpen(trades []trade.Trade) []trade.Trade {
	out := trades[:0]
	for _, t := range trades {
		if t.CurrentStatus() != trade.StatusOpen {
			out = append(out, t)
		}
	}
	return out
}

func (j *SQLite) query(q string, args ...any) ([]trade.Trade, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
