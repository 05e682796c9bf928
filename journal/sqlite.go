package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/trade"
)

type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

var _ Journal = (*SQLite)(nil)

// NewSQLite opens (creating if needed) the trade store at path.
func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debug("journal opened", zap.String("path", path))
	return &SQLite{db: db, log: log}, nil
}

// RecordTrade inserts t or replaces the row with the same id. A trade
// without an id is given a new ULID.
func (j *SQLite) RecordTrade(t trade.Trade) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTrade, err)
	}
	if t.ID == "" {
		t.ID = id.New()
	}

	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, symbol, side, quantity, entry_price, exit_price, entry_date, exit_date,
		 commission, stop_loss, take_profit, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			symbol = excluded.symbol,
			side = excluded.side,
			quantity = excluded.quantity,
			entry_price = excluded.entry_price,
			exit_price = excluded.exit_price,
			entry_date = excluded.entry_date,
			exit_date = excluded.exit_date,
			commission = excluded.commission,
			stop_loss = excluded.stop_loss,
			take_profit = excluded.take_profit,
			status = excluded.status,
			notes = excluded.notes`,
		t.ID, t.Symbol, string(t.Side), t.Quantity, t.EntryPrice, t.ExitPrice,
		nullTime(t.EntryDate), nullTime(t.ExitDate),
		t.Commission, t.StopLoss, t.TakeProfit, string(t.Status), t.Notes,
	)
	if err != nil {
		return fmt.Errorf("record trade %s: %w", t.ID, err)
	}
	j.log.Debug("trade recorded", zap.String("id", t.ID), zap.String("symbol", t.Symbol))
	return nil
}

// DeleteTrade removes a trade by id.
func (j *SQLite) DeleteTrade(tradeID string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, tradeID)
	if err != nil {
		return fmt.Errorf("delete trade %s: %w", tradeID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, tradeID)
	}
	j.log.Debug("trade deleted", zap.String("id", tradeID))
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// nullTime stores the zero time as NULL and everything else in UTC so
// the text encoding sorts chronologically.
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
