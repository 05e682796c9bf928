package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/trade"
)

// CSVHeader is the column order written by WriteCSV. ReadCSV matches
// columns by name, so other orders and extra columns are accepted.
var CSVHeader = []string{
	"id", "symbol", "side", "quantity", "entry_price", "exit_price",
	"entry_date", "exit_date", "commission", "stop_loss", "take_profit",
	"status", "notes",
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04", "2006-01-02"}

// WriteCSV writes trades with a header row.
func WriteCSV(w io.Writer, trades []trade.Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Symbol,
			string(t.Side),
			f(t.Quantity),
			f(t.EntryPrice),
			f(t.ExitPrice),
			date(t.EntryDate),
			date(t.ExitDate),
			f(t.Commission),
			f(t.StopLoss),
			f(t.TakeProfit),
			string(t.Status),
			t.Notes,
		})
		if err != nil {
			return fmt.Errorf("write trade %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trades written by WriteCSV or exported from a broker
// with the same column names. Rows that fail to parse or validate are
// logged and skipped. Rows without an id get a new ULID.
func ReadCSV(r io.Reader, log *zap.Logger) ([]trade.Trade, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"symbol", "side", "quantity", "entry_price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header is missing %q", required)
		}
	}

	var out []trade.Trade
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return out, fmt.Errorf("read csv line %d: %w", line, err)
		}

		t, err := parseRow(rec, cols)
		if err == nil {
			err = t.Validate()
		}
		if err != nil {
			log.Warn("skipping csv row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if t.ID == "" {
			t.ID = id.New()
		}
		out = append(out, t)
	}
	log.Info("csv trades read", zap.Int("trades", len(out)), zap.Int("lines", line-1))
	return out, nil
}

func parseRow(rec []string, cols map[string]int) (trade.Trade, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		t   trade.Trade
		err error
	)
	t.ID = get("id")
	t.Symbol = strings.ToUpper(get("symbol"))
	t.Notes = get("notes")
	t.Status = trade.Status(strings.ToLower(get("status")))
	if t.Side, err = trade.ParseSide(get("side")); err != nil {
		return t, err
	}

	nums := []struct {
		col string
		dst *float64
	}{
		{"quantity", &t.Quantity},
		{"entry_price", &t.EntryPrice},
		{"exit_price", &t.ExitPrice},
		{"commission", &t.Commission},
		{"stop_loss", &t.StopLoss},
		{"take_profit", &t.TakeProfit},
	}
	for _, n := range nums {
		if *n.dst, err = parseFloat(get(n.col)); err != nil {
			return t, fmt.Errorf("%s: %w", n.col, err)
		}
	}

	if t.EntryDate, err = ParseDate(get("entry_date")); err != nil {
		return t, fmt.Errorf("entry_date: %w", err)
	}
	if t.ExitDate, err = ParseDate(get("exit_date")); err != nil {
		return t, fmt.Errorf("exit_date: %w", err)
	}
	return t, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseDate accepts RFC3339 and a few common date layouts. The empty
// string is the zero time. Layouts without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// CSV is a Journal kept in a single CSV file. Every write rewrites
// the file, which is fine for hand-kept journals.
type CSV struct {
	path   string
	log    *zap.Logger
	trades []trade.Trade
}

var _ Journal = (*CSV)(nil)

// NewCSV loads path when it exists and starts empty otherwise.
func NewCSV(path string, log *zap.Logger) (*CSV, error) {
	if log == nil {
		log = zap.NewNop()
	}
	j := &CSV{path: path, log: log}

	fh, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	defer fh.Close()

	if j.trades, err = ReadCSV(fh, log); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *CSV) RecordTrade(t trade.Trade) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTrade, err)
	}
	if t.ID == "" {
		t.ID = id.New()
	}
	if i := j.index(t.ID); i >= 0 {
		j.trades[i] = t
	} else {
		j.trades = append(j.trades, t)
	}
	return j.flush()
}

func (j *CSV) GetTrade(tradeID string) (trade.Trade, error) {
	if i := j.index(tradeID); i >= 0 {
		return j.trades[i], nil
	}
	return trade.Trade{}, fmt.Errorf("%w: %q", ErrNotFound, tradeID)
}

func (j *CSV) ListTrades() ([]trade.Trade, error) {
	out := make([]trade.Trade, len(j.trades))
	copy(out, j.trades)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].EntryDate.Before(out[b].EntryDate)
	})
	return out, nil
}

func (j *CSV) ListTradesClosedBetween(start, end time.Time) ([]trade.Trade, error) {
	var out []trade.Trade
	for _, t := range j.trades {
		ct := t.CloseTime()
		if t.CurrentStatus() == trade.StatusOpen || ct.IsZero() || ct.Before(start) || !ct.Before(end) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CloseTime().Before(out[b].CloseTime())
	})
	return out, nil
}

func (j *CSV) DeleteTrade(tradeID string) error {
	i := j.index(tradeID)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, tradeID)
	}
	j.trades = append(j.trades[:i], j.trades[i+1:]...)
	return j.flush()
}

func (j *CSV) Close() error {
	return nil
}

func (j *CSV) index(tradeID string) int {
	for i, t := range j.trades {
		if t.ID == tradeID {
			return i
		}
	}
	return -1
}

func (j *CSV) flush() error {
	fh, err := os.Create(j.path)
	if err != nil {
		return fmt.Errorf("write journal %s: %w", j.path, err)
	}
	if err := WriteCSV(fh, j.trades); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
