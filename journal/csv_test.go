package journal

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/trade"
)

func TestWriteCSVHeaderAndRow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := sampleTrade("T1", time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC))
	require.NoError(t, WriteCSV(&buf, []trade.Trade{rec}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{
		"T1", "EURUSD", "buy", "1.5", "1.085", "1.0875",
		"2024-01-01T22:05:06Z", "2024-01-02T04:05:06Z", "3.5", "1.082", "1.09",
		"", "trend",
	}, rows[1])
}

func TestReadCSVRoundTrip(t *testing.T) {
	t.Parallel()

	in := []trade.Trade{
		sampleTrade("T1", time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)),
		{ID: "O1", Symbol: "AAPL", Side: trade.Sell, Quantity: 10, EntryPrice: 190.25},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))

	out, err := ReadCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadCSVColumnsByName(t *testing.T) {
	t.Parallel()

	data := `Symbol,Side,Entry_Price,Quantity,Exit_Price,Entry_Date,Broker
eur/usd,long,1.0850,1,1.0950,2024-06-03,oanda
`
	out, err := ReadCSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "EUR/USD", got.Symbol)
	assert.Equal(t, trade.Buy, got.Side)
	assert.InDelta(t, 1.0950, got.ExitPrice, 1e-12)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got.EntryDate)
	assert.Len(t, got.ID, 26)
}

func TestReadCSVSkipsBadRows(t *testing.T) {
	t.Parallel()

	data := `id,symbol,side,quantity,entry_price,exit_date
a,EURUSD,buy,1,1.08,
b,EURUSD,sideways,1,1.08,
c,EURUSD,buy,abc,1.08,
d,EURUSD,buy,0,1.08,
e,EURUSD,sell,1,1.08,yesterday
f,AAPL,sell,2,150,2024-06-03T10:00:00Z
`
	out, err := ReadCSV(strings.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "f", out[1].ID)
}

func TestReadCSVHeaderErrors(t *testing.T) {
	t.Parallel()

	out, err := ReadCSV(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = ReadCSV(strings.NewReader("symbol,side,quantity\nEURUSD,buy,1\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry_price")
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"2024-06-03T14:30:00Z", want},
		{"2024-06-03T10:30:00-04:00", want},
		{"2024-06-03 14:30:00", want},
		{"2024-06-03T14:30", want},
		{"2024-06-03", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %v", tt.in, got)
	}

	_, err := ParseDate("03/06/2024")
	assert.Error(t, err)
}

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")

	j, err := NewCSV(path, nil)
	require.NoError(t, err)

	exit := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("T2", exit.Add(time.Hour))))
	require.NoError(t, j.RecordTrade(sampleTrade("T1", exit)))
	require.NoError(t, j.RecordTrade(trade.Trade{ID: "O1", Symbol: "AAPL", Side: trade.Buy, Quantity: 1, EntryPrice: 100}))
	require.NoError(t, j.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	j, err = NewCSV(path, nil)
	require.NoError(t, err)

	all, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, all, 3)

	closed, err := j.ListTradesClosedBetween(exit, exit.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, closed, 2)
	assert.Equal(t, "T1", closed[0].ID)
	assert.Equal(t, "T2", closed[1].ID)

	updated := closed[0]
	updated.Notes = "revised"
	require.NoError(t, j.RecordTrade(updated))
	got, err := j.GetTrade("T1")
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Notes)

	require.NoError(t, j.DeleteTrade("T1"))
	_, err = j.GetTrade("T1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(j.DeleteTrade("T1"), ErrNotFound))

	err = j.RecordTrade(trade.Trade{ID: "bad", Symbol: "AAPL", Side: trade.Buy})
	assert.True(t, errors.Is(err, ErrInvalidTrade))
}

func TestCSVJournalClosedBetweenFallsBackToEntryDate(t *testing.T) {
	t.Parallel()

	j, err := NewCSV(filepath.Join(t.TempDir(), "trades.csv"), nil)
	require.NoError(t, err)
	defer j.Close()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	undated := sampleTrade("noexit", time.Time{})
	undated.EntryDate = day.Add(9 * time.Hour)
	require.NoError(t, j.RecordTrade(undated))
	require.NoError(t, j.RecordTrade(trade.Trade{ID: "open", Symbol: "AAPL", Side: trade.Buy, Quantity: 1, EntryPrice: 100, EntryDate: day.Add(8 * time.Hour)}))
	require.NoError(t, j.RecordTrade(sampleTrade("T1", day.Add(12*time.Hour))))

	got, err := j.ListTradesClosedBetween(day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "noexit", got[0].ID)
	assert.Equal(t, "T1", got[1].ID)
}
