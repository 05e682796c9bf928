package trade

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"buy", Buy, false},
		{"BUY", Buy, false},
		{"long", Buy, false},
		{"sell", Sell, false},
		{" Short ", Sell, false},
		{"hold", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSide(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSideSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Buy.Sign())
	assert.Equal(t, -1.0, Sell.Sign())
}

func TestCurrentStatus(t *testing.T) {
	t.Parallel()

	exit := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusOpen, Trade{EntryPrice: 1}.CurrentStatus())
	assert.Equal(t, StatusClosed, Trade{EntryPrice: 1, ExitPrice: 2, ExitDate: exit}.CurrentStatus())
	assert.Equal(t, StatusClosed, Trade{EntryPrice: 1, ExitPrice: 2}.CurrentStatus())
	assert.Equal(t, StatusClosed, Trade{EntryPrice: 1, Status: StatusClosed}.CurrentStatus())
	assert.Equal(t, StatusCancelled, Trade{EntryPrice: 1, ExitPrice: 2, Status: StatusCancelled}.CurrentStatus())
}

func TestCloseTime(t *testing.T) {
	t.Parallel()

	entry := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(3 * time.Hour)

	assert.Equal(t, exit, Trade{EntryDate: entry, ExitDate: exit}.CloseTime())
	assert.Equal(t, entry, Trade{EntryDate: entry}.CloseTime())
	assert.True(t, Trade{}.CloseTime().IsZero())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	entry := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	good := Trade{
		ID:         "T1",
		Symbol:     "EURUSD",
		Side:       Buy,
		Quantity:   1,
		EntryPrice: 1.085,
		EntryDate:  entry,
	}
	require.NoError(t, good.Validate())

	tests := []struct {
		name   string
		mutate func(*Trade)
		msg    string
	}{
		{"no symbol", func(tr *Trade) { tr.Symbol = "" }, "symbol is required"},
		{"bad side", func(tr *Trade) { tr.Side = "hold" }, "side must be buy or sell"},
		{"zero quantity", func(tr *Trade) { tr.Quantity = 0 }, "quantity must be positive"},
		{"zero entry", func(tr *Trade) { tr.EntryPrice = 0 }, "entry price must be positive"},
		{"negative exit", func(tr *Trade) { tr.ExitPrice = -1 }, "exit price must be positive"},
		{"negative commission", func(tr *Trade) { tr.Commission = -2 }, "commission cannot be negative"},
		{"exit before entry", func(tr *Trade) { tr.ExitDate = entry.Add(-time.Hour) }, "exit date is before entry date"},
		{"bad status", func(tr *Trade) { tr.Status = "pending" }, "unknown status"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := good
			tt.mutate(&tr)
			err := tr.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestClosed(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "a", EntryPrice: 1, ExitPrice: 2},
		{ID: "b", EntryPrice: 1},
		{ID: "c", EntryPrice: 1, ExitPrice: 2, Status: StatusCancelled},
		{ID: "d", EntryPrice: 1, ExitPrice: 0.5},
	}

	got := Closed(trades)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}
