package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{100.0 / 3, 33.33},
		{2.675, 2.68},
		{-1.005, -1.01},
		{0, 0},
		{12, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}

	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"negative", -12.5, "USD", "-$12.50"},
		{"grouping", 1234.5, "USD", "$1,234.50"},
		{"zero", 0, "USD", "$0.00"},
		{"default_code", 5, "", "$5.00"},
		{"euro", 99.999, "EUR", "€100.00"},
		{"unknown_code", 1, "XYZ1", "XYZ11.00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.code))
		})
	}
}

func TestFormatPips(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+100.0 pips", FormatPips(100))
	assert.Equal(t, "-50.0 pips", FormatPips(-50))
	assert.Equal(t, "+12.5 pips", FormatPips(12.49))
	assert.Equal(t, "+0.0 pips", FormatPips(-0.01))
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-5.00%", FormatPercent(-5))
	assert.Equal(t, "+33.33%", FormatPercent(100.0/3))
	assert.Equal(t, "+0.00%", FormatPercent(-0.001))
}

func TestFormatRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "∞", FormatRatio(math.Inf(1)))
	assert.Equal(t, "3.00", FormatRatio(3))
	assert.Equal(t, "0.67", FormatRatio(2.0/3))
}
