// market/instruments.go
package market

import "strings"

// Class is the instrument class a symbol resolves to. It decides which
// P/L formula applies to a trade.
type Class string

const (
	Forex  Class = "forex"
	Crypto Class = "crypto"
	Equity Class = "equity"
)

const (
	// LotSize is the number of base currency units in 1.0 standard lot.
	LotSize = 100_000.0

	DefaultPipSize  = 0.0001
	JPYPipSize      = 0.01
	DefaultPipValue = 10.0
)

// InstrumentMeta holds the forex constants for a currency pair.
type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string

	// PipSize is the price increment of one pip.
	PipSize float64
	// PipValue is the account currency value of one pip on 1.0 lot.
	PipValue float64

	// Known is false for six letter symbols missing from the pair table.
	Known bool
}

func pair(name string, pipValue float64) InstrumentMeta {
	m := InstrumentMeta{
		Name:          name,
		BaseCurrency:  name[:3],
		QuoteCurrency: name[3:],
		PipSize:       DefaultPipSize,
		PipValue:      pipValue,
		Known:         true,
	}
	if m.QuoteCurrency == "JPY" {
		m.PipSize = JPYPipSize
	}
	return m
}

// Instruments is the static pair table, keyed by normalized symbol.
// Pip values are per standard lot in a USD account.
var Instruments = func() map[string]InstrumentMeta {
	table := map[string]float64{
		// majors
		"EURUSD": 10, "GBPUSD": 10, "AUDUSD": 10, "NZDUSD": 10,
		"USDJPY": 6.67, "USDCHF": 11.11, "USDCAD": 7.35,

		// euro crosses
		"EURGBP": 12.66, "EURJPY": 6.67, "EURCHF": 11.11, "EURAUD": 6.54,
		"EURCAD": 7.35, "EURNZD": 5.95,

		// sterling crosses
		"GBPJPY": 6.67, "GBPCHF": 11.11, "GBPAUD": 6.54, "GBPCAD": 7.35,
		"GBPNZD": 5.95,

		// yen crosses
		"AUDJPY": 6.67, "CADJPY": 6.67, "CHFJPY": 6.67, "NZDJPY": 6.67,

		// commodity crosses
		"AUDCAD": 7.35, "AUDCHF": 11.11, "AUDNZD": 5.95, "CADCHF": 11.11,
		"NZDCAD": 7.35, "NZDCHF": 11.11,

		// metals quoted like pairs
		"XAUUSD": 10, "XAGUSD": 50,
	}

	out := make(map[string]InstrumentMeta, len(table))
	for name, pv := range table {
		out[name] = pair(name, pv)
	}
	return out
}()

// Normalize upper-cases a symbol and strips the "/", "_" and "-"
// separators so "eur/usd" and "EUR_USD" both become "EURUSD".
func Normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	return strings.NewReplacer("/", "", "_", "", "-", "").Replace(s)
}

// Classify resolves a symbol to its instrument class. The rules are
// applied in order and the first match wins:
//
//  1. a pair from the static table is forex
//  2. BTC, ETH, a USDT/BUSD suffix or any other USD symbol is crypto
//  3. any other six letter symbol is treated as an unknown forex pair
//  4. everything else is equity
func Classify(symbol string) Class {
	s := Normalize(symbol)

	if _, ok := Instruments[s]; ok {
		return Forex
	}
	if isCrypto(s) {
		return Crypto
	}
	if isSixLetters(s) {
		return Forex
	}
	return Equity
}

// ForexMeta returns the pair constants for a forex symbol. Unknown six
// letter symbols get the fallback pip size and pip value. ok is false
// when the symbol does not classify as forex.
func ForexMeta(symbol string) (meta InstrumentMeta, ok bool) {
	s := Normalize(symbol)
	if m, found := Instruments[s]; found {
		return m, true
	}
	if Classify(s) != Forex {
		return InstrumentMeta{}, false
	}
	return InstrumentMeta{
		Name:          s,
		BaseCurrency:  s[:3],
		QuoteCurrency: s[3:],
		PipSize:       DefaultPipSize,
		PipValue:      DefaultPipValue,
	}, true
}

// Instrument is a classified symbol with its forex constants, if any.
type Instrument struct {
	Symbol string
	Class  Class
	Meta   InstrumentMeta
}

// Lookup classifies a symbol once and carries the result.
func Lookup(symbol string) Instrument {
	in := Instrument{
		Symbol: Normalize(symbol),
		Class:  Classify(symbol),
	}
	if in.Class == Forex {
		in.Meta, _ = ForexMeta(symbol)
	}
	return in
}

func (in Instrument) IsForex() bool {
	return in.Class == Forex
}

func isCrypto(s string) bool {
	switch {
	case strings.Contains(s, "BTC"), strings.Contains(s, "ETH"):
		return true
	case strings.HasSuffix(s, "USDT"), strings.HasSuffix(s, "BUSD"):
		return true
	case strings.Contains(s, "USD"):
		// table pairs were matched before we got here
		return true
	}
	return false
}

func isSixLetters(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
