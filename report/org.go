package report

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/rustyeddy/tradejournal/analytics"
)

// Document is the input of the Org-mode performance report.
type Document struct {
	Title           string
	Created         time.Time
	Currency        string
	StartingBalance float64
	Result          analytics.Result
}

var orgFuncs = template.FuncMap{
	"money": func(code string, x float64) string { return FormatCurrency(x, code) },
	"pct":   func(x float64) string { return fmt.Sprintf("%.2f", Round2(x)) },
	"ratio": FormatRatio,
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var orgTemplate = template.Must(template.New("performance").Funcs(orgFuncs).Parse(PerformanceOrgTemplate))

// WriteOrg renders doc as an Org-mode outline.
func WriteOrg(w io.Writer, doc Document) error {
	if doc.Currency == "" {
		doc.Currency = DefaultCurrency
	}
	if err := orgTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render org report: %w", err)
	}
	return nil
}

const PerformanceOrgTemplate = `* JOURNAL: {{if .Title}}{{.Title}}{{else}}Trading Performance{{end}}
:PROPERTIES:
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:CURRENCY:    {{.Currency}}
:START_BAL:   {{printf "%.2f" .StartingBalance}}
:TRADES:      {{.Result.Statistics.TotalTrades}}
:WINS:        {{.Result.Statistics.WinningTrades}}
:LOSSES:      {{.Result.Statistics.LosingTrades}}
:WIN_RATE:    {{pct .Result.Statistics.WinRate}}
:NET_PL:      {{printf "%.2f" .Result.Statistics.TotalPnL}}
:PROFIT_FAC:  {{ratio .Result.Statistics.ProfitFactor}}
:MAX_DD_PCT:  {{pct .Result.Statistics.MaxDrawdown}}
:END:

** Performance Summary
- Net P/L:          *{{money .Currency .Result.Statistics.TotalPnL}}*
- Win Rate:         *{{pct .Result.Statistics.WinRate}}%*
- Profit Factor:    *{{ratio .Result.Statistics.ProfitFactor}}*
- Max Drawdown:     *{{pct .Result.Statistics.MaxDrawdown}}%*
- Largest Win:      *{{money .Currency .Result.Statistics.LargestWin}}*
- Largest Loss:     *{{money .Currency .Result.Statistics.LargestLoss}}*
- Trading Days:     *{{.Result.Statistics.TradingDays}}*

** Sessions
| Session | Trades | Wins | Losses | P/L |
|---------+--------+------+--------+-----|
{{- range .Result.Segments.Sessions}}
| {{.Session}} | {{.Trades}} | {{.Wins}} | {{.Losses}} | {{money $.Currency .Profit}} |
{{- end}}

** Day of Week
| Day | Trades | P/L |
|-----+--------+-----|
{{- range .Result.Segments.DaysOfWeek}}
| {{.Day}} | {{.Trades}} | {{money $.Currency .Profit}} |
{{- end}}

** Symbols
| Symbol | Trades | Win Rate | P/L |
|--------+--------+----------+-----|
{{- range .Result.Segments.MostTraded}}
| {{.Symbol}} | {{.Trades}} | {{pct .WinRate}}% | {{money $.Currency .Profit}} |
{{- end}}

** Equity Curve
| Date | Equity | Drawdown |
|------+--------+----------|
{{- range .Result.Curve}}
| {{.Date}} | {{printf "%.2f" .Equity}} | {{printf "%.2f" .Drawdown}} |
{{- end}}
`
