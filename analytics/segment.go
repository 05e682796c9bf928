package analytics

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/trade"
)

// Bucket accumulates the closed trades that fall into one segment.
type Bucket struct {
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Profit  float64 `json:"profit"`
	WinRate float64 `json:"winRate"`
}

func (b *Bucket) add(pl float64) {
	b.Trades++
	b.Profit += pl
	switch {
	case pl > 0:
		b.Wins++
	case pl < 0:
		b.Losses++
	}
	b.WinRate = float64(b.Wins) / float64(b.Trades) * 100
}

type Session string

const (
	Asia   Session = "Asia"
	Europe Session = "Europe"
	US     Session = "US"
)

// Sessions lists the trading sessions in UTC order.
var Sessions = []Session{Asia, Europe, US}

// SessionFor buckets a UTC hour: Asia [0,8), Europe [8,16), US [16,24).
func SessionFor(t time.Time) Session {
	switch h := t.UTC().Hour(); {
	case h < 8:
		return Asia
	case h < 16:
		return Europe
	default:
		return US
	}
}

// Weekdays is the Monday first ordering used by every day bucket.
var Weekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// dayIndex maps a weekday into Weekdays.
func dayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

type Direction struct {
	Long  Bucket `json:"long"`
	Short Bucket `json:"short"`
}

type DayStat struct {
	Day string `json:"day"`
	Bucket
}

type SymbolStat struct {
	Symbol string `json:"symbol"`
	Bucket
}

type SessionStat struct {
	Session Session `json:"session"`
	Bucket
}

// HeatCell is one (weekday, hour) cell of the heatmap.
type HeatCell struct {
	Day  string `json:"day"`
	Hour int    `json:"hour"`
	Bucket
}

type MonthStat struct {
	Month string `json:"month"`
	Bucket
}

// Segments holds every calendar and instrument breakdown of a journal.
type Segments struct {
	Direction Direction `json:"direction"`

	// DaysOfWeek and Heatmap rows are Monday first.
	DaysOfWeek []DayStat `json:"daysOfWeek"`

	// Symbols is sorted by symbol, MostTraded by trade count.
	Symbols     []SymbolStat `json:"symbols"`
	MostTraded  []SymbolStat `json:"mostTraded"`
	BestSymbol  *SymbolStat  `json:"bestSymbol,omitempty"`
	WorstSymbol *SymbolStat  `json:"worstSymbol,omitempty"`

	Sessions    []SessionStat `json:"sessions"`
	BestSession Session       `json:"bestSession,omitempty"`

	Heatmap   [7][24]HeatCell `json:"heatmap"`
	BestTime  *HeatCell       `json:"bestTime,omitempty"`
	WorstTime *HeatCell       `json:"worstTime,omitempty"`

	// Months is chronological, keyed by close month.
	Months []MonthStat `json:"months"`
}

// Segment partitions the closed trades by side, weekday, symbol,
// session, weekday/hour and month. Open and cancelled trades are in no
// bucket, so MostTraded counts closed trades only. Symbols are keyed
// by their normalized form. Trades without an entry date are left out
// of the entry time buckets only.
func Segment(trades []trade.Trade) Segments {
	var seg Segments

	days := make([]DayStat, 7)
	for i, d := range Weekdays {
		days[i].Day = d.String()
	}
	sessions := make([]SessionStat, len(Sessions))
	sessionIdx := make(map[Session]int, len(Sessions))
	for i, s := range Sessions {
		sessions[i].Session = s
		sessionIdx[s] = i
	}
	for d, wd := range Weekdays {
		for h := 0; h < 24; h++ {
			seg.Heatmap[d][h].Day = wd.String()
			seg.Heatmap[d][h].Hour = h
		}
	}

	symbols := make(map[string]*SymbolStat)
	months := make(map[string]*MonthStat)

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		pl := t.ProfitLoss

		if t.Side == trade.Sell {
			seg.Direction.Short.add(pl)
		} else {
			seg.Direction.Long.add(pl)
		}

		sym := market.Normalize(t.Symbol)
		ss, ok := symbols[sym]
		if !ok {
			ss = &SymbolStat{Symbol: sym}
			symbols[sym] = ss
		}
		ss.add(pl)

		if ct := t.CloseTime(); !ct.IsZero() {
			key := ct.UTC().Format("2006-01")
			ms, ok := months[key]
			if !ok {
				ms = &MonthStat{Month: key}
				months[key] = ms
			}
			ms.add(pl)
		}

		if t.EntryDate.IsZero() {
			continue
		}
		entry := t.EntryDate.UTC()
		d := dayIndex(entry.Weekday())
		days[d].add(pl)
		sessions[sessionIdx[SessionFor(entry)]].add(pl)
		seg.Heatmap[d][entry.Hour()].add(pl)
	}

	seg.DaysOfWeek = days
	seg.Sessions = sessions
	seg.BestSession = bestSession(sessions)

	seg.Symbols = make([]SymbolStat, 0, len(symbols))
	for _, ss := range symbols {
		seg.Symbols = append(seg.Symbols, *ss)
	}
	sort.Slice(seg.Symbols, func(i, j int) bool {
		return seg.Symbols[i].Symbol < seg.Symbols[j].Symbol
	})
	seg.BestSymbol, seg.WorstSymbol = symbolExtremes(seg.Symbols)

	seg.MostTraded = make([]SymbolStat, len(seg.Symbols))
	copy(seg.MostTraded, seg.Symbols)
	sort.SliceStable(seg.MostTraded, func(i, j int) bool {
		return seg.MostTraded[i].Trades > seg.MostTraded[j].Trades
	})

	seg.BestTime, seg.WorstTime = heatExtremes(&seg.Heatmap)

	seg.Months = make([]MonthStat, 0, len(months))
	for _, ms := range months {
		seg.Months = append(seg.Months, *ms)
	}
	sort.Slice(seg.Months, func(i, j int) bool {
		return seg.Months[i].Month < seg.Months[j].Month
	})

	return seg
}

func bestSession(sessions []SessionStat) Session {
	var best *SessionStat
	for i := range sessions {
		s := &sessions[i]
		if s.Trades == 0 {
			continue
		}
		if best == nil || s.Profit > best.Profit {
			best = s
		}
	}
	if best == nil {
		return ""
	}
	return best.Session
}

func symbolExtremes(symbols []SymbolStat) (best, worst *SymbolStat) {
	for i := range symbols {
		s := symbols[i]
		if best == nil || s.Profit > best.Profit {
			b := s
			best = &b
		}
		if worst == nil || s.Profit < worst.Profit {
			w := s
			worst = &w
		}
	}
	return best, worst
}

func heatExtremes(grid *[7][24]HeatCell) (best, worst *HeatCell) {
	for d := range grid {
		for h := range grid[d] {
			c := grid[d][h]
			if c.Trades == 0 {
				continue
			}
			if best == nil || c.Profit > best.Profit {
				b := c
				best = &b
			}
			if worst == nil || c.Profit < worst.Profit {
				w := c
				worst = &w
			}
		}
	}
	return best, worst
}
