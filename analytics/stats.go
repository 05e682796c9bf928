// Package analytics folds enriched journal trades into performance
// statistics, calendar breakdowns and equity curves. Every function is
// a pure transform of the slice it is given; nothing is cached and the
// input is never modified.
package analytics

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/rustyeddy/tradejournal/trade"
)

const dayLayout = "2006-01-02"

// Statistics summarizes the closed trades of a journal.
type Statistics struct {
	TotalTrades     int `json:"totalTrades"`
	WinningTrades   int `json:"winningTrades"`
	LosingTrades    int `json:"losingTrades"`
	BreakevenTrades int `json:"breakevenTrades"`
	OpenTrades      int `json:"openTrades"`
	CancelledTrades int `json:"cancelledTrades"`

	WinRate           float64 `json:"winRate"`
	TotalPnL          float64 `json:"totalPnl"`
	AverageProfitLoss float64 `json:"averageProfitLoss"`
	GrossProfit       float64 `json:"grossProfit"`
	GrossLoss         float64 `json:"grossLoss"`
	AverageWin        float64 `json:"averageWin"`
	AverageLoss       float64 `json:"averageLoss"`
	LargestWin        float64 `json:"largestWin"`
	LargestLoss       float64 `json:"largestLoss"`
	TotalCommission   float64 `json:"totalCommission"`

	// ProfitFactor is +Inf when there are profits and no losses.
	ProfitFactor float64 `json:"profitFactor"`
	// MaxDrawdown is the largest peak to trough drop in percent.
	MaxDrawdown float64 `json:"maxDrawdown"`

	MaxConsecutiveWins   int `json:"maxConsecutiveWins"`
	MaxConsecutiveLosses int `json:"maxConsecutiveLosses"`
	TradingDays          int `json:"tradingDays"`
}

// MarshalJSON writes an infinite profit factor as null since JSON has
// no infinity.
func (s Statistics) MarshalJSON() ([]byte, error) {
	type plain Statistics
	out := struct {
		plain
		ProfitFactor *float64 `json:"profitFactor"`
	}{plain: plain(s)}

	if !math.IsInf(s.ProfitFactor, 0) && !math.IsNaN(s.ProfitFactor) {
		pf := s.ProfitFactor
		out.ProfitFactor = &pf
	}
	return json.Marshal(out)
}

// Aggregate computes Statistics with the drawdown balance starting at 0.
func Aggregate(trades []trade.Trade) Statistics {
	return AggregateFrom(trades, 0)
}

// AggregateFrom computes Statistics over the closed trades. Only the
// drawdown depends on startingBalance.
func AggregateFrom(trades []trade.Trade, startingBalance float64) Statistics {
	var s Statistics

	closed := make([]trade.Trade, 0, len(trades))
	for _, t := range trades {
		switch t.CurrentStatus() {
		case trade.StatusClosed:
			closed = append(closed, t)
		case trade.StatusOpen:
			s.OpenTrades++
		case trade.StatusCancelled:
			s.CancelledTrades++
		}
	}

	days := make(map[string]struct{})
	for _, t := range closed {
		pl := t.ProfitLoss
		s.TotalTrades++
		s.TotalPnL += pl
		s.TotalCommission += t.Commission

		switch {
		case pl > 0:
			s.WinningTrades++
			s.GrossProfit += pl
		case pl < 0:
			s.LosingTrades++
			s.GrossLoss += -pl
		default:
			s.BreakevenTrades++
		}

		s.LargestWin = math.Max(s.LargestWin, pl)
		s.LargestLoss = math.Min(s.LargestLoss, pl)

		if ct := t.CloseTime(); !ct.IsZero() {
			days[ct.UTC().Format(dayLayout)] = struct{}{}
		}
	}
	s.TradingDays = len(days)

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
		s.AverageProfitLoss = s.TotalPnL / float64(s.TotalTrades)
	}
	if s.WinningTrades > 0 {
		s.AverageWin = s.GrossProfit / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = -s.GrossLoss / float64(s.LosingTrades)
	}
	s.ProfitFactor = profitFactor(s.GrossProfit, s.GrossLoss)

	chrono := chronological(closed)
	s.MaxDrawdown = maxDrawdownPct(chrono, startingBalance)
	s.MaxConsecutiveWins, s.MaxConsecutiveLosses = streaks(chrono)

	return s
}

func profitFactor(grossProfit, grossLoss float64) float64 {
	if grossLoss == 0 {
		if grossProfit > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return grossProfit / grossLoss
}

// chronological returns a sorted copy ordered by close time. Ties keep
// their input order.
func chronological(trades []trade.Trade) []trade.Trade {
	out := make([]trade.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CloseTime().Before(out[j].CloseTime())
	})
	return out
}

func maxDrawdownPct(chrono []trade.Trade, start float64) float64 {
	balance, peak := start, start
	var maxDD float64

	for _, t := range chrono {
		balance += t.ProfitLoss
		if balance > peak {
			peak = balance
		}
		if peak > 0 {
			if dd := (peak - balance) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD * 100
}

func streaks(chrono []trade.Trade) (maxWins, maxLosses int) {
	var wins, losses int
	for _, t := range chrono {
		switch {
		case t.ProfitLoss > 0:
			wins++
			losses = 0
		case t.ProfitLoss < 0:
			losses++
			wins = 0
		default:
			wins, losses = 0, 0
		}
		maxWins = max(maxWins, wins)
		maxLosses = max(maxLosses, losses)
	}
	return maxWins, maxLosses
}
