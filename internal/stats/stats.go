// Package stats computes aggregate performance metrics from trade records.
// Every function is a pure transformation: inputs are never mutated and
// identical inputs always produce identical outputs.
package stats

import (
	"math"

	"trading-journal/internal/models"
)

// NotAvailable marks a best/worst category that could not be determined.
const NotAvailable = "N/A"

// TradingStats is the full performance summary over a trade set.
type TradingStats struct {
	TotalTrades          int
	Wins                 int
	Losses               int
	BreakEvens           int
	WinRate              float64 // percent, 0-100
	TotalProfit          float64 // sum of reward amounts over wins
	TotalLoss            float64 // sum of planned risk amounts over losses
	AvgR                 float64
	Expectancy           float64 // identical to AvgR by definition
	ProfitFactor         float64 // math.Inf(1) when TotalLoss is 0 and TotalProfit > 0
	MaxConsecutiveWins   int
	MaxConsecutiveLosses int
	MaxDrawdown          float64 // R-units, always >= 0
	BestSession          string
	WorstSession         string
	BestSetup            string
	WorstSetup           string
}

// Compute builds the performance summary for a set of trades. Input order is
// irrelevant. An empty input yields a zeroed record with best/worst fields
// set to NotAvailable; this is a defined terminal case, not an error.
func Compute(trades []models.Trade) TradingStats {
	s := TradingStats{
		BestSession:  NotAvailable,
		WorstSession: NotAvailable,
		BestSetup:    NotAvailable,
		WorstSetup:   NotAvailable,
	}
	if len(trades) == 0 {
		return s
	}

	s.TotalTrades = len(trades)
	var rSum float64
	for _, t := range trades {
		switch t.Outcome {
		case models.Win:
			s.Wins++
			s.TotalProfit += t.RewardAmount
		case models.Loss:
			// Losses are accounted at their planned risk amount rather than
			// a realized loss figure. Risk-based bookkeeping, kept on
			// purpose.
			s.Losses++
			s.TotalLoss += t.RiskAmount
		default:
			s.BreakEvens++
		}
		rSum += t.RMultiple
	}
	s.TotalLoss = math.Abs(s.TotalLoss)

	s.AvgR = rSum / float64(s.TotalTrades)
	s.Expectancy = s.AvgR
	s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100

	switch {
	case s.TotalLoss > 0:
		s.ProfitFactor = s.TotalProfit / s.TotalLoss
	case s.TotalProfit > 0:
		s.ProfitFactor = math.Inf(1)
	}

	sorted := sortedByDate(trades)
	s.MaxConsecutiveWins, s.MaxConsecutiveLosses = streaks(sorted)
	s.MaxDrawdown = maxDrawdown(sorted)

	// Ties go to the first bucket in iteration order.
	if sessions := SessionBreakdown(trades); len(sessions) > 0 {
		best, worst := sessions[0], sessions[0]
		for _, b := range sessions[1:] {
			if b.AvgR > best.AvgR {
				best = b
			}
			if b.AvgR < worst.AvgR {
				worst = b
			}
		}
		s.BestSession = string(best.Session)
		s.WorstSession = string(worst.Session)
	}
	if setups := SetupBreakdown(trades); len(setups) > 0 {
		best, worst := setups[0], setups[0]
		for _, b := range setups[1:] {
			if b.AvgR > best.AvgR {
				best = b
			}
			if b.AvgR < worst.AvgR {
				worst = b
			}
		}
		s.BestSetup = best.Setup
		s.WorstSetup = worst.Setup
	}

	return s
}
