// Package insights derives heuristic textual observations from a trade set
// and its performance summary. Rules are evaluated in a fixed order and each
// contributes at most one observation.
package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"trading-journal/internal/models"
	"trading-journal/internal/stats"
)

// minBucketTrades is the sample size a category bucket needs before its
// numbers are worth calling out.
const minBucketTrades = 3

// Generate evaluates the insight rules against trades and their summary and
// returns the observations in rule order. An empty trade set returns exactly
// one onboarding prompt and evaluates no rules.
func Generate(trades []models.Trade, s stats.TradingStats) []string {
	if len(trades) == 0 {
		return []string{"Log your first trades to start seeing performance insights here."}
	}

	var out []string

	sessions := stats.SessionBreakdown(trades)
	setups := stats.SetupBreakdown(trades)

	if s.BestSession != stats.NotAvailable {
		if b, ok := findSession(sessions, s.BestSession); ok && b.Trades >= minBucketTrades {
			out = append(out, fmt.Sprintf(
				"Your best session is %s with a %.0f%% win rate and %.2fR average return.",
				b.Session, b.WinRate, b.AvgR))
		}
	}

	if s.WorstSession != stats.NotAvailable {
		if b, ok := findSession(sessions, s.WorstSession); ok && b.Trades >= minBucketTrades && b.AvgR < 0 {
			out = append(out, fmt.Sprintf(
				"The %s session is costing you money (%.2fR average). Consider sitting it out.",
				b.Session, b.AvgR))
		}
	}

	if s.BestSetup != stats.NotAvailable {
		if b, ok := findSetup(setups, s.BestSetup); ok && b.Trades >= minBucketTrades {
			out = append(out, fmt.Sprintf(
				"Your %q setup performs best: %.0f%% win rate over %d trades.",
				b.Setup, b.WinRate, b.Trades))
		}
	}

	if avg := avgRiskPercent(trades); avg > 2 {
		out = append(out, fmt.Sprintf(
			"You risk %.1f%% per trade on average. Keeping risk under 2%% protects you from deep drawdowns.",
			avg))
	}

	// The recent-window check is a separate confirmation on top of the
	// all-time streak, kept deliberately.
	if s.MaxConsecutiveLosses >= 3 && recentLosses(trades, 5) >= 3 {
		out = append(out, fmt.Sprintf(
			"You hit %d losses in a row and most of your recent trades are losers. A short break may help.",
			s.MaxConsecutiveLosses))
	}

	// The else-if leaves a 40-60 band that produces neither message.
	if s.WinRate >= 60 {
		out = append(out, fmt.Sprintf("Strong %.0f%% win rate. Keep doing what works.", s.WinRate))
	} else if s.WinRate < 40 && s.TotalTrades >= 10 {
		out = append(out, fmt.Sprintf(
			"Win rate is %.0f%% over %d trades. Review your entry criteria before sizing up.",
			s.WinRate, s.TotalTrades))
	}

	// An infinite profit factor (no realized losses) qualifies.
	if s.ProfitFactor >= 2 {
		if math.IsInf(s.ProfitFactor, 1) {
			out = append(out, "No realized losses on record. Your winners currently carry the whole book.")
		} else {
			out = append(out, fmt.Sprintf(
				"Profit factor of %.2f. Your winners more than cover your losers.", s.ProfitFactor))
		}
	}

	if msg, ok := emotionComparison(trades); ok {
		out = append(out, msg)
	}

	return out
}

func findSession(buckets []stats.SessionStats, name string) (stats.SessionStats, bool) {
	for _, b := range buckets {
		if string(b.Session) == name {
			return b, true
		}
	}
	return stats.SessionStats{}, false
}

func findSetup(buckets []stats.SetupStats, name string) (stats.SetupStats, bool) {
	for _, b := range buckets {
		if b.Setup == name {
			return b, true
		}
	}
	return stats.SetupStats{}, false
}

func avgRiskPercent(trades []models.Trade) float64 {
	var sum float64
	for _, t := range trades {
		sum += t.RiskPercent
	}
	return sum / float64(len(trades))
}

// recentLosses counts losses among the n most recently dated trades.
func recentLosses(trades []models.Trade, n int) int {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	var count int
	for _, t := range sorted {
		if t.Outcome == models.Loss {
			count++
		}
	}
	return count
}

// emotionComparison compares average R under calm versus impulsive states.
// Disciplined stands in for an empty Calm bucket and Greed for an empty
// Impulsive bucket; the fallbacks replace the bucket, they are never merged
// into it.
func emotionComparison(trades []models.Trade) (string, bool) {
	byEmotion := make(map[models.Emotion][]models.Trade)
	for _, t := range trades {
		byEmotion[t.Emotion] = append(byEmotion[t.Emotion], t)
	}

	calm, calmLabel := byEmotion[models.Calm], models.Calm
	if len(calm) == 0 {
		calm, calmLabel = byEmotion[models.Disciplined], models.Disciplined
	}
	impulsive, impulsiveLabel := byEmotion[models.Impulsive], models.Impulsive
	if len(impulsive) == 0 {
		impulsive, impulsiveLabel = byEmotion[models.Greed], models.Greed
	}
	if len(calm) == 0 || len(impulsive) == 0 {
		return "", false
	}

	calmAvg, impulsiveAvg := avgR(calm), avgR(impulsive)
	if calmAvg-impulsiveAvg > 0.5 {
		return fmt.Sprintf(
			"Trades taken while %s average %.2fR versus %.2fR when %s. Mindset is moving your results.",
			strings.ToLower(string(calmLabel)), calmAvg, impulsiveAvg,
			strings.ToLower(string(impulsiveLabel))), true
	}
	return "", false
}

func avgR(trades []models.Trade) float64 {
	var sum float64
	for _, t := range trades {
		sum += t.RMultiple
	}
	return sum / float64(len(trades))
}
