package stats

import (
	"math"
	"sort"

	"trading-journal/internal/models"
)

// sortedByDate returns a chronologically ascending copy of trades. Trades
// sharing a date keep their input order.
func sortedByDate(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// streaks walks chronologically sorted trades and returns the longest runs of
// consecutive wins and consecutive losses. A break-even trade resets both
// runs.
func streaks(sorted []models.Trade) (maxWins, maxLosses int) {
	var curWins, curLosses int
	for _, t := range sorted {
		switch t.Outcome {
		case models.Win:
			curWins++
			curLosses = 0
			if curWins > maxWins {
				maxWins = curWins
			}
		case models.Loss:
			curLosses++
			curWins = 0
			if curLosses > maxLosses {
				maxLosses = curLosses
			}
		default:
			curWins = 0
			curLosses = 0
		}
	}
	return maxWins, maxLosses
}

// maxDrawdown returns the largest decline from a running peak of cumulative
// R-multiples over chronologically sorted trades, in R-units. The result is
// never negative and is zero for fewer than two trades.
func maxDrawdown(sorted []models.Trade) float64 {
	var equity, maxDD float64
	peak := math.Inf(-1)
	for _, t := range sorted {
		equity += t.RMultiple
		if equity > peak {
			peak = equity
		}
		if dd := peak - equity; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// bucketMetrics computes count, win rate, average R and total R for one
// category bucket.
func bucketMetrics(trades []models.Trade) (count int, winRate, avgR, totalR float64) {
	count = len(trades)
	if count == 0 {
		return 0, 0, 0, 0
	}
	var wins int
	for _, t := range trades {
		if t.Outcome == models.Win {
			wins++
		}
		totalR += t.RMultiple
	}
	winRate = float64(wins) / float64(count) * 100
	avgR = totalR / float64(count)
	return count, winRate, avgR, totalR
}
