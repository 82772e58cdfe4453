package stats

import (
	"sort"

	"trading-journal/internal/models"
)

// MonthlyPerformance is the aggregate for one calendar month.
type MonthlyPerformance struct {
	Month   string  // "YYYY-MM"
	Profit  float64 // sum of R-multiples
	Trades  int
	Wins    int
	WinRate float64
}

// MonthlyRollup groups trades by calendar month of their date and returns one
// record per month that has at least one trade, sorted ascending by month.
// The zero-padded key makes the lexicographic sort chronological.
func MonthlyRollup(trades []models.Trade) []MonthlyPerformance {
	buckets := make(map[string]*MonthlyPerformance)
	for _, t := range trades {
		key := t.Date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyPerformance{Month: key}
			buckets[key] = b
		}
		b.Profit += t.RMultiple
		b.Trades++
		if t.Outcome == models.Win {
			b.Wins++
		}
	}

	out := make([]MonthlyPerformance, 0, len(buckets))
	for _, b := range buckets {
		b.WinRate = float64(b.Wins) / float64(b.Trades) * 100
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
