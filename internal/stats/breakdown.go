package stats

import (
	"trading-journal/internal/models"
)

// SessionStats is the aggregate for one trading session.
type SessionStats struct {
	Session models.Session
	Trades  int
	WinRate float64
	AvgR    float64
	TotalR  float64
}

// SetupStats is the aggregate for one setup tag.
type SetupStats struct {
	Setup   string
	Trades  int
	WinRate float64
	AvgR    float64
	TotalR  float64
}

// SessionBreakdown aggregates trades per session, iterating the fixed session
// enumeration in declared order. Sessions with no trades are dropped; the
// enumeration order is preserved among the survivors.
func SessionBreakdown(trades []models.Trade) []SessionStats {
	var out []SessionStats
	for _, sess := range models.Sessions {
		var bucket []models.Trade
		for _, t := range trades {
			if t.Session == sess {
				bucket = append(bucket, t)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		count, winRate, avgR, totalR := bucketMetrics(bucket)
		out = append(out, SessionStats{
			Session: sess,
			Trades:  count,
			WinRate: winRate,
			AvgR:    avgR,
			TotalR:  totalR,
		})
	}
	return out
}

// SetupBreakdown aggregates trades per setup tag. Buckets are the distinct
// tags observed in the input, in order of first appearance; no fixed tag list
// is assumed, so any string is a valid bucket and empty buckets cannot occur.
func SetupBreakdown(trades []models.Trade) []SetupStats {
	buckets := make(map[string][]models.Trade)
	var order []string
	for _, t := range trades {
		if _, seen := buckets[t.Setup]; !seen {
			order = append(order, t.Setup)
		}
		buckets[t.Setup] = append(buckets[t.Setup], t)
	}

	out := make([]SetupStats, 0, len(order))
	for _, setup := range order {
		count, winRate, avgR, totalR := bucketMetrics(buckets[setup])
		out = append(out, SetupStats{
			Setup:   setup,
			Trades:  count,
			WinRate: winRate,
			AvgR:    avgR,
			TotalR:  totalR,
		})
	}
	return out
}
