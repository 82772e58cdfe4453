package stats

import (
	"time"

	"trading-journal/internal/models"
)

// EquityPoint is one step of the running-balance projection. The first point
// of every curve is synthetic: Start is true, Time is the zero value and
// Balance is the starting balance. Label rendering is left to presentation
// code, which must handle the synthetic point separately from dated points.
type EquityPoint struct {
	Time    time.Time
	Start   bool
	Equity  float64 // balance minus starting balance
	Balance float64
}

// EquityCurve projects the running account balance over chronologically
// sorted trades. A win adds the trade's reward amount, a loss subtracts its
// planned risk amount, and a break-even trade leaves the balance unchanged.
func EquityCurve(trades []models.Trade, startingBalance float64) []EquityPoint {
	sorted := sortedByDate(trades)

	out := make([]EquityPoint, 0, len(sorted)+1)
	out = append(out, EquityPoint{Start: true, Balance: startingBalance})

	balance := startingBalance
	for _, t := range sorted {
		switch t.Outcome {
		case models.Win:
			balance += t.RewardAmount
		case models.Loss:
			balance -= t.RiskAmount
		}
		out = append(out, EquityPoint{
			Time:    t.Date,
			Equity:  balance - startingBalance,
			Balance: balance,
		})
	}
	return out
}
