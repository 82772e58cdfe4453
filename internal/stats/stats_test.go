package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-journal/internal/models"
)

func day(n int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func trade(n int, outcome models.Outcome, r float64, mods ...func(*models.Trade)) models.Trade {
	t := models.Trade{
		ID:          "T" + string(rune('A'+n)),
		Date:        day(n),
		Symbol:      "EURUSD",
		Direction:   models.Buy,
		Outcome:     outcome,
		RMultiple:   r,
		RiskPercent: 1,
		RiskAmount:  100,
		Session:     models.London,
		Setup:       "Breakout",
		Emotion:     models.Calm,
		Discipline:  4,
	}
	if outcome == models.Win {
		t.RewardAmount = r * t.RiskAmount
	}
	for _, mod := range mods {
		mod(&t)
	}
	return t
}

func withSession(s models.Session) func(*models.Trade) {
	return func(t *models.Trade) { t.Session = s }
}

func withSetup(s string) func(*models.Trade) {
	return func(t *models.Trade) { t.Setup = s }
}

func TestComputeBasic(t *testing.T) {
	// The win pays its 200 reward, the loss books its 100 planned risk.
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Loss, -1),
	}

	s := Compute(trades)

	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 0, s.BreakEvens)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	assert.InDelta(t, 200.0, s.TotalProfit, 1e-9)
	assert.InDelta(t, 100.0, s.TotalLoss, 1e-9)
	assert.InDelta(t, 0.5, s.AvgR, 1e-9)
	assert.InDelta(t, 0.5, s.Expectancy, 1e-9)
	assert.InDelta(t, 2.0, s.ProfitFactor, 1e-9)
	assert.Equal(t, "London", s.BestSession)
	assert.Equal(t, "Breakout", s.BestSetup)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, 0, s.TotalTrades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.MaxDrawdown)
	assert.Equal(t, NotAvailable, s.BestSession)
	assert.Equal(t, NotAvailable, s.WorstSession)
	assert.Equal(t, NotAvailable, s.BestSetup)
	assert.Equal(t, NotAvailable, s.WorstSetup)
}

func TestComputeProfitFactorNoLosses(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Win, 1.5),
	}

	s := Compute(trades)
	assert.True(t, math.IsInf(s.ProfitFactor, 1), "profit factor should be +Inf, got %v", s.ProfitFactor)
}

func TestComputeProfitFactorNoActivity(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.BreakEven, 0),
		trade(1, models.BreakEven, 0),
	}

	s := Compute(trades)
	assert.Zero(t, s.ProfitFactor)
	assert.Equal(t, 2, s.BreakEvens)
}

func TestStreaksBreakEvenResets(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 1),
		trade(1, models.Win, 1),
		trade(2, models.BreakEven, 0),
		trade(3, models.Win, 1),
		trade(4, models.Loss, -1),
		trade(5, models.Loss, -1),
		trade(6, models.Loss, -1),
	}

	s := Compute(trades)
	assert.Equal(t, 2, s.MaxConsecutiveWins)
	assert.Equal(t, 3, s.MaxConsecutiveLosses)
}

func TestStreaksOrderIndependentInput(t *testing.T) {
	// Streaks follow date order, not input order.
	trades := []models.Trade{
		trade(2, models.Loss, -1),
		trade(0, models.Win, 1),
		trade(1, models.Win, 1),
	}

	s := Compute(trades)
	assert.Equal(t, 2, s.MaxConsecutiveWins)
	assert.Equal(t, 1, s.MaxConsecutiveLosses)
}

func TestMaxDrawdown(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Loss, -1),
		trade(2, models.Loss, -1.5),
		trade(3, models.Win, 1),
	}

	// Cumulative: 2, 1, -0.5, 0.5. Peak 2, trough -0.5.
	s := Compute(trades)
	assert.InDelta(t, 2.5, s.MaxDrawdown, 1e-9)
}

func TestMaxDrawdownSingleTrade(t *testing.T) {
	s := Compute([]models.Trade{trade(0, models.Loss, -1)})
	assert.Zero(t, s.MaxDrawdown)
}

func TestBestWorstFirstEncounteredTie(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 1, withSession(models.Asian)),
		trade(1, models.Win, 1, withSession(models.NY)),
	}

	s := Compute(trades)
	// Equal averages; both resolve to the first bucket in session order.
	assert.Equal(t, "Asian", s.BestSession)
	assert.Equal(t, "Asian", s.WorstSession)
}

func TestSessionBreakdownOrderAndDrop(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 1, withSession(models.PostNY)),
		trade(1, models.Loss, -1, withSession(models.Asian)),
		trade(2, models.Win, 2, withSession(models.Asian)),
	}

	out := SessionBreakdown(trades)
	require.Len(t, out, 2)
	assert.Equal(t, models.Asian, out[0].Session)
	assert.Equal(t, 2, out[0].Trades)
	assert.InDelta(t, 50.0, out[0].WinRate, 1e-9)
	assert.InDelta(t, 0.5, out[0].AvgR, 1e-9)
	assert.Equal(t, models.PostNY, out[1].Session)
}

func TestSetupBreakdownFirstSeenOrder(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 1, withSetup("Reversal")),
		trade(1, models.Loss, -1, withSetup("Breakout")),
		trade(2, models.Win, 1, withSetup("Reversal")),
	}

	out := SetupBreakdown(trades)
	require.Len(t, out, 2)
	assert.Equal(t, "Reversal", out[0].Setup)
	assert.Equal(t, 2, out[0].Trades)
	assert.Equal(t, "Breakout", out[1].Setup)
	assert.InDelta(t, -1.0, out[1].TotalR, 1e-9)
}

func TestMonthlyRollup(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	trades := []models.Trade{
		trade(0, models.Win, 2, func(tr *models.Trade) { tr.Date = feb }),
		trade(1, models.Loss, -1, func(tr *models.Trade) { tr.Date = jan }),
		trade(2, models.Win, 1, func(tr *models.Trade) { tr.Date = jan }),
	}

	out := MonthlyRollup(trades)
	require.Len(t, out, 2)

	assert.Equal(t, "2025-01", out[0].Month)
	assert.Equal(t, 2, out[0].Trades)
	assert.Equal(t, 1, out[0].Wins)
	assert.InDelta(t, 50.0, out[0].WinRate, 1e-9)
	assert.InDelta(t, 0.0, out[0].Profit, 1e-9)

	assert.Equal(t, "2025-02", out[1].Month)
	assert.InDelta(t, 2.0, out[1].Profit, 1e-9)
}

func TestEquityCurve(t *testing.T) {
	// Win adds the 200 reward, loss subtracts the 100 risk, break-even holds.
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Loss, -1),
		trade(2, models.BreakEven, 0),
	}

	curve := EquityCurve(trades, 10000)
	require.Len(t, curve, 4)

	assert.True(t, curve[0].Start)
	assert.InDelta(t, 10000.0, curve[0].Balance, 1e-9)
	assert.Zero(t, curve[0].Equity)

	assert.False(t, curve[1].Start)
	assert.Equal(t, day(0), curve[1].Time)
	assert.InDelta(t, 10200.0, curve[1].Balance, 1e-9)
	assert.InDelta(t, 200.0, curve[1].Equity, 1e-9)

	assert.InDelta(t, 10100.0, curve[2].Balance, 1e-9)
	assert.InDelta(t, 10100.0, curve[3].Balance, 1e-9)
}

func TestEquityCurveEmpty(t *testing.T) {
	curve := EquityCurve(nil, 5000)
	require.Len(t, curve, 1)
	assert.True(t, curve[0].Start)
	assert.InDelta(t, 5000.0, curve[0].Balance, 1e-9)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	trades := []models.Trade{
		trade(2, models.Loss, -1),
		trade(0, models.Win, 1),
	}
	first := trades[0].ID

	Compute(trades)
	assert.Equal(t, first, trades[0].ID, "input slice order should be untouched")
}
