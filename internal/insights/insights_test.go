package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-journal/internal/models"
	"trading-journal/internal/stats"
)

func day(n int) time.Time {
	return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func trade(n int, outcome models.Outcome, r float64, mods ...func(*models.Trade)) models.Trade {
	t := models.Trade{
		Date:        day(n),
		Symbol:      "EURUSD",
		Direction:   models.Buy,
		Outcome:     outcome,
		RMultiple:   r,
		RiskPercent: 1,
		RiskAmount:  100,
		Session:     models.London,
		Setup:       "Breakout",
		Emotion:     models.Fear,
		Discipline:  3,
	}
	if outcome == models.Win {
		t.RewardAmount = r * t.RiskAmount
	}
	for _, mod := range mods {
		mod(&t)
	}
	return t
}

func generate(trades []models.Trade) []string {
	return Generate(trades, stats.Compute(trades))
}

func contains(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestGenerateEmpty(t *testing.T) {
	msgs := generate(nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Log your first trades to start seeing performance insights here.", msgs[0])
}

func TestBestSessionRequiresSampleSize(t *testing.T) {
	// Two trades in the best session: below the threshold, no session insight.
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Win, 1),
	}
	assert.False(t, contains(generate(trades), "best session"))

	// A third trade crosses the threshold.
	trades = append(trades, trade(2, models.Win, 1))
	assert.True(t, contains(generate(trades), "best session"))
}

func TestWorstSessionNeedsNegativeAverage(t *testing.T) {
	// NY is worst but still positive on average: no warning.
	trades := []models.Trade{
		trade(0, models.Win, 3),
		trade(1, models.Win, 3),
		trade(2, models.Win, 3),
		trade(3, models.Win, 0.5, func(tr *models.Trade) { tr.Session = models.NY }),
		trade(4, models.Win, 0.5, func(tr *models.Trade) { tr.Session = models.NY }),
		trade(5, models.Win, 0.5, func(tr *models.Trade) { tr.Session = models.NY }),
	}
	assert.False(t, contains(generate(trades), "costing you money"))

	// Turn NY negative.
	trades[3] = trade(3, models.Loss, -2, func(tr *models.Trade) { tr.Session = models.NY })
	trades[4] = trade(4, models.Loss, -2, func(tr *models.Trade) { tr.Session = models.NY })
	assert.True(t, contains(generate(trades), "costing you money"))
}

func TestRiskWarning(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 1, func(tr *models.Trade) { tr.RiskPercent = 3 }),
		trade(1, models.Loss, -1, func(tr *models.Trade) { tr.RiskPercent = 2.5 }),
	}
	assert.True(t, contains(generate(trades), "Keeping risk under 2%"))

	trades[0].RiskPercent = 1
	trades[1].RiskPercent = 1
	assert.False(t, contains(generate(trades), "Keeping risk under 2%"))
}

func TestLossStreakNeedsRecentConfirmation(t *testing.T) {
	// Old losing streak followed by recent winners: streak alone does not fire.
	trades := []models.Trade{
		trade(0, models.Loss, -1),
		trade(1, models.Loss, -1),
		trade(2, models.Loss, -1),
		trade(3, models.Win, 1),
		trade(4, models.Win, 1),
		trade(5, models.Win, 1),
		trade(6, models.Win, 1),
		trade(7, models.Win, 1),
	}
	assert.False(t, contains(generate(trades), "A short break may help"))

	// A fresh streak satisfies both conditions.
	trades = append(trades,
		trade(8, models.Loss, -1),
		trade(9, models.Loss, -1),
		trade(10, models.Loss, -1),
	)
	assert.True(t, contains(generate(trades), "A short break may help"))
}

func TestWinRateDeadZone(t *testing.T) {
	// 50% win rate over 10 trades: neither message.
	var trades []models.Trade
	for i := 0; i < 5; i++ {
		trades = append(trades, trade(i, models.Win, 1))
		trades = append(trades, trade(5+i, models.Loss, -1))
	}
	msgs := generate(trades)
	assert.False(t, contains(msgs, "Strong"))
	assert.False(t, contains(msgs, "Review your entry criteria"))
}

func TestLowWinRateNeedsTenTrades(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Loss, -1),
		trade(1, models.Loss, -1),
		trade(2, models.Win, 1),
	}
	assert.False(t, contains(generate(trades), "Review your entry criteria"))

	for i := 3; i < 10; i++ {
		trades = append(trades, trade(i, models.Loss, -1))
	}
	assert.True(t, contains(generate(trades), "Review your entry criteria"))
}

func TestInfiniteProfitFactorMessage(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 2),
		trade(1, models.Win, 1),
	}
	msgs := generate(trades)
	assert.True(t, contains(msgs, "No realized losses on record"))
	assert.False(t, contains(msgs, "Profit factor of"))
}

func TestEmotionComparison(t *testing.T) {
	trades := []models.Trade{
		trade(0, models.Win, 2, func(tr *models.Trade) { tr.Emotion = models.Calm }),
		trade(1, models.Win, 2, func(tr *models.Trade) { tr.Emotion = models.Calm }),
		trade(2, models.Loss, -1, func(tr *models.Trade) { tr.Emotion = models.Impulsive }),
		trade(3, models.Loss, -1, func(tr *models.Trade) { tr.Emotion = models.Impulsive }),
	}
	msgs := generate(trades)
	assert.True(t, contains(msgs, "while calm"))
	assert.True(t, contains(msgs, "when impulsive"))
}

func TestEmotionComparisonFallbacks(t *testing.T) {
	// No Calm or Impulsive trades: Disciplined and Greed stand in.
	trades := []models.Trade{
		trade(0, models.Win, 2, func(tr *models.Trade) { tr.Emotion = models.Disciplined }),
		trade(1, models.Win, 2, func(tr *models.Trade) { tr.Emotion = models.Disciplined }),
		trade(2, models.Loss, -1, func(tr *models.Trade) { tr.Emotion = models.Greed }),
	}
	msgs := generate(trades)
	assert.True(t, contains(msgs, "while disciplined"))
	assert.True(t, contains(msgs, "when greed"))
}

func TestEmotionComparisonFallbackNeverMerged(t *testing.T) {
	// Calm exists, so Disciplined trades must not join the calm bucket.
	// Calm averages -1R; if Disciplined (+3R) were merged in, the gap to the
	// impulsive bucket would cross the threshold and fire the insight.
	trades := []models.Trade{
		trade(0, models.Loss, -1, func(tr *models.Trade) { tr.Emotion = models.Calm }),
		trade(1, models.Win, 3, func(tr *models.Trade) { tr.Emotion = models.Disciplined }),
		trade(2, models.Loss, -1.2, func(tr *models.Trade) { tr.Emotion = models.Impulsive }),
	}
	assert.False(t, contains(generate(trades), "Mindset is moving your results"))
}

func TestEmotionComparisonNeedsGap(t *testing.T) {
	// 0.4R gap stays under the 0.5R threshold.
	trades := []models.Trade{
		trade(0, models.Win, 1, func(tr *models.Trade) { tr.Emotion = models.Calm }),
		trade(1, models.Win, 0.6, func(tr *models.Trade) { tr.Emotion = models.Impulsive }),
	}
	assert.False(t, contains(generate(trades), "Mindset is moving your results"))
}
