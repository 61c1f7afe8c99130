package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteTierPrices(t *testing.T) {
	tests := []struct {
		difficulty string
		userPrice  int
		duration   int
	}{
		{"easy", 99, 12},
		{"medium", 149, 20},
		{"hard", 199, 25},
		{"expert", 299, 30},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			quote := Quote(tt.difficulty, 0)
			assert.Equal(t, tt.userPrice, quote.UserPrice)
			assert.Equal(t, "INR", quote.Currency)

			// A duration override changes the cost price but never the tier price.
			overridden := Quote(tt.difficulty, 45)
			assert.Equal(t, tt.userPrice, overridden.UserPrice)
			assert.NotEqual(t, quote.CostPrice, overridden.CostPrice)
		})
	}
}

func TestQuoteUnknownDifficultyDefaultsToMedium(t *testing.T) {
	unknown := Quote("nightmare", 0)
	medium := Quote("medium", 0)
	assert.Equal(t, medium, unknown)
	assert.Equal(t, 149, unknown.UserPrice)
	assert.Equal(t, 20, DurationForDifficulty("nightmare"))
}

func TestQuoteMediumCostPrice(t *testing.T) {
	// (0.5 + 0.75*20 + 0.01 + 0.02 + 0.05 + 0.03) * 83 = 15.61 * 83 = 1295.63
	quote := Quote("medium", 20)
	assert.Equal(t, 1296, quote.CostPrice)
	assert.Equal(t, 149, quote.UserPrice)
	// The cost model loses money at every tier; the margin is intentionally
	// left negative rather than clamped.
	assert.Equal(t, -1147, quote.Margin)
}

func TestQuoteMarginConsistency(t *testing.T) {
	for _, difficulty := range []string{"easy", "medium", "hard", "expert"} {
		quote := Quote(difficulty, 0)
		assert.Equal(t, quote.UserPrice-quote.CostPrice, quote.Margin, difficulty)
	}
}

func TestDurationForDifficulty(t *testing.T) {
	assert.Equal(t, 12, DurationForDifficulty("easy"))
	assert.Equal(t, 20, DurationForDifficulty("medium"))
	assert.Equal(t, 25, DurationForDifficulty("hard"))
	assert.Equal(t, 30, DurationForDifficulty("expert"))
	assert.Equal(t, 20, DurationForDifficulty(""))
}

func TestBreakdownTotalMatchesQuote(t *testing.T) {
	breakdown := Breakdown(20)
	quote := Quote("medium", 20)
	assert.Equal(t, quote.CostPrice, breakdown.Total)
	assert.Equal(t, "INR", breakdown.Currency)

	// Voice dominates the cost: 0.5 + 0.75*20 = 15.5 USD -> 1287 INR.
	assert.Equal(t, 1287, breakdown.VoiceProvider)
	assert.Equal(t, 1, breakdown.QuestionGen)
	assert.Equal(t, 2, breakdown.ReportGen)
	assert.Equal(t, 4, breakdown.Infrastructure)
	assert.Equal(t, 2, breakdown.PaymentProcessing)
}

func TestBreakdownDefaultsDuration(t *testing.T) {
	assert.Equal(t, Breakdown(20), Breakdown(0))
}
