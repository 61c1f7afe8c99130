// Package pricing computes the user price and cost price of an interview
// session. All functions are pure; quotes are computed once at session
// creation and never revised afterwards.
package pricing

import (
	"math"

	"interview-byte/internal/domain"
)

// Currency is the single display currency for user prices and cost prices.
const Currency = "INR"

// Cost model constants. Provider costs are denominated in USD and converted to
// the display currency at a fixed rate.
const (
	voiceBaseFeeUSD       = 0.50
	voicePerMinuteUSD     = 0.75
	questionGenerationUSD = 0.01
	reportGenerationUSD   = 0.02
	infrastructureUSD     = 0.05
	paymentProcessingUSD  = 0.03
	usdToINR              = 83.0
)

var tierDurations = map[string]int{
	domain.DifficultyEasy:   12,
	domain.DifficultyMedium: 20,
	domain.DifficultyHard:   25,
	domain.DifficultyExpert: 30,
}

var tierPrices = map[string]int{
	domain.DifficultyEasy:   99,
	domain.DifficultyMedium: 149,
	domain.DifficultyHard:   199,
	domain.DifficultyExpert: 299,
}

// DurationForDifficulty returns the default interview duration for a
// difficulty tier. Unknown difficulties fall back to the medium tier.
func DurationForDifficulty(difficulty string) int {
	if d, ok := tierDurations[difficulty]; ok {
		return d
	}
	return tierDurations[domain.DifficultyMedium]
}

// Quote computes the pricing quote for a session. durationMinutes overrides
// the tier default when positive. The margin is userPrice - costPrice and may
// be negative; this engine does not clamp it.
func Quote(difficulty string, durationMinutes int) domain.PricingQuote {
	userPrice, ok := tierPrices[difficulty]
	if !ok {
		userPrice = tierPrices[domain.DifficultyMedium]
	}
	if durationMinutes <= 0 {
		durationMinutes = DurationForDifficulty(difficulty)
	}

	costPrice := costPriceINR(durationMinutes)

	return domain.PricingQuote{
		UserPrice: userPrice,
		CostPrice: costPrice,
		Margin:    userPrice - costPrice,
		Currency:  Currency,
	}
}

// CostBreakdown itemizes the cost price per category, in the display currency.
type CostBreakdown struct {
	VoiceProvider     int `json:"voice_provider"`
	QuestionGen       int `json:"question_generation"`
	ReportGen         int `json:"report_generation"`
	Infrastructure    int `json:"infrastructure"`
	PaymentProcessing int `json:"payment_processing"`
	Total             int `json:"total"`
	Currency          string
}

// Breakdown returns the per-category cost breakdown for a given duration,
// using the same constants as Quote.
func Breakdown(durationMinutes int) CostBreakdown {
	if durationMinutes <= 0 {
		durationMinutes = tierDurations[domain.DifficultyMedium]
	}
	voice := toINR(voiceBaseFeeUSD + voicePerMinuteUSD*float64(durationMinutes))
	questions := toINR(questionGenerationUSD)
	report := toINR(reportGenerationUSD)
	infra := toINR(infrastructureUSD)
	payment := toINR(paymentProcessingUSD)

	return CostBreakdown{
		VoiceProvider:     voice,
		QuestionGen:       questions,
		ReportGen:         report,
		Infrastructure:    infra,
		PaymentProcessing: payment,
		Total:             costPriceINR(durationMinutes),
		Currency:          Currency,
	}
}

// costPriceINR converts the USD subtotal in one step so the total matches the
// quoted cost price exactly; per-category figures in Breakdown round
// individually and may not sum to it.
func costPriceINR(durationMinutes int) int {
	subtotalUSD := voiceBaseFeeUSD +
		voicePerMinuteUSD*float64(durationMinutes) +
		questionGenerationUSD +
		reportGenerationUSD +
		infrastructureUSD +
		paymentProcessingUSD
	return toINR(subtotalUSD)
}

func toINR(usd float64) int {
	return int(math.Round(usd * usdToINR))
}
