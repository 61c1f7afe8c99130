package domain

import "time"

// SessionStatus is the lifecycle state of an interview session.
type SessionStatus string

const (
	StatusSetup      SessionStatus = "SETUP"
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
)

// PaymentCaptured is the only payment status that allows an interview to start.
const PaymentCaptured = "CAPTURED"

// Difficulty tiers. Unknown values fall back to medium everywhere; callers are
// never rejected for an unrecognized difficulty.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// sessionTransitions is the full transition table. A session only ever moves
// forward; there is no terminal failure state.
var sessionTransitions = map[SessionStatus][]SessionStatus{
	StatusSetup:      {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
}

// CanTransitionTo reports whether the status may advance to next.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known session status.
func (s SessionStatus) IsValid() bool {
	_, ok := sessionTransitions[s]
	return ok
}

// Question is a single generated interview question. Immutable once attached
// to a session.
type Question struct {
	ID                    string   `json:"id"`
	Order                 int      `json:"order"`
	Text                  string   `json:"text"`
	Motivation            string   `json:"motivation"`
	ExpectedKeyPoints     []string `json:"expected_key_points"`
	Difficulty            int      `json:"difficulty"`
	TimeAllocationMinutes int      `json:"time_allocation_minutes"`
	FollowUps             []string `json:"follow_ups"`
}

// SessionConfig is the caller-supplied interview configuration.
type SessionConfig struct {
	FocusAreas           []string
	SpecificRequirements string
	DurationMinutes      int
}

// PricingQuote is the cost/price quote computed once at session creation.
// It is never recomputed, even if pricing tables change later.
type PricingQuote struct {
	UserPrice int    `json:"user_price"`
	CostPrice int    `json:"cost_price"`
	Margin    int    `json:"margin"`
	Currency  string `json:"currency"`
}

// InterviewSession is the root entity of the orchestration engine. It is owned
// exclusively by the session service and mutated only through lifecycle
// transitions.
type InterviewSession struct {
	ID              string
	UserID          string
	Track           string
	Difficulty      string
	Status          SessionStatus
	Config          SessionConfig
	Questions       []Question
	Pricing         PricingQuote
	PaymentStatus   string
	ExternalCallID  string
	StartedAt       *time.Time
	EndedAt         *time.Time
	ReportGenerated bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalTimeBudgetMinutes is the sum of per-question time allocations, used as
// the overall time budget given to the voice agent.
func (s *InterviewSession) TotalTimeBudgetMinutes() int {
	total := 0
	for _, q := range s.Questions {
		total += q.TimeAllocationMinutes
	}
	return total
}

// SessionSummary is the history projection of a session: the session row plus
// the report score when a report exists.
type SessionSummary struct {
	ID           string
	Track        string
	Difficulty   string
	Status       SessionStatus
	OverallScore *int
	CreatedAt    time.Time
	EndedAt      *time.Time
}
