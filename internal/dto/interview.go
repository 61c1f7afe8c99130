package dto

import (
	"time"

	"interview-byte/internal/domain"
)

// CreateInterviewRequest is the request body for creating a session.
// @Description Request body for creating an interview session
type CreateInterviewRequest struct {
	UserID               string   `json:"-"`
	Track                string   `json:"track"`
	Difficulty           string   `json:"difficulty"`
	FocusAreas           []string `json:"focus_areas"`
	SpecificRequirements string   `json:"specific_requirements,omitempty"`
	DurationMinutes      int      `json:"duration_minutes,omitempty"`
}

// QuestionResponse is one generated question in the API response.
type QuestionResponse struct {
	ID                    string   `json:"id"`
	Order                 int      `json:"order"`
	Text                  string   `json:"text"`
	Motivation            string   `json:"motivation,omitempty"`
	ExpectedKeyPoints     []string `json:"expected_key_points"`
	Difficulty            int      `json:"difficulty"`
	TimeAllocationMinutes int      `json:"time_allocation_minutes"`
	FollowUps             []string `json:"follow_ups,omitempty"`
}

// PricingResponse is the quote attached to a newly created session.
type PricingResponse struct {
	UserPrice int    `json:"user_price"`
	CostPrice int    `json:"cost_price"`
	Margin    int    `json:"margin"`
	Currency  string `json:"currency"`
}

// CreateInterviewResponse is returned from session creation.
// @Description Newly created interview session
type CreateInterviewResponse struct {
	SessionID                string             `json:"session_id"`
	Questions                []QuestionResponse `json:"questions"`
	Pricing                  PricingResponse    `json:"pricing"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
}

// StartInterviewResponse is returned once the voice call is live.
type StartInterviewResponse struct {
	CallID string `json:"call_id"`
	Status string `json:"status"`
}

// QuestionAnalysisResponse is the per-question block of a report.
type QuestionAnalysisResponse struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

// ReportResponse is the full interview report.
// @Description Scored interview report
type ReportResponse struct {
	SessionID               string                     `json:"session_id"`
	OverallScore            int                        `json:"overall_score"`
	ScoreBreakdown          map[string]int             `json:"score_breakdown"`
	Summary                 string                     `json:"summary"`
	QuestionAnalyses        []QuestionAnalysisResponse `json:"question_analyses"`
	Strengths               []string                   `json:"strengths"`
	Weaknesses              []string                   `json:"weaknesses"`
	Recommendations         []string                   `json:"recommendations"`
	ComparisonToStandards   string                     `json:"comparison_to_standards"`
	NextSteps               []string                   `json:"next_steps"`
	NextInterviewSuggestion string                     `json:"next_interview_suggestion"`
	Fallback                bool                       `json:"fallback,omitempty"`
	CreatedAt               time.Time                  `json:"created_at"`
}

// InterviewHistoryItem is one row of a user's interview history.
type InterviewHistoryItem struct {
	SessionID    string     `json:"session_id"`
	Track        string     `json:"track"`
	Difficulty   string     `json:"difficulty"`
	Status       string     `json:"status"`
	OverallScore *int       `json:"overall_score,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

// InterviewHistoryResponse is the paginated history projection.
type InterviewHistoryResponse struct {
	Interviews []InterviewHistoryItem `json:"interviews"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"total_pages"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewQuestionResponses converts domain questions to their API projection.
func NewQuestionResponses(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			ID:                    q.ID,
			Order:                 q.Order,
			Text:                  q.Text,
			Motivation:            q.Motivation,
			ExpectedKeyPoints:     q.ExpectedKeyPoints,
			Difficulty:            q.Difficulty,
			TimeAllocationMinutes: q.TimeAllocationMinutes,
			FollowUps:             q.FollowUps,
		})
	}
	return out
}

// NewReportResponse converts a domain report to its API projection.
func NewReportResponse(report *domain.Report) *ReportResponse {
	analyses := make([]QuestionAnalysisResponse, 0, len(report.QuestionAnalyses))
	for _, qa := range report.QuestionAnalyses {
		analyses = append(analyses, QuestionAnalysisResponse{
			QuestionID: qa.QuestionID,
			Score:      qa.Score,
			Feedback:   qa.Feedback,
		})
	}
	return &ReportResponse{
		SessionID:               report.SessionID,
		OverallScore:            report.OverallScore,
		ScoreBreakdown:          report.ScoreBreakdown,
		Summary:                 report.Summary,
		QuestionAnalyses:        analyses,
		Strengths:               report.Strengths,
		Weaknesses:              report.Weaknesses,
		Recommendations:         report.Recommendations,
		ComparisonToStandards:   report.ComparisonToStandards,
		NextSteps:               report.NextSteps,
		NextInterviewSuggestion: report.NextInterviewSuggestion,
		Fallback:                report.Fallback,
		CreatedAt:               report.CreatedAt,
	}
}
