package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"interview-byte/internal/domain"
	"interview-byte/internal/logger"
	"interview-byte/internal/util"

	"go.uber.org/zap"
)

const (
	reportGenTemperature = 0.2
	reportGenMaxTokens   = 4000
)

// ReportService turns a transcript into a scored report. Like question
// generation it is total: on provider or parse failure it produces a heuristic
// fallback report instead of returning an error.
type ReportService interface {
	GenerateReport(ctx context.Context, session *domain.InterviewSession, rawTranscript string) *domain.Report
}

type reportService struct {
	generator domain.TextGenerator
}

// NewReportService creates a new instance of reportService
func NewReportService(generator domain.TextGenerator) ReportService {
	return &reportService{generator: generator}
}

// generatedReport is the schema the provider is asked to emit.
type generatedReport struct {
	OverallScore     int            `json:"overall_score"`
	ScoreBreakdown   map[string]int `json:"score_breakdown"`
	Summary          string         `json:"summary"`
	QuestionAnalyses []struct {
		QuestionID string `json:"question_id"`
		Score      int    `json:"score"`
		Feedback   string `json:"feedback"`
	} `json:"question_analyses"`
	Strengths               []string `json:"strengths"`
	Weaknesses              []string `json:"weaknesses"`
	Recommendations         []string `json:"recommendations"`
	ComparisonToStandards   string   `json:"comparison_to_standards"`
	NextSteps               []string `json:"next_steps"`
	NextInterviewSuggestion string   `json:"next_interview_suggestion"`
}

func (s *reportService) GenerateReport(ctx context.Context, session *domain.InterviewSession, rawTranscript string) *domain.Report {
	prompt := buildReportPrompt(session, rawTranscript)

	response, err := s.generator.Generate(ctx, prompt, domain.GenerationOptions{
		Temperature: reportGenTemperature,
		MaxTokens:   reportGenMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		logger.Get().Warn("Report generation provider call failed, using heuristic fallback",
			zap.Error(err),
			zap.String("sessionID", session.ID))
		return fallbackReport(session, rawTranscript)
	}

	report, err := parseGeneratedReport(session, response)
	if err != nil {
		logger.Get().Warn("Report generation response failed validation, using heuristic fallback",
			zap.Error(err),
			zap.String("sessionID", session.ID))
		return fallbackReport(session, rawTranscript)
	}
	return report
}

func buildReportPrompt(session *domain.InterviewSession, rawTranscript string) string {
	var b strings.Builder
	b.WriteString("You are a senior technical interviewer scoring a completed mock interview.\n")
	fmt.Fprintf(&b, "Track: %s. Difficulty: %s.\n\n", session.Track, session.Difficulty)

	b.WriteString("The questions asked, with the key points a strong answer covers:\n")
	for _, q := range session.Questions {
		fmt.Fprintf(&b, "%d. [%s] %s\n", q.Order, q.ID, q.Text)
		if len(q.ExpectedKeyPoints) > 0 {
			fmt.Fprintf(&b, "   Key points: %s\n", strings.Join(q.ExpectedKeyPoints, "; "))
		}
	}

	b.WriteString("\nFull transcript of the interview:\n")
	b.WriteString(rawTranscript)

	b.WriteString(`

Respond with a single JSON object only, no surrounding text, with:
- "overall_score": integer 0-100
- "score_breakdown": object mapping "technical_knowledge", "communication", "problem_solving", "depth" to integers 0-100
- "summary": 2-3 sentence overall assessment
- "question_analyses": array of {"question_id", "score" (0-100), "feedback"} using the bracketed question ids above
- "strengths": list of strings
- "weaknesses": list of strings
- "recommendations": list of strings
- "comparison_to_standards": one paragraph comparing the candidate to industry expectations at this level
- "next_steps": list of concrete study actions
- "next_interview_suggestion": one sentence recommending the next interview to take

Score strictly; an empty or evasive answer scores low.`)
	return b.String()
}

func parseGeneratedReport(session *domain.InterviewSession, response string) (*domain.Report, error) {
	cleaned := cleanLLMResponse(response)

	var parsed generatedReport
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, domain.NewValidationError("generated report is not a JSON object", err)
	}
	if parsed.OverallScore < 0 || parsed.OverallScore > 100 {
		return nil, domain.NewValidationError("generated report overall score out of range", nil)
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return nil, domain.NewValidationError("generated report has no summary", nil)
	}

	analyses := make([]domain.QuestionAnalysis, 0, len(parsed.QuestionAnalyses))
	for _, qa := range parsed.QuestionAnalyses {
		analyses = append(analyses, domain.QuestionAnalysis{
			QuestionID: qa.QuestionID,
			Score:      clampScore(qa.Score),
			Feedback:   qa.Feedback,
		})
	}

	return &domain.Report{
		ID:                      util.NewULID(),
		SessionID:               session.ID,
		OverallScore:            parsed.OverallScore,
		ScoreBreakdown:          parsed.ScoreBreakdown,
		Summary:                 parsed.Summary,
		QuestionAnalyses:        analyses,
		Strengths:               parsed.Strengths,
		Weaknesses:              parsed.Weaknesses,
		Recommendations:         parsed.Recommendations,
		ComparisonToStandards:   parsed.ComparisonToStandards,
		NextSteps:               parsed.NextSteps,
		NextInterviewSuggestion: parsed.NextInterviewSuggestion,
		CreatedAt:               time.Now(),
	}, nil
}

// fallbackReport is a crude heuristic keyed off transcript length. It exists
// only to keep the completion pipeline total when the provider is down; its
// scores carry no real signal and the report is flagged accordingly.
func fallbackReport(session *domain.InterviewSession, rawTranscript string) *domain.Report {
	baseScore := len(rawTranscript)/100 + 50
	if baseScore > 70 {
		baseScore = 70
	}

	analyses := make([]domain.QuestionAnalysis, 0, len(session.Questions))
	for _, q := range session.Questions {
		jitter := rand.Intn(11) - 5
		analyses = append(analyses, domain.QuestionAnalysis{
			QuestionID: q.ID,
			Score:      clampScore(baseScore + jitter),
			Feedback:   "Automated scoring was unavailable for this question; the score is an estimate.",
		})
	}

	return &domain.Report{
		ID:           util.NewULID(),
		SessionID:    session.ID,
		OverallScore: clampScore(baseScore),
		ScoreBreakdown: map[string]int{
			"technical_knowledge": clampScore(baseScore),
			"communication":       clampScore(baseScore + 5),
			"problem_solving":     clampScore(baseScore - 5),
			"depth":               clampScore(baseScore - 10),
		},
		Summary:          "The detailed evaluation service was unavailable, so this report was produced by a local estimate based on interview length. Treat the scores as rough indicators only.",
		QuestionAnalyses: analyses,
		Strengths: []string{
			"Completed the full interview session",
			"Engaged with the questions asked",
		},
		Weaknesses: []string{
			"Detailed per-answer analysis could not be produced",
		},
		Recommendations: []string{
			"Review the transcript yourself against the expected key points",
			"Retake an interview on this track for a fully scored report",
		},
		ComparisonToStandards:   "No comparison available for this session.",
		NextSteps:               []string{"Practice the focus areas from this session and try again"},
		NextInterviewSuggestion: fmt.Sprintf("Another %s interview at %s difficulty", session.Track, session.Difficulty),
		Fallback:                true,
		CreatedAt:               time.Now(),
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
