package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"interview-byte/internal/domain"
	"interview-byte/internal/logger"
	"interview-byte/internal/util"

	"go.uber.org/zap"
)

const (
	questionGenTemperature = 0.8
	questionGenMaxTokens   = 3000
)

// QuestionService generates the ordered question list for a new session.
// Generation is total: provider or parse failures degrade to the static
// question bank instead of failing the caller.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, track, difficulty string, cfg domain.SessionConfig) []domain.Question
}

type questionService struct {
	generator domain.TextGenerator
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(generator domain.TextGenerator) QuestionService {
	return &questionService{generator: generator}
}

// generatedQuestion is the schema the provider is asked to emit.
type generatedQuestion struct {
	Text                  string   `json:"text"`
	Motivation            string   `json:"motivation"`
	ExpectedKeyPoints     []string `json:"expected_key_points"`
	Difficulty            int      `json:"difficulty"`
	TimeAllocationMinutes int      `json:"time_allocation_minutes"`
	FollowUps             []string `json:"follow_ups"`
}

// questionCountForDifficulty returns how many questions to request.
func questionCountForDifficulty(difficulty string) int {
	switch difficulty {
	case domain.DifficultyEasy:
		return 5
	case domain.DifficultyMedium:
		return 6
	case domain.DifficultyHard, domain.DifficultyExpert:
		return 7
	default:
		return 6
	}
}

func (s *questionService) GenerateQuestions(ctx context.Context, track, difficulty string, cfg domain.SessionConfig) []domain.Question {
	count := questionCountForDifficulty(difficulty)
	duration := cfg.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationForCount(count)
	}

	prompt := buildQuestionPrompt(track, difficulty, count, duration, cfg)

	response, err := s.generator.Generate(ctx, prompt, domain.GenerationOptions{
		Temperature: questionGenTemperature,
		MaxTokens:   questionGenMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		logger.Get().Warn("Question generation provider call failed, using fallback bank",
			zap.Error(err),
			zap.String("track", track),
			zap.String("difficulty", difficulty))
		return fallbackQuestions(track, difficulty, duration)
	}

	parsed, err := parseGeneratedQuestions(response)
	if err != nil {
		logger.Get().Warn("Question generation response failed validation, using fallback bank",
			zap.Error(err),
			zap.String("track", track))
		return fallbackQuestions(track, difficulty, duration)
	}

	return materializeQuestions(parsed, duration)
}

func defaultDurationForCount(count int) int {
	return count * 3
}

func buildQuestionPrompt(track, difficulty string, count, duration int, cfg domain.SessionConfig) string {
	var b strings.Builder
	b.WriteString("You are a senior technical interviewer preparing a mock interview.\n")
	fmt.Fprintf(&b, "Generate exactly %d interview questions for a %s interview at %s difficulty.\n", count, track, difficulty)
	fmt.Fprintf(&b, "The interview lasts %d minutes in total.\n", duration)
	if len(cfg.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s.\n", strings.Join(cfg.FocusAreas, ", "))
	}
	if cfg.SpecificRequirements != "" {
		fmt.Fprintf(&b, "Additional requirements from the candidate: %s\n", cfg.SpecificRequirements)
	}
	b.WriteString(`
Respond with a JSON array only, no surrounding text. Each element must have:
- "text": the question to ask aloud
- "motivation": one sentence on what the question probes
- "expected_key_points": 2-4 short strings a strong answer covers
- "difficulty": integer 1-10
- "time_allocation_minutes": minutes to spend on this question
- "follow_ups": 1-2 short follow-up questions

Order the questions from easier to harder.`)
	return b.String()
}

// parseGeneratedQuestions validates the provider response. A response that is
// not a non-empty array of well-formed objects is a validation failure.
func parseGeneratedQuestions(response string) ([]generatedQuestion, error) {
	cleaned := cleanLLMResponse(response)

	var parsed []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, domain.NewValidationError("generated questions are not a JSON array", err)
	}
	if len(parsed) == 0 {
		return nil, domain.NewValidationError("generated question array is empty", nil)
	}
	for i, q := range parsed {
		if strings.TrimSpace(q.Text) == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("generated question %d has no text", i+1), nil)
		}
	}
	return parsed, nil
}

func materializeQuestions(parsed []generatedQuestion, duration int) []domain.Question {
	perQuestion := duration / len(parsed)
	if perQuestion < 1 {
		perQuestion = 1
	}

	questions := make([]domain.Question, 0, len(parsed))
	for i, q := range parsed {
		allocation := q.TimeAllocationMinutes
		if allocation <= 0 {
			allocation = perQuestion
		}
		difficulty := q.Difficulty
		if difficulty < 1 || difficulty > 10 {
			difficulty = 5
		}
		questions = append(questions, domain.Question{
			ID:                    util.NewULID(),
			Order:                 i + 1,
			Text:                  q.Text,
			Motivation:            q.Motivation,
			ExpectedKeyPoints:     q.ExpectedKeyPoints,
			Difficulty:            difficulty,
			TimeAllocationMinutes: allocation,
			FollowUps:             q.FollowUps,
		})
	}
	return questions
}

// fallbackQuestions selects a prefix of the static bank: 3 questions for easy
// interviews, 5 otherwise, capped at bank size.
func fallbackQuestions(track, difficulty string, duration int) []domain.Question {
	bank, ok := questionBank[normalizeTrack(track)]
	if !ok {
		bank = questionBank[genericTrack]
	}

	take := 5
	if difficulty == domain.DifficultyEasy {
		take = 3
	}
	if take > len(bank) {
		take = len(bank)
	}

	perQuestion := duration / take
	if perQuestion < 1 {
		perQuestion = 1
	}

	questions := make([]domain.Question, 0, take)
	for i := 0; i < take; i++ {
		entry := bank[i]
		questions = append(questions, domain.Question{
			ID:                    util.NewULID(),
			Order:                 i + 1,
			Text:                  entry.Text,
			Motivation:            entry.Motivation,
			ExpectedKeyPoints:     entry.KeyPoints,
			Difficulty:            entry.Difficulty,
			TimeAllocationMinutes: perQuestion,
			FollowUps:             entry.FollowUps,
		})
	}
	return questions
}

func normalizeTrack(track string) string {
	return strings.ToLower(strings.TrimSpace(track))
}
