package service

import (
	"context"
	"fmt"
	"strings"

	"interview-byte/internal/config"
	"interview-byte/internal/domain"
	"interview-byte/internal/logger"

	"go.uber.org/zap"
)

// VoiceOrchestrator bridges a session to the voice/telephony provider. Start
// and FetchTranscript failures are fatal to the caller; End is cleanup and
// never reports failure.
type VoiceOrchestrator interface {
	Start(ctx context.Context, session *domain.InterviewSession) (*domain.CallInfo, error)
	FetchTranscript(ctx context.Context, callID string) (string, error)
	End(ctx context.Context, callID string)
}

type voiceOrchestrator struct {
	provider domain.VoiceProvider
	cfg      config.VoiceConfig
}

// NewVoiceOrchestrator creates a new instance of voiceOrchestrator
func NewVoiceOrchestrator(provider domain.VoiceProvider, cfg config.VoiceConfig) VoiceOrchestrator {
	return &voiceOrchestrator{provider: provider, cfg: cfg}
}

func (o *voiceOrchestrator) Start(ctx context.Context, session *domain.InterviewSession) (*domain.CallInfo, error) {
	assistant := domain.AssistantConfig{
		Model: o.cfg.Model,
		Voice: domain.VoiceSettings{
			VoiceID:         o.cfg.VoiceID,
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
		SystemPrompt:       buildInterviewerPrompt(session),
		FirstMessage:       buildFirstMessage(session),
		MaxDurationMinutes: session.TotalTimeBudgetMinutes(),
	}

	metadata := map[string]string{
		"session_id": session.ID,
		"user_id":    session.UserID,
		"track":      session.Track,
	}

	info, err := o.provider.InitiateCall(ctx, assistant, metadata)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Voice call initiated",
		zap.String("sessionID", session.ID),
		zap.String("callID", info.ID),
		zap.String("status", info.Status))
	return info, nil
}

// FetchTranscript prefers the provider-supplied transcript and falls back to
// reconstructing one from role-tagged messages. An empty result is not an
// error; the transcript processor and report fallback handle it downstream.
func (o *voiceOrchestrator) FetchTranscript(ctx context.Context, callID string) (string, error) {
	details, err := o.provider.GetCallDetails(ctx, callID)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(details.Transcript) != "" {
		return details.Transcript, nil
	}

	if len(details.Messages) == 0 {
		logger.Get().Warn("Voice provider returned no transcript or messages", zap.String("callID", callID))
		return "", nil
	}

	lines := make([]string, 0, len(details.Messages))
	for _, msg := range details.Messages {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(msg.Role), msg.Content))
	}
	return strings.Join(lines, "\n"), nil
}

func (o *voiceOrchestrator) End(ctx context.Context, callID string) {
	if err := o.provider.EndCall(ctx, callID); err != nil {
		logger.Get().Warn("Failed to end voice call, continuing anyway",
			zap.Error(err),
			zap.String("callID", callID))
	}
}

func buildInterviewerPrompt(session *domain.InterviewSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional technical interviewer conducting a %s mock interview at %s difficulty.\n\n", session.Track, session.Difficulty)

	b.WriteString("Ask the following questions, in this exact order:\n")
	for _, q := range session.Questions {
		fmt.Fprintf(&b, "%d. %s (about %d minutes)\n", q.Order, q.Text, q.TimeAllocationMinutes)
		if len(q.ExpectedKeyPoints) > 0 {
			fmt.Fprintf(&b, "   A strong answer covers: %s\n", strings.Join(q.ExpectedKeyPoints, "; "))
		}
		if len(q.FollowUps) > 0 {
			fmt.Fprintf(&b, "   Follow-ups you may use: %s\n", strings.Join(q.FollowUps, " / "))
		}
	}

	fmt.Fprintf(&b, `
Guidelines:
- Ask one question at a time and wait for the candidate to finish.
- Only use follow-ups from the lists above, and only when the answer misses key points.
- Keep the whole interview within %d minutes; move on when a question's time is up.
- Be encouraging but do not give away answers or correct the candidate mid-interview.
- When all questions are done, thank the candidate and end the call.`, session.TotalTimeBudgetMinutes())
	return b.String()
}

func buildFirstMessage(session *domain.InterviewSession) string {
	return fmt.Sprintf("Hello! Welcome to your %s mock interview. We'll go through %d questions together. Take your time with each answer. Ready to begin?",
		session.Track, len(session.Questions))
}
