package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"interview-byte/internal/config"
	"interview-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func voiceTestSession() *domain.InterviewSession {
	return &domain.InterviewSession{
		ID:         "01HSESSION",
		UserID:     "user-1",
		Track:      "system-design",
		Difficulty: "hard",
		Questions: []domain.Question{
			{ID: "q-1", Order: 1, Text: "Design a URL shortener.", ExpectedKeyPoints: []string{"key generation"}, TimeAllocationMinutes: 10, FollowUps: []string{"What about collisions?"}},
			{ID: "q-2", Order: 2, Text: "Design a rate limiter.", TimeAllocationMinutes: 15},
		},
	}
}

func testVoiceConfig() config.VoiceConfig {
	return config.VoiceConfig{Model: "gpt-4o", VoiceID: "jennifer", Timeout: 15 * time.Second}
}

func TestVoiceStart_BuildsAssistantConfig(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())
	session := voiceTestSession()

	var captured domain.AssistantConfig
	provider.On("InitiateCall", mock.Anything, mock.Anything, mock.MatchedBy(func(md map[string]string) bool {
		return md["session_id"] == "01HSESSION" && md["user_id"] == "user-1" && md["track"] == "system-design"
	})).Run(func(args mock.Arguments) {
		captured = args.Get(1).(domain.AssistantConfig)
	}).Return(&domain.CallInfo{ID: "call-123", Status: "queued"}, nil)

	info, err := orch.Start(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, "call-123", info.ID)
	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Equal(t, "jennifer", captured.Voice.VoiceID)
	assert.Equal(t, 25, captured.MaxDurationMinutes)
	assert.True(t, strings.Contains(captured.SystemPrompt, "Design a URL shortener."))
	assert.True(t, strings.Contains(captured.SystemPrompt, "key generation"))
	assert.True(t, strings.Contains(captured.SystemPrompt, "What about collisions?"))
	assert.True(t, strings.Contains(captured.SystemPrompt, "25 minutes"))
	assert.True(t, strings.Contains(captured.FirstMessage, "2 questions"))
	provider.AssertExpectations(t)
}

func TestVoiceStart_ProviderError_Propagated(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("InitiateCall", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewExternalServiceError("voice", errors.New("503")))

	info, err := orch.Start(context.Background(), voiceTestSession())

	assert.Nil(t, info)
	assert.Error(t, err)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrExternalService, domainErr.Code)
}

func TestFetchTranscript_PrefersProviderTranscript(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("GetCallDetails", mock.Anything, "call-123").Return(&domain.CallDetails{
		Transcript: "ASSISTANT: Q1\nUSER: A1",
		Messages:   []domain.CallMessage{{Role: "assistant", Content: "ignored"}},
	}, nil)

	text, err := orch.FetchTranscript(context.Background(), "call-123")

	assert.NoError(t, err)
	assert.Equal(t, "ASSISTANT: Q1\nUSER: A1", text)
}

func TestFetchTranscript_ReconstructsFromMessages(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("GetCallDetails", mock.Anything, "call-123").Return(&domain.CallDetails{
		Messages: []domain.CallMessage{
			{Role: "assistant", Content: "What is a closure?"},
			{Role: "user", Content: "A function with captured scope."},
		},
	}, nil)

	text, err := orch.FetchTranscript(context.Background(), "call-123")

	assert.NoError(t, err)
	assert.Equal(t, "ASSISTANT: What is a closure?\nUSER: A function with captured scope.", text)
}

func TestFetchTranscript_NothingAvailable_ReturnsEmpty(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("GetCallDetails", mock.Anything, "call-123").Return(&domain.CallDetails{}, nil)

	text, err := orch.FetchTranscript(context.Background(), "call-123")

	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestFetchTranscript_ProviderError_Propagated(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("GetCallDetails", mock.Anything, "call-123").
		Return(nil, errors.New("network error"))

	_, err := orch.FetchTranscript(context.Background(), "call-123")

	assert.Error(t, err)
}

func TestEnd_ProviderError_Swallowed(t *testing.T) {
	provider := new(MockVoiceProvider)
	orch := NewVoiceOrchestrator(provider, testVoiceConfig())

	provider.On("EndCall", mock.Anything, "call-123").Return(errors.New("already ended"))

	assert.NotPanics(t, func() {
		orch.End(context.Background(), "call-123")
	})
	provider.AssertExpectations(t)
}
