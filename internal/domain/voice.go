package domain

import (
	"context"
	"time"
)

// VoiceSettings are the fixed voice parameters of the conversational agent.
type VoiceSettings struct {
	VoiceID         string  `json:"voice_id"`
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// AssistantConfig is the configuration handed to the voice provider when a
// call is initiated.
type AssistantConfig struct {
	Model              string        `json:"model"`
	Voice              VoiceSettings `json:"voice"`
	SystemPrompt       string        `json:"system_prompt"`
	FirstMessage       string        `json:"first_message"`
	MaxDurationMinutes int           `json:"max_duration_minutes"`
}

// CallInfo is the provider's acknowledgement of an initiated call.
type CallInfo struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

// CallMessage is one role-tagged utterance in the call log.
type CallMessage struct {
	Role    string
	Content string
}

// CallDetails are the post-call artifacts exposed by the provider. Transcript
// may be empty; Messages may then be used to reconstruct one.
type CallDetails struct {
	Transcript string
	Messages   []CallMessage
}

// VoiceProvider is the port for the voice/telephony conversational-AI
// provider. InitiateCall and GetCallDetails errors are fatal to their callers;
// EndCall is cleanup and its errors are swallowed by the orchestrator.
type VoiceProvider interface {
	InitiateCall(ctx context.Context, assistant AssistantConfig, metadata map[string]string) (*CallInfo, error)
	GetCallDetails(ctx context.Context, callID string) (*CallDetails, error)
	EndCall(ctx context.Context, callID string) error
}
