package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview-byte/internal/config"
	"interview-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.VoiceConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestInitiateCall(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/call", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":        "call-123",
			"status":    "queued",
			"createdAt": time.Now().UTC(),
		})
	})

	info, err := client.InitiateCall(context.Background(), domain.AssistantConfig{
		Model:              "gpt-4o",
		Voice:              domain.VoiceSettings{VoiceID: "jennifer", Stability: 0.5, SimilarityBoost: 0.5},
		SystemPrompt:       "You are an interviewer.",
		FirstMessage:       "Hello",
		MaxDurationMinutes: 20,
	}, map[string]string{"session_id": "sess-1"})

	require.NoError(t, err)
	assert.Equal(t, "call-123", info.ID)
	assert.Equal(t, "queued", info.Status)
	assert.Equal(t, "Bearer test-key", gotAuth)

	assistant, ok := gotBody["assistant"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", assistant["model"])
	assert.Equal(t, "You are an interviewer.", assistant["systemPrompt"])
	metadata, ok := gotBody["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sess-1", metadata["session_id"])
}

func TestInitiateCallProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no capacity"}`, http.StatusServiceUnavailable)
	})

	info, err := client.InitiateCall(context.Background(), domain.AssistantConfig{}, nil)
	assert.Nil(t, info)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrExternalService, domainErr.Code)
}

func TestInitiateCallMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "queued"})
	})

	_, err := client.InitiateCall(context.Background(), domain.AssistantConfig{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing call id")
}

func TestGetCallDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call/call-123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"transcript": "ASSISTANT: Q1\nUSER: A1",
			"messages": []map[string]string{
				{"role": "assistant", "message": "Q1"},
				{"role": "user", "message": "A1"},
			},
		})
	})

	details, err := client.GetCallDetails(context.Background(), "call-123")
	require.NoError(t, err)
	assert.Equal(t, "ASSISTANT: Q1\nUSER: A1", details.Transcript)
	require.Len(t, details.Messages, 2)
	assert.Equal(t, domain.CallMessage{Role: "assistant", Content: "Q1"}, details.Messages[0])
}

func TestEndCall(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/call/call-123/end", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.EndCall(context.Background(), "call-123"))
	assert.True(t, called)
}

func TestEndCallError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.EndCall(context.Background(), "call-123")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrExternalService, domainErr.Code)
}
