// Package voice is the HTTP client for the voice/telephony conversational-AI
// provider. It implements domain.VoiceProvider.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"interview-byte/internal/config"
	"interview-byte/internal/domain"
	"interview-byte/internal/logger"

	"go.uber.org/zap"
)

// Client talks to the provider's REST API. All requests carry a bounded
// timeout through the underlying http.Client; there are no retries here.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a provider client from configuration.
func NewClient(cfg config.VoiceConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type assistantPayload struct {
	Model              string                `json:"model"`
	Voice              domain.VoiceSettings  `json:"voice"`
	SystemPrompt       string                `json:"systemPrompt"`
	FirstMessage       string                `json:"firstMessage"`
	MaxDurationMinutes int                   `json:"maxDurationMinutes"`
}

type initiateCallRequest struct {
	Assistant assistantPayload  `json:"assistant"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type initiateCallResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type callDetailsResponse struct {
	Transcript string `json:"transcript"`
	Messages   []struct {
		Role    string `json:"role"`
		Message string `json:"message"`
	} `json:"messages"`
}

// InitiateCall starts a live call with the configured assistant. Errors are
// returned unwrapped into the domain taxonomy; starting a call has no
// fallback.
func (c *Client) InitiateCall(ctx context.Context, assistant domain.AssistantConfig, metadata map[string]string) (*domain.CallInfo, error) {
	reqBody := initiateCallRequest{
		Assistant: assistantPayload{
			Model:              assistant.Model,
			Voice:              assistant.Voice,
			SystemPrompt:       assistant.SystemPrompt,
			FirstMessage:       assistant.FirstMessage,
			MaxDurationMinutes: assistant.MaxDurationMinutes,
		},
		Metadata: metadata,
	}

	var resp initiateCallResponse
	if err := c.doJSON(ctx, http.MethodPost, "/call", reqBody, &resp); err != nil {
		return nil, domain.NewExternalServiceError("voice", err)
	}
	if resp.ID == "" {
		return nil, domain.NewExternalServiceError("voice", fmt.Errorf("call initiation response missing call id"))
	}

	logger.Get().Info("Initiated voice call",
		zap.String("call_id", resp.ID),
		zap.String("status", resp.Status))

	return &domain.CallInfo{
		ID:        resp.ID,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// GetCallDetails fetches the post-call transcript and message log.
func (c *Client) GetCallDetails(ctx context.Context, callID string) (*domain.CallDetails, error) {
	var resp callDetailsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/call/"+callID, nil, &resp); err != nil {
		return nil, domain.NewExternalServiceError("voice", err)
	}

	details := &domain.CallDetails{Transcript: resp.Transcript}
	for _, m := range resp.Messages {
		details.Messages = append(details.Messages, domain.CallMessage{
			Role:    m.Role,
			Content: m.Message,
		})
	}
	return details, nil
}

// EndCall asks the provider to terminate a call. Callers treat failures as
// non-fatal; this method still reports them so the orchestrator can log.
func (c *Client) EndCall(ctx context.Context, callID string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/call/"+callID+"/end", nil, nil); err != nil {
		return domain.NewExternalServiceError("voice", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, target interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("voice API error: %d - %s", resp.StatusCode, string(respBody))
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var _ domain.VoiceProvider = (*Client)(nil)
