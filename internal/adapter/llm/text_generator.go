// Package llm adapts a langchaingo chat model to the domain.TextGenerator
// port. The same client serves question generation and report generation;
// callers choose sampling options per call.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"interview-byte/internal/config"
	"interview-byte/internal/domain"
	"interview-byte/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

type textGenerator struct {
	model   llms.Model
	timeout time.Duration
}

// NewTextGenerator builds a domain.TextGenerator backed by the configured
// langchaingo client. Source selects between the OpenAI API and an Ollama
// server; both are constructed once at process start and shared.
func NewTextGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	var model llms.Model
	var err error
	switch cfg.Source {
	case "ollama":
		model, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	case "openai":
		model, err = openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM source: %s", cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &textGenerator{model: model, timeout: timeout}, nil
}

// Generate calls the provider with a bounded timeout. Provider failures are
// wrapped as ExternalServiceError; callers decide whether that triggers a
// fallback.
func (g *textGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	callOpts := []llms.CallOption{
		llms.WithTemperature(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		callOpts = append(callOpts, llms.WithTopP(opts.TopP))
	}
	if opts.TopK > 0 {
		callOpts = append(callOpts, llms.WithTopK(opts.TopK))
	}
	if opts.JSONOutput {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, callOpts...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			logger.Get().Error("LLM request timed out", zap.Error(err))
		}
		return "", domain.NewExternalServiceError("text-generation", err)
	}

	return response, nil
}
