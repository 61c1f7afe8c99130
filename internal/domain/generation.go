package domain

import "context"

// GenerationOptions are the sampling parameters passed to the text-generation
// provider for a single call.
type GenerationOptions struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int
	JSONOutput  bool
}

// TextGenerator is the port for the text-generation provider. It is used for
// both question generation and report generation; the two differ only in
// prompt and sampling options.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}
