package leads

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/akomcomputer/shopsuite-backend/pkg/config"
)

// Scorer invokes the external generative model with a free-text prompt and
// returns the raw JSON payload it produced.
type Scorer interface {
	Score(ctx context.Context, prompt string) ([]byte, error)
	Model() string
}

type geminiScorer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiScorer builds the Gemini-backed scorer. The API key is required;
// callers with no key skip construction and run with scoring disabled.
func NewGeminiScorer(ctx context.Context, cfg config.GeminiConfig) (Scorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &geminiScorer{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (g *geminiScorer) Score(ctx context.Context, prompt string) ([]byte, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}
	return []byte(resp.Text()), nil
}

func (g *geminiScorer) Model() string {
	return g.model
}
