package advisor

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-3-flash-preview"

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// GeminiAdvisor asks a Gemini model for a strategy audit
type GeminiAdvisor struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiAdvisor creates the GenAI client once; it is reused across requests
func NewGeminiAdvisor(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiAdvisor{client: client, model: model, logger: logger}, nil
}

// Model returns the configured model name
func (g *GeminiAdvisor) Model() string { return g.model }

// Advise sends the strategy audit prompt and returns the model's markdown text
func (g *GeminiAdvisor) Advise(ctx context.Context, req Request) (string, error) {
	if req.Result == nil {
		return "", fmt.Errorf("request %s has no simulation result", req.ID)
	}
	prompt := BuildPrompt(req.Params, req.Result)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	}

	g.logger.Debug("Requesting strategy audit",
		zap.String("request_id", req.ID),
		zap.String("model", g.model))

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		g.logger.Warn("Strategy audit failed",
			zap.String("request_id", req.ID),
			zap.Error(err))
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return result.Text(), nil
}
