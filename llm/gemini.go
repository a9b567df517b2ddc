package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient 는 google.golang.org/genai 기반 Gemini 클라이언트다.
type GeminiClient struct {
	client *genai.Client
	model  string
	opts   Options
}

// GeminiConfig 의 BaseURL 이 비어 있으면 SDK 기본 엔드포인트를 쓴다.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Options Options
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, httpClient *http.Client) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  cfg.Model,
		opts:   cfg.Options.withDefaults(),
	}, nil
}

func (g *GeminiClient) Name() string { return "gemini" }

func (g *GeminiClient) Complete(ctx context.Context, prompt, systemInstruction, model string) (Completion, error) {
	start := time.Now()
	if model == "" {
		model = g.model
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.opts.Temperature)),
		MaxOutputTokens: int32(g.opts.MaxTokens),
	}
	if systemInstruction != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}}
	}

	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		return Completion{}, fmt.Errorf("llm: gemini generate: %w", err)
	}
	if result == nil {
		return Completion{}, fmt.Errorf("llm: gemini returned empty result")
	}

	out := Completion{
		Text:         result.Text(),
		Model:        model,
		ModelVersion: result.ModelVersion,
		Latency:      time.Since(start),
	}
	if result.UsageMetadata != nil {
		out.Usage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}
