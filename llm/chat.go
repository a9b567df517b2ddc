package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-marketing/internal/httpclient"
)

const maxErrorBody = 2048

// ChatClient 는 OpenAI 호환 chat completions API(OpenRouter, OpenAI) 클라이언트다.
type ChatClient struct {
	name    string
	apiKey  string
	model   string
	opts    Options
	headers map[string]string
	base    *httpclient.BaseClient
}

type ChatConfig struct {
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Options Options
	// Headers 는 provider 별 추가 헤더다. (예: OpenRouter 의 HTTP-Referer, X-Title)
	Headers map[string]string
}

func NewChatClient(cfg ChatConfig, httpClient *http.Client) (*ChatClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("llm: %s base url is empty", cfg.Name)
	}
	return &ChatClient{
		name:    cfg.Name,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		opts:    cfg.Options.withDefaults(),
		headers: cfg.Headers,
		base:    httpclient.NewBaseClient(httpClient, cfg.BaseURL),
	}, nil
}

func (c *ChatClient) Name() string { return c.name }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
		TotalTokens      int64 `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete 는 /chat/completions 에 단일 요청을 보내고 첫 번째 choice 를 반환한다.
func (c *ChatClient) Complete(ctx context.Context, prompt, systemInstruction, model string) (Completion, error) {
	start := time.Now()
	if model == "" {
		model = c.model
	}

	messages := make([]chatMessage, 0, 2)
	if systemInstruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemInstruction})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("llm: marshal request: %w", err)
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "chat/completions", nil, bytes.NewReader(payload))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("llm: %s request: %w", c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, fmt.Errorf("llm: read response: %w", err)
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
		if decodeErr == nil && parsed.Error != nil {
			httpErr.Message = parsed.Error.Message
		}
		return Completion{}, httpErr
	}
	if decodeErr != nil {
		return Completion{}, fmt.Errorf("llm: decode response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		return Completion{}, fmt.Errorf("llm: %s returned no choices", c.name)
	}

	if parsed.Model != "" {
		model = parsed.Model
	}
	return Completion{
		Text:  parsed.Choices[0].Message.Content,
		Model: model,
		Usage: TokenUsage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
		Latency: time.Since(start),
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
