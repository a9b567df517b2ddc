package app

import (
	"context"

	"ai-marketing/config"
	"ai-marketing/fetcher"
	"ai-marketing/generator"
	"ai-marketing/internal/httpclient"
	"ai-marketing/llm"
	"ai-marketing/provider"
	"ai-marketing/quota"
)

// openRouterHeaders 는 OpenRouter 가 앱 식별에 사용하는 헤더다.
var openRouterHeaders = map[string]string{
	"HTTP-Referer": "https://ai-marketing.local",
	"X-Title":      "AI Marketing Copy",
}

// NewGenerator 는 설정과 환경변수로 provider 를 한 번 선택하고 생성기를 만든다.
// lookup 은 보통 os.Getenv 이다.
func NewGenerator(ctx context.Context, cfg config.AppConfig, lookup func(string) string) *generator.Generator {
	llmHTTP := httpclient.New(httpclient.Config{Timeout: cfg.LLM.Timeout()})
	fetchHTTP := httpclient.New(httpclient.Config{Timeout: cfg.Fetcher.Timeout()})

	sel := provider.Select(ctx, cfg.LLM.Credentials(lookup), provider.Deps{
		HTTPClient: llmHTTP,
		Fetcher:    fetcher.New(cfg.Fetcher, fetchHTTP),
		Limiter:    quota.NewLimiter(cfg.Quota),
		Options: llm.Options{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		Timeout: cfg.LLM.Timeout(),
		Headers: map[string]map[string]string{"openrouter": openRouterHeaders},
	})
	return generator.New(sel, cfg.Generation)
}
