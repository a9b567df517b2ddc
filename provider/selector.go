package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-marketing/config"
	"ai-marketing/internal/logger"
	"ai-marketing/llm"
)

// Selection 은 시작 시 한 번 결정되는 provider 바인딩이다. 이후 변경하지 않는다.
type Selection struct {
	Provider Provider
	Name     string
	Remote   bool
	Reason   string
}

// Deps 는 원격 provider 구성에 필요한 공유 의존성이다.
type Deps struct {
	HTTPClient *http.Client
	Fetcher    PageFetcher
	Limiter    Reserver
	Options    llm.Options
	Timeout    time.Duration
	// Headers 는 OpenAI 호환 provider 별 추가 헤더다. key 는 provider 이름.
	Headers map[string]map[string]string
}

// CompleterFactory 는 자격 증명 하나로 원격 클라이언트를 만든다.
type CompleterFactory func(ctx context.Context, cred config.Credential, deps Deps) (llm.Completer, error)

// Select 는 우선순위 순서의 첫 번째 유효한 자격 증명으로 원격 provider 를 고른다.
// 자격 증명이 하나도 없으면 템플릿 provider 로 바인딩한다.
func Select(ctx context.Context, creds []config.Credential, deps Deps) Selection {
	return SelectWith(ctx, creds, deps, NewCompleter)
}

func SelectWith(ctx context.Context, creds []config.Credential, deps Deps, factory CompleterFactory) Selection {
	fields := logger.Fields{}
	for _, c := range creds {
		fields[c.Provider+"_api_key"] = describeKey(c.APIKey)
	}

	sel := Selection{}
	var skipped []string
	for _, c := range creds {
		if !c.Present() {
			continue
		}
		completer, err := factory(ctx, c, deps)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", c.Provider, err))
			continue
		}
		sel = Selection{
			Provider: NewRemoteProvider(completer, RemoteOptions{
				Model:   c.Model,
				Fetcher: deps.Fetcher,
				Limiter: deps.Limiter,
				Timeout: deps.Timeout,
			}),
			Name:   c.Provider,
			Remote: true,
			Reason: fmt.Sprintf("%s credential present", c.Provider),
		}
		fields["model"] = c.Model
		break
	}

	if sel.Provider == nil {
		sel = Selection{
			Provider: NewTemplateProvider(),
			Name:     templateName,
			Reason:   "no remote credential configured",
		}
		if len(skipped) > 0 {
			sel.Reason = "no usable remote credential: " + strings.Join(skipped, "; ")
		}
	}

	fields["provider"] = sel.Name
	fields["remote"] = sel.Remote
	fields["reason"] = sel.Reason
	logger.InfoWithFields("generation provider selected", fields)
	return sel
}

// NewCompleter 는 provider 이름으로 클라이언트 구현을 고른다.
// gemini 는 genai SDK, 그 외는 OpenAI 호환 chat completions 이다.
func NewCompleter(ctx context.Context, cred config.Credential, deps Deps) (llm.Completer, error) {
	if cred.Provider == "gemini" {
		return llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:  cred.APIKey,
			BaseURL: cred.BaseURL,
			Model:   cred.Model,
			Options: deps.Options,
		}, deps.HTTPClient)
	}
	return llm.NewChatClient(llm.ChatConfig{
		Name:    cred.Provider,
		APIKey:  cred.APIKey,
		BaseURL: cred.BaseURL,
		Model:   cred.Model,
		Options: deps.Options,
		Headers: deps.Headers[cred.Provider],
	}, deps.HTTPClient)
}

// describeKey 는 진단 로그용으로 키 앞부분만 남긴다.
func describeKey(key string) string {
	if key == "" {
		return "not set"
	}
	if len(key) <= 8 {
		return "set (****)"
	}
	return "set (" + key[:6] + "...)"
}
