package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey 는 키 없이 원격 클라이언트를 만들거나 호출했을 때 반환된다.
var ErrMissingAPIKey = errors.New("llm: api key is not set")

// TokenUsage is the token accounting of a single completion
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Completion 은 원격 모델이 돌려준 원문 텍스트와 호출 메타데이터다.
type Completion struct {
	Text         string
	Model        string
	ModelVersion string
	Usage        TokenUsage
	Latency      time.Duration
}

// Completer 는 단일 텍스트 생성 호출을 수행하는 원격 모델 클라이언트다.
// model 이 비어 있으면 클라이언트 기본 모델을 사용한다.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt, systemInstruction, model string) (Completion, error)
}

// HTTPError 는 원격 API 가 2xx 가 아닌 상태를 돌려준 경우다.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("llm: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm: http %d", e.StatusCode)
}

// Options 는 provider 공통 호출 파라미터다.
type Options struct {
	Temperature float64
	MaxTokens   int
}

func (o Options) withDefaults() Options {
	if o.Temperature <= 0 {
		o.Temperature = 0.7
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = 2000
	}
	return o
}
