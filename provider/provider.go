package provider

import (
	"context"
	"strings"

	"ai-marketing/models"
)

// Style 는 원격 프롬프트 종류다.
type Style string

const (
	StyleSEO             Style = "seo"
	StyleEcommerce       Style = "ecommerce"
	StyleEmotional       Style = "emotional"
	StyleShortTitle      Style = "short_title"
	StyleMarketplaceSpec Style = "marketplace_spec"
)

// ParseStyle 은 알 수 없는 값을 ecommerce 로 처리한다.
func ParseStyle(s string) Style {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case StyleSEO, StyleEcommerce, StyleEmotional, StyleShortTitle, StyleMarketplaceSpec:
		return st
	}
	return StyleEcommerce
}

// DefaultStyle 은 Style 이 지정되지 않은 요청의 프롬프트 종류를 정한다.
func DefaultStyle(kind models.CopyKind, tier models.LengthTier) Style {
	switch kind {
	case models.KindTitle:
		if tier == models.LengthLong {
			return StyleSEO
		}
		return StyleShortTitle
	case models.KindSpec:
		return StyleMarketplaceSpec
	}
	return StyleEcommerce
}

// CopyRequest 는 단일 카피 생성 호출의 입력이다. Index 는 회전 인덱스다.
type CopyRequest struct {
	Product models.ProductInfo
	Kind    models.CopyKind
	Style   Style
	Length  models.LengthTier
	Index   int
}

func (r CopyRequest) style() Style {
	if r.Style == "" {
		return DefaultStyle(r.Kind, r.Length)
	}
	return ParseStyle(string(r.Style))
}

type CopyResult struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

// Provider 는 생성 계약의 세 가지 연산이다. 원격 모델 구현과 템플릿 구현이 있다.
type Provider interface {
	Name() string
	AnalyzeProductFromURL(ctx context.Context, url string) (models.ProductInfo, error)
	GenerateProductCopy(ctx context.Context, req CopyRequest) (CopyResult, error)
	AnalyzeAudience(ctx context.Context, name, description string) (models.AudienceAnalysis, error)
}

// Result 는 provider 호출 하나의 결과와 출처다.
// Err 가 nil 이 아니면 Value 는 의미가 없고 호출자가 폴백을 결정한다.
type Result[T any] struct {
	Value  T
	Source models.Source
	Err    *GenerationError
}

func (r Result[T]) OK() bool { return r.Err == nil }

// Invoke 는 p 에 대한 호출을 Result 로 감싼다.
func Invoke[T any](p Provider, remote bool, op string, call func(Provider) (T, error)) Result[T] {
	src := models.SourceTemplate
	if remote {
		src = models.SourceRemote
	}
	v, err := call(p)
	if err != nil {
		return Result[T]{Source: src, Err: classify(op, err)}
	}
	return Result[T]{Value: v, Source: src}
}
