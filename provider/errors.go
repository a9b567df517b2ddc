package provider

import (
	"errors"
	"fmt"

	"ai-marketing/fetcher"
	"ai-marketing/llm"
)

// ErrorKind 는 원격 생성 실패의 분류다. 모든 분류는 템플릿 폴백으로 복구 가능하다.
type ErrorKind string

const (
	KindCredential ErrorKind = "credential"
	KindTransport  ErrorKind = "transport"
	KindParse      ErrorKind = "parse"
	KindFetch      ErrorKind = "fetch"
)

// GenerationError 는 provider 경계에서 반환되는 유일한 에러 타입이다.
type GenerationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

var (
	ErrCredential = &GenerationError{Kind: KindCredential}
	ErrTransport  = &GenerationError{Kind: KindTransport}
	ErrParse      = &GenerationError{Kind: KindParse}
	ErrFetch      = &GenerationError{Kind: KindFetch}
)

func (e *GenerationError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("provider: %s: %s error: %v", e.Op, e.Kind, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("provider: %s error: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("provider: %s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("provider: %s error", e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is 는 Kind 만 비교한다. errors.Is(err, ErrParse) 형태로 사용한다.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

func newError(kind ErrorKind, op string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Op: op, Err: err}
}

// classify 는 하위 계층(llm, fetcher) 에러를 GenerationError 로 변환한다.
// 알 수 없는 에러는 transport 로 취급한다.
func classify(op string, err error) *GenerationError {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge
	}
	var fe *fetcher.FetchError
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		return newError(KindCredential, op, err)
	case errors.As(err, &fe):
		return newError(KindFetch, op, err)
	}
	return newError(KindTransport, op, err)
}

// KindOf 는 err 의 GenerationError 분류를 반환한다. 해당하지 않으면 "".
func KindOf(err error) ErrorKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}
