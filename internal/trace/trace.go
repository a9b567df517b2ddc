package trace

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info 는 하나의 API 요청 또는 생성 배치에 대한 트레이싱 정보를 담는다.
// - RequestID: 요청/배치 단위로 고유
// - spanSeq: 동일 RequestID 안에서 원격 호출마다 1,2,3,... 순차 증가
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID 는 트레이싱에 사용할 랜덤 ID 를 생성한다.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithRequestAndSpan 은 Request ID 와 초기 span 값을 저장한 새 컨텍스트를 반환한다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

// Ensure 는 컨텍스트에 트레이싱 정보가 없을 때만 새 Request ID 를 붙인다.
// API 밖에서 generator 를 직접 호출해도 배치 단위 ID 가 로그에 남는다.
func Ensure(ctx context.Context) (context.Context, string) {
	if info := infoFromContext(ctx); info != nil {
		return ctx, info.RequestID
	}
	requestID := GenerateID()
	return WithRequestAndSpan(ctx, requestID, 0), requestID
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext 는 컨텍스트에서 Request ID 를 조회한다.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID 는 현재 span 시퀀스 값을 문자열로 반환한다. (증가시키지 않는다.)
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID 는 spanSeq 를 1 증가시키고 (requestID, spanID) 를 반환한다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
