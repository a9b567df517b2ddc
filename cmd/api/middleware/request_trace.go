package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-marketing/internal/logger"
	"ai-marketing/internal/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
	maxBodyLog      = 512
)

// RequestTrace 는 inbound 요청마다 Request ID 를 보장해 컨텍스트와 응답 헤더에 싣고,
// 응답이 끝나면 요청 한 건의 로그를 남긴다. 생성 배치의 LLM 호출 로그도 같은 request_id 를 쓴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound 는 span 0, 아웃바운드 LLM/프록시 호출은 1,2,3,...
		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)
		req = c.Request

		currentSpan := trace.CurrentSpanID(ctxWithTrace)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		var bodySnippet string
		if req.Body != nil && req.ContentLength != 0 && req.Method == http.MethodPost {
			if bodyBytes, err := io.ReadAll(req.Body); err == nil {
				if len(bodyBytes) > 0 {
					if len(bodyBytes) > maxBodyLog {
						bodySnippet = string(bodyBytes[:maxBodyLog])
					} else {
						bodySnippet = string(bodyBytes)
					}
				}
				// 핸들러의 바인딩을 위해 Body 를 복원한다.
				c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			}
		}

		c.Next()

		status := c.Writer.Status()
		finalSpan := trace.CurrentSpanID(c.Request.Context())
		duration := time.Since(start)
		fields := logger.Fields{
			"method":      req.Method,
			"path":        c.FullPath(),
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"request_id":  requestID,
			"span_id":     finalSpan,
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		logger.InfoWithFields("completed request", fields)
	}
}
