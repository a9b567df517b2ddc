package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/internal/trace"
)

func TestRoundTripperSetsTraceHeadersAndKeepsBody(t *testing.T) {
	var gotRequestID, gotSpanID, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := trace.WithRequestAndSpan(context.Background(), "batch-1", 0)
	client := NewBaseClient(New(Config{}), srv.URL)
	req, err := client.NewRequest(ctx, http.MethodPost, "/v1/chat", nil, strings.NewReader(`{"k":"v"}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "batch-1", gotRequestID)
	assert.Equal(t, "1", gotSpanID)
	assert.Equal(t, `{"k":"v"}`, gotBody)
}

func TestNewRequestJoinsPathAndQuery(t *testing.T) {
	client := NewBaseClient(nil, "https://api.example.com/v1/")

	req, err := client.NewRequest(context.Background(), http.MethodGet, "/get", url.Values{"url": {"https://shop.example.com/p?id=1"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/v1/get", req.URL.Path)
	assert.Equal(t, "https://shop.example.com/p?id=1", req.URL.Query().Get("url"))
}

func TestNewRequestRejectsInlineQuery(t *testing.T) {
	client := NewBaseClient(nil, "https://api.example.com")

	_, err := client.NewRequest(context.Background(), http.MethodGet, "/get?url=x", nil, nil)
	assert.Error(t, err)
}
