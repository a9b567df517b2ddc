package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"ai-marketing/internal/httpclient"
)

const maxProxyBody = 5 << 20

// Source 는 상품 페이지의 원본 HTML 을 돌려준다. 실패는 *FetchError 로 감싼다.
type Source interface {
	Raw(ctx context.Context, pageURL string) (string, error)
}

// ProxySource 는 allorigins 형식 프록시를 사용한다.
// GET {proxy}?url={target} 에 {"contents": "<html>"} 로 응답한다.
type ProxySource struct {
	base *httpclient.BaseClient
}

func NewProxySource(httpClient *http.Client, proxyURL string) *ProxySource {
	return &ProxySource{base: httpclient.NewBaseClient(httpClient, proxyURL)}
}

type proxyResponse struct {
	Contents string `json:"contents"`
}

func (s *ProxySource) Raw(ctx context.Context, pageURL string) (string, error) {
	req, err := s.base.NewRequest(ctx, http.MethodGet, "", url.Values{"url": {pageURL}}, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	resp, err := s.base.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	var body proxyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProxyBody)).Decode(&body); err != nil {
		return "", &FetchError{URL: pageURL, Err: fmt.Errorf("decode proxy response: %w", err)}
	}
	return body.Contents, nil
}
