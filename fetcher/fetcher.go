package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"ai-marketing/config"
	"ai-marketing/internal/httpclient"
	"ai-marketing/internal/logger"
)

// FetchError 는 상품 페이지를 가져오지 못한 경우의 에러다.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: proxy returned http %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Document 는 정제된 상품 페이지 텍스트와 페이지 메타데이터다.
type Document struct {
	URL         string  `json:"url"`
	Text        string  `json:"text"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// Fetcher 는 Source 에서 원본 HTML 을 받아 정제하고 메타데이터를 붙인다.
// CacheTTL 이 설정되면 URL 별 결과를 프로세스 메모리에 보관한다.
// 같은 URL 에 대한 동시 요청은 한 번의 Source 호출을 공유한다.
// 공유 호출은 요청자의 취소와 분리되어 timeout 으로만 끝난다.
type Fetcher struct {
	group    singleflight.Group
	source   Source
	maxChars int
	timeout  time.Duration
	ttl      time.Duration
	cache    *cache.Cache
}

// New 는 설정의 Mode 에 맞는 Source 를 고른다. 기본은 CORS 프록시다.
func New(cfg config.FetcherConfig, httpClient *http.Client) *Fetcher {
	var src Source
	switch cfg.Mode {
	case config.FetchModeBrowser:
		src = &BrowserSource{ChromePath: cfg.ChromePath, Timeout: cfg.Timeout()}
	default:
		if httpClient == nil {
			httpClient = httpclient.New(httpclient.Config{Timeout: cfg.Timeout()})
		}
		src = NewProxySource(httpClient, cfg.ProxyURL)
	}
	return NewWithSource(cfg, src)
}

func NewWithSource(cfg config.FetcherConfig, src Source) *Fetcher {
	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = 3000
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	f := &Fetcher{
		source:   src,
		maxChars: maxChars,
		timeout:  timeout,
		ttl:      cfg.CacheTTL(),
	}
	if f.ttl > 0 {
		f.cache = cache.New(f.ttl, 2*f.ttl)
	}
	return f
}

// Fetch 는 정제된 본문 텍스트만 반환한다.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	doc, err := f.FetchDocument(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func (f *Fetcher) FetchDocument(ctx context.Context, pageURL string) (Document, error) {
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return Document{}, &FetchError{URL: pageURL, Err: err}
	}
	if doc, ok := f.cached(pageURL); ok {
		logger.DebugWithFields("fetcher cache hit", logger.Fields{"url": pageURL})
		return doc, nil
	}

	ch := f.group.DoChan(pageURL, func() (any, error) {
		if doc, ok := f.cached(pageURL); ok {
			return doc, nil
		}
		// 먼저 들어온 요청이 취소돼도 합류한 요청은 결과를 받아야 한다.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()
		raw, err := f.source.Raw(fetchCtx, pageURL)
		if err != nil {
			return Document{}, err
		}
		doc := Document{
			URL:  pageURL,
			Text: Sanitize(raw, f.maxChars),
		}
		applyMetadata(&doc, raw, pageURL)
		if f.cache != nil {
			f.cache.Set(pageURL, doc, cache.DefaultExpiration)
		}
		return doc, nil
	})

	select {
	case <-ctx.Done():
		logger.WarnWithFields("fetcher abandoned", logger.Fields{"url": pageURL, "error": ctx.Err().Error()})
		return Document{}, &FetchError{URL: pageURL, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			logger.WarnWithFields("fetcher failed", logger.Fields{"url": pageURL, "shared": res.Shared, "error": res.Err.Error()})
			return Document{}, res.Err
		}
		return res.Val.(Document), nil
	}
}

func (f *Fetcher) cached(pageURL string) (Document, bool) {
	if f.cache == nil {
		return Document{}, false
	}
	v, ok := f.cache.Get(pageURL)
	if !ok {
		return Document{}, false
	}
	doc, ok := v.(Document)
	return doc, ok
}
