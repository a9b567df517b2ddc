package fetcher

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

// BrowserSource 는 headless chromium 으로 페이지를 렌더링한 뒤 HTML 을 가져온다.
// 쇼핑몰 상품 페이지처럼 JS 로 본문을 그리는 경우에 사용한다.
type BrowserSource struct {
	ChromePath string
	Timeout    time.Duration
}

func (b *BrowserSource) Raw(ctx context.Context, pageURL string) (string, error) {
	if b.ChromePath == "" {
		return "", &FetchError{URL: pageURL, Err: errors.New("chrome path is not configured")}
	}
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(b.ChromePath),
		chromedp.UserAgent(userAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	browserCtx, cancel := context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var content string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.OuterHTML("html", &content),
	)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	return content, nil
}
