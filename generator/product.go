package generator

import (
	"context"
	"net/url"
	"strings"

	"ai-marketing/internal/trace"
	"ai-marketing/models"
	"ai-marketing/provider"
)

// PrepareProduct 는 "상품명 또는 URL" 입력 규칙을 검증한다.
// 상품명이 비어 있으면 URL 을 분석해 추론한 값을 입력 위에 병합한다.
func (g *Generator) PrepareProduct(ctx context.Context, product models.ProductInfo) (models.ProductInfo, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.URL = strings.TrimSpace(product.URL)

	if product.Name == "" && product.URL == "" {
		return models.ProductInfo{}, invalid(CodeProductRequired, "請輸入商品名稱或網址")
	}
	if product.Name != "" {
		return product, nil
	}

	inferred, err := g.AnalyzeProductURL(ctx, product.URL)
	if err != nil {
		return models.ProductInfo{}, err
	}
	return product.Merge(inferred), nil
}

// AnalyzeProductURL 은 원격 분석이 실패하면 사용자가 고칠 수 있는 자리표시 상품을 돌려준다.
// 에러는 입력 검증 실패일 때만 반환한다.
func (g *Generator) AnalyzeProductURL(ctx context.Context, pageURL string) (models.ProductInfo, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return models.ProductInfo{}, invalid(CodeURLRequired, "請輸入商品網址")
	}
	if u, err := url.Parse(pageURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return models.ProductInfo{}, invalid(CodeURLRequired, "商品網址格式不正確")
	}
	ctx, _ = trace.Ensure(ctx)

	res := provider.Invoke(g.sel.Provider, g.sel.Remote, "analyze_product_url", func(p provider.Provider) (models.ProductInfo, error) {
		return p.AnalyzeProductFromURL(ctx, pageURL)
	})
	if res.OK() {
		return res.Value, nil
	}
	g.warnFallback(ctx, "URL_ANALYSIS", 0, res.Err)
	return provider.PlaceholderProduct(pageURL), nil
}
