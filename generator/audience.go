package generator

import (
	"context"
	"sort"
	"strings"

	"ai-marketing/internal/trace"
	"ai-marketing/models"
	"ai-marketing/provider"
)

// AnalyzeAudience 는 원격 실패 시 템플릿 분석으로 대체하고, 결과를 정규화한다.
func (g *Generator) AnalyzeAudience(ctx context.Context, product models.ProductInfo) (models.AudienceAnalysis, error) {
	name := strings.TrimSpace(product.Name)
	if name == "" {
		return models.AudienceAnalysis{}, invalid(CodeProductRequired, "請輸入商品名稱或網址")
	}
	ctx, _ = trace.Ensure(ctx)

	res := provider.Invoke(g.sel.Provider, g.sel.Remote, "analyze_audience", func(p provider.Provider) (models.AudienceAnalysis, error) {
		return p.AnalyzeAudience(ctx, name, product.Description)
	})
	analysis := res.Value
	if !res.OK() {
		g.warnFallback(ctx, "AUDIENCE", 0, res.Err)
		analysis, _ = g.fallback.AnalyzeAudience(ctx, name, product.Description)
	}
	return normalizeAudience(analysis), nil
}

// AnalyzeAudienceByURL 은 URL 분석 결과 상품으로 수용자 분석을 이어서 수행한다.
func (g *Generator) AnalyzeAudienceByURL(ctx context.Context, pageURL string) (models.AudienceAnalysis, error) {
	product, err := g.AnalyzeProductURL(ctx, pageURL)
	if err != nil {
		return models.AudienceAnalysis{}, err
	}
	return g.AnalyzeAudience(ctx, product)
}

// normalizeAudience: 점수는 [0,100], size 는 small|medium|large(기본 medium), 점수 내림차순.
func normalizeAudience(a models.AudienceAnalysis) models.AudienceAnalysis {
	audiences := make([]models.SuggestedAudience, len(a.SuggestedAudiences))
	copy(audiences, a.SuggestedAudiences)

	for i := range audiences {
		switch {
		case audiences[i].RelevanceScore < 0:
			audiences[i].RelevanceScore = 0
		case audiences[i].RelevanceScore > 100:
			audiences[i].RelevanceScore = 100
		}
		switch audiences[i].Size {
		case models.AudienceSmall, models.AudienceMedium, models.AudienceLarge:
		default:
			audiences[i].Size = models.AudienceMedium
		}
	}
	sort.SliceStable(audiences, func(i, j int) bool {
		return audiences[i].RelevanceScore > audiences[j].RelevanceScore
	})

	a.SuggestedAudiences = audiences
	a.Keywords = dedupe(a.Keywords)
	return a
}
