package generator

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-marketing/config"
	"ai-marketing/internal/logger"
	"ai-marketing/internal/trace"
	"ai-marketing/models"
	"ai-marketing/platform"
	"ai-marketing/provider"
)

const (
	longTitleMax  = 60
	shortTitleMax = 30
)

// Generator 는 배치 생성 오케스트레이터다.
// provider 바인딩은 생성 시 주입되며 이후 바뀌지 않는다.
// 모든 하위 호출은 순차적으로 수행되고, 실패한 항목만 템플릿 결과로 대체된다.
type Generator struct {
	sel      provider.Selection
	fallback *provider.TemplateProvider
	limits   config.GenerationConfig

	now   func() time.Time
	newID func() string
}

func New(sel provider.Selection, limits config.GenerationConfig) *Generator {
	if sel.Provider == nil {
		sel = provider.Selection{
			Provider: provider.NewTemplateProvider(),
			Name:     "template",
			Reason:   "no provider configured",
		}
	}
	if limits.MaxCount <= 0 {
		limits.MaxCount = 10
	}
	if limits.MaxKeywordCount <= 0 {
		limits.MaxKeywordCount = 20
	}
	return &Generator{
		sel:      sel,
		fallback: provider.NewTemplateProvider(),
		limits:   limits,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (g *Generator) Selection() provider.Selection { return g.sel }

// GenerateAll 은 제목 → 소개 → 규격 순서로 생성하고 키워드를 집계한다.
func (g *Generator) GenerateAll(ctx context.Context, product models.ProductInfo, req models.GenerationRequest) (models.GenerationResult, error) {
	if err := g.validateRequest(product, req); err != nil {
		return models.GenerationResult{}, err
	}
	req.TitleLength = normalizeTier(req.TitleLength)
	req.IntroLength = normalizeTier(req.IntroLength)
	ctx, requestID := trace.Ensure(ctx)
	start := g.now()

	copies := make([]models.GeneratedCopy, 0, req.TitleCount+req.IntroCount+1)
	var candidates []string
	fallbacks := 0

	for i := 0; i < req.TitleCount; i++ {
		res, src := g.generateCopy(ctx, provider.CopyRequest{Product: product, Kind: models.KindTitle, Length: req.TitleLength, Index: i})
		title := res.Title
		if src == models.SourceRemote {
			title = platform.Truncate(title, titleCeiling(req.TitleLength))
		} else if g.sel.Remote {
			fallbacks++
		}
		copies = append(copies, g.record(product, models.KindTitle, title, res.Content, res.Keywords, src))
	}

	for i := 0; i < req.IntroCount; i++ {
		res, src := g.generateCopy(ctx, provider.CopyRequest{Product: product, Kind: models.KindIntro, Length: req.IntroLength, Index: i})
		if src == models.SourceTemplate && g.sel.Remote {
			fallbacks++
		}
		candidates = append(candidates, res.Keywords...)
		copies = append(copies, g.record(product, models.KindIntro, provider.IntroTitle(i), res.Content, res.Keywords, src))
	}

	if req.GenerateSpec {
		res, src := g.generateCopy(ctx, provider.CopyRequest{Product: product, Kind: models.KindSpec, Index: 0})
		if src == models.SourceTemplate && g.sel.Remote {
			fallbacks++
		}
		copies = append(copies, g.record(product, models.KindSpec, provider.SpecTitle, res.Content, res.Keywords, src))
	}

	keywords := BuildKeywords(product.Name, candidates, req.KeywordCount)

	logger.InfoWithFields("generation batch completed", logger.Fields{
		"request_id":  requestID,
		"provider":    g.sel.Name,
		"copies":      len(copies),
		"keywords":    len(keywords),
		"fallbacks":   fallbacks,
		"duration_ms": g.now().Sub(start).Milliseconds(),
	})
	return models.GenerationResult{Copies: copies, Keywords: keywords}, nil
}

// generateCopy 는 바인딩된 provider 를 호출하고, 실패하면 그 항목만 템플릿으로 대체한다.
func (g *Generator) generateCopy(ctx context.Context, req provider.CopyRequest) (provider.CopyResult, models.Source) {
	res := provider.Invoke(g.sel.Provider, g.sel.Remote, "generate_copy", func(p provider.Provider) (provider.CopyResult, error) {
		return p.GenerateProductCopy(ctx, req)
	})
	if res.OK() {
		return res.Value, res.Source
	}

	g.warnFallback(ctx, string(req.Kind), req.Index, res.Err)
	v, _ := g.fallback.GenerateProductCopy(ctx, req)
	return v, models.SourceTemplate
}

func (g *Generator) warnFallback(ctx context.Context, kind string, index int, err *provider.GenerationError) {
	logger.WarnWithFields("generation fell back to template", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"provider":   g.sel.Name,
		"kind":       kind,
		"index":      index,
		"error_kind": string(err.Kind),
		"error":      err.Error(),
	})
}

func (g *Generator) record(product models.ProductInfo, kind models.CopyKind, title, content string, keywords []string, src models.Source) models.GeneratedCopy {
	return models.GeneratedCopy{
		ID:        g.newID(),
		ProductID: product.ID,
		Kind:      kind,
		Title:     title,
		Content:   content,
		Keywords:  keywords,
		Source:    src,
		CreatedAt: g.now(),
	}
}

func titleCeiling(tier models.LengthTier) int {
	if tier == models.LengthLong {
		return longTitleMax
	}
	return shortTitleMax
}

func (g *Generator) validateRequest(product models.ProductInfo, req models.GenerationRequest) error {
	if strings.TrimSpace(product.Name) == "" {
		return invalid(CodeProductRequired, "請輸入商品名稱或網址")
	}
	limit := g.limits.MaxCount
	if req.TitleCount < 0 || req.TitleCount > limit || req.IntroCount < 0 || req.IntroCount > limit {
		return invalid(CodeInvalidCount, "生成數量必須介於 0 到 "+strconv.Itoa(limit))
	}
	if req.TitleCount > 0 && !req.TitleLength.Valid() {
		return invalid(CodeInvalidLength, "標題長度必須是 SHORT、MEDIUM 或 LONG")
	}
	if req.IntroCount > 0 && !req.IntroLength.Valid() {
		return invalid(CodeInvalidLength, "介紹長度必須是 SHORT、MEDIUM 或 LONG")
	}
	if req.KeywordCount < 0 || req.KeywordCount > g.limits.MaxKeywordCount {
		return invalid(CodeInvalidKeywords, "關鍵字數量必須介於 0 到 "+strconv.Itoa(g.limits.MaxKeywordCount))
	}
	return nil
}

func normalizeTier(t models.LengthTier) models.LengthTier {
	if parsed, err := models.ParseLengthTier(string(t)); err == nil {
		return parsed
	}
	return t
}
