package generator

import (
	"context"
	"strconv"

	"ai-marketing/internal/logger"
	"ai-marketing/internal/trace"
	"ai-marketing/models"
	"ai-marketing/platform"
)

// GenerateAds 는 템플릿 회전으로 광고 소재 count 개를 만든다.
// 제목과 설명은 광고 상한(40 / 30 글자)으로 자른다.
// 광고 템플릿은 SHORT 와 LONG 두 등급뿐이라 MEDIUM 은 거부한다.
func (g *Generator) GenerateAds(ctx context.Context, product models.ProductInfo, count int, tier models.LengthTier) ([]models.AdCreative, error) {
	if product.Name == "" {
		return nil, invalid(CodeProductRequired, "請輸入商品名稱或網址")
	}
	if count < 1 || count > g.limits.MaxCount {
		return nil, invalid(CodeInvalidCount, "廣告數量必須介於 1 到 "+strconv.Itoa(g.limits.MaxCount))
	}
	if tier == "" {
		tier = models.LengthShort
	}
	parsed, err := models.ParseLengthTier(string(tier))
	if err != nil || parsed == models.LengthMedium {
		return nil, invalid(CodeInvalidLength, "文案長度必須是 SHORT 或 LONG")
	}
	tier = parsed
	_, requestID := trace.Ensure(ctx)

	ads := make([]models.AdCreative, 0, count)
	for i := 0; i < count; i++ {
		t := g.fallback.Ad(product, tier, i)
		ads = append(ads, models.AdCreative{
			ID:           g.newID(),
			ProductID:    product.ID,
			Headline:     platform.Truncate(t.Headline, platform.AdHeadlineMax),
			PrimaryText:  t.PrimaryText,
			Description:  platform.Truncate(t.Description, platform.AdDescriptionMax),
			CallToAction: t.CallToAction,
			Image:        product.FirstImage(),
			CreatedAt:    g.now(),
		})
	}

	logger.DebugWithFields("ad creatives generated", logger.Fields{
		"request_id": requestID,
		"count":      len(ads),
		"length":     string(tier),
	})
	return ads, nil
}
