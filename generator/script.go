package generator

import (
	"context"

	"ai-marketing/models"
)

const defaultScriptDuration = 15

func (g *Generator) GenerateScript(_ context.Context, product models.ProductInfo, style models.VideoStyle, duration int) (models.VideoScript, error) {
	if product.Name == "" {
		return models.VideoScript{}, invalid(CodeProductRequired, "請輸入商品名稱或網址")
	}
	if style == "" {
		style = models.StyleSalesTalk
	}
	parsed, err := models.ParseVideoStyle(string(style))
	if err != nil {
		return models.VideoScript{}, invalid(CodeInvalidStyle, "影片風格必須是 sales_talk、product_display 或 story_telling")
	}
	if duration <= 0 {
		duration = defaultScriptDuration
	}

	s := g.fallback.Script(product, parsed)
	s.ID = g.newID()
	s.ProductID = product.ID
	s.Duration = duration
	s.CreatedAt = g.now()
	return s, nil
}
