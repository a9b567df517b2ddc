package platform

import (
	"fmt"
	"strings"

	"ai-marketing/models"
)

// Rule 은 플랫폼별 제목 상한(글자 수)과 권장 이미지 크기다.
type Rule struct {
	TitleMaxLength int
	ImageSize      models.ImageSize
}

var rules = map[models.Platform]Rule{
	models.PlatformShopee:    {TitleMaxLength: 60, ImageSize: models.ImageSize{Width: 1200, Height: 1200}},
	models.PlatformMomo:      {TitleMaxLength: 50, ImageSize: models.ImageSize{Width: 800, Height: 800}},
	models.PlatformPChome:    {TitleMaxLength: 45, ImageSize: models.ImageSize{Width: 1000, Height: 1000}},
	models.PlatformFacebook:  {TitleMaxLength: 40, ImageSize: models.ImageSize{Width: 1200, Height: 630}},
	models.PlatformInstagram: {TitleMaxLength: 30, ImageSize: models.ImageSize{Width: 1080, Height: 1080}},
}

// RuleFor 는 알 수 없는 플랫폼에 대해 false 를 반환한다.
func RuleFor(p models.Platform) (Rule, bool) {
	r, ok := rules[p]
	return r, ok
}

// Truncate 는 s 를 앞에서부터 최대 n 글자(rune)로 자른다.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var shopeeSellingPoints = []string{
	"✓ 台灣現貨，快速出貨",
	"✓ 品質保證，安心購買",
	"✓ 專業客服，售後無憂",
	"✓ 七天鑑賞期",
	"✓ 滿額免運",
}

// Convert 는 카피를 플랫폼 형식으로 변환한 새 값을 돌려준다. 원본은 수정하지 않는다.
// 알 수 없는 플랫폼은 호출자 버그이므로 panic 한다.
func Convert(product models.ProductInfo, src models.GeneratedCopy, p models.Platform) models.PlatformContent {
	rule, ok := rules[p]
	if !ok {
		panic(fmt.Sprintf("platform: unknown platform %q", p))
	}

	out := models.PlatformContent{
		Platform:    p,
		Title:       Truncate(src.Title, rule.TitleMaxLength),
		Description: src.Content,
		Images:      append([]string(nil), product.Images...),
		ImageSize:   rule.ImageSize,
	}

	material := product.Material()
	if material == "" {
		material = "優質材料"
	}
	colors := strings.Join(product.Colors(), "、")

	switch p {
	case models.PlatformShopee:
		if colors == "" {
			colors = "多色可選"
		}
		out.Specifications = []string{
			"品名：" + product.Name,
			"材質：" + material,
			"顏色：" + colors,
			"產地：台灣",
			"保固：一年保固",
		}
		out.SellingPoints = append([]string(nil), shopeeSellingPoints...)
	case models.PlatformMomo:
		if colors == "" {
			colors = "多色"
		}
		out.Description = momoParagraphs(src.Content)
		out.Specifications = []string{
			"商品名稱｜" + product.Name,
			"商品材質｜" + material,
			"商品顏色｜" + colors,
			"保固期限｜一年",
			"產地｜台灣",
		}
	}
	return out
}

// momo 는 빈 줄로 나뉜 단락마다 【段落 N】 라벨을 붙인다.
func momoParagraphs(description string) string {
	sections := strings.Split(description, "\n\n")
	for i, s := range sections {
		sections[i] = fmt.Sprintf("【段落 %d】\n%s", i+1, s)
	}
	return strings.Join(sections, "\n\n")
}
