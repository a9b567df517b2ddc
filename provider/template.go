package provider

import (
	"context"
	"fmt"
	"strings"

	"ai-marketing/models"
)

const templateName = "template"

// TemplateProvider 는 네트워크 없이 고정 풀에서 결정적으로 카피를 만든다.
// 같은 입력과 회전 인덱스에는 항상 같은 결과를 돌려준다.
type TemplateProvider struct{}

func NewTemplateProvider() *TemplateProvider { return &TemplateProvider{} }

func (t *TemplateProvider) Name() string { return templateName }

// pick 은 index % len(pool) 로 회전 선택한다. 음수 인덱스도 풀 안으로 들어온다.
func pick[T any](pool []T, index int) T {
	n := len(pool)
	i := index % n
	if i < 0 {
		i += n
	}
	return pool[i]
}

// Title 은 LONG 이면 긴 제목 풀, 그 외에는 짧은 제목 풀을 사용한다.
func (t *TemplateProvider) Title(product models.ProductInfo, tier models.LengthTier, index int) string {
	pool := shortTitlePool
	if tier == models.LengthLong {
		pool = longTitlePool
	}
	return fmt.Sprintf(pick(pool, index), product.Name)
}

// Intro 는 본문과 해당 템플릿의 키워드 후보를 돌려준다. 알 수 없는 등급은 MEDIUM 으로 본다.
func (t *TemplateProvider) Intro(product models.ProductInfo, tier models.LengthTier, index int) (string, []string) {
	var pool []introTemplate
	switch tier {
	case models.LengthShort:
		pool = shortIntroPool
	case models.LengthLong:
		pool = longIntroPool
	default:
		pool = mediumIntroPool
	}
	tmpl := pick(pool, index)
	return fmt.Sprintf(tmpl.content, product.Name), append([]string(nil), tmpl.keywords...)
}

func (t *TemplateProvider) Spec(product models.ProductInfo) string {
	material := product.Material()
	if material == "" {
		material = "優質材料"
	}
	color := strings.Join(product.Colors(), "、")
	if color == "" {
		color = "多色可選"
	}
	return fmt.Sprintf(specTemplate, product.Name, material, color)
}

// AdTemplate 은 광고 소재 한 건의 템플릿 결과다.
type AdTemplate struct {
	Headline     string
	PrimaryText  string
	Description  string
	CallToAction string
}

// Ad 는 SHORT 면 짧은 본문 풀, 그 외에는 긴 본문 풀을 사용한다.
func (t *TemplateProvider) Ad(product models.ProductInfo, tier models.LengthTier, index int) AdTemplate {
	texts := adLongTextPool
	if tier == models.LengthShort {
		texts = adShortTextPool
	}
	return AdTemplate{
		Headline:     fmt.Sprintf(pick(adHeadlinePool, index), product.Name),
		PrimaryText:  fmt.Sprintf(pick(texts, index), product.Name),
		Description:  pick(adDescriptionPool, index),
		CallToAction: pick(adCallToActionPool, index),
	}
}

func (t *TemplateProvider) GenerateProductCopy(_ context.Context, req CopyRequest) (CopyResult, error) {
	p := req.Product
	switch req.Kind {
	case models.KindTitle:
		return CopyResult{Title: t.Title(p, req.Length, req.Index)}, nil
	case models.KindIntro:
		content, keywords := t.Intro(p, req.Length, req.Index)
		return CopyResult{Title: IntroTitle(req.Index), Content: content, Keywords: keywords}, nil
	case models.KindSpec:
		return CopyResult{Title: SpecTitle, Content: t.Spec(p), Keywords: []string{"規格", "材質", "保固"}}, nil
	case models.KindAd:
		ad := t.Ad(p, req.Length, req.Index)
		return CopyResult{Title: ad.Headline, Content: ad.PrimaryText}, nil
	case models.KindScript:
		s := t.Script(p, models.StyleSalesTalk)
		return CopyResult{Title: p.Name + " - 影片腳本", Content: s.Script}, nil
	}
	return CopyResult{
		Title:    p.Name + " - 商品介紹",
		Content:  fmt.Sprintf(pick(shortIntroPool, 0).content, p.Name),
		Keywords: []string{"優質", "專業", "台灣現貨"},
	}, nil
}

// SpecTitle 과 IntroTitle 은 배치 결과 레코드의 고정 제목이다.
const SpecTitle = "商品規格"

func IntroTitle(index int) string {
	return fmt.Sprintf("版本 %d", index+1)
}

// DemoProduct 는 자격 증명이 없을 때 URL 분석이 돌려주는 샘플 상품이다.
func DemoProduct(url string) models.ProductInfo {
	return models.ProductInfo{
		Name:        "智能藍牙自拍棒",
		URL:         url,
		Description: "可伸縮、支援 360 度旋轉",
		Category:    "3C配件",
		Attributes: &models.ProductAttributes{
			Color:    []string{"黑色", "白色", "粉色"},
			Material: "鋁合金",
			Usage:    []string{"自拍", "旅遊", "直播"},
		},
	}
}

// PlaceholderProduct 는 원격 URL 분석이 실패했을 때 사용자가 직접 고치도록 채워 넣는 값이다.
func PlaceholderProduct(url string) models.ProductInfo {
	return models.ProductInfo{
		Name:        "商品名稱（請手動修改）",
		URL:         url,
		Description: "商品描述",
		Category:    "未分類",
	}
}

func (t *TemplateProvider) AnalyzeProductFromURL(_ context.Context, url string) (models.ProductInfo, error) {
	return DemoProduct(url), nil
}

func (t *TemplateProvider) AnalyzeAudience(_ context.Context, name, _ string) (models.AudienceAnalysis, error) {
	return mockAudience(name), nil
}

func isCameraLike(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range []string{"自拍", "相機", "camera", "selfie"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func mockAudience(name string) models.AudienceAnalysis {
	if !isCameraLike(name) {
		return models.AudienceAnalysis{
			ProductName: name,
			SuggestedAudiences: []models.SuggestedAudience{
				{
					Name:               "一般消費者",
					Description:        "對該產品有興趣的一般大眾",
					Size:               models.AudienceLarge,
					RelevanceScore:     70,
					SuggestedPlatforms: []string{string(models.PlatformFacebook), string(models.PlatformShopee)},
				},
			},
			Demographics: models.Demographics{
				AgeRange:  []string{"18-65"},
				Gender:    []string{"不限"},
				Interests: []string{"生活用品", "線上購物"},
				Behaviors: []string{"線上購物"},
			},
			Keywords:      []string{name},
			TargetMarkets: []string{"台灣"},
		}
	}

	ig, fb, shopee := string(models.PlatformInstagram), string(models.PlatformFacebook), string(models.PlatformShopee)
	return models.AudienceAnalysis{
		ProductName: name,
		SuggestedAudiences: []models.SuggestedAudience{
			{Name: "旅遊愛好者", Description: "經常旅行、喜歡記錄旅程的人群", Size: models.AudienceLarge, RelevanceScore: 95, SuggestedPlatforms: []string{ig, fb}},
			{Name: "社群內容創作者", Description: "YouTuber、部落客、IG 網紅", Size: models.AudienceMedium, RelevanceScore: 90, SuggestedPlatforms: []string{ig, fb}},
			{Name: "攝影愛好者", Description: "喜歡拍照、對攝影器材有興趣", Size: models.AudienceMedium, RelevanceScore: 85, SuggestedPlatforms: []string{fb, ig}},
			{Name: "年輕女性族群", Description: "18-35 歲女性，喜歡自拍、分享生活", Size: models.AudienceLarge, RelevanceScore: 88, SuggestedPlatforms: []string{ig, shopee}},
			{Name: "直播主", Description: "需要穩定拍攝設備的直播工作者", Size: models.AudienceSmall, RelevanceScore: 80, SuggestedPlatforms: []string{fb, shopee}},
		},
		Demographics: models.Demographics{
			AgeRange:  []string{"18-24", "25-34", "35-44"},
			Gender:    []string{"女性 65%", "男性 35%"},
			Interests: []string{"旅遊", "攝影", "社群媒體", "時尚", "美食", "Vlog", "生活風格"},
			Behaviors: []string{"頻繁使用 Instagram", "經常線上購物", "喜歡分享照片", "關注 KOL/網紅", "參與社群互動"},
		},
		Keywords:      []string{"自拍", "旅遊", "攝影", "vlog", "網美", "打卡", "IG", "直播", "社群", "記錄生活"},
		TargetMarkets: []string{"台灣", "香港", "新加坡", "馬來西亞"},
	}
}
