package dto

import "ai-marketing/models"

type AnalyzeProductRequestDTO struct {
	URL string `json:"url" binding:"required" example:"https://shopee.tw/product/123"`
}

// GenerateCopiesRequestDTO 의 Request 가 비어 있으면 대시보드 기본값을 사용한다.
type GenerateCopiesRequestDTO struct {
	Product models.ProductInfo        `json:"product"`
	Request *models.GenerationRequest `json:"request,omitempty"`
}

type GenerateCopiesResponseDTO struct {
	Product  models.ProductInfo     `json:"product"`
	Copies   []models.GeneratedCopy `json:"copies"`
	Keywords []string               `json:"keywords"`
}

// AnalyzeAudienceRequestDTO 는 product 또는 url 중 하나가 필요하다.
type AnalyzeAudienceRequestDTO struct {
	Product *models.ProductInfo `json:"product,omitempty"`
	URL     string              `json:"url,omitempty"`
}

type GenerateAdsRequestDTO struct {
	Product models.ProductInfo `json:"product"`
	Count   int                `json:"count" example:"5"`
	Length  string             `json:"length" example:"SHORT"`
}

type GenerateAdsResponseDTO struct {
	Ads         []models.AdCreative   `json:"ads"`
	Validations []models.AdValidation `json:"validations"`
}

type GenerateScriptRequestDTO struct {
	Product  models.ProductInfo `json:"product"`
	Style    string             `json:"style" example:"sales_talk"`
	Duration int                `json:"duration" example:"15"`
}

type ConvertPlatformRequestDTO struct {
	Product models.ProductInfo   `json:"product"`
	Copy    models.GeneratedCopy `json:"copy"`
}
