package platform

import (
	"unicode/utf8"

	"ai-marketing/models"
)

// FB 광고 소재 글자 수 상한
const (
	AdHeadlineMax    = 40
	AdPrimaryTextMax = 125
	AdDescriptionMax = 30
)

// ValidateAd 는 광고 소재의 형식 위반 목록을 돌려준다. 본문 길이는 권장 사항이다.
func ValidateAd(ad models.AdCreative) models.AdValidation {
	errs := []string{}
	if utf8.RuneCountInString(ad.Headline) > AdHeadlineMax {
		errs = append(errs, "標題不可超過 40 字")
	}
	if utf8.RuneCountInString(ad.PrimaryText) > AdPrimaryTextMax {
		errs = append(errs, "主要文字建議不超過 125 字（顯示完整）")
	}
	if utf8.RuneCountInString(ad.Description) > AdDescriptionMax {
		errs = append(errs, "說明不可超過 30 字")
	}
	return models.AdValidation{
		AdID:   ad.ID,
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
