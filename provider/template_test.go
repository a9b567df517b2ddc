package provider

import (
	"context"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/models"
)

var speaker = models.ProductInfo{Name: "藍牙喇叭"}

func TestTitleRotationWrapsAroundPool(t *testing.T) {
	tp := NewTemplateProvider()
	n := len(longTitlePool)

	for i := 0; i < 2*n+3; i++ {
		want := fmt.Sprintf(longTitlePool[i%n], speaker.Name)
		assert.Equal(t, want, tp.Title(speaker, models.LengthLong, i), "index %d", i)
	}
	assert.Equal(t, tp.Title(speaker, models.LengthLong, 0), tp.Title(speaker, models.LengthLong, n))
}

func TestTitleTierSelectsPool(t *testing.T) {
	tp := NewTemplateProvider()

	assert.Equal(t, "藍牙喇叭｜現貨免運｜限時特惠", tp.Title(speaker, models.LengthShort, 0))
	assert.Equal(t, tp.Title(speaker, models.LengthShort, 4), tp.Title(speaker, models.LengthMedium, 4))
	assert.Contains(t, tp.Title(speaker, models.LengthLong, 0), "【現貨免運】")
}

func TestIntroTierAndKeywords(t *testing.T) {
	tp := NewTemplateProvider()

	short, kw := tp.Intro(speaker, models.LengthShort, 3)
	assert.Equal(t, fmt.Sprintf(shortIntroPool[0].content, speaker.Name), short)
	assert.Equal(t, []string{"優質", "台灣現貨", "快速出貨"}, kw)

	kw[0] = "mutated"
	_, again := tp.Intro(speaker, models.LengthShort, 0)
	assert.Equal(t, "優質", again[0], "returned keywords must be a copy")

	long, _ := tp.Intro(speaker, models.LengthLong, 0)
	medium, _ := tp.Intro(speaker, "", 0)
	assert.Greater(t, utf8.RuneCountInString(long), utf8.RuneCountInString(medium))
}

func TestNegativeIndexStaysInPool(t *testing.T) {
	tp := NewTemplateProvider()
	assert.NotPanics(t, func() { tp.Title(speaker, models.LengthLong, -1) })
}

func TestSpecUsesAttributesWhenPresent(t *testing.T) {
	tp := NewTemplateProvider()

	plain := tp.Spec(speaker)
	assert.Contains(t, plain, "・材質：優質材料")
	assert.Contains(t, plain, "・顏色：多色可選")

	withAttrs := tp.Spec(models.ProductInfo{
		Name:       "藍牙喇叭",
		Attributes: &models.ProductAttributes{Material: "ABS", Color: []string{"黑", "白"}},
	})
	assert.Contains(t, withAttrs, "・材質：ABS")
	assert.Contains(t, withAttrs, "・顏色：黑、白")
}

func TestTemplateAudienceBranches(t *testing.T) {
	tp := NewTemplateProvider()

	camera, err := tp.AnalyzeAudience(context.Background(), "智能藍牙自拍棒", "")
	require.NoError(t, err)
	assert.Len(t, camera.SuggestedAudiences, 5)
	assert.Equal(t, "旅遊愛好者", camera.SuggestedAudiences[0].Name)

	generic, err := tp.AnalyzeAudience(context.Background(), "保溫杯", "")
	require.NoError(t, err)
	require.Len(t, generic.SuggestedAudiences, 1)
	assert.Equal(t, []string{"保溫杯"}, generic.Keywords)
}

func TestTemplateScriptFillsProductName(t *testing.T) {
	tp := NewTemplateProvider()

	s := tp.Script(speaker, models.StyleStoryTelling)
	assert.Equal(t, models.StyleStoryTelling, s.Style)
	assert.Contains(t, s.Script, "藍牙喇叭")
	assert.Len(t, s.Scenes, 5)
	assert.NotContains(t, s.Scenes[1].Voiceover, "{name}")

	def := tp.Script(speaker, "unknown")
	assert.Equal(t, models.StyleSalesTalk, def.Style)
}

func TestTemplateAdRotation(t *testing.T) {
	tp := NewTemplateProvider()

	first := tp.Ad(speaker, models.LengthShort, 0)
	assert.Equal(t, "限時優惠！藍牙喇叭", first.Headline)
	assert.Equal(t, "台灣現貨，快速出貨", first.Description)
	assert.Equal(t, "立即購買", first.CallToAction)

	wrapped := tp.Ad(speaker, models.LengthShort, len(adShortTextPool))
	assert.Equal(t, first.PrimaryText, wrapped.PrimaryText)
}
