package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-marketing/models"
)

func TestProductMergeOverridesOnlyNonZeroFields(t *testing.T) {
	form := models.ProductInfo{
		Name: "",
		URL:  "https://shop.example.com/item/1",
	}
	inferred := models.ProductInfo{
		Name:        "智能藍牙自拍棒",
		Description: "可伸縮",
		Attributes:  &models.ProductAttributes{Material: "鋁合金"},
	}

	merged := form.Merge(inferred)

	assert.Equal(t, "智能藍牙自拍棒", merged.Name)
	assert.Equal(t, "https://shop.example.com/item/1", merged.URL)
	assert.Equal(t, "鋁合金", merged.Material())
	assert.Empty(t, form.Name, "source must not be mutated")

	merged.Attributes.Material = "changed"
	assert.Equal(t, "鋁合金", inferred.Attributes.Material)
}

func TestParseLengthTier(t *testing.T) {
	tier, err := models.ParseLengthTier("long")
	assert.NoError(t, err)
	assert.Equal(t, models.LengthLong, tier)

	_, err = models.ParseLengthTier("HUGE")
	assert.Error(t, err)
	assert.False(t, models.LengthTier("").Valid())
}

func TestParsePlatform(t *testing.T) {
	p, err := models.ParsePlatform(" Shopee ")
	assert.NoError(t, err)
	assert.Equal(t, models.PlatformShopee, p)

	_, err = models.ParsePlatform("amazon")
	assert.Error(t, err)
}
