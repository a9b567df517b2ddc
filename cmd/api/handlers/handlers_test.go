package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/cmd/api/dto"
	"ai-marketing/config"
	"ai-marketing/generator"
	"ai-marketing/models"
	"ai-marketing/provider"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	gen := generator.New(provider.Select(context.Background(), nil, provider.Deps{}), config.GenerationConfig{})

	r := gin.New()
	r.GET("/health", HealthHandler(gen))
	api := r.Group("/api/v1")
	api.GET("/provider", ProviderHandler(gen))
	api.POST("/products/analyze", AnalyzeProductHandler(gen))
	api.POST("/copies/generate", GenerateCopiesHandler(gen))
	api.POST("/audiences/analyze", AnalyzeAudienceHandler(gen))
	api.POST("/ads/generate", GenerateAdsHandler(gen))
	api.POST("/scripts/generate", GenerateScriptHandler(gen))
	api.POST("/platforms/:platform/convert", ConvertPlatformHandler())
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthAndProvider(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[dto.HealthResponseDTO](t, w)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "template", health.Provider)

	w = doJSON(t, r, http.MethodGet, "/api/v1/provider", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sel := decode[dto.ProviderResponseDTO](t, w)
	assert.False(t, sel.Remote)
	assert.NotEmpty(t, sel.Reason)
}

func TestGenerateCopiesUsesDefaultRequest(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/v1/copies/generate", map[string]any{
		"product": map[string]any{"name": "Bluetooth Speaker"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.GenerateCopiesResponseDTO](t, w)
	assert.Len(t, resp.Copies, 7)
	assert.Equal(t, "Bluetooth Speaker", resp.Keywords[0])
	for _, c := range resp.Copies {
		assert.Equal(t, models.SourceTemplate, c.Source)
		assert.NotEmpty(t, c.ID)
	}
}

func TestGenerateCopiesValidation(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{
			name: "no name and no url",
			body: map[string]any{"product": map[string]any{}},
			code: generator.CodeProductRequired,
		},
		{
			name: "title count out of range",
			body: map[string]any{
				"product": map[string]any{"name": "Speaker"},
				"request": map[string]any{"title_count": 11, "title_length": "LONG", "intro_count": 1, "intro_length": "SHORT", "keyword_count": 5},
			},
			code: generator.CodeInvalidCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/copies/generate", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode[dto.ErrorResponseDTO](t, w).Error)
		})
	}
}

func TestAnalyzeProduct(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/v1/products/analyze", map[string]any{"url": "https://shop.example.com/item/1"})
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[models.ProductInfo](t, w)
	assert.Equal(t, "智能藍牙自拍棒", info.Name)

	w = doJSON(t, r, http.MethodPost, "/api/v1/products/analyze", map[string]any{"url": "not a url"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, generator.CodeURLRequired, decode[dto.ErrorResponseDTO](t, w).Error)

	w = doJSON(t, r, http.MethodPost, "/api/v1/products/analyze", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeAudienceSortedByRelevance(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/v1/audiences/analyze", map[string]any{
		"product": map[string]any{"name": "自拍棒"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	a := decode[models.AudienceAnalysis](t, w)
	require.NotEmpty(t, a.SuggestedAudiences)
	for i := 1; i < len(a.SuggestedAudiences); i++ {
		assert.GreaterOrEqual(t, a.SuggestedAudiences[i-1].RelevanceScore, a.SuggestedAudiences[i].RelevanceScore)
	}
}

func TestGenerateAds(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/v1/ads/generate", map[string]any{
		"product": map[string]any{"name": "Speaker"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.GenerateAdsResponseDTO](t, w)
	assert.Len(t, resp.Ads, defaultAdCount)
	assert.Len(t, resp.Validations, defaultAdCount)
	for i, v := range resp.Validations {
		assert.Equal(t, resp.Ads[i].ID, v.AdID)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/ads/generate", map[string]any{
		"product": map[string]any{"name": "Speaker"},
		"count":   11,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, generator.CodeInvalidCount, decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestGenerateScript(t *testing.T) {
	r := newTestEngine()

	w := doJSON(t, r, http.MethodPost, "/api/v1/scripts/generate", map[string]any{
		"product": map[string]any{"name": "Speaker"},
		"style":   "story_telling",
	})
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[models.VideoScript](t, w)
	assert.Equal(t, models.StyleStoryTelling, s.Style)
	assert.Equal(t, 15, s.Duration)

	w = doJSON(t, r, http.MethodPost, "/api/v1/scripts/generate", map[string]any{
		"product": map[string]any{"name": "Speaker"},
		"style":   "opera",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, generator.CodeInvalidStyle, decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestConvertPlatform(t *testing.T) {
	r := newTestEngine()
	body := map[string]any{
		"product": map[string]any{"name": "Speaker"},
		"copy":    map[string]any{"title": "超長的標題超長的標題超長的標題超長的標題超長的標題超長的標題超長的標題", "content": "內容"},
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/platforms/instagram/convert", body)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.PlatformContent](t, w)
	assert.Equal(t, models.PlatformInstagram, out.Platform)
	assert.Equal(t, 30, len([]rune(out.Title)))

	w = doJSON(t, r, http.MethodPost, "/api/v1/platforms/amazon/convert", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown_platform", decode[dto.ErrorResponseDTO](t, w).Error)
}
