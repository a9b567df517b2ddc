package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-marketing/cmd/api/dto"
	"ai-marketing/generator"
	"ai-marketing/models"
	"ai-marketing/platform"
)

const defaultAdCount = 5

// AnalyzeProductHandler godoc
// @Summary      Analyze product URL
// @Description  Infer product fields from a product page. Falls back to a placeholder product on failure.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeProductRequestDTO  true  "Product page"
// @Success      200   {object}  models.ProductInfo
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /products/analyze [post]
func AnalyzeProductHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyzeProductRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, generator.CodeURLRequired, err)
			return
		}
		info, err := gen.AnalyzeProductURL(c.Request.Context(), req.URL)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// GenerateCopiesHandler godoc
// @Summary      Generate titles, intros and spec
// @Description  Batch generation. Items whose remote call fails are filled from templates.
// @Tags         copies
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateCopiesRequestDTO  true  "Product and per-kind options"
// @Success      200   {object}  dto.GenerateCopiesResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /copies/generate [post]
func GenerateCopiesHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateCopiesRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_request", err)
			return
		}
		ctx := c.Request.Context()

		product, err := gen.PrepareProduct(ctx, req.Product)
		if err != nil {
			writeError(c, err)
			return
		}
		opts := models.DefaultGenerationRequest()
		if req.Request != nil {
			opts = *req.Request
		}

		result, err := gen.GenerateAll(ctx, product, opts)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.GenerateCopiesResponseDTO{
			Product:  product,
			Copies:   result.Copies,
			Keywords: result.Keywords,
		})
	}
}

// AnalyzeAudienceHandler godoc
// @Summary      Analyze target audience
// @Tags         audiences
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalyzeAudienceRequestDTO  true  "Product or product URL"
// @Success      200   {object}  models.AudienceAnalysis
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /audiences/analyze [post]
func AnalyzeAudienceHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyzeAudienceRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_request", err)
			return
		}
		ctx := c.Request.Context()

		var (
			analysis models.AudienceAnalysis
			err      error
		)
		if req.Product != nil && req.Product.Name != "" {
			analysis, err = gen.AnalyzeAudience(ctx, *req.Product)
		} else {
			analysis, err = gen.AnalyzeAudienceByURL(ctx, req.URL)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}

// GenerateAdsHandler godoc
// @Summary      Generate social ad creatives
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateAdsRequestDTO  true  "Product, count (1-10), length SHORT|LONG"
// @Success      200   {object}  dto.GenerateAdsResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /ads/generate [post]
func GenerateAdsHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateAdsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_request", err)
			return
		}
		ctx := c.Request.Context()

		product, err := gen.PrepareProduct(ctx, req.Product)
		if err != nil {
			writeError(c, err)
			return
		}
		count := req.Count
		if count == 0 {
			count = defaultAdCount
		}

		ads, err := gen.GenerateAds(ctx, product, count, models.LengthTier(req.Length))
		if err != nil {
			writeError(c, err)
			return
		}
		validations := make([]models.AdValidation, 0, len(ads))
		for _, ad := range ads {
			validations = append(validations, platform.ValidateAd(ad))
		}
		c.JSON(http.StatusOK, dto.GenerateAdsResponseDTO{Ads: ads, Validations: validations})
	}
}

// GenerateScriptHandler godoc
// @Summary      Generate a short-video script
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerateScriptRequestDTO  true  "Product, style, duration in seconds"
// @Success      200   {object}  models.VideoScript
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /scripts/generate [post]
func GenerateScriptHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateScriptRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_request", err)
			return
		}
		ctx := c.Request.Context()

		product, err := gen.PrepareProduct(ctx, req.Product)
		if err != nil {
			writeError(c, err)
			return
		}
		script, err := gen.GenerateScript(ctx, product, models.VideoStyle(req.Style), req.Duration)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, script)
	}
}

// ConvertPlatformHandler godoc
// @Summary      Convert a copy for a marketplace
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        platform  path      string                           true  "shopee | momo | pchome | facebook | instagram"
// @Param        body      body      dto.ConvertPlatformRequestDTO    true  "Product and copy"
// @Success      200       {object}  models.PlatformContent
// @Failure      400       {object}  dto.ErrorResponseDTO
// @Router       /platforms/{platform}/convert [post]
func ConvertPlatformHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := models.ParsePlatform(c.Param("platform"))
		if err != nil {
			badRequest(c, "unknown_platform", err)
			return
		}
		var req dto.ConvertPlatformRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid_request", err)
			return
		}
		c.JSON(http.StatusOK, platform.Convert(req.Product, req.Copy, p))
	}
}
