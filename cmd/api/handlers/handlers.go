package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-marketing/cmd/api/dto"
	"ai-marketing/generator"
	"ai-marketing/internal/logger"
	"ai-marketing/internal/trace"
)

// writeError 는 입력 검증 실패만 400 으로 노출한다.
// provider 실패는 generator 안에서 템플릿으로 대체되므로 여기까지 오지 않는다.
func writeError(c *gin.Context, err error) {
	var ve *generator.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: ve.Code, Message: ve.Message})
		return
	}
	_ = c.Error(err)
	logger.ErrorWithFields("unexpected handler error", logger.Fields{
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"path":       c.FullPath(),
		"error":      err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
}

func badRequest(c *gin.Context, code string, err error) {
	resp := dto.ErrorResponseDTO{Error: code}
	if err != nil {
		resp.Message = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", Provider: gen.Selection().Name})
	}
}

// ProviderHandler godoc
// @Summary      Selected generation provider
// @Description  Provider bound at startup and why it was chosen
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.ProviderResponseDTO
// @Router       /provider [get]
func ProviderHandler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sel := gen.Selection()
		c.JSON(http.StatusOK, dto.ProviderResponseDTO{Name: sel.Name, Remote: sel.Remote, Reason: sel.Reason})
	}
}
