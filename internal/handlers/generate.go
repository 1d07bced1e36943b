package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyreel-backend/internal/gemini"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/script"
)

type GenerateHandler struct {
	scripts      *script.Generator
	geminiClient *gemini.Client
}

func NewGenerateHandler(scripts *script.Generator, geminiClient *gemini.Client) *GenerateHandler {
	return &GenerateHandler{
		scripts:      scripts,
		geminiClient: geminiClient,
	}
}

// GenerateScript godoc
// @Summary     Generate scenes from a topic or script
// @Description Splits the input into scenes for the requested duration tier (short/medium/long -> 5/12/30). Falls back to newline chunking when structured generation fails; the fallback never translates.
// @Tags        generate
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateScriptRequest true "Generation input"
// @Success     200 {object} models.GenerateScriptResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /generate/script [post]
func (h *GenerateHandler) GenerateScript(c *gin.Context) {
	var req models.GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	scenes, fallback, err := h.scripts.Generate(
		req.Input,
		defaultString(req.InputLanguage, "en"),
		defaultString(req.Language, "en"),
		defaultString(req.Style, "cinematic"),
		defaultString(req.DurationLevel, models.DurationMedium),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "script generation failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.GenerateScriptResponse{
		Scenes:   scenes,
		Fallback: fallback,
	})
}

// Relay godoc
// @Summary     Generation relay
// @Description Stateless pass-through to the generative text API. Accepts {prompt} or {contents} and returns the upstream JSON verbatim. No retries, no caching.
// @Tags        relay
// @Accept      json
// @Produce     json
// @Param       request body models.RelayRequest true "Prompt or contents payload"
// @Success     200 {object} object "Upstream response"
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /relay/generate [post]
func (h *GenerateHandler) Relay(c *gin.Context) {
	var req models.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	var payload interface{}
	switch {
	case req.Contents != nil:
		payload = gin.H{"contents": req.Contents}
	case req.Prompt != "":
		payload = gemini.GenerateContentRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: req.Prompt}}}},
		}
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "prompt or contents is required"})
		return
	}

	raw, err := h.geminiClient.GenerateRaw(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "generation failed",
			Message: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
