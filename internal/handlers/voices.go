package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyreel-backend/internal/models"
	"storyreel-backend/internal/tts"
)

type VoicesHandler struct{}

func NewVoicesHandler() *VoicesHandler {
	return &VoicesHandler{}
}

// GetVoices godoc
// @Summary     List narration voices
// @Description Returns the fixed voice catalog for speech synthesis
// @Tags        voices
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.VoicesResponse
// @Router      /voices [get]
func (h *VoicesHandler) GetVoices(c *gin.Context) {
	c.JSON(http.StatusOK, models.VoicesResponse{Voices: tts.Voices()})
}
