package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyreel-backend/internal/models"
	"storyreel-backend/internal/subtitle"
)

type SubtitlesHandler struct{}

func NewSubtitlesHandler() *SubtitlesHandler {
	return &SubtitlesHandler{}
}

// Export godoc
// @Summary     Export cues as SRT
// @Description Renders timed cues as SRT with millisecond precision
// @Tags        subtitles
// @Accept      json
// @Produce     plain
// @Security    Bearer
// @Param       request body models.ExportSubtitlesRequest true "Cues to export"
// @Success     200 {string} string "SRT payload"
// @Failure     400 {object} models.ErrorResponse
// @Router      /subtitles/export [post]
func (h *SubtitlesHandler) Export(c *gin.Context) {
	var req models.ExportSubtitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	srt := subtitle.Generate(req.Cues)
	c.Header("Content-Disposition", `attachment; filename="subtitles.srt"`)
	c.Data(http.StatusOK, "application/x-subrip; charset=utf-8", []byte(srt))
}
