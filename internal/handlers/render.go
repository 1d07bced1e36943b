package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storyreel-backend/internal/models"
	"storyreel-backend/internal/render"
	"storyreel-backend/internal/store"
)

type RenderHandler struct {
	projects *store.ProjectStore
	engine   *render.Engine
}

func NewRenderHandler(projects *store.ProjectStore, engine *render.Engine) *RenderHandler {
	return &RenderHandler{
		projects: projects,
		engine:   engine,
	}
}

// StartRender godoc
// @Summary     Start a render job
// @Description Queues a simulated render of the project and returns the job id to poll
// @Tags        render
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     202 {object} models.RenderStartResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/render [post]
func (h *RenderHandler) StartRender(c *gin.Context) {
	helper := &ProjectsHandler{projects: h.projects}
	project, ok := helper.loadProject(c)
	if !ok {
		return
	}

	jobID := h.engine.StartRender(*project)

	c.JSON(http.StatusAccepted, models.RenderStartResponse{
		JobID:  jobID,
		Status: models.RenderStatusProcessing,
	})
}

// GetJobStatus godoc
// @Summary     Poll a render job
// @Description Returns the job snapshot. Poll at a fixed interval until status is completed or failed; there is no push channel and no cancellation.
// @Tags        render
// @Produce     json
// @Param       job_id path string true "Render job ID (UUID)"
// @Success     200 {object} models.RenderJob
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /render/{job_id} [get]
func (h *RenderHandler) GetJobStatus(c *gin.Context) {
	jobID := c.Param("job_id")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid job id"})
		return
	}

	job, ok := h.engine.Store().Get(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}
