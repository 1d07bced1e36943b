package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyreel-backend/internal/models"
	"storyreel-backend/internal/services"
	"storyreel-backend/internal/store"
)

// MediaHandler drives audio and visual generation for scenes, the batch
// helpers and the full automation run.
type MediaHandler struct {
	projects   *store.ProjectStore
	automation *services.AutomationService
}

func NewMediaHandler(projects *store.ProjectStore, automation *services.AutomationService) *MediaHandler {
	return &MediaHandler{
		projects:   projects,
		automation: automation,
	}
}

// GenerateSceneAudio godoc
// @Summary     Synthesize narration for one scene
// @Description Skips scenes that already carry an audio_url unless force is set
// @Tags        media
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       scene_id path string true "Scene ID"
// @Param       request body models.SceneAudioRequest false "Voice options"
// @Success     200 {object} models.Scene
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id}/scenes/{scene_id}/audio [post]
func (h *MediaHandler) GenerateSceneAudio(c *gin.Context) {
	project, scene, ok := h.loadScene(c)
	if !ok {
		return
	}

	var req models.SceneAudioRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid request body",
				Message: err.Error(),
			})
			return
		}
	}

	if _, err := h.automation.GenerateSceneAudio(project, scene, req.VoiceID, req.Force); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "audio generation failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.projects.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, scene)
}

// GenerateSceneVisual godoc
// @Summary     Match a visual for one scene
// @Description Tries stock footage first and falls back to AI image generation, flipping the scene's media_type
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       scene_id path string true "Scene ID"
// @Success     200 {object} models.Scene
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id}/scenes/{scene_id}/visual [post]
func (h *MediaHandler) GenerateSceneVisual(c *gin.Context) {
	project, scene, ok := h.loadScene(c)
	if !ok {
		return
	}

	if err := h.automation.GenerateSceneVisual(scene); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "visual generation failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.projects.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, scene)
}

// BatchAudio godoc
// @Summary     Synthesize narration for every scene
// @Description Per-scene loop: a failing scene is counted and skipped, the batch continues
// @Tags        media
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.BatchAudioRequest false "Voice options"
// @Success     200 {object} models.BatchResult
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/audio [post]
func (h *MediaHandler) BatchAudio(c *gin.Context) {
	project, ok := h.loadProjectForUpdate(c)
	if !ok {
		return
	}

	var req models.BatchAudioRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid request body",
				Message: err.Error(),
			})
			return
		}
	}

	result := h.automation.BatchAudio(project, req.VoiceID)

	if err := h.projects.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// BatchVisuals godoc
// @Summary     Match visuals for every scene
// @Description Bounded concurrent stock matching with index-stable application; failures fall back to AI images per scene
// @Tags        media
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.BatchResult
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/visuals [post]
func (h *MediaHandler) BatchVisuals(c *gin.Context) {
	project, ok := h.loadProjectForUpdate(c)
	if !ok {
		return
	}

	result := h.automation.AutoMatchVisuals(project)

	if err := h.projects.Save(project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Automate godoc
// @Summary     Run full automation for a project
// @Description Sequentially drives script, per-scene audio and visuals, incremental saves, and optionally a render job
// @Tags        media
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.AutomateRequest false "Automation options"
// @Success     200 {object} models.AutomateResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id}/automate [post]
func (h *MediaHandler) Automate(c *gin.Context) {
	project, ok := h.loadProjectForUpdate(c)
	if !ok {
		return
	}

	var req models.AutomateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid request body",
				Message: err.Error(),
			})
			return
		}
	}

	resp, err := h.automation.RunAutomation(project, req.VoiceID, req.StartRender)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "automation failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) loadProjectForUpdate(c *gin.Context) (*models.Project, bool) {
	helper := &ProjectsHandler{projects: h.projects}
	return helper.loadProject(c)
}

func (h *MediaHandler) loadScene(c *gin.Context) (*models.Project, *models.Scene, bool) {
	project, ok := h.loadProjectForUpdate(c)
	if !ok {
		return nil, nil, false
	}

	scene := project.SceneByID(c.Param("scene_id"))
	if scene == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "scene not found"})
		return nil, nil, false
	}
	return project, scene, true
}
