package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storyreel-backend/internal/assets"
	"storyreel-backend/internal/middleware"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/store"
	"storyreel-backend/internal/subtitle"
)

type ProjectsHandler struct {
	projects *store.ProjectStore
	storage  assets.Storage
}

func NewProjectsHandler(projects *store.ProjectStore, storage assets.Storage) *ProjectsHandler {
	return &ProjectsHandler{
		projects: projects,
		storage:  storage,
	}
}

// CreateProject godoc
// @Summary     Create a draft project
// @Description Creates an empty draft project owned by the caller
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateProjectRequest true "Project settings"
// @Success     201 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	project := models.Project{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		Topic:         req.Topic,
		InputLanguage: defaultString(req.InputLanguage, "en"),
		Language:      defaultString(req.Language, "en"),
		Style:         defaultString(req.Style, "cinematic"),
		DurationLevel: defaultString(req.DurationLevel, models.DurationMedium),
		Status:        models.ProjectStatusDraft,
		Scenes:        []models.Scene{},
	}

	if err := h.projects.Save(&project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary     List projects
// @Description Lists the caller's projects, newest first
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	projects, err := h.projects.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list projects",
			Message: err.Error(),
		})
		return
	}

	summaries := make([]models.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, models.ProjectSummary{
			ID:            p.ID,
			Title:         p.Title,
			Status:        p.Status,
			DurationLevel: p.DurationLevel,
			SceneCount:    len(p.Scenes),
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: summaries})
}

// GetProject godoc
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// SaveProject godoc
// @Summary     Save a project aggregate
// @Description Upserts the full project: an existing id updates in place (created_at preserved), a new id is appended
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.SaveProjectRequest true "Project contents"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects/{project_id} [put]
func (h *ProjectsHandler) SaveProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	projectID := c.Param("project_id")
	if _, err := uuid.Parse(projectID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	project := models.Project{
		ID:                 projectID,
		UserID:             userID,
		Title:              req.Title,
		Topic:              req.Topic,
		InputLanguage:      req.InputLanguage,
		Language:           req.Language,
		Style:              req.Style,
		DurationLevel:      req.DurationLevel,
		Status:             defaultString(req.Status, models.ProjectStatusDraft),
		Script:             req.Script,
		BackgroundMusicURL: req.BackgroundMusicURL,
		Scenes:             req.Scenes,
	}
	if project.Scenes == nil {
		project.Scenes = []models.Scene{}
	}
	// The duration estimate follows the text, not whatever the client sent.
	for i := range project.Scenes {
		project.Scenes[i].Duration = models.EstimateSceneDuration(project.Scenes[i].Text)
	}

	if err := h.projects.Save(&project); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary     Delete a project and its stored assets
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     204 "deleted"
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}
	projectID := c.Param("project_id")

	if err := h.projects.Delete(userID, projectID); err != nil {
		if err == store.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete project",
			Message: err.Error(),
		})
		return
	}

	if err := h.storage.DeleteProjectAssets(userID, projectID); err != nil {
		// The project record is gone; orphaned assets are only logged.
		log.Printf("failed to delete assets for project %s: %v", projectID, err)
	}

	c.Status(http.StatusNoContent)
}

// GetProjectSubtitles godoc
// @Summary     Export project subtitles as SRT
// @Description Lays scene narration out sequentially by scene duration
// @Tags        subtitles
// @Produce     plain
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {string} string "SRT payload"
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/subtitles.srt [get]
func (h *ProjectsHandler) GetProjectSubtitles(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	srt := subtitle.Generate(subtitle.FromScenes(project.Scenes))
	c.Header("Content-Disposition", `attachment; filename="subtitles.srt"`)
	c.Data(http.StatusOK, "application/x-subrip; charset=utf-8", []byte(srt))
}

// loadProject resolves the :project_id parameter for the caller, writing
// the error response itself when the project cannot be served.
func (h *ProjectsHandler) loadProject(c *gin.Context) (*models.Project, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return nil, false
	}

	projectID := c.Param("project_id")
	if _, err := uuid.Parse(projectID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return nil, false
	}

	project, err := h.projects.Get(userID, projectID)
	if err != nil {
		if err == store.ErrProjectNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load project",
			Message: err.Error(),
		})
		return nil, false
	}
	return project, true
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
