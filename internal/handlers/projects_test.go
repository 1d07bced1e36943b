package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storyreel-backend/internal/handlers"
	"storyreel-backend/internal/middleware"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/store"
)

func TestCreateProject(t *testing.T) {
	env := newTestEnv(t, nil)

	project := env.createProject(t, "My Video")

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, testUserID, project.UserID)
	assert.Equal(t, "My Video", project.Title)
	assert.Equal(t, models.ProjectStatusDraft, project.Status)
	assert.Equal(t, models.DurationMedium, project.DurationLevel)
	assert.Equal(t, "cinematic", project.Style)
	assert.NotNil(t, project.Scenes)
}

func TestCreateProject_MissingTitle(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "POST", "/api/v1/projects", map[string]string{"topic": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProject(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject(t, "My Video")

	w := env.request(t, "GET", "/api/v1/projects/"+project.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Project
	decode(t, w, &got)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, "My Video", got.Title)
}

func TestGetProject_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "GET", "/api/v1/projects/6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProject_InvalidID(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "GET", "/api/v1/projects/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProjects(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createProject(t, "First")
	env.createProject(t, "Second")

	w := env.request(t, "GET", "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProjectListResponse
	decode(t, w, &resp)
	require.Len(t, resp.Projects, 2)
	// Newest first
	assert.Equal(t, "Second", resp.Projects[0].Title)
	assert.Equal(t, "First", resp.Projects[1].Title)
}

func TestSaveProject_Upsert(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject(t, "Draft")

	w := env.request(t, "PUT", "/api/v1/projects/"+project.ID, models.SaveProjectRequest{
		Title:  "Edited",
		Status: models.ProjectStatusProcessing,
		Scenes: []models.Scene{
			{ID: "s1", Text: "one two three four five six seven eight nine ten", Duration: 99},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Project
	decode(t, w, &saved)
	assert.Equal(t, "Edited", saved.Title)
	assert.Equal(t, models.ProjectStatusProcessing, saved.Status)
	// created_at survives the upsert
	assert.True(t, saved.CreatedAt.Equal(project.CreatedAt))
	// scene durations are recomputed from the text, not trusted from the client
	require.Len(t, saved.Scenes, 1)
	assert.Equal(t, 4.0, saved.Scenes[0].Duration)

	// Still a single project
	list := env.request(t, "GET", "/api/v1/projects", nil)
	var resp models.ProjectListResponse
	decode(t, list, &resp)
	assert.Len(t, resp.Projects, 1)
}

func TestSaveProject_NewIDAppends(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "PUT", "/api/v1/projects/6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd", models.SaveProjectRequest{
		Title: "Imported",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Project
	decode(t, w, &saved)
	assert.Equal(t, "6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd", saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got := env.request(t, "GET", "/api/v1/projects/6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd", nil)
	assert.Equal(t, http.StatusOK, got.Code)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject(t, "Doomed")

	w := env.request(t, "DELETE", "/api/v1/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	got := env.request(t, "GET", "/api/v1/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNotFound, got.Code)
}

type failingStorage struct{}

func (failingStorage) Save(userID, projectID, filename string, data []byte, contentType string) (string, error) {
	return "", fmt.Errorf("bucket offline")
}

func (failingStorage) DeleteProjectAssets(userID, projectID string) error {
	return fmt.Errorf("bucket offline")
}

func TestDeleteProject_AssetCleanupFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	kv, err := store.NewKV(t.TempDir())
	require.NoError(t, err)
	projects := store.NewProjectStore(kv)

	const projectID = "6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd"
	require.NoError(t, projects.Save(&models.Project{ID: projectID, UserID: testUserID, Title: "Doomed"}))

	h := handlers.NewProjectsHandler(projects, failingStorage{})
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})
	router.DELETE("/projects/:project_id", h.DeleteProject)

	req, err := http.NewRequest("DELETE", "/projects/"+projectID, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Failing asset cleanup does not change the outcome of the delete.
	assert.Equal(t, http.StatusNoContent, w.Code)
	_, err = projects.Get(testUserID, projectID)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestDeleteProject_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "DELETE", "/api/v1/projects/6a7a58b1-9a3b-44a0-b51c-9fae7b0e12cd", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProjectSubtitles(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject(t, "Subtitled")

	w := env.request(t, "PUT", "/api/v1/projects/"+project.ID, models.SaveProjectRequest{
		Title: "Subtitled",
		Scenes: []models.Scene{
			{ID: "s1", Text: "First scene."},
			{ID: "s2", Text: "Second scene."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	srt := env.request(t, "GET", "/api/v1/projects/"+project.ID+"/subtitles.srt", nil)
	require.Equal(t, http.StatusOK, srt.Code)
	assert.Contains(t, srt.Header().Get("Content-Disposition"), "subtitles.srt")
	assert.Contains(t, srt.Body.String(), "1\n00:00:00,000 --> 00:00:03,000\nFirst scene.")
	assert.Contains(t, srt.Body.String(), "2\n00:00:03,000 --> 00:00:06,000\nSecond scene.")
}
