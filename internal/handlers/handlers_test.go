package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"storyreel-backend/internal/assets"
	"storyreel-backend/internal/gemini"
	"storyreel-backend/internal/handlers"
	"storyreel-backend/internal/middleware"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/render"
	"storyreel-backend/internal/script"
	"storyreel-backend/internal/services"
	"storyreel-backend/internal/stock"
	"storyreel-backend/internal/store"
	"storyreel-backend/internal/tts"
	"storyreel-backend/internal/visuals"
)

const testUserID = "user-123"

type testEnv struct {
	router   *gin.Engine
	projects *store.ProjectStore
	jobStore *render.JobStore
}

// newTestEnv wires the full offline stack: unconfigured TTS (silent WAV),
// the embedded stock catalog, local asset storage and a no-delay render
// engine. Auth is replaced with a fixed caller id.
func newTestEnv(t *testing.T, geminiClient *gemini.Client) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if geminiClient == nil {
		geminiClient = gemini.NewClient("", "")
	}

	kv, err := store.NewKV(t.TempDir())
	require.NoError(t, err)
	projects := store.NewProjectStore(kv)

	localStorage, err := assets.NewLocalStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	catalog, err := stock.NewMockCatalog()
	require.NoError(t, err)
	matcher := stock.NewMatcher(nil, catalog, nil)

	jobStore := render.NewJobStore(render.DefaultRetention)
	t.Cleanup(jobStore.Close)
	engine := render.NewEngine(jobStore, func(time.Duration) {})

	scripts := script.NewGenerator(geminiClient)
	automation := services.NewAutomationService(
		projects, scripts, tts.NewClient("", ""), localStorage, matcher, visuals.NewImageGenerator(), engine,
	)
	automation.SetSleep(func(time.Duration) {})

	projectsHandler := handlers.NewProjectsHandler(projects, localStorage)
	generateHandler := handlers.NewGenerateHandler(scripts, geminiClient)
	mediaHandler := handlers.NewMediaHandler(projects, automation)
	renderHandler := handlers.NewRenderHandler(projects, engine)
	stockHandler := handlers.NewStockHandler(matcher)
	subtitlesHandler := handlers.NewSubtitlesHandler()
	voicesHandler := handlers.NewVoicesHandler()

	router := gin.New()
	router.GET("/health", handlers.HealthHandler)
	router.POST("/api/v1/relay/generate", generateHandler.Relay)

	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	})

	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PUT("/projects/:project_id", projectsHandler.SaveProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	api.GET("/projects/:project_id/subtitles.srt", projectsHandler.GetProjectSubtitles)

	api.POST("/generate/script", generateHandler.GenerateScript)
	api.POST("/projects/:project_id/scenes/:scene_id/audio", mediaHandler.GenerateSceneAudio)
	api.POST("/projects/:project_id/scenes/:scene_id/visual", mediaHandler.GenerateSceneVisual)
	api.POST("/projects/:project_id/audio", mediaHandler.BatchAudio)
	api.POST("/projects/:project_id/visuals", mediaHandler.BatchVisuals)
	api.POST("/projects/:project_id/automate", mediaHandler.Automate)

	api.POST("/projects/:project_id/render", renderHandler.StartRender)
	api.GET("/render/:job_id", renderHandler.GetJobStatus)

	api.GET("/stock/search", stockHandler.Search)
	api.POST("/subtitles/export", subtitlesHandler.Export)
	api.GET("/voices", voicesHandler.GetVoices)

	return &testEnv{
		router:   router,
		projects: projects,
		jobStore: jobStore,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createProject(t *testing.T, title string) models.Project {
	t.Helper()

	w := e.request(t, "POST", "/api/v1/projects", models.CreateProjectRequest{Title: title, Topic: "test topic"})
	require.Equal(t, http.StatusCreated, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	return project
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
