package services_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/render"
	"storyreel-backend/internal/script"
	"storyreel-backend/internal/services"
	"storyreel-backend/internal/store"
)

type stubScriptGen struct {
	response string
	err      error
}

func (s *stubScriptGen) GenerateText(prompt string) (string, error) {
	return s.response, s.err
}

type stubSpeech struct {
	failOn string
	calls  int
}

func (s *stubSpeech) Synthesize(text, voiceID string) ([]byte, string, error) {
	s.calls++
	if s.failOn != "" && strings.Contains(text, s.failOn) {
		return nil, "", fmt.Errorf("synthesis refused")
	}
	return []byte("wav-bytes"), "audio/wav", nil
}

type fakeStorage struct {
	mu    sync.Mutex
	saved map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) Save(userID, projectID, filename string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[filename] = data
	return fmt.Sprintf("https://assets.test/%s/%s/%s", userID, projectID, filename), nil
}

func (f *fakeStorage) DeleteProjectAssets(userID, projectID string) error { return nil }

type stubMatcher struct {
	failOn string
}

func (m *stubMatcher) MatchScene(sceneText string) (*models.StockResult, error) {
	if m.failOn != "" && strings.Contains(sceneText, m.failOn) {
		return nil, fmt.Errorf("no provider reachable")
	}
	return &models.StockResult{
		ID:       "clip",
		VideoURL: "https://stock.test/" + strings.Fields(sceneText)[0] + ".mp4",
		Provider: "mock",
	}, nil
}

type stubImages struct{}

func (stubImages) Generate(prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("visual prompt is empty")
	}
	return "https://images.test/" + strings.Fields(prompt)[0] + ".jpg", nil
}

type fixture struct {
	projects *store.ProjectStore
	speech   *stubSpeech
	matcher  *stubMatcher
	engine   *render.Engine
	service  *services.AutomationService
}

func newFixture(t *testing.T, scriptResponse string) *fixture {
	t.Helper()

	kv, err := store.NewKV(t.TempDir())
	require.NoError(t, err)
	projects := store.NewProjectStore(kv)

	jobStore := render.NewJobStore(render.DefaultRetention)
	t.Cleanup(jobStore.Close)
	engine := render.NewEngine(jobStore, func(time.Duration) {})

	speech := &stubSpeech{}
	matcher := &stubMatcher{}

	service := services.NewAutomationService(
		projects,
		script.NewGenerator(&stubScriptGen{response: scriptResponse}),
		speech,
		newFakeStorage(),
		matcher,
		stubImages{},
		engine,
	)
	service.SetSleep(func(time.Duration) {})

	return &fixture{
		projects: projects,
		speech:   speech,
		matcher:  matcher,
		engine:   engine,
		service:  service,
	}
}

const threeSceneScript = `[
	{"text": "alpha scene narration", "visual_prompt": "alpha visuals"},
	{"text": "bravo scene narration", "visual_prompt": "bravo visuals"},
	{"text": "charlie scene narration", "visual_prompt": "charlie visuals"}
]`

func savedProject(t *testing.T, f *fixture, userID, projectID string) *models.Project {
	t.Helper()
	p, err := f.projects.Get(userID, projectID)
	require.NoError(t, err)
	return p
}

func TestRunAutomation(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{ID: "p1", UserID: "user-123", Topic: "the alphabet", Status: models.ProjectStatusDraft}

	resp, err := f.service.RunAutomation(project, "aria", false)
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
	assert.Equal(t, 3, resp.Audio.Processed)
	assert.Equal(t, 0, resp.Audio.Errors)
	assert.Equal(t, 3, resp.Visuals.Processed)
	assert.Empty(t, resp.JobID)

	require.Len(t, project.Scenes, 3)
	for _, scene := range project.Scenes {
		assert.NotEmpty(t, scene.AudioURL)
		assert.Equal(t, models.MediaTypeVideo, scene.MediaType)
		assert.NotEmpty(t, scene.StockVideoURL)
		assert.False(t, scene.IsGeneratingAudio)
		assert.False(t, scene.IsGeneratingImage)
	}

	// The final state is persisted
	stored := savedProject(t, f, "user-123", "p1")
	assert.Equal(t, models.ProjectStatusCompleted, stored.Status)
	assert.Len(t, stored.Scenes, 3)
}

func TestRunAutomation_SceneFailureDoesNotAbort(t *testing.T) {
	f := newFixture(t, threeSceneScript)
	f.speech.failOn = "bravo"

	project := &models.Project{ID: "p1", UserID: "user-123", Topic: "topic"}

	resp, err := f.service.RunAutomation(project, "aria", false)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Audio.Processed)
	assert.Equal(t, 1, resp.Audio.Errors)
	require.Len(t, resp.Audio.Messages, 1)
	assert.Contains(t, resp.Audio.Messages[0], "scene 2")

	// The failing scene is skipped, the rest are populated
	assert.Empty(t, project.Scenes[1].AudioURL)
	assert.NotEmpty(t, project.Scenes[0].AudioURL)
	assert.NotEmpty(t, project.Scenes[2].AudioURL)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
}

func TestRunAutomation_StartRender(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{ID: "p1", UserID: "user-123", Topic: "topic"}

	resp, err := f.service.RunAutomation(project, "aria", true)
	require.NoError(t, err)
	require.NotEmpty(t, resp.JobID)

	require.Eventually(t, func() bool {
		job, ok := f.engine.Store().Get(resp.JobID)
		return ok && job.Status == models.RenderStatusCompleted
	}, 5*time.Second, time.Millisecond)
}

func TestRunAutomation_KeepsExistingScenes(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{
		ID: "p1", UserID: "user-123",
		Scenes: []models.Scene{{ID: "s1", Text: "handwritten scene"}},
	}

	_, err := f.service.RunAutomation(project, "aria", false)
	require.NoError(t, err)

	// Scenes already present are enriched, not regenerated
	require.Len(t, project.Scenes, 1)
	assert.Equal(t, "handwritten scene", project.Scenes[0].Text)
	assert.NotEmpty(t, project.Scenes[0].AudioURL)
}

func TestRunAutomation_NoInput(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{ID: "p1", UserID: "user-123"}

	_, err := f.service.RunAutomation(project, "aria", false)
	assert.Error(t, err)
}

func TestGenerateSceneAudio_SkipsCachedAudio(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{ID: "p1", UserID: "user-123"}
	scene := &models.Scene{ID: "s1", Text: "narration", AudioURL: "https://assets.test/existing.wav"}

	skipped, err := f.service.GenerateSceneAudio(project, scene, "aria", false)
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Equal(t, 0, f.speech.calls)
	assert.Equal(t, "https://assets.test/existing.wav", scene.AudioURL)
}

func TestGenerateSceneAudio_ForceRegenerates(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	project := &models.Project{ID: "p1", UserID: "user-123"}
	scene := &models.Scene{ID: "s1", Text: "narration", AudioURL: "https://assets.test/existing.wav"}

	skipped, err := f.service.GenerateSceneAudio(project, scene, "aria", true)
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, 1, f.speech.calls)
	assert.NotEqual(t, "https://assets.test/existing.wav", scene.AudioURL)
	assert.Contains(t, scene.AudioURL, "scene_s1.wav")
}

func TestGenerateSceneVisual_StockFirst(t *testing.T) {
	f := newFixture(t, threeSceneScript)

	scene := &models.Scene{ID: "s1", Text: "forest narration", VisualPrompt: "a forest"}

	require.NoError(t, f.service.GenerateSceneVisual(scene))
	assert.Equal(t, models.MediaTypeVideo, scene.MediaType)
	assert.NotEmpty(t, scene.StockVideoURL)
	assert.Empty(t, scene.ImageURL)
}

func TestGenerateSceneVisual_ImageFallback(t *testing.T) {
	f := newFixture(t, threeSceneScript)
	f.matcher.failOn = "forest"

	scene := &models.Scene{ID: "s1", Text: "forest narration", VisualPrompt: "a forest"}

	require.NoError(t, f.service.GenerateSceneVisual(scene))
	assert.Equal(t, models.MediaTypeImage, scene.MediaType)
	assert.NotEmpty(t, scene.ImageURL)
	assert.Empty(t, scene.StockVideoURL)
	assert.False(t, scene.IsGeneratingImage)
}

func TestBatchAudio(t *testing.T) {
	f := newFixture(t, threeSceneScript)
	f.speech.failOn = "bravo"

	project := &models.Project{
		ID: "p1", UserID: "user-123",
		Scenes: []models.Scene{
			{ID: "s1", Text: "alpha line"},
			{ID: "s2", Text: "bravo line"},
			{ID: "s3", Text: "charlie line", AudioURL: "https://assets.test/cached.wav"},
		},
	}

	result := f.service.BatchAudio(project, "aria")
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Errors)
}

func TestAutoMatchVisuals_IndexStable(t *testing.T) {
	f := newFixture(t, threeSceneScript)
	f.matcher.failOn = "bravo"

	project := &models.Project{
		ID: "p1", UserID: "user-123",
		Scenes: []models.Scene{
			{ID: "s1", Text: "alpha line", VisualPrompt: "alpha art"},
			{ID: "s2", Text: "bravo line", VisualPrompt: "bravo art"},
			{ID: "s3", Text: "charlie line", VisualPrompt: "charlie art"},
			{ID: "s4", Text: "delta line", VisualPrompt: "delta art"},
			{ID: "s5", Text: "echo line", VisualPrompt: "echo art"},
		},
	}

	result := f.service.AutoMatchVisuals(project)
	assert.Equal(t, 5, result.Processed)
	assert.Equal(t, 0, result.Errors)

	// Results land on the scene they were matched for, in order
	assert.Equal(t, "https://stock.test/alpha.mp4", project.Scenes[0].StockVideoURL)
	assert.Equal(t, "https://stock.test/charlie.mp4", project.Scenes[2].StockVideoURL)
	assert.Equal(t, "https://stock.test/echo.mp4", project.Scenes[4].StockVideoURL)

	// The failed match fell back to an image
	assert.Equal(t, models.MediaTypeImage, project.Scenes[1].MediaType)
	assert.Equal(t, "https://images.test/bravo.jpg", project.Scenes[1].ImageURL)
	assert.Empty(t, project.Scenes[1].StockVideoURL)
}
