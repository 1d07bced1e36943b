package services

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"storyreel-backend/internal/assets"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/render"
	"storyreel-backend/internal/script"
	"storyreel-backend/internal/store"
)

// SpeechSynthesizer is satisfied by *tts.Client.
type SpeechSynthesizer interface {
	Synthesize(text, voiceID string) ([]byte, string, error)
}

// StockMatcher is satisfied by *stock.Matcher.
type StockMatcher interface {
	MatchScene(sceneText string) (*models.StockResult, error)
}

// ImageGenerator is satisfied by *visuals.ImageGenerator.
type ImageGenerator interface {
	Generate(prompt string) (string, error)
}

const (
	// Fixed spacing between scenes to stay under upstream rate limits.
	// Not adaptive; an actual 429 is handled like any other scene error.
	interSceneDelay = 500 * time.Millisecond

	// Concurrency bound for visual auto-matching, sized against the
	// 30-scene long tier.
	autoMatchLimit = 4
)

// AutomationService sequences script, audio, visuals, persistence and
// render for a project. It is the only component with cross-stage logic.
type AutomationService struct {
	projects *store.ProjectStore
	scripts  *script.Generator
	speech   SpeechSynthesizer
	storage  assets.Storage
	stock    StockMatcher
	images   ImageGenerator
	engine   *render.Engine
	sleep    func(time.Duration)
}

func NewAutomationService(
	projects *store.ProjectStore,
	scripts *script.Generator,
	speech SpeechSynthesizer,
	storage assets.Storage,
	stockMatcher StockMatcher,
	images ImageGenerator,
	engine *render.Engine,
) *AutomationService {
	return &AutomationService{
		projects: projects,
		scripts:  scripts,
		speech:   speech,
		storage:  storage,
		stock:    stockMatcher,
		images:   images,
		engine:   engine,
		sleep:    time.Sleep,
	}
}

// SetSleep overrides the inter-scene delay for tests.
func (s *AutomationService) SetSleep(fn func(time.Duration)) {
	s.sleep = fn
}

// GenerateSceneAudio synthesizes narration for one scene and stores the
// asset. A scene that already carries an audio_url is skipped unless
// force is set; upstream audio is non-deterministic, so the cached URL is
// the idempotency mechanism.
func (s *AutomationService) GenerateSceneAudio(project *models.Project, scene *models.Scene, voiceID string, force bool) (bool, error) {
	if scene.AudioURL != "" && !force {
		return true, nil
	}

	scene.IsGeneratingAudio = true
	defer func() { scene.IsGeneratingAudio = false }()

	data, contentType, err := s.speech.Synthesize(scene.Text, voiceID)
	if err != nil {
		return false, fmt.Errorf("speech synthesis failed: %w", err)
	}

	filename := "scene_" + scene.ID + audioExtension(contentType)
	url, err := s.storage.Save(project.UserID, project.ID, filename, data, contentType)
	if err != nil {
		return false, fmt.Errorf("failed to store audio: %w", err)
	}

	scene.AudioURL = url
	scene.Duration = models.EstimateSceneDuration(scene.Text)
	return false, nil
}

// GenerateSceneVisual matches stock footage first and falls back to AI
// image generation, flipping the scene's media type to whichever source
// produced the visual.
func (s *AutomationService) GenerateSceneVisual(scene *models.Scene) error {
	result, err := s.stock.MatchScene(scene.Text)
	if err == nil && result != nil {
		scene.StockVideoURL = result.VideoURL
		scene.MediaType = models.MediaTypeVideo
		return nil
	}
	if err != nil {
		log.Printf("stock match failed for scene %s, falling back to image: %v", scene.ID, err)
	}

	scene.IsGeneratingImage = true
	defer func() { scene.IsGeneratingImage = false }()

	prompt := scene.VisualPrompt
	if prompt == "" {
		prompt = scene.Text
	}
	imageURL, err := s.images.Generate(prompt)
	if err != nil {
		return fmt.Errorf("visual generation failed: %w", err)
	}

	scene.ImageURL = imageURL
	scene.MediaType = models.MediaTypeImage
	return nil
}

// BatchAudio generates narration for every scene. A failing scene is
// counted and skipped; the run continues.
func (s *AutomationService) BatchAudio(project *models.Project, voiceID string) models.BatchResult {
	var result models.BatchResult
	for i := range project.Scenes {
		if i > 0 {
			s.sleep(interSceneDelay)
		}
		skipped, err := s.GenerateSceneAudio(project, &project.Scenes[i], voiceID, false)
		switch {
		case err != nil:
			result.Errors++
			result.Messages = append(result.Messages, fmt.Sprintf("scene %d: %v", i+1, err))
		case skipped:
			result.Skipped++
		default:
			result.Processed++
		}
	}
	return result
}

// AutoMatchVisuals matches visuals for all scenes with a bounded fan-out.
// Results are applied index-stably: scene order, not completion order.
func (s *AutomationService) AutoMatchVisuals(project *models.Project) models.BatchResult {
	type matchOutcome struct {
		result *models.StockResult
		err    error
	}
	outcomes := make([]matchOutcome, len(project.Scenes))

	var g errgroup.Group
	g.SetLimit(autoMatchLimit)
	for i := range project.Scenes {
		i := i
		g.Go(func() error {
			result, err := s.stock.MatchScene(project.Scenes[i].Text)
			outcomes[i] = matchOutcome{result: result, err: err}
			return nil
		})
	}
	g.Wait()

	var result models.BatchResult
	for i := range project.Scenes {
		scene := &project.Scenes[i]
		if outcomes[i].err == nil && outcomes[i].result != nil {
			scene.StockVideoURL = outcomes[i].result.VideoURL
			scene.MediaType = models.MediaTypeVideo
			result.Processed++
			continue
		}
		if err := s.imageFallback(scene); err != nil {
			result.Errors++
			result.Messages = append(result.Messages, fmt.Sprintf("scene %d: %v", i+1, err))
			continue
		}
		result.Processed++
	}
	return result
}

func (s *AutomationService) imageFallback(scene *models.Scene) error {
	prompt := scene.VisualPrompt
	if prompt == "" {
		prompt = scene.Text
	}
	imageURL, err := s.images.Generate(prompt)
	if err != nil {
		return fmt.Errorf("visual generation failed: %w", err)
	}
	scene.ImageURL = imageURL
	scene.MediaType = models.MediaTypeImage
	return nil
}

// RunAutomation drives a project from raw topic or script to a fully
// populated, saved scene list, then optionally queues a render.
//
// Per-scene failures are counted and skipped, never aborting the run: the
// same policy as the batch helpers. Scenes are processed strictly
// sequentially and the project is saved after every scene, so a caller
// reading the store mid-run sees partial progress.
func (s *AutomationService) RunAutomation(project *models.Project, voiceID string, startRender bool) (*models.AutomateResponse, error) {
	if len(project.Scenes) == 0 {
		input := project.Script
		if input == "" {
			input = project.Topic
		}
		scenes, fallback, err := s.scripts.Generate(input, project.InputLanguage, project.Language, project.Style, project.DurationLevel)
		if err != nil {
			return nil, fmt.Errorf("script generation failed: %w", err)
		}
		if fallback {
			log.Printf("project %s: structured generation unavailable, used chunked script", project.ID)
		}
		project.Scenes = scenes
	}

	project.Status = models.ProjectStatusProcessing
	if err := s.projects.Save(project); err != nil {
		return nil, err
	}

	resp := &models.AutomateResponse{}
	for i := range project.Scenes {
		if i > 0 {
			s.sleep(interSceneDelay)
		}
		scene := &project.Scenes[i]

		skipped, err := s.GenerateSceneAudio(project, scene, voiceID, false)
		switch {
		case err != nil:
			resp.Audio.Errors++
			resp.Audio.Messages = append(resp.Audio.Messages, fmt.Sprintf("scene %d: %v", i+1, err))
		case skipped:
			resp.Audio.Skipped++
		default:
			resp.Audio.Processed++
		}

		if err := s.GenerateSceneVisual(scene); err != nil {
			resp.Visuals.Errors++
			resp.Visuals.Messages = append(resp.Visuals.Messages, fmt.Sprintf("scene %d: %v", i+1, err))
		} else {
			resp.Visuals.Processed++
		}

		// Incremental save: partial progress is observable mid-run.
		if err := s.projects.Save(project); err != nil {
			return nil, err
		}
	}

	project.Status = models.ProjectStatusCompleted
	if err := s.projects.Save(project); err != nil {
		return nil, err
	}

	if startRender {
		resp.JobID = s.engine.StartRender(*project)
	}

	resp.Project = project
	return resp, nil
}

func audioExtension(contentType string) string {
	switch contentType {
	case "audio/wav":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".mp3"
	}
}
