package render

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storyreel-backend/internal/models"
)

// Sleeper injects phase timing so the simulated pacing is swappable: tests
// pass a no-op, a real encoder integration would drive phases from actual
// completion signals instead.
type Sleeper func(d time.Duration)

// Engine runs simulated render jobs against a JobStore. One detached
// worker per job; jobs are fully independent, keyed by id.
type Engine struct {
	store *JobStore
	sleep Sleeper
}

func NewEngine(store *JobStore, sleep Sleeper) *Engine {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Engine{store: store, sleep: sleep}
}

func (e *Engine) Store() *JobStore { return e.store }

// phase is one step of the fixed render timeline. Each phase waits its
// delay, appends its log lines and advances progress to its checkpoint.
type phase struct {
	step     string
	delay    time.Duration
	progress int
	run      func(e *Engine, jobID string, project *models.Project) error
}

var phases = []phase{
	{
		step: "Validating assets", delay: 500 * time.Millisecond, progress: 10,
		run: func(e *Engine, jobID string, project *models.Project) error {
			if len(project.Scenes) == 0 {
				return fmt.Errorf("project has no scenes to render")
			}
			e.appendLog(jobID, fmt.Sprintf("Validated %d scenes", len(project.Scenes)))
			return nil
		},
	},
	{
		step: "Fetching assets", delay: 800 * time.Millisecond, progress: 25,
		run: func(e *Engine, jobID string, project *models.Project) error {
			audio, visuals := 0, 0
			for i := range project.Scenes {
				if project.Scenes[i].AudioURL != "" {
					audio++
				}
				if project.Scenes[i].VisualURL() != "" {
					visuals++
				}
			}
			e.appendLog(jobID, fmt.Sprintf("Fetched %d audio tracks and %d visuals", audio, visuals))
			return nil
		},
	},
	{
		step: "Mixing audio", delay: 700 * time.Millisecond, progress: 45,
		run: func(e *Engine, jobID string, project *models.Project) error {
			if project.BackgroundMusicURL != "" {
				e.appendLog(jobID, "Mixed narration with background music")
			} else {
				e.appendLog(jobID, "Mixed narration track")
			}
			return nil
		},
	},
	{
		step: "Assembling scenes", delay: 0, progress: 65,
		run: func(e *Engine, jobID string, project *models.Project) error {
			// Progress granularity scales with scene count only here.
			total := len(project.Scenes)
			for i := range project.Scenes {
				e.sleep(300 * time.Millisecond)
				progress := 45 + 20*(i+1)/total
				e.store.Update(jobID, func(job *models.RenderJob) {
					job.Progress = progress
					job.Logs = append(job.Logs, fmt.Sprintf("Assembled scene %d/%d", i+1, total))
				})
			}
			return nil
		},
	},
	{
		step: "Aligning subtitles", delay: 500 * time.Millisecond, progress: 75,
		run: func(e *Engine, jobID string, project *models.Project) error {
			e.appendLog(jobID, fmt.Sprintf("Aligned %d subtitle cues", len(project.Scenes)))
			return nil
		},
	},
	{
		step: "Encoding video", delay: 1200 * time.Millisecond, progress: 90,
		run: func(e *Engine, jobID string, project *models.Project) error {
			e.appendLog(jobID, "Encoded 1080p and 720p renditions")
			return nil
		},
	},
}

// demoAssets is the fixed output set attached on completion.
func demoAssets() *models.RenderAssets {
	return &models.RenderAssets{
		Video1080p: "https://cdn.storyreel.dev/demo/render_1080p.mp4",
		Video720p:  "https://cdn.storyreel.dev/demo/render_720p.mp4",
		Audio:      "https://cdn.storyreel.dev/demo/render_audio.mp3",
		Subtitles:  "https://cdn.storyreel.dev/demo/render_subtitles.srt",
	}
}

// StartRender creates a job for the project snapshot and runs it on a
// detached worker. The job references the project by value only; later
// project edits do not affect a running render.
func (e *Engine) StartRender(project models.Project) string {
	now := time.Now()
	job := models.RenderJob{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Status:    models.RenderStatusQueued,
		Progress:  0,
		Logs:      []string{"Render job queued"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.store.Put(job)

	// queued -> processing happens immediately on creation.
	e.store.Update(job.ID, func(j *models.RenderJob) {
		j.Status = models.RenderStatusProcessing
		j.CurrentStep = "Starting render"
		j.Logs = append(j.Logs, "Render started")
	})

	go e.run(job.ID, project)
	return job.ID
}

func (e *Engine) run(jobID string, project models.Project) {
	for _, p := range phases {
		if p.delay > 0 {
			e.sleep(p.delay)
		}

		e.store.Update(jobID, func(job *models.RenderJob) {
			job.CurrentStep = p.step
			job.Logs = append(job.Logs, p.step+"...")
		})

		if err := p.run(e, jobID, &project); err != nil {
			log.Printf("render job %s failed at %q: %v", jobID, p.step, err)
			e.store.Update(jobID, func(job *models.RenderJob) {
				job.Status = models.RenderStatusFailed
				job.ErrorMessage = err.Error()
				job.Logs = append(job.Logs, "Render failed: "+err.Error())
			})
			return
		}

		e.store.Update(jobID, func(job *models.RenderJob) {
			if p.progress > job.Progress {
				job.Progress = p.progress
			}
		})
	}

	e.sleep(400 * time.Millisecond)
	assets := demoAssets()
	e.store.Update(jobID, func(job *models.RenderJob) {
		job.Status = models.RenderStatusCompleted
		job.Progress = 100
		job.CurrentStep = "Completed"
		job.Assets = assets
		job.OutputURL = assets.Video1080p
		job.Logs = append(job.Logs, "Render completed")
	})
}

func (e *Engine) appendLog(jobID, line string) {
	e.store.Update(jobID, func(job *models.RenderJob) {
		job.Logs = append(job.Logs, line)
	})
}
