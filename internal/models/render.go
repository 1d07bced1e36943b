package models

import "time"

const (
	RenderStatusQueued     = "queued"
	RenderStatusProcessing = "processing"
	RenderStatusCompleted  = "completed"
	RenderStatusFailed     = "failed"
)

// RenderAssets holds the output locations attached to a completed job.
// Exactly these four entries exist once a job completes.
type RenderAssets struct {
	Video1080p string `json:"video1080p"`
	Video720p  string `json:"video720p"`
	Audio      string `json:"audio"`
	Subtitles  string `json:"subtitles"`
}

// RenderJob is the polled snapshot of one render. Progress is monotonically
// non-decreasing and reaches exactly 100 at status=completed.
type RenderJob struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	Status       string        `json:"status"`
	Progress     int           `json:"progress"`
	CurrentStep  string        `json:"current_step"`
	Logs         []string      `json:"logs"`
	OutputURL    string        `json:"output_url,omitempty"`
	Assets       *RenderAssets `json:"assets,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Terminal reports whether the job can no longer change.
func (j *RenderJob) Terminal() bool {
	return j.Status == RenderStatusCompleted || j.Status == RenderStatusFailed
}
