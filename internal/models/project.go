package models

import "time"

const (
	ProjectStatusDraft      = "draft"
	ProjectStatusProcessing = "processing"
	ProjectStatusCompleted  = "completed"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Duration tiers control target scene count and narrative depth.
const (
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

// Scene is one narrated, visually illustrated unit of a generated video.
// Audio and visual stages enrich it in place after script generation.
type Scene struct {
	ID            string  `json:"id"`
	Text          string  `json:"text"`
	Duration      float64 `json:"duration"`
	MediaType     string  `json:"media_type"`
	ImageURL      string  `json:"image_url,omitempty"`
	StockVideoURL string  `json:"stock_video_url,omitempty"`
	AudioURL      string  `json:"audio_url,omitempty"`
	VisualPrompt  string  `json:"visual_prompt,omitempty"`

	IsGeneratingImage bool `json:"is_generating_image"`
	IsGeneratingAudio bool `json:"is_generating_audio"`
}

// VisualURL returns the authoritative visual for the scene's media type.
// Both URL fields may coexist after mode toggling; media_type decides.
func (s *Scene) VisualURL() string {
	if s.MediaType == MediaTypeVideo && s.StockVideoURL != "" {
		return s.StockVideoURL
	}
	return s.ImageURL
}

type Project struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	Topic              string    `json:"topic"`
	InputLanguage      string    `json:"input_language"`
	Language           string    `json:"language"`
	Style              string    `json:"style"`
	DurationLevel      string    `json:"duration_level"`
	Status             string    `json:"status"`
	Script             string    `json:"script,omitempty"`
	BackgroundMusicURL string    `json:"background_music_url,omitempty"`
	Scenes             []Scene   `json:"scenes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SceneByID returns a pointer into the project's scene slice, or nil.
func (p *Project) SceneByID(sceneID string) *Scene {
	for i := range p.Scenes {
		if p.Scenes[i].ID == sceneID {
			return &p.Scenes[i]
		}
	}
	return nil
}
