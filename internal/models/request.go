package models

type CreateProjectRequest struct {
	Title         string `json:"title" binding:"required"`
	Topic         string `json:"topic"`
	InputLanguage string `json:"input_language"`
	Language      string `json:"language"`
	Style         string `json:"style"`
	DurationLevel string `json:"duration_level"`
}

type SaveProjectRequest struct {
	Title              string  `json:"title"`
	Topic              string  `json:"topic"`
	InputLanguage      string  `json:"input_language"`
	Language           string  `json:"language"`
	Style              string  `json:"style"`
	DurationLevel      string  `json:"duration_level"`
	Status             string  `json:"status"`
	Script             string  `json:"script"`
	BackgroundMusicURL string  `json:"background_music_url"`
	Scenes             []Scene `json:"scenes"`
}

type GenerateScriptRequest struct {
	// Topic or raw script text to build scenes from.
	Input         string `json:"input" binding:"required"`
	InputLanguage string `json:"input_language"`
	Language      string `json:"language"`
	Style         string `json:"style"`
	// short, medium or long. Defaults to medium.
	DurationLevel string `json:"duration_level"`
}

type SceneAudioRequest struct {
	VoiceID string `json:"voice_id"`
	// Force regenerates audio even when the scene already has an audio_url.
	Force bool `json:"force"`
}

type BatchAudioRequest struct {
	VoiceID string `json:"voice_id"`
}

type ExportSubtitlesRequest struct {
	Cues []SubtitleCue `json:"cues" binding:"required"`
}

type AutomateRequest struct {
	VoiceID string `json:"voice_id"`
	// StartRender queues a render job after the scenes are populated.
	StartRender bool `json:"start_render"`
}

// RelayRequest mirrors the stateless generation relay: either a bare prompt
// or a full upstream contents payload is accepted.
type RelayRequest struct {
	Prompt   string      `json:"prompt,omitempty"`
	Contents interface{} `json:"contents,omitempty"`
}
