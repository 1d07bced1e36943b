package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ProjectListResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	DurationLevel string    `json:"duration_level"`
	SceneCount    int       `json:"scene_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type GenerateScriptResponse struct {
	Scenes []Scene `json:"scenes"`
	// Fallback is set when structured generation failed and the scenes were
	// produced by newline chunking of the raw input.
	Fallback bool `json:"fallback"`
}

type RenderStartResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type StockSearchResponse struct {
	Results []StockResult `json:"results"`
	// Provider that produced the results: pexels, pixabay or mock.
	Provider string `json:"provider"`
}

type BatchResult struct {
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Errors    int      `json:"errors"`
	Messages  []string `json:"messages,omitempty"`
}

type AutomateResponse struct {
	Project *Project    `json:"project"`
	Audio   BatchResult `json:"audio"`
	Visuals BatchResult `json:"visuals"`
	JobID   string      `json:"job_id,omitempty"`
}

type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Style    string `json:"style"`
}
