package models

// StockResult is an ephemeral stock-media search hit. Not persisted.
type StockResult struct {
	ID        string  `json:"id"`
	Thumbnail string  `json:"thumbnail"`
	VideoURL  string  `json:"video_url"`
	Duration  float64 `json:"duration"`
	Provider  string  `json:"provider"`
}

// SubtitleCue is one timed narration block, timed in seconds.
type SubtitleCue struct {
	Index     int     `json:"index"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
}
