package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storyreel-backend/internal/models"
)

func TestExportSubtitles(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "POST", "/api/v1/subtitles/export", models.ExportSubtitlesRequest{
		Cues: []models.SubtitleCue{
			{Index: 1, StartTime: 0, EndTime: 2.5, Text: "Hello."},
			{Index: 2, StartTime: 2.5, EndTime: 5, Text: "World."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "subtitles.srt")
	assert.Contains(t, w.Body.String(), "1\n00:00:00,000 --> 00:00:02,500\nHello.")
	assert.Contains(t, w.Body.String(), "2\n00:00:02,500 --> 00:00:05,000\nWorld.")
}

func TestExportSubtitles_MissingCues(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "POST", "/api/v1/subtitles/export", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVoices(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.request(t, "GET", "/api/v1/voices", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.VoicesResponse
	decode(t, w, &resp)
	require.Len(t, resp.Voices, 5)
	assert.Equal(t, "aria", resp.Voices[0].ID)
}
