package tts

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storyreel-backend/internal/models"
)

// Client synthesizes narration audio for a scene. The call is purely
// delegated: there is no retry or backoff, a failure surfaces verbatim.
// Upstream output is not deterministic for identical input, so callers must
// cache the generated URL on the scene instead of regenerating.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Synthesize returns audio bytes and their content type. Without a
// configured upstream it produces a silent WAV sized to the narration
// estimate, so the rest of the pipeline stays exercisable offline.
func (c *Client) Synthesize(text, voiceID string) ([]byte, string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return silentWAV(models.EstimateSceneDuration(text)), "audio/wav", nil
	}

	jsonData, err := json.Marshal(synthesizeRequest{Text: text, VoiceID: voiceID})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/synthesize", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to synthesize speech: status %d, body: %s", resp.StatusCode, string(body))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return body, contentType, nil
}

// Voices returns the fixed voice catalog.
func Voices() []models.Voice {
	return []models.Voice{
		{ID: "aria", Name: "Aria", Language: "en-US", Style: "narration"},
		{ID: "marcus", Name: "Marcus", Language: "en-US", Style: "documentary"},
		{ID: "luna", Name: "Luna", Language: "en-GB", Style: "storytelling"},
		{ID: "mei", Name: "Mei", Language: "zh-CN", Style: "narration"},
		{ID: "diego", Name: "Diego", Language: "es-ES", Style: "narration"},
	}
}

const (
	mockSampleRate  = 8000
	maxMockDuration = 30.0
)

// silentWAV builds a valid mono 8-bit PCM WAV of silence.
func silentWAV(seconds float64) []byte {
	if seconds > maxMockDuration {
		seconds = maxMockDuration
	}
	sampleCount := int(seconds * mockSampleRate)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+sampleCount))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(mockSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(mockSampleRate))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(8))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(sampleCount))
	buf.Write(bytes.Repeat([]byte{0x80}, sampleCount))

	return buf.Bytes()
}
