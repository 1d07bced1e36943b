package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client wraps the generative text API used for script generation, keyword
// extraction and visual prompts.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   "gemini-1.5-flash",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API key is present. Calls on an
// unconfigured client fail immediately; that is a configuration error,
// not a retryable one.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateText sends a single prompt and returns the first candidate text.
// Upstream failures are retried with backoff; a missing API key fails
// immediately without retrying.
func (c *Client) GenerateText(prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	var raw json.RawMessage
	err := c.RetryWithBackoff(func() error {
		var genErr error
		raw, genErr = c.GenerateRaw(GenerateContentRequest{
			Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		})
		return genErr
	}, 3)
	if err != nil {
		return "", err
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(raw))
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response, body: %s", string(raw))
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateRaw forwards an arbitrary generateContent payload and returns the
// upstream JSON verbatim. The relay endpoint is a pure pass-through over
// this call: no retries, no caching.
func (c *Client) GenerateRaw(payload interface{}) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/models/" + c.model + ":generateContent?key=" + c.apiKey
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
