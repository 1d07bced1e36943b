package stock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storyreel-backend/internal/models"
)

// PexelsProvider searches the Pexels video API.
type PexelsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type pexelsSearchResponse struct {
	Videos []struct {
		ID         int     `json:"id"`
		Image      string  `json:"image"`
		Duration   float64 `json:"duration"`
		VideoFiles []struct {
			Link    string `json:"link"`
			Quality string `json:"quality"`
		} `json:"video_files"`
	} `json:"videos"`
}

func NewPexelsProvider(apiKey string) *PexelsProvider {
	return &PexelsProvider{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com/videos",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (p *PexelsProvider) Name() string { return "pexels" }

func (p *PexelsProvider) Search(query string, limit int) ([]models.StockResult, error) {
	if limit <= 0 {
		limit = 5
	}
	reqURL := fmt.Sprintf("%s/search?query=%s&per_page=%d", p.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pexels search failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]models.StockResult, 0, len(result.Videos))
	for _, v := range result.Videos {
		if len(v.VideoFiles) == 0 {
			continue
		}
		link := v.VideoFiles[0].Link
		for _, f := range v.VideoFiles {
			if f.Quality == "hd" {
				link = f.Link
				break
			}
		}
		results = append(results, models.StockResult{
			ID:        strconv.Itoa(v.ID),
			Thumbnail: v.Image,
			VideoURL:  link,
			Duration:  v.Duration,
			Provider:  p.Name(),
		})
	}
	return results, nil
}
