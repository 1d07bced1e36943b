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

// PixabayProvider searches the Pixabay video API.
type PixabayProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type pixabaySearchResponse struct {
	Hits []struct {
		ID       int     `json:"id"`
		Duration float64 `json:"duration"`
		Videos   struct {
			Medium struct {
				URL          string `json:"url"`
				ThumbnailURL string `json:"thumbnail"`
			} `json:"medium"`
		} `json:"videos"`
	} `json:"hits"`
}

func NewPixabayProvider(apiKey string) *PixabayProvider {
	return &PixabayProvider{
		apiKey:  apiKey,
		baseURL: "https://pixabay.com/api/videos/",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (p *PixabayProvider) Name() string { return "pixabay" }

func (p *PixabayProvider) Search(query string, limit int) ([]models.StockResult, error) {
	if limit <= 0 {
		limit = 5
	}
	reqURL := fmt.Sprintf("%s?key=%s&q=%s&per_page=%d", p.baseURL, p.apiKey, url.QueryEscape(query), limit)

	resp, err := p.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pixabay search failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result pixabaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]models.StockResult, 0, len(result.Hits))
	for _, hit := range result.Hits {
		if hit.Videos.Medium.URL == "" {
			continue
		}
		results = append(results, models.StockResult{
			ID:        strconv.Itoa(hit.ID),
			Thumbnail: hit.Videos.Medium.ThumbnailURL,
			VideoURL:  hit.Videos.Medium.URL,
			Duration:  hit.Duration,
			Provider:  p.Name(),
		})
	}
	return results, nil
}
