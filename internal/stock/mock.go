package stock

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"storyreel-backend/internal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

const mockFallbackLimit = 3

type catalogFile struct {
	Clips []catalogClip `yaml:"clips"`
}

type catalogClip struct {
	ID        string   `yaml:"id"`
	Tags      []string `yaml:"tags"`
	VideoURL  string   `yaml:"video_url"`
	Thumbnail string   `yaml:"thumbnail"`
	Duration  float64  `yaml:"duration"`
}

// MockCatalog serves the embedded demo footage. It never returns an empty
// result set: when no tag matches, it returns a random sample instead.
// That is a UX decision (the stock panel never renders empty), which also
// means "no match" is not a representable outcome on this path.
type MockCatalog struct {
	clips []catalogClip
}

func NewMockCatalog() (*MockCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stock catalog: %w", err)
	}
	if len(file.Clips) == 0 {
		return nil, fmt.Errorf("stock catalog is empty")
	}
	return &MockCatalog{clips: file.Clips}, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// Search matches each query term against clip tags by substring. With no
// matches it falls back to a random sample of at most three clips.
func (m *MockCatalog) Search(query string, limit int) ([]models.StockResult, error) {
	terms := strings.Fields(strings.ToLower(query))

	var matched []models.StockResult
	for _, clip := range m.clips {
		if clipMatches(clip, terms) {
			matched = append(matched, clip.toResult())
		}
	}

	if len(matched) == 0 {
		return m.randomSample(), nil
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func clipMatches(clip catalogClip, terms []string) bool {
	for _, term := range terms {
		for _, tag := range clip.Tags {
			if strings.Contains(tag, term) || strings.Contains(term, tag) {
				return true
			}
		}
	}
	return false
}

func (m *MockCatalog) randomSample() []models.StockResult {
	n := mockFallbackLimit
	if n > len(m.clips) {
		n = len(m.clips)
	}
	// Top-level rand is safe under the auto-match fan-out's goroutines.
	picks := rand.Perm(len(m.clips))[:n]

	results := make([]models.StockResult, 0, n)
	for _, i := range picks {
		results = append(results, m.clips[i].toResult())
	}
	return results
}

func (c catalogClip) toResult() models.StockResult {
	return models.StockResult{
		ID:        c.ID,
		Thumbnail: c.Thumbnail,
		VideoURL:  c.VideoURL,
		Duration:  c.Duration,
		Provider:  "mock",
	}
}
