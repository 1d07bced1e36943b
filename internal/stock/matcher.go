package stock

import (
	"fmt"
	"log"
	"strings"

	"storyreel-backend/internal/models"
)

// Provider is one stock-video search backend.
type Provider interface {
	Name() string
	Search(query string, limit int) ([]models.StockResult, error)
}

// TextGenerator extracts search keywords from scene narration.
type TextGenerator interface {
	GenerateText(prompt string) (string, error)
}

// Matcher maps scene text to stock footage. Provider precedence is fixed
// and ordered: Pexels (when configured) -> Pixabay (when configured) ->
// embedded mock catalog.
type Matcher struct {
	providers []Provider
	mock      *MockCatalog
	gen       TextGenerator
}

// NewMatcher builds the provider chain. gen may be nil; keyword extraction
// then falls back to a local heuristic.
func NewMatcher(providers []Provider, mock *MockCatalog, gen TextGenerator) *Matcher {
	return &Matcher{
		providers: providers,
		mock:      mock,
		gen:       gen,
	}
}

// Search runs the provider chain for a query and returns the first
// non-empty result set with the providing backend's name.
func (m *Matcher) Search(query string, limit int) ([]models.StockResult, string, error) {
	for _, p := range m.providers {
		results, err := p.Search(query, limit)
		if err != nil {
			log.Printf("stock provider %s failed, trying next: %v", p.Name(), err)
			continue
		}
		if len(results) > 0 {
			return results, p.Name(), nil
		}
	}

	results, err := m.mock.Search(query, limit)
	if err != nil {
		return nil, "", fmt.Errorf("stock search failed: %w", err)
	}
	return results, m.mock.Name(), nil
}

// MatchScene extracts a keyword from scene narration and returns the first
// search hit for it.
func (m *Matcher) MatchScene(sceneText string) (*models.StockResult, error) {
	query := m.ExtractKeywords(sceneText)
	if query == "" {
		return nil, fmt.Errorf("no usable keywords in scene text")
	}

	results, _, err := m.Search(query, 5)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ExtractKeywords asks the text model for English search keywords, falling
// back to picking the longest words locally.
func (m *Matcher) ExtractKeywords(sceneText string) string {
	if m.gen != nil {
		prompt := "Extract one to three English stock-footage search keywords from this narration. " +
			"Reply with only the keywords, space separated, no punctuation:\n\n" + sceneText
		text, err := m.gen.GenerateText(prompt)
		if err == nil {
			if keywords := sanitizeKeywords(text); keywords != "" {
				return keywords
			}
		} else {
			log.Printf("keyword extraction failed, using heuristic: %v", err)
		}
	}
	return heuristicKeywords(sceneText)
}

func sanitizeKeywords(text string) string {
	line := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	fields := strings.Fields(line)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// heuristicKeywords picks the longest words from the narration, which tend
// to be the content-bearing ones.
func heuristicKeywords(sceneText string) string {
	fields := strings.Fields(strings.ToLower(sceneText))

	var best string
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"'()")
		if len(f) > len(best) {
			best = f
		}
	}
	return best
}
