package stock_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storyreel-backend/internal/models"
	"storyreel-backend/internal/stock"
)

type stubProvider struct {
	name    string
	results []models.StockResult
	err     error
	queries []string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(query string, limit int) ([]models.StockResult, error) {
	p.queries = append(p.queries, query)
	return p.results, p.err
}

type stubKeywordGen struct {
	response string
	err      error
}

func (g *stubKeywordGen) GenerateText(prompt string) (string, error) {
	return g.response, g.err
}

func newTestMatcher(t *testing.T, providers []stock.Provider, gen stock.TextGenerator) *stock.Matcher {
	t.Helper()
	catalog, err := stock.NewMockCatalog()
	require.NoError(t, err)
	return stock.NewMatcher(providers, catalog, gen)
}

func TestMatcher_SearchProviderPrecedence(t *testing.T) {
	first := &stubProvider{name: "pexels", results: []models.StockResult{{ID: "a", VideoURL: "https://pexels.test/a.mp4", Provider: "pexels"}}}
	second := &stubProvider{name: "pixabay", results: []models.StockResult{{ID: "b", Provider: "pixabay"}}}
	m := newTestMatcher(t, []stock.Provider{first, second}, nil)

	results, provider, err := m.Search("forest", 5)
	require.NoError(t, err)
	assert.Equal(t, "pexels", provider)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
	assert.Empty(t, second.queries)
}

func TestMatcher_SearchFailingProviderSkipped(t *testing.T) {
	failing := &stubProvider{name: "pexels", err: fmt.Errorf("rate limited")}
	working := &stubProvider{name: "pixabay", results: []models.StockResult{{ID: "b", Provider: "pixabay"}}}
	m := newTestMatcher(t, []stock.Provider{failing, working}, nil)

	results, provider, err := m.Search("forest", 5)
	require.NoError(t, err)
	assert.Equal(t, "pixabay", provider)
	require.Len(t, results, 1)
}

func TestMatcher_SearchFallsBackToMock(t *testing.T) {
	failing := &stubProvider{name: "pexels", err: fmt.Errorf("down")}
	empty := &stubProvider{name: "pixabay"}
	m := newTestMatcher(t, []stock.Provider{failing, empty}, nil)

	results, provider, err := m.Search("forest", 5)
	require.NoError(t, err)
	assert.Equal(t, "mock", provider)
	assert.NotEmpty(t, results)
}

func TestMatcher_MatchScene(t *testing.T) {
	m := newTestMatcher(t, nil, nil)

	result, err := m.MatchScene("A quiet walk through the ancient forest at dawn.")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.VideoURL)
}

func TestMatcher_MatchSceneEmptyText(t *testing.T) {
	m := newTestMatcher(t, nil, nil)

	_, err := m.MatchScene("   ")
	assert.Error(t, err)
}

func TestMatcher_ExtractKeywordsFromModel(t *testing.T) {
	m := newTestMatcher(t, nil, &stubKeywordGen{response: "Forest Morning Mist\nIgnored second line"})

	assert.Equal(t, "forest morning mist", m.ExtractKeywords("some narration"))
}

func TestMatcher_ExtractKeywordsCapsAtThree(t *testing.T) {
	m := newTestMatcher(t, nil, &stubKeywordGen{response: "one two three four five"})

	assert.Equal(t, "one two three", m.ExtractKeywords("some narration"))
}

func TestMatcher_ExtractKeywordsHeuristicFallback(t *testing.T) {
	m := newTestMatcher(t, nil, &stubKeywordGen{err: fmt.Errorf("down")})

	// Longest word wins, punctuation trimmed
	assert.Equal(t, "mountains", m.ExtractKeywords("We hiked the mountains, then home."))
}

func TestMatcher_ExtractKeywordsNilGenerator(t *testing.T) {
	m := newTestMatcher(t, nil, nil)

	assert.Equal(t, "waterfall", m.ExtractKeywords("The waterfall roared."))
}
