package script

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"storyreel-backend/internal/models"
)

// TextGenerator is the upstream text model used for structured scene
// generation. Satisfied by *gemini.Client.
type TextGenerator interface {
	GenerateText(prompt string) (string, error)
}

// tier maps a duration level to its target scene count and narrative depth.
// This is a fixed lookup, not computed.
type tier struct {
	SceneCount int
	Detail     string
}

var tiers = map[string]tier{
	models.DurationShort:  {SceneCount: 5, Detail: "concise"},
	models.DurationMedium: {SceneCount: 12, Detail: "moderate"},
	models.DurationLong:   {SceneCount: 30, Detail: "deep-dive"},
}

// TierFor resolves a duration level, defaulting unknown levels to medium.
func TierFor(level string) (int, string) {
	t, ok := tiers[level]
	if !ok {
		t = tiers[models.DurationMedium]
	}
	return t.SceneCount, t.Detail
}

type Generator struct {
	gen TextGenerator
}

func NewGenerator(gen TextGenerator) *Generator {
	return &Generator{gen: gen}
}

// generatedScene is the JSON shape requested from the model.
type generatedScene struct {
	Text         string `json:"text"`
	VisualPrompt string `json:"visual_prompt"`
}

// Generate produces an ordered scene list from a topic or raw script.
// Narration is written in the output language; visual prompts are always
// English regardless of narration language. On any malformed upstream
// response it falls back to newline chunking of the raw input. The fallback
// never translates, so input and output languages can end up mismatched.
func (g *Generator) Generate(input, inputLanguage, language, style, durationLevel string) ([]models.Scene, bool, error) {
	if strings.TrimSpace(input) == "" {
		return nil, false, fmt.Errorf("input text is empty")
	}

	sceneCount, detail := TierFor(durationLevel)

	text, err := g.gen.GenerateText(buildPrompt(input, inputLanguage, language, style, sceneCount, detail))
	if err != nil {
		log.Printf("scene generation failed, falling back to chunking: %v", err)
		return FallbackScenes(input), true, nil
	}

	scenes, err := parseScenes(text)
	if err != nil {
		log.Printf("malformed scene response, falling back to chunking: %v", err)
		return FallbackScenes(input), true, nil
	}

	return scenes, false, nil
}

func buildPrompt(input, inputLanguage, language, style string, sceneCount int, detail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a video script writer. Split the following %s input into exactly %d scenes with %s narrative detail.\n", inputLanguage, sceneCount, detail)
	fmt.Fprintf(&b, "Write the narration of every scene in %s. Visual style: %s.\n", language, style)
	b.WriteString("For each scene also write a visual_prompt describing the scene for an image generator. visual_prompt must always be in English.\n")
	b.WriteString("Respond with only a JSON array: [{\"text\": \"...\", \"visual_prompt\": \"...\"}].\n\n")
	b.WriteString("Input:\n")
	b.WriteString(input)
	return b.String()
}

func parseScenes(raw string) ([]models.Scene, error) {
	cleaned := stripCodeFence(raw)

	var generated []generatedScene
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil {
		return nil, fmt.Errorf("failed to decode scenes: %w", err)
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("model returned no scenes")
	}

	scenes := make([]models.Scene, 0, len(generated))
	for _, gs := range generated {
		if strings.TrimSpace(gs.Text) == "" {
			continue
		}
		scenes = append(scenes, newScene(gs.Text, gs.VisualPrompt))
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("model returned only empty scenes")
	}
	return scenes, nil
}

// FallbackScenes chunks raw input on newlines, one scene per non-empty
// line, applying the same duration heuristic as the structured path.
func FallbackScenes(input string) []models.Scene {
	var scenes []models.Scene
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scenes = append(scenes, newScene(line, line))
	}
	if len(scenes) == 0 {
		scenes = append(scenes, newScene(strings.TrimSpace(input), strings.TrimSpace(input)))
	}
	return scenes
}

func newScene(text, visualPrompt string) models.Scene {
	return models.Scene{
		ID:           uuid.NewString(),
		Text:         text,
		Duration:     models.EstimateSceneDuration(text),
		MediaType:    models.MediaTypeImage,
		VisualPrompt: visualPrompt,
	}
}

// stripCodeFence removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
