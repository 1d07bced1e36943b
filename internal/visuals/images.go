package visuals

import (
	"fmt"
	"hash/fnv"
	"net/url"
)

// ImageGenerator produces AI image URLs for scene visual prompts via
// Pollinations, which renders on GET with no API key. The seed is derived
// from the prompt so repeated generations of the same scene stay stable.
type ImageGenerator struct {
	width  int
	height int
}

func NewImageGenerator() *ImageGenerator {
	return &ImageGenerator{
		width:  1920,
		height: 1080,
	}
}

func (g *ImageGenerator) Generate(prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("visual prompt is empty")
	}

	h := fnv.New32a()
	h.Write([]byte(prompt))
	seed := h.Sum32()

	imageURL := fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=%d&height=%d&nologo=true&model=flux&seed=%d",
		url.PathEscape(prompt), g.width, g.height, seed,
	)
	return imageURL, nil
}
