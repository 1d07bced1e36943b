package models

import "strings"

// wordsPerSecond approximates spoken narration pace.
const wordsPerSecond = 2.5

// EstimateSceneDuration estimates spoken duration in seconds for a piece of
// narration text: max(3, wordCount / 2.5). Recomputed whenever scene text
// changes; empty text still yields the 3 second floor.
func EstimateSceneDuration(text string) float64 {
	words := len(strings.Fields(text))
	seconds := float64(words) / wordsPerSecond
	if seconds < 3 {
		return 3
	}
	return seconds
}
