package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storyreel-backend/internal/models"
)

// Generate renders cues as SRT: index, "HH:MM:SS,mmm --> HH:MM:SS,mmm",
// text, blank line. Timing precision is the millisecond.
func Generate(cues []models.SubtitleCue) string {
	var b strings.Builder
	for i, cue := range cues {
		index := cue.Index
		if index == 0 {
			index = i + 1
		}
		fmt.Fprintf(&b, "%d\n", index)
		fmt.Fprintf(&b, "%s --> %s\n", formatTimestamp(cue.StartTime), formatTimestamp(cue.EndTime))
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Parse reads SRT text back into cues. Generate followed by Parse
// reproduces identical (start, end, text) triples modulo millisecond
// rounding.
func Parse(srt string) ([]models.SubtitleCue, error) {
	blocks := strings.Split(strings.ReplaceAll(srt, "\r\n", "\n"), "\n\n")

	var cues []models.SubtitleCue
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			return nil, fmt.Errorf("malformed subtitle block: %q", block)
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid subtitle index %q: %w", lines[0], err)
		}

		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			return nil, err
		}

		cues = append(cues, models.SubtitleCue{
			Index:     index,
			StartTime: start,
			EndTime:   end,
			Text:      strings.Join(lines[2:], "\n"),
		})
	}
	return cues, nil
}

// FromScenes lays scene narration out sequentially: each scene's cue starts
// where the previous one ended and runs for the scene's duration estimate.
func FromScenes(scenes []models.Scene) []models.SubtitleCue {
	cues := make([]models.SubtitleCue, 0, len(scenes))
	offset := 0.0
	for i, scene := range scenes {
		cues = append(cues, models.SubtitleCue{
			Index:     i + 1,
			StartTime: offset,
			EndTime:   offset + scene.Duration,
			Text:      scene.Text,
		})
		offset += scene.Duration
	}
	return cues
}

func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	millis := totalMillis % 1000
	totalSeconds := totalMillis / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60, millis)
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line: %q", line)
	}
	start, err := parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(ts string) (float64, error) {
	var h, m, s, ms int
	if _, err := fmt.Sscanf(ts, "%d:%d:%d,%d", &h, &m, &s, &ms); err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}
