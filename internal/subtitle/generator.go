package subtitle

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mgpai22/kashi/internal/lyrics"
)

// DefaultGenerator implements the Generator interface
type DefaultGenerator struct {
	MaxCharsPerLine int
	// MediaDuration clamps entries to the length of the media; zero disables
	MediaDuration time.Duration
}

func NewDefaultGenerator() *DefaultGenerator {
	return &DefaultGenerator{
		MaxCharsPerLine: 42, // Standard subtitle line length
	}
}

// converts parsed lyrics to subtitle entries
func (g *DefaultGenerator) Generate(res *lyrics.Result) (*Subtitle, error) {
	sub := &Subtitle{
		Entries: []Entry{},
		Tags:    map[string]string{},
		Lyrics:  res,
	}
	if res == nil {
		return sub, nil
	}
	for k, v := range res.Tags {
		sub.Tags[k] = v
	}

	index := 1
	for i, line := range res.Original {
		text := strings.TrimSpace(line.Text())
		translation := secondaryText(res.Translated, i)
		romanization := secondaryText(res.Romanization, i)
		if text == "" && translation == "" && romanization == "" {
			continue
		}

		start, end := ms(line.Start), ms(line.End)
		if g.MediaDuration > 0 {
			if start >= g.MediaDuration {
				continue
			}
			end = min(end, g.MediaDuration)
		}

		entry := Entry{
			Index:        index,
			StartTime:    start,
			EndTime:      end,
			Text:         text,
			Translation:  translation,
			Romanization: romanization,
			Display:      g.stack(text, translation, romanization),
			Words:        g.segments(line.Words, end),
		}
		sub.Entries = append(sub.Entries, entry)
		index++
	}

	return sub, nil
}

func secondaryText(track []lyrics.Line, i int) string {
	if i >= len(track) {
		return ""
	}
	return strings.TrimSpace(track[i].Text())
}

// original first, then translation, then romanization
func (g *DefaultGenerator) stack(parts ...string) string {
	var lines []string
	for _, p := range parts {
		if p != "" {
			lines = append(lines, g.formatText(p))
		}
	}
	return strings.Join(lines, "\n")
}

func (g *DefaultGenerator) segments(words []lyrics.Word, limit time.Duration) []Segment {
	segs := make([]Segment, 0, len(words))
	for _, w := range words {
		start, end := ms(w.Start), ms(w.End)
		if start >= limit {
			break
		}
		segs = append(segs, Segment{
			StartTime: start,
			EndTime:   min(end, limit),
			Text:      w.Text,
		})
	}
	return segs
}

// formatText formats text for display with line wrapping
func (g *DefaultGenerator) formatText(text string) string {
	text = strings.TrimSpace(text)
	runeCount := utf8.RuneCountInString(text)

	// if text fits on one line, return as is
	if g.MaxCharsPerLine <= 0 || runeCount <= g.MaxCharsPerLine {
		return text
	}

	// try to split into two lines at a natural break point
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	// find the best split point (closest to middle)
	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		return strings.Join(words[:bestSplit], " ") + "\n" +
			strings.Join(words[bestSplit:], " ")
	}

	return text
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
