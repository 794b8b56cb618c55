package lyrics

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseYRC parses yrc markup: "[start,duration]" lines holding
// "(start,duration,reserved)text" words with absolute times. When primary
// is blank the line-timed legacy LRC track is used instead. Translated
// and romanization tracks are LRC and get aligned onto the primary lines.
//
// It returns nil only when both primary and legacy are blank.
func ParseYRC(primary, legacy, translated, romanization string) *Result {
	hasPrimary := strings.TrimSpace(primary) != ""
	if !hasPrimary && strings.TrimSpace(legacy) == "" {
		return nil
	}

	res := newResult()
	if hasPrimary {
		parseYRCPrimary(res, primary)
	} else {
		lines, tags := ParseLRC(legacy)
		res.Original = append(res.Original, lines...)
		res.Tags = tags
	}

	res.Translated = Align(res.Original, parseLRCTrack(translated))
	res.Romanization = Align(res.Original, parseLRCTrack(romanization))

	return res
}

func parseYRCPrimary(res *Result, text string) {
	for _, raw := range splitLines(text) {
		if key, value, ok := parseTag(raw); ok {
			res.Tags[key] = value
			continue
		}
		if key, value, ok := parseCreditLine(raw); ok {
			res.Tags[key] = value
			continue
		}

		start, duration, rest, ok := parseTimedLine(raw)
		if !ok {
			continue
		}
		res.Original = append(res.Original, parseYRCLine(start, duration, rest))
	}

	sort.SliceStable(res.Original, func(i, j int) bool {
		return res.Original[i].Start < res.Original[j].Start
	})
}

func parseYRCLine(start, duration int64, rest string) Line {
	line := Line{Start: start, End: start + duration, Words: []Word{}}

	tokens := findTokens(rest, '(', ')', 3)
	if len(tokens) == 0 {
		if strings.TrimSpace(rest) != "" {
			return spanning(line.Start, line.End, rest)
		}
		return line
	}

	for i, tok := range tokens {
		textEnd := len(rest)
		if i+1 < len(tokens) {
			textEnd = tokens[i+1].start
		}
		line.Words = append(line.Words, Word{
			Start: tok.nums[0],
			End:   tok.nums[0] + tok.nums[1],
			Text:  rest[tok.end:textEnd],
		})
	}
	return line
}

// parseCreditLine reads the json credit lines yrc tracks open with, e.g.
// {"t":0,"c":[{"tx":"作词: "},{"tx":"Someone"}]}, as a key/value tag.
func parseCreditLine(raw string) (string, string, bool) {
	line := strings.TrimSpace(raw)
	if !strings.HasPrefix(line, "{") || !gjson.Valid(line) {
		return "", "", false
	}

	fragments := gjson.Get(line, "c.#.tx").Array()
	if len(fragments) < 2 {
		return "", "", false
	}

	key := strings.TrimSpace(fragments[0].String())
	key = strings.TrimSpace(strings.TrimRight(key, ":："))
	if key == "" {
		return "", "", false
	}

	var sb strings.Builder
	for _, f := range fragments[1:] {
		sb.WriteString(f.String())
	}
	value := strings.TrimSpace(sb.String())
	if value == "" {
		return "", "", false
	}
	return key, value, true
}
