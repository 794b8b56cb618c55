package lyrics

import (
	"html"
	"regexp"
	"strings"
)

var qrcContentRegex = regexp.MustCompile(`LyricContent="([^"]*)"`)

// unwrapQRC extracts the LyricContent attribute from the xml envelope qrc
// payloads are shipped in. Text without the envelope is returned as is.
func unwrapQRC(text string) string {
	if !strings.Contains(text, "LyricContent=") {
		return text
	}
	matches := qrcContentRegex.FindStringSubmatch(text)
	if len(matches) != 2 {
		return text
	}
	return html.UnescapeString(matches[1])
}

// ParseQRC parses qrc markup: "[start,duration]" lines holding
// "text(start,duration)" words with absolute times. The translated track
// is line-timed LRC; the romanization track uses the qrc line grammar
// with its word timings stripped. Both are aligned onto the primary lines.
// The result is never nil.
func ParseQRC(primary, translated, romanization string) *Result {
	res := newResult()

	for _, raw := range splitLines(unwrapQRC(primary)) {
		if key, value, ok := parseTag(raw); ok {
			res.Tags[key] = value
			continue
		}

		start, duration, rest, ok := parseTimedLine(raw)
		if !ok {
			continue
		}
		res.Original = append(res.Original, parseQRCLine(start, duration, rest))
	}

	res.Translated = Align(res.Original, parseLRCTrack(translated))
	res.Romanization = Align(res.Original, parseQRCRomanization(romanization))

	return res
}

func parseQRCLine(start, duration int64, rest string) Line {
	line := Line{Start: start, End: start + duration, Words: []Word{}}

	tokens := findTokens(rest, '(', ')', 2)
	if len(tokens) == 0 {
		if strings.TrimSpace(rest) != "" {
			return spanning(line.Start, line.End, rest)
		}
		return line
	}

	textStart := 0
	for _, tok := range tokens {
		line.Words = append(line.Words, Word{
			Start: tok.nums[0],
			End:   tok.nums[0] + tok.nums[1],
			Text:  rest[textStart:tok.start],
		})
		textStart = tok.end
	}
	return line
}

// parseQRCRomanization reads a qrc-grammar romanization blob into one
// plain-text line per timed line.
func parseQRCRomanization(text string) []Line {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []Line
	for _, raw := range splitLines(unwrapQRC(text)) {
		if _, _, ok := parseTag(raw); ok {
			continue
		}

		start, duration, rest, ok := parseTimedLine(raw)
		if !ok {
			continue
		}
		lines = append(lines, spanning(start, start+duration, stripQRCTimings(rest)))
	}
	return lines
}

func stripQRCTimings(rest string) string {
	tokens := findTokens(rest, '(', ')', 2)
	if len(tokens) == 0 {
		return collapseSpaces(rest)
	}

	var sb strings.Builder
	prev := 0
	for _, tok := range tokens {
		sb.WriteString(rest[prev:tok.start])
		prev = tok.end
	}
	sb.WriteString(rest[prev:])
	return collapseSpaces(sb.String())
}
