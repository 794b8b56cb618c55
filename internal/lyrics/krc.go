package lyrics

import "strings"

// LanguageTag is the krc tag whose value embeds the alternate tracks.
const LanguageTag = "language"

// ParseKRC parses krc markup: "[start,duration]" lines holding
// "<offset,duration,reserved>text" words timed relative to the line.
// Translation and romanization come from the embedded language payload
// and are positionally aligned; a payload that fails to decode is
// ignored. The result is never nil.
func ParseKRC(text string) *Result {
	res := newResult()

	for _, raw := range splitLines(text) {
		if key, value, ok := parseTag(raw); ok {
			res.Tags[key] = value
			continue
		}

		start, duration, rest, ok := parseTimedLine(raw)
		if !ok {
			continue
		}
		res.Original = append(res.Original, parseKRCLine(start, duration, rest))
	}

	if payload, ok := res.Tags[LanguageTag]; ok {
		attachEmbeddedTracks(res, payload)
	}

	return res
}

func parseKRCLine(start, duration int64, rest string) Line {
	line := Line{Start: start, End: start + duration, Words: []Word{}}

	tokens := findTokens(rest, '<', '>', 3)
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
		wordStart := start + tok.nums[0]
		line.Words = append(line.Words, Word{
			Start: wordStart,
			End:   wordStart + tok.nums[1],
			Text:  rest[tok.end:textEnd],
		})
	}
	return line
}

func attachEmbeddedTracks(res *Result, payload string) {
	tracks, err := decodeLanguagePayload(payload)
	if err != nil {
		return
	}

	if t, ok := firstTrack(tracks, kindTranslation); ok {
		res.Translated = buildEmbeddedTrack(res.Original, t.Rows, translationRowText)
	}
	if t, ok := firstTrack(tracks, kindRomanization); ok {
		res.Romanization = buildEmbeddedTrack(res.Original, t.Rows, romanizationRowText)
	}
}
