package lyrics

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// kind discriminator of an embedded alternate track
type trackKind int64

const (
	kindRomanization trackKind = 0
	kindTranslation  trackKind = 1
)

// alternate language track carried inside a krc "language" tag. Rows are
// positionally matched to the non-blank primary lines.
type embeddedTrack struct {
	Kind trackKind
	Rows [][]string
}

var errMalformedPayload = errors.New("malformed language payload")

// decodeLanguagePayload base64-decodes the tag value and reads the
// {"content":[{"type":N,"lyricContent":[[...]]}]} document inside it.
func decodeLanguagePayload(encoded string) ([]embeddedTrack, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid json", errMalformedPayload)
	}

	content := gjson.GetBytes(raw, "content")
	if !content.IsArray() {
		return nil, fmt.Errorf("%w: missing content list", errMalformedPayload)
	}

	var tracks []embeddedTrack
	for i, item := range content.Array() {
		kind := item.Get("type")
		rows := item.Get("lyricContent")
		if kind.Type != gjson.Number || !rows.IsArray() {
			return nil, fmt.Errorf(
				"%w: track %d has no type or lyricContent",
				errMalformedPayload,
				i,
			)
		}

		track := embeddedTrack{Kind: trackKind(kind.Int())}
		for j, row := range rows.Array() {
			if !row.IsArray() {
				return nil, fmt.Errorf(
					"%w: track %d row %d is not a list",
					errMalformedPayload,
					i,
					j,
				)
			}
			cells := row.Array()
			texts := make([]string, len(cells))
			for k, cell := range cells {
				texts[k] = cell.String()
			}
			track.Rows = append(track.Rows, texts)
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// firstTrack returns the first track of the given kind.
func firstTrack(tracks []embeddedTrack, kind trackKind) (embeddedTrack, bool) {
	for _, t := range tracks {
		if t.Kind == kind {
			return t, true
		}
	}
	return embeddedTrack{}, false
}

// buildEmbeddedTrack lays rows over the primary lines, skipping blank
// primary lines when counting positions. Lines without a row become
// placeholders so the track always has len(primary) entries.
func buildEmbeddedTrack(
	primary []Line,
	rows [][]string,
	rowText func([]string) string,
) []Line {
	out := make([]Line, len(primary))
	row := 0
	for i, line := range primary {
		if line.IsBlank() {
			out[i] = placeholder(line.Start, line.End)
			continue
		}
		if row < len(rows) {
			out[i] = spanning(line.Start, line.End, rowText(rows[row]))
		} else {
			out[i] = placeholder(line.Start, line.End)
		}
		row++
	}
	return out
}

// translations only carry one alternate per row; extra cells are ignored
func translationRowText(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	return cells[0]
}

func romanizationRowText(cells []string) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
