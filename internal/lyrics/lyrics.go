// Package lyrics parses vendor timed-lyric markup into a word-level
// timestamped model and aligns line-level secondary tracks onto it.
//
// All parse functions are pure: they share no state between calls and
// never fail on content. Malformed lines are skipped and a broken embedded
// payload degrades to a result without secondary tracks.
package lyrics

import "strings"

// smallest timed unit within a line, times in milliseconds
type Word struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Text  string `json:"text"`
}

// timed lyric line; a line with no words is a placeholder
type Line struct {
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Words []Word `json:"words"`
}

// Text concatenates the text of every word in the line.
func (l Line) Text() string {
	switch len(l.Words) {
	case 0:
		return ""
	case 1:
		return l.Words[0].Text
	}

	var sb strings.Builder
	for _, w := range l.Words {
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// IsBlank reports whether no word carries non-whitespace text.
func (l Line) IsBlank() bool {
	for _, w := range l.Words {
		if strings.TrimSpace(w.Text) != "" {
			return false
		}
	}
	return true
}

// output of a single parse call. A nil Translated or Romanization slice
// means the track is absent; when present it has exactly len(Original)
// lines sharing the original timings.
type Result struct {
	Tags         map[string]string `json:"tags"`
	Original     []Line            `json:"original"`
	Translated   []Line            `json:"translated,omitempty"`
	Romanization []Line            `json:"romanization,omitempty"`
}

func newResult() *Result {
	return &Result{
		Tags:     make(map[string]string),
		Original: []Line{},
	}
}

// spanning builds a line holding a single word that covers the whole line.
func spanning(start, end int64, text string) Line {
	return Line{
		Start: start,
		End:   end,
		Words: []Word{{Start: start, End: end, Text: text}},
	}
}

// placeholder builds an empty line covering [start, end].
func placeholder(start, end int64) Line {
	return Line{Start: start, End: end, Words: []Word{}}
}
