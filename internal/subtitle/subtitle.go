package subtitle

import (
	"strings"
	"time"

	"github.com/mgpai22/kashi/internal/lyrics"
)

// represents single subtitle entry built from one lyric line
type Entry struct {
	Index        int
	StartTime    time.Duration
	EndTime      time.Duration
	Text         string
	Translation  string
	Romanization string
	// Display is the wrapped, stacked text used by cue based formats
	Display string
	Words   []Segment
}

// represents complete subtitle track
type Subtitle struct {
	Entries []Entry
	Tags    map[string]string
	Format  string
	Lyrics  *lyrics.Result
}

// represents supported output formats
type Format string

const (
	FormatLRC  Format = "lrc"
	FormatELRC Format = "elrc"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatASS  Format = "ass"
	FormatJSON Format = "json"
)

// interface for subtitle generation
type Generator interface {
	Generate(res *lyrics.Result) (*Subtitle, error)
}

// timed fragment of an entry, one per lyric word
type Segment struct {
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// interface for writing subtitles to files
type Writer interface {
	Write(subtitle *Subtitle, path string) error
}

func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatLRC, FormatELRC, FormatSRT, FormatVTT, FormatASS, FormatJSON:
		return f, true
	default:
		return "", false
	}
}

func ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}
