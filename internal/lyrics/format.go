package lyrics

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the grammar a primary blob is written in.
type Format string

const (
	FormatKRC Format = "krc"
	FormatQRC Format = "qrc"
	FormatYRC Format = "yrc"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported lyric format")
	// returned for yrc when neither primary nor legacy text is present
	ErrNoLyrics = errors.New("no lyrics")
)

// raw text blobs handed to Parse. Legacy is only read by yrc; krc
// ignores Translated and Romanization since it embeds its own tracks.
type Input struct {
	Primary      string
	Legacy       string
	Translated   string
	Romanization string
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatKRC, FormatQRC, FormatYRC:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Parse dispatches to the parser for format. Content never produces an
// error; only an unknown format or the yrc absence case do.
func Parse(format Format, in Input) (*Result, error) {
	switch format {
	case FormatKRC:
		return ParseKRC(in.Primary), nil
	case FormatQRC:
		return ParseQRC(in.Primary, in.Translated, in.Romanization), nil
	case FormatYRC:
		res := ParseYRC(in.Primary, in.Legacy, in.Translated, in.Romanization)
		if res == nil {
			return nil, ErrNoLyrics
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
