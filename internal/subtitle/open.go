package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/kashi/internal/lyrics"
)

// ReadTrack loads a subtitle or LRC file as a line-level lyric track, one
// word per cue, ready to be aligned onto a primary track.
func ReadTrack(path string) ([]lyrics.Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".srt":
		entries, err = parseSRT(file)
	case ".vtt":
		entries, err = parseVTT(file)
	case ".lrc":
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read LRC file: %w", readErr)
		}
		lines, _ := lyrics.ParseLRC(string(data))
		return lines, nil
	default:
		return nil, fmt.Errorf("unsupported track format: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	return entriesToLines(entries), nil
}

// multi-line cue text is joined with spaces
func entriesToLines(entries []Entry) []lyrics.Line {
	lines := make([]lyrics.Line, 0, len(entries))
	for _, e := range entries {
		start := e.StartTime.Milliseconds()
		end := max(e.EndTime.Milliseconds(), start)
		text := strings.Join(strings.Fields(e.Text), " ")
		lines = append(lines, lyrics.Line{
			Start: start,
			End:   end,
			Words: []lyrics.Word{{Start: start, End: end, Text: text}},
		})
	}
	return lines
}
