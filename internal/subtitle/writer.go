package subtitle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mgpai22/kashi/internal/lyrics"
)

// StdoutPath makes writers print instead of creating a file
const StdoutPath = "-"

// line timed LRC, secondary tracks share the original timestamp
type LRCWriter struct{}

// enhanced LRC with per word stamps
type ELRCWriter struct{}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format with karaoke tags
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

// the parsed lyrics as indented JSON
type JSONWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatLRC:
		return &LRCWriter{}, nil
	case FormatELRC:
		return &ELRCWriter{}, nil
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "Kashi Lyrics",
			FontName: "Arial",
			FontSize: 28,
		}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the subtitle to an LRC file
func (w *LRCWriter) Write(sub *Subtitle, path string) error {
	var sb strings.Builder
	writeLRCTags(&sb, sub.Tags)

	for _, entry := range sub.Entries {
		stamp := formatLRCTime(entry.StartTime)
		sb.WriteString(fmt.Sprintf("[%s]%s\n", stamp, entry.Text))
		writeLRCSecondary(&sb, stamp, entry)
	}

	return writeOutput(path, sb.String())
}

// writes the subtitle to an enhanced LRC file
func (w *ELRCWriter) Write(sub *Subtitle, path string) error {
	var sb strings.Builder
	writeLRCTags(&sb, sub.Tags)

	for _, entry := range sub.Entries {
		stamp := formatLRCTime(entry.StartTime)
		sb.WriteString(fmt.Sprintf("[%s]", stamp))
		if len(entry.Words) == 0 {
			sb.WriteString(entry.Text)
		} else {
			for _, seg := range entry.Words {
				sb.WriteString(fmt.Sprintf("<%s>%s", formatLRCTime(seg.StartTime), seg.Text))
			}
			last := entry.Words[len(entry.Words)-1]
			sb.WriteString(fmt.Sprintf("<%s>", formatLRCTime(last.EndTime)))
		}
		sb.WriteString("\n")
		writeLRCSecondary(&sb, stamp, entry)
	}

	return writeOutput(path, sb.String())
}

func writeLRCTags(sb *strings.Builder, tags map[string]string) {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		// embedded payload is already expanded into tracks
		if k == lyrics.LanguageTag {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("[%s:%s]\n", k, tags[k]))
	}
}

func writeLRCSecondary(sb *strings.Builder, stamp string, entry Entry) {
	for _, text := range []string{entry.Translation, entry.Romanization} {
		if text != "" {
			sb.WriteString(fmt.Sprintf("[%s]%s\n", stamp, text))
		}
	}
}

// writes the subtitle to an SRT file
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	var sb strings.Builder
	for i, entry := range sub.Entries {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(entry.StartTime),
			formatSRTTime(entry.EndTime)))

		sb.WriteString(entry.Display)
		sb.WriteString("\n\n")
	}

	return writeOutput(path, sb.String())
}

// writes the subtitle to a VTT file
func (w *VTTWriter) Write(sub *Subtitle, path string) error {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for i, entry := range sub.Entries {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(entry.StartTime),
			formatVTTTime(entry.EndTime)))

		sb.WriteString(entry.Display)
		sb.WriteString("\n\n")
	}

	return writeOutput(path, sb.String())
}

// writes the subtitle to an ASS file
func (w *ASSWriter) Write(sub *Subtitle, path string) error {
	var sb strings.Builder

	// script info section
	sb.WriteString("[Script Info]\n")
	title := w.Title
	if t := sub.Tags["ti"]; t != "" {
		title = t
	}
	sb.WriteString(fmt.Sprintf("Title: %s\n", title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	// v4+ styles section
	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
		w.FontName, w.FontSize))

	// events section
	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, entry := range sub.Entries {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			formatASSTime(entry.StartTime),
			formatASSTime(entry.EndTime),
			karaokeText(entry)))
	}

	return writeOutput(path, sb.String())
}

// writes the parsed lyrics behind the subtitle as JSON
func (w *JSONWriter) Write(sub *Subtitle, path string) error {
	res := sub.Lyrics
	if res == nil {
		res = &lyrics.Result{Tags: sub.Tags, Original: []lyrics.Line{}}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode lyrics: %w", err)
	}
	return writeOutput(path, string(data)+"\n")
}

// karaokeText renders word timings as {\kN} tags, N in centiseconds.
// Gaps between words become empty syllables.
func karaokeText(entry Entry) string {
	if len(entry.Words) == 0 {
		return escapeASSText(entry.Display)
	}

	var sb strings.Builder
	cursor := entry.StartTime
	for _, seg := range entry.Words {
		if gap := centiseconds(seg.StartTime - cursor); gap > 0 {
			sb.WriteString(fmt.Sprintf("{\\k%d}", gap))
		}
		sb.WriteString(fmt.Sprintf("{\\k%d}%s", centiseconds(seg.EndTime-seg.StartTime), escapeASSText(seg.Text)))
		cursor = max(cursor, seg.EndTime)
	}

	for _, text := range []string{entry.Translation, entry.Romanization} {
		if text != "" {
			sb.WriteString("\\N")
			sb.WriteString(escapeASSText(text))
		}
	}
	return sb.String()
}

func centiseconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return d.Milliseconds() / 10
}

func formatLRCTime(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	centis := (int(d.Milliseconds()) % 1000) / 10

	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func formatASSTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	centis := (int(d.Milliseconds()) % 1000) / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

func writeOutput(path, content string) error {
	if path == StdoutPath || path == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatLRC, FormatELRC:
		return ".lrc"
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	case FormatJSON:
		return ".json"
	default:
		return ".srt"
	}
}

// output format based on file extension
func GetFormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lrc":
		return FormatLRC, true
	case ".srt":
		return FormatSRT, true
	case ".vtt":
		return FormatVTT, true
	case ".ass", ".ssa":
		return FormatASS, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}
