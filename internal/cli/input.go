package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgpai22/kashi/internal/lyrics"
	"github.com/spf13/cobra"
)

// reads a lyrics file, "-" is stdin
func readSource(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// loadLyrics parses the primary file plus the optional companion files
// named by the shared flags
func loadLyrics(cmd *cobra.Command, primaryPath string) (*lyrics.Result, error) {
	formatStr, _ := cmd.Flags().GetString("format")
	legacyPath, _ := cmd.Flags().GetString("legacy")
	translatedPath, _ := cmd.Flags().GetString("translated")
	romanizationPath, _ := cmd.Flags().GetString("romanization")

	if formatStr == "" {
		return nil, fmt.Errorf("--format is required (krc, qrc, yrc)")
	}
	format, err := lyrics.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	if format != lyrics.FormatYRC && legacyPath != "" {
		logger.Warnw("Ignoring legacy file for non-yrc lyrics", "format", format)
		legacyPath = ""
	}
	if format == lyrics.FormatKRC && (translatedPath != "" || romanizationPath != "") {
		logger.Warnw("krc lyrics carry their own tracks, ignoring companion files")
		translatedPath, romanizationPath = "", ""
	}

	var in lyrics.Input
	sources := []struct {
		path string
		dst  *string
	}{
		{primaryPath, &in.Primary},
		{legacyPath, &in.Legacy},
		{translatedPath, &in.Translated},
		{romanizationPath, &in.Romanization},
	}
	for _, src := range sources {
		if *src.dst, err = readSource(src.path); err != nil {
			return nil, err
		}
	}

	logger.Debugw("Parsing lyrics",
		"primary", primaryPath,
		"format", format,
		"legacy", legacyPath != "",
		"translated", translatedPath != "",
		"romanization", romanizationPath != "",
	)

	res, err := lyrics.Parse(format, in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lyrics: %w", err)
	}

	logParsed(format, in, res)
	return res, nil
}

func logParsed(format lyrics.Format, in lyrics.Input, res *lyrics.Result) {
	logger.Infow("Parsed lyrics",
		"format", format,
		"lines", len(res.Original),
		"tags", len(res.Tags),
		"translated", filledLines(res.Translated),
		"romanization", filledLines(res.Romanization),
	)

	if len(res.Original) == 0 && strings.TrimSpace(in.Primary) != "" {
		logger.Warnw("Primary lyrics contained no timed lines")
	}
	if format == lyrics.FormatKRC && res.Tags[lyrics.LanguageTag] != "" &&
		res.Translated == nil && res.Romanization == nil {
		logger.Warnw("Embedded language payload could not be decoded, keeping original lyrics only")
	}
	if in.Translated != "" && filledLines(res.Translated) == 0 {
		logger.Warnw("No translation lines matched the original timings")
	}
}

// filledLines counts lines that are not placeholders
func filledLines(lines []lyrics.Line) int {
	n := 0
	for _, l := range lines {
		if !l.IsBlank() {
			n++
		}
	}
	return n
}
