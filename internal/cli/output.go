package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/kashi/internal/lyrics"
	"github.com/mgpai22/kashi/internal/media"
	"github.com/mgpai22/kashi/internal/subtitle"
	"github.com/spf13/cobra"
)

// resolveOutputFormat picks the flag value, then the output extension,
// then the configured default
func resolveOutputFormat(flag, outputPath, fallback string) (subtitle.Format, error) {
	if flag != "" {
		format, ok := subtitle.ParseFormat(flag)
		if !ok {
			return "", fmt.Errorf("unsupported output format: %s", flag)
		}
		return format, nil
	}

	if outputPath != "" && outputPath != subtitle.StdoutPath {
		if format, ok := subtitle.GetFormatFromExtension(outputPath); ok {
			return format, nil
		}
	}

	format, ok := subtitle.ParseFormat(fallback)
	if !ok {
		return "", fmt.Errorf("unsupported output format: %s", fallback)
	}
	return format, nil
}

// exportResult writes res using the shared output flags
func exportResult(cmd *cobra.Command, res *lyrics.Result) error {
	formatStr, _ := cmd.Flags().GetString("output-format")
	outputPath, _ := cmd.Flags().GetString("output")
	mediaPath, _ := cmd.Flags().GetString("media")

	format, err := resolveOutputFormat(formatStr, outputPath, cfg.Export.Format)
	if err != nil {
		return err
	}

	generator := subtitle.NewDefaultGenerator()
	generator.MaxCharsPerLine = cfg.Export.MaxCharsPerLine

	if mediaPath != "" {
		duration, err := media.Duration(mediaPath, cfg.Media.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("failed to get media duration: %w", err)
		}
		generator.MediaDuration = duration
		logger.Infow("Clamping lyrics to media", "media", mediaPath, "duration", duration)
	}

	sub, err := generator.Generate(res)
	if err != nil {
		return fmt.Errorf("failed to generate entries: %w", err)
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	logger.Debugw("Writing output", "format", format, "entries", len(sub.Entries))
	if err := writer.Write(sub, outputPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if outputPath != "" && outputPath != subtitle.StdoutPath {
		absOutput, _ := filepath.Abs(outputPath)
		fmt.Printf("Lyrics written: %s\n", absOutput)
		fmt.Printf("  Format: %s\n", format)
		fmt.Printf("  Lines: %d\n", len(sub.Entries))
	}

	return nil
}
