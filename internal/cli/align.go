package cli

import (
	"fmt"

	"github.com/mgpai22/kashi/internal/lyrics"
	"github.com/mgpai22/kashi/internal/subtitle"
	"github.com/spf13/cobra"
)

const (
	trackTranslated   = "translated"
	trackRomanization = "romanization"
)

var alignCmd = &cobra.Command{
	Use:   "align [lyrics_file]",
	Short: "Align an external subtitle file onto parsed lyrics",
	Long: `Align the cues of an SRT, VTT or LRC file onto the lines of a parsed
lyrics file, filling its translation or romanization track.

Each cue is matched to at most one lyric line; cues that start more than
half a second before a line are dropped.

Examples:
  kashi align song.qrc -f qrc --track song.en.srt
  kashi align song.yrc -f yrc --track romaji.lrc --as romanization -o song.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().
		String("track", "", "Subtitle file to align (.srt, .vtt, .lrc) (required)")
	alignCmd.Flags().
		String("as", trackTranslated, "Track to fill (translated, romanization)")

	_ = alignCmd.MarkFlagRequired("track")
}

func runAlign(cmd *cobra.Command, args []string) error {
	trackPath, _ := cmd.Flags().GetString("track")
	target, _ := cmd.Flags().GetString("as")

	if target != trackTranslated && target != trackRomanization {
		return fmt.Errorf("--as must be %q or %q, got %q", trackTranslated, trackRomanization, target)
	}

	res, err := loadLyrics(cmd, args[0])
	if err != nil {
		return err
	}

	secondary, err := subtitle.ReadTrack(trackPath)
	if err != nil {
		return fmt.Errorf("failed to read track: %w", err)
	}

	aligned := lyrics.Align(res.Original, secondary)
	if target == trackTranslated {
		res.Translated = aligned
	} else {
		res.Romanization = aligned
	}

	logger.Infow("Aligned track",
		"track", trackPath,
		"as", target,
		"cues", len(secondary),
		"matched", filledLines(aligned),
		"lines", len(res.Original),
	)

	return exportResult(cmd, res)
}
