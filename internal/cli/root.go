package cli

import (
	"fmt"

	"github.com/mgpai22/kashi/internal/config"
	"github.com/mgpai22/kashi/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kashi",
	Short: "Word-timed lyrics parser and converter",
	Long: `Kashi parses word-timed karaoke lyrics (krc, qrc, yrc) into one
model with optional translation and romanization tracks aligned line by
line onto the original lyrics.

Parsed lyrics can be exported as LRC, enhanced LRC, SRT, VTT, ASS karaoke
or JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger = logging.New(cfg.Log.Level, cfg.Log.Encoding, verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().
		StringP("format", "f", "", "Lyrics format of the primary file (krc, qrc, yrc)")
	rootCmd.PersistentFlags().
		String("output-format", "", "Export format (json, lrc, elrc, srt, vtt, ass)")
	rootCmd.PersistentFlags().
		String("legacy", "", "Line-timed LRC fallback for yrc lyrics")
	rootCmd.PersistentFlags().
		String("translated", "", "Translation lyrics file")
	rootCmd.PersistentFlags().
		String("romanization", "", "Romanization lyrics file")
	rootCmd.PersistentFlags().
		String("media", "", "Audio or video file used to clamp exported timings")
}
