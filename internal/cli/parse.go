package cli

import (
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [lyrics_file]",
	Short: "Parse word-timed lyrics and export them",
	Long: `Parse a krc, qrc or yrc lyrics file into lines and words, align the
optional translation and romanization files onto it, and export the result.

krc files carry their own translation and romanization. qrc and yrc take
them from --translated and --romanization. yrc may fall back to a
line-timed LRC file given with --legacy.

Examples:
  kashi parse song.krc -f krc
  kashi parse song.qrc -f qrc --translated song.trans.lrc -o song.srt
  kashi parse song.yrc -f yrc --legacy song.lrc --output-format ass -o song.ass
  kashi parse song.krc -f krc --media song.mp3 -o song.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	res, err := loadLyrics(cmd, args[0])
	if err != nil {
		return err
	}

	return exportResult(cmd, res)
}
