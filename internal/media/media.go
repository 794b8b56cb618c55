// Package media reads playback information from audio files so exported
// lyrics can be clamped to the real track length.
package media

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"time"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ffmpeg-go runs the binary by name
const probeBinary = "ffprobe"

// Duration probes path with ffprobe and returns the container duration.
func Duration(path string, timeout time.Duration) (time.Duration, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("media file not found: %w", err)
	}

	if _, err := exec.LookPath(probeBinary); err != nil {
		return 0, fmt.Errorf("%s not found in PATH, install ffmpeg to use media files: %w", probeBinary, err)
	}

	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeDuration(out)
}

func parseProbeDuration(probe string) (time.Duration, error) {
	if !gjson.Valid(probe) {
		return 0, fmt.Errorf("failed to parse ffprobe output")
	}

	duration := gjson.Get(probe, "format.duration")
	if !duration.Exists() {
		return 0, fmt.Errorf("ffprobe output has no format.duration")
	}

	seconds := duration.Float()
	if seconds <= 0 {
		return 0, fmt.Errorf("invalid duration %q", duration.String())
	}
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond, nil
}
