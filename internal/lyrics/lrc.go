package lyrics

import (
	"sort"
	"strings"
)

// lrcTailMs is the duration given to the last line of a line-timed track.
const lrcTailMs int64 = 2000

// readLRCStamp matches "[mm:ss]", "[mm:ss.f]" ... "[mm:ss.fff]" at s[i].
// The fraction separator may also be ':'; fractions longer than three
// digits are truncated to milliseconds.
func readLRCStamp(s string, i int) (int64, int, bool) {
	if i >= len(s) || s[i] != '[' {
		return 0, i, false
	}

	minutes, j, ok := readNumber(s, i+1)
	if !ok || j >= len(s) || s[j] != ':' {
		return 0, i, false
	}
	seconds, j, ok := readNumber(s, j+1)
	if !ok || j >= len(s) {
		return 0, i, false
	}

	var millis int64
	if s[j] == '.' || s[j] == ':' {
		fracStart := j + 1
		k := fracStart
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k == fracStart {
			return 0, i, false
		}
		millis = fractionMillis(s[fracStart:k])
		j = k
	}

	if j >= len(s) || s[j] != ']' {
		return 0, i, false
	}
	return minutes*60_000 + seconds*1000 + millis, j + 1, true
}

func fractionMillis(frac string) int64 {
	if len(frac) > 3 {
		frac = frac[:3]
	}
	var n int64
	for i := 0; i < len(frac); i++ {
		n = n*10 + int64(frac[i]-'0')
	}
	switch len(frac) {
	case 1:
		return n * 100
	case 2:
		return n * 10
	default:
		return n
	}
}

// ParseLRC reads a "[mm:ss.xx]text" blob into line-level lines, one word
// per line. A line may carry several leading stamps; each yields its own
// entry. End times are synthesized from the following entry.
func ParseLRC(text string) ([]Line, map[string]string) {
	type stamped struct {
		start int64
		text  string
	}

	tags := make(map[string]string)
	var entries []stamped

	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		var starts []int64
		pos := 0
		for {
			ms, next, ok := readLRCStamp(line, pos)
			if !ok {
				break
			}
			starts = append(starts, ms)
			pos = next
		}

		if len(starts) == 0 {
			if key, value, ok := parseTag(line); ok {
				tags[key] = value
			}
			continue
		}

		body := strings.TrimSpace(line[pos:])
		for _, start := range starts {
			entries = append(entries, stamped{start: start, text: body})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start < entries[j].start
	})

	lines := make([]Line, len(entries))
	for i, e := range entries {
		end := e.start + lrcTailMs
		if i+1 < len(entries) {
			end = max(entries[i+1].start, e.start)
		}
		lines[i] = spanning(e.start, end, e.text)
	}

	return lines, tags
}

// parseLRCTrack parses a secondary LRC blob, or returns nil when the blob
// is blank.
func parseLRCTrack(text string) []Line {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines, _ := ParseLRC(text)
	return lines
}
