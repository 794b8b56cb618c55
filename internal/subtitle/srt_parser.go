package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var srtTimestampRegex = regexp.MustCompile(
	`(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})`,
)

// cue collects the text lines of one entry while scanning
type cue struct {
	entry Entry
	timed bool
	lines []string
}

func (c *cue) flush(entries []Entry) []Entry {
	if c == nil || !c.timed || len(c.lines) == 0 {
		return entries
	}
	c.entry.Text = strings.Join(c.lines, "\n")
	return append(entries, c.entry)
}

func parseSRT(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	var current *cue
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			entries = current.flush(entries)
			current = nil
			continue
		}

		if current == nil {
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err == nil {
				current = &cue{entry: Entry{Index: index}}
				continue
			}
		}

		if current != nil && !current.timed {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 9 {
				start, end, err := cueRange(matches[1:])
				if err != nil {
					return nil, fmt.Errorf("invalid timestamp at line %d: %w", lineNum, err)
				}
				current.entry.StartTime = start
				current.entry.EndTime = end
				current.timed = true
				continue
			}
		}

		if current != nil && current.timed {
			current.lines = append(current.lines, line)
		}
	}

	entries = current.flush(entries)

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	return entries, nil
}

// cueRange converts eight captured h, m, s, ms groups into a start and end
func cueRange(groups []string) (time.Duration, time.Duration, error) {
	start, err := parseClock(groups[0], groups[1], groups[2], groups[3])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseClock(groups[4], groups[5], groups[6], groups[7])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseClock(hours, minutes, seconds, millis string) (time.Duration, error) {
	units := []time.Duration{time.Hour, time.Minute, time.Second, time.Millisecond}

	var total time.Duration
	for i, part := range []string{hours, minutes, seconds, millis} {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, err
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}
