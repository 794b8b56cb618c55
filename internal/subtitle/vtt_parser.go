package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2,}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

func parseVTT(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	var current *cue
	lineNum := 0
	headerParsed := false

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(line)

		if !headerParsed && strings.HasPrefix(trimmed, "WEBVTT") {
			headerParsed = true
			continue
		}

		// comment and style blocks run until the next blank line
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			entries = current.flush(entries)
			current = nil
			continue
		}

		groups := vttTimestampRegex.FindStringSubmatch(line)
		if len(groups) == 9 {
			groups = groups[1:]
		} else if short := vttShortTimestampRegex.FindStringSubmatch(line); len(short) == 7 {
			groups = []string{"00", short[1], short[2], short[3], "00", short[4], short[5], short[6]}
		} else {
			groups = nil
		}

		if groups != nil {
			entries = current.flush(entries)
			start, end, err := cueRange(groups)
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp at line %d: %w", lineNum, err)
			}
			current = &cue{
				entry: Entry{Index: len(entries) + 1, StartTime: start, EndTime: end},
				timed: true,
			}
			continue
		}

		if current != nil {
			current.lines = append(current.lines, line)
		}
	}

	entries = current.flush(entries)

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return entries, nil
}
