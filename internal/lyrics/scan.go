package lyrics

import "strings"

// timing token found inside a line body; start/end are byte offsets of
// the token itself, nums holds its decoded fields
type token struct {
	nums  [3]int64
	start int
	end   int
}

// splitLines splits a blob into lines, dropping a leading BOM and CR
// line terminators.
func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readNumber reads an unsigned decimal integer starting at s[i].
func readNumber(s string, i int) (int64, int, bool) {
	j := i
	var n int64
	for j < len(s) && isDigit(s[j]) {
		if j-i >= 18 {
			return 0, i, false
		}
		n = n*10 + int64(s[j]-'0')
		j++
	}
	if j == i {
		return 0, i, false
	}
	return n, j, true
}

// readTuple reads opening n1,n2[,n3] closing starting at s[i] and returns the
// decoded numbers with the offset just past the closing byte.
func readTuple(
	s string,
	i int,
	opening, closing byte,
	count int,
) ([3]int64, int, bool) {
	var nums [3]int64
	if i >= len(s) || s[i] != opening {
		return nums, i, false
	}

	j := i + 1
	for k := 0; k < count; k++ {
		if k > 0 {
			if j >= len(s) || s[j] != ',' {
				return nums, i, false
			}
			j++
		}
		n, next, ok := readNumber(s, j)
		if !ok {
			return nums, i, false
		}
		nums[k] = n
		j = next
	}

	if j >= len(s) || s[j] != closing {
		return nums, i, false
	}
	return nums, j + 1, true
}

// findTokens scans s left to right for well-formed timing tuples. A
// delimiter that does not open a valid tuple is treated as text.
func findTokens(s string, opening, closing byte, count int) []token {
	var tokens []token
	i := 0
	for i < len(s) {
		k := strings.IndexByte(s[i:], opening)
		if k < 0 {
			break
		}
		pos := i + k
		if nums, next, ok := readTuple(s, pos, opening, closing, count); ok {
			tokens = append(tokens, token{nums: nums, start: pos, end: next})
			i = next
			continue
		}
		i = pos + 1
	}
	return tokens
}

// parseTimedLine matches "[start,duration]rest".
func parseTimedLine(line string) (start, duration int64, rest string, ok bool) {
	line = strings.TrimLeft(line, " \t")
	nums, next, ok := readTuple(line, 0, '[', ']', 2)
	if !ok {
		return 0, 0, "", false
	}
	return nums[0], nums[1], line[next:], true
}

func isTagKey(key string) bool {
	if key == "" {
		return false
	}
	c := key[0]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	for i := 1; i < len(key); i++ {
		c = key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// parseTag matches a "[key:value]" metadata line.
func parseTag(line string) (key, value string, ok bool) {
	s := strings.TrimSpace(line)
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", "", false
	}

	body := s[1 : len(s)-1]
	colon := strings.IndexByte(body, ':')
	if colon <= 0 || !isTagKey(body[:colon]) {
		return "", "", false
	}
	return body[:colon], strings.TrimSpace(body[colon+1:]), true
}

// collapseSpaces replaces every whitespace run with a single space and
// trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
