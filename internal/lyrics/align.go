package lyrics

import (
	"math"
	"sort"
)

// AlignTolerance is how early, in milliseconds, a secondary line may start
// before a primary line's window and still belong to it.
const AlignTolerance int64 = 500

// Align maps a line-level secondary track onto the primary track's
// timeline. The result has exactly len(primary) lines, each sharing the
// timing of its primary line. It returns nil when secondary is empty.
//
// Every primary line i owns the window [start_i, start_i+1), the last one
// being unbounded. Secondary lines are consumed in start order, at most one
// per window; lines arriving more than AlignTolerance before the current
// window are dropped for good, and lines past the window wait for the next
// one.
func Align(primary, secondary []Line) []Line {
	if len(secondary) == 0 {
		return nil
	}

	sorted := make([]Line, len(secondary))
	copy(sorted, secondary)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]Line, len(primary))
	cursor := 0
	for i, line := range primary {
		windowStart := line.Start
		windowEnd := int64(math.MaxInt64)
		if i+1 < len(primary) {
			windowEnd = primary[i+1].Start
		}

		for cursor < len(sorted) &&
			sorted[cursor].Start < windowStart-AlignTolerance {
			cursor++
		}

		if cursor >= len(sorted) || sorted[cursor].Start >= windowEnd {
			out[i] = placeholder(line.Start, line.End)
			continue
		}

		out[i] = spanning(line.Start, line.End, sorted[cursor].Text())
		cursor++
	}

	return out
}
