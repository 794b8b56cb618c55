package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primaryAt(starts ...int64) []Line {
	lines := make([]Line, len(starts))
	for i, s := range starts {
		end := s + 1000
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		lines[i] = spanning(s, end, "p")
	}
	return lines
}

func secondary(start int64, texts ...string) Line {
	l := Line{Start: start, End: start + 100}
	for _, t := range texts {
		l.Words = append(l.Words, Word{Start: start, End: start + 100, Text: t})
	}
	return l
}

func TestAlign_WindowedMatch(t *testing.T) {
	primary := primaryAt(0, 2000, 5000)
	out := Align(primary, []Line{secondary(100, "A"), secondary(2050, "B")})

	require.Len(t, out, 3)
	assert.Equal(t, spanning(0, 2000, "A"), out[0])
	assert.Equal(t, spanning(2000, 5000, "B"), out[1])
	assert.Empty(t, out[2].Words)
	assert.Equal(t, int64(5000), out[2].Start)
	assert.Equal(t, int64(6000), out[2].End)
}

func TestAlign_DropsLinesBeyondTolerance(t *testing.T) {
	primary := primaryAt(0)

	out := Align(primary, []Line{secondary(-600, "early")})
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Words)

	out = Align(primary, []Line{secondary(-500, "edge")})
	require.Len(t, out, 1)
	assert.Equal(t, "edge", out[0].Text())
}

func TestAlign_KeepsCursorForLaterWindow(t *testing.T) {
	out := Align(primaryAt(0, 1000, 2000), []Line{secondary(1500, "A")})

	require.Len(t, out, 3)
	assert.Empty(t, out[0].Words)
	assert.Equal(t, "A", out[1].Text())
	assert.Empty(t, out[2].Words)
}

func TestAlign_ConsumesOnePerWindow(t *testing.T) {
	out := Align(primaryAt(0, 5000), []Line{
		secondary(100, "A"),
		secondary(200, "B"),
		secondary(5100, "C"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Text())
	assert.Equal(t, "C", out[1].Text())
}

func TestAlign_LeftoverWithinToleranceFillsNextWindow(t *testing.T) {
	out := Align(primaryAt(0, 1000), []Line{
		secondary(100, "A"),
		secondary(800, "B"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Text())
	assert.Equal(t, "B", out[1].Text())
}

func TestAlign_ConcatenatesWords(t *testing.T) {
	out := Align(primaryAt(0), []Line{secondary(0, "Hel", "lo")})

	require.Len(t, out, 1)
	require.Len(t, out[0].Words, 1)
	assert.Equal(t, "Hello", out[0].Words[0].Text)
	assert.Equal(t, int64(0), out[0].Words[0].Start)
	assert.Equal(t, int64(1000), out[0].Words[0].End)
}

func TestAlign_EmptySecondary(t *testing.T) {
	assert.Nil(t, Align(primaryAt(0, 1000), nil))
	assert.Nil(t, Align(primaryAt(0, 1000), []Line{}))
}

func TestAlign_LengthMatchesPrimary(t *testing.T) {
	sec := []Line{secondary(0, "a"), secondary(10, "b"), secondary(20, "c")}
	for _, n := range []int{0, 1, 2, 7} {
		starts := make([]int64, n)
		for i := range starts {
			starts[i] = int64(i) * 3000
		}
		assert.Len(t, Align(primaryAt(starts...), sec), n)
	}
}

func TestAlign_DeterministicAndDoesNotMutateInput(t *testing.T) {
	primary := primaryAt(0, 2000, 4000)
	sec := []Line{secondary(4100, "C"), secondary(100, "A"), secondary(2100, "B")}
	before := append([]Line(nil), sec...)

	first := Align(primary, sec)
	second := Align(primary, sec)

	assert.Equal(t, first, second)
	assert.Equal(t, before, sec)
	assert.Equal(t, "A", first[0].Text())
	assert.Equal(t, "B", first[1].Text())
	assert.Equal(t, "C", first[2].Text())
}
