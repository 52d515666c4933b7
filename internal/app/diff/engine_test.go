package diff_test

import (
	"strings"
	"testing"

	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/stretchr/testify/require"
)

func TestEngine_Compare_Identical(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()
	text := "the court finds the motion well taken"

	segments := e.Compare(text, text)

	require.Len(t, segments, 1)
	require.Equal(t, text, segments[0].Text)
	require.False(t, segments[0].Added)
	require.False(t, segments[0].Removed)
}

func TestEngine_Compare_WordSubstitution(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()

	segments := e.Compare("the motion is denied", "the motion is granted")

	var added, removed []string
	for _, seg := range segments {
		switch {
		case seg.Added:
			added = append(added, strings.TrimSpace(seg.Text))
		case seg.Removed:
			removed = append(removed, strings.TrimSpace(seg.Text))
		}
	}
	require.Equal(t, []string{"granted"}, added)
	require.Equal(t, []string{"denied"}, removed)
}

func TestEngine_Compare_ReflowIsNotContentChange(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()
	old := "first sentence. second sentence."
	reflowed := "first sentence.\nsecond sentence."

	stats := e.Stats(e.Compare(old, reflowed))

	// Only whitespace tokens differ; word counts must not move.
	require.Zero(t, stats.Added)
	require.Zero(t, stats.Removed)
	require.Equal(t, 4, stats.Unchanged)
}

func TestEngine_Compare_RoundTripsText(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()
	old := "alpha beta gamma delta"
	new := "alpha gamma delta epsilon"

	segments := e.Compare(old, new)

	var oldSide, newSide strings.Builder
	for _, seg := range segments {
		if !seg.Added {
			oldSide.WriteString(seg.Text)
		}
		if !seg.Removed {
			newSide.WriteString(seg.Text)
		}
	}
	require.Equal(t, old, oldSide.String())
	require.Equal(t, new, newSide.String())
}

func TestEngine_Compare_Deterministic(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()
	old := strings.Repeat("whereas the party of the first part ", 200) + "concludes"
	new := strings.Repeat("whereas the party of the second part ", 200) + "concludes"

	first := e.Compare(old, new)
	second := e.Compare(old, new)

	require.Equal(t, first, second)
}

func TestEngine_Compare_EmptyInputs(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()

	require.Empty(t, e.Compare("", ""))

	segments := e.Compare("", "brand new text")
	require.Len(t, segments, 1)
	require.True(t, segments[0].Added)

	segments = e.Compare("old text gone", "")
	require.Len(t, segments, 1)
	require.True(t, segments[0].Removed)
}

func TestEngine_Stats(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()

	stats := e.Stats([]diff.Segment{
		{Text: "the court "},
		{Text: "finds ", Removed: true},
		{Text: "holds ", Added: true},
		{Text: "accordingly"},
	})

	require.Equal(t, diff.Stats{Added: 1, Removed: 1, Unchanged: 3, Total: 5}, stats)
}

func TestEngine_Stats_IgnoresWhitespaceSegments(t *testing.T) {
	t.Parallel()

	e := diff.NewEngine()

	stats := e.Stats([]diff.Segment{
		{Text: "  \n ", Added: true},
		{Text: "word"},
	})

	require.Equal(t, diff.Stats{Unchanged: 1, Total: 1}, stats)
}
