package diff

import (
	"testing"
	"unicode/utf8"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

func TestNextRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		i    int
		want rune
	}{
		{name: "first", i: 0, want: 1},
		{name: "below_surrogates", i: 0xD7FE, want: 0xD7FF},
		{name: "skips_surrogates", i: 0xD7FF, want: 0xE000},
		{name: "last", i: maxTokens - 1, want: 0x10FFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := nextRune(tt.i)
			require.Equal(t, tt.want, got)
			require.True(t, utf8.ValidRune(got))
		})
	}
}

func TestEncodeTokens_Limit(t *testing.T) {
	t.Parallel()

	tokens := []string{"a", " ", "b"}

	t.Run("within_limit", func(t *testing.T) {
		t.Parallel()

		index := make(map[string]rune)
		inverse := make(map[rune]string)
		encoded, ok := encodeTokens(tokens, index, inverse, 3)
		require.True(t, ok)
		require.Len(t, index, 3)

		var decoded string
		for _, r := range encoded {
			decoded += inverse[r]
		}
		require.Equal(t, "a b", decoded)
	})

	t.Run("over_limit", func(t *testing.T) {
		t.Parallel()

		index := make(map[string]rune)
		inverse := make(map[rune]string)
		_, ok := encodeTokens(tokens, index, inverse, 2)
		require.False(t, ok)
	})
}

func TestSegments_RawText(t *testing.T) {
	t.Parallel()

	got := segments([]diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "the motion is "},
		{Type: diffmatchpatch.DiffDelete, Text: "denied"},
		{Type: diffmatchpatch.DiffInsert, Text: "granted"},
	}, nil)

	require.Equal(t, []Segment{
		{Text: "the motion is "},
		{Text: "denied", Removed: true},
		{Text: "granted", Added: true},
	}, got)
}
