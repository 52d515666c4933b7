package diff

import (
	"strings"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Segment is a run of consecutive tokens sharing one diff state.
// Text keeps the original whitespace so segments concatenate back to the input.
type Segment struct {
	Text    string `json:"text"`
	Added   bool   `json:"added,omitempty"`
	Removed bool   `json:"removed,omitempty"`
}

// Stats counts word tokens per diff category. Whitespace tokens are not counted.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"`
}

// Engine computes word-level diffs between two text extractions.
// Tokenization keeps whitespace runs as separate tokens, so a reflowed
// paragraph with identical words registers as a whitespace-only change,
// not a content change. Line-level diffing would over-report reflow;
// character-level is too noisy for documents of tens of thousands of words.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func NewEngine() *Engine {
	d := diffmatchpatch.New()
	// A timeout makes output depend on wall-clock; diffs must be deterministic.
	d.DiffTimeout = 0

	return &Engine{dmp: d}
}

// maxTokens is the number of distinct tokens addressable by one valid rune
// each: code points 1..0x10FFFF minus the 0x800 surrogates.
const maxTokens = 0x10FFFF - 0x800

// Compare diffs two texts at word granularity. Calling it twice with
// identical inputs yields identical output; it is safe for concurrent use.
func (e *Engine) Compare(oldText, newText string) []Segment {
	index := make(map[string]rune)
	inverse := make(map[rune]string)
	chars1, ok1 := encodeTokens(tokenize(oldText), index, inverse, maxTokens)
	chars2, ok2 := encodeTokens(tokenize(newText), index, inverse, maxTokens)
	if !ok1 || !ok2 {
		// More distinct tokens than valid runes to encode them with; any
		// further token would collapse to utf8.RuneError and spuriously
		// match. Diff the raw text instead.
		return segments(e.dmp.DiffMain(oldText, newText, true), nil)
	}

	return segments(e.dmp.DiffMain(chars1, chars2, false), inverse)
}

// segments converts diffmatchpatch output. A non-nil inverse decodes the
// rune-per-token encoding back to text; nil means the diff ran on raw text.
func segments(diffs []diffmatchpatch.Diff, inverse map[rune]string) []Segment {
	out := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		text := d.Text
		if inverse != nil {
			var b strings.Builder
			for _, r := range d.Text {
				b.WriteString(inverse[r])
			}
			text = b.String()
		}
		seg := Segment{Text: text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			seg.Added = true
		case diffmatchpatch.DiffDelete:
			seg.Removed = true
		}
		out = append(out, seg)
	}

	return out
}

// Stats aggregates a diff into per-category word counts.
func (e *Engine) Stats(segments []Segment) Stats {
	var s Stats
	for _, seg := range segments {
		n := len(strings.Fields(seg.Text))
		switch {
		case seg.Added:
			s.Added += n
		case seg.Removed:
			s.Removed += n
		default:
			s.Unchanged += n
		}
	}
	s.Total = s.Added + s.Removed + s.Unchanged

	return s
}

// tokenize splits text into alternating runs of whitespace and non-whitespace.
// Both kinds are kept, so the token stream concatenates back to the input.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	tokens := make([]string, 0, len(text)/4)
	start := 0
	inSpace := isSpace(rune(text[0]))
	for i, r := range text {
		if isSpace(r) != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = !inSpace
		}
	}
	tokens = append(tokens, text[start:])

	return tokens
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// encodeTokens maps each distinct token to a rune so the diff runs over
// one rune per word. The surrogate range is skipped to keep runes valid.
// Reports false once the distinct-token count would exceed limit.
func encodeTokens(tokens []string, index map[string]rune, inverse map[rune]string, limit int) (string, bool) {
	var b strings.Builder
	for _, token := range tokens {
		r, ok := index[token]
		if !ok {
			if len(index) >= limit {
				return "", false
			}
			r = nextRune(len(index))
			index[token] = r
			inverse[r] = token
		}
		b.WriteRune(r)
	}

	return b.String(), true
}

func nextRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}

	return r
}
