// Package grapheme provides the atomic text unit the regex synthesis core
// builds literals from, and the literal-bearing sequence ("cluster") that
// composes them.
//
// A Grapheme stands in for whatever the upstream DFA builder's Unicode
// segmentation decided was one user-perceived character — it may hold more
// than one Unicode scalar value (e.g. a flag emoji or a combining-mark
// sequence). This package never splits a Grapheme further. It compares
// Graphemes for equality, copies them, reads the (min, max) repetition
// bound the DFA builder attached to them, and reads the scalar values of
// their text only to report the first one and how many there are.
package grapheme

// Grapheme is one user-perceived character plus the repetition bound the
// upstream DFA construction associated with the edge it came from. Values
// are immutable and safe to copy.
type Grapheme struct {
	value string
	min   uint32
	max   uint32
}

// New returns a Grapheme for value with no repetition bound widening:
// minimum and maximum are both 1, as for a literal edge label straight off
// a DFA transition.
func New(value string) Grapheme {
	return Grapheme{value: value, min: 1, max: 1}
}

// NewWithBounds returns a Grapheme for value carrying an explicit (min, max)
// repetition bound.
func NewWithBounds(value string, min, max uint32) Grapheme {
	return Grapheme{value: value, min: min, max: max}
}

// Value returns the underlying text of the grapheme.
func (g Grapheme) Value() string { return g.value }

// Minimum returns the lower repetition bound carried over from DFA
// construction.
func (g Grapheme) Minimum() uint32 { return g.min }

// Maximum returns the upper repetition bound carried over from DFA
// construction. The synthesis core only ever inspects this value when
// deciding single-codepoint eligibility (see Expression.IsSingleCodepoint).
func (g Grapheme) Maximum() uint32 { return g.max }

// Equal reports whether g and other are the same grapheme: same text and
// same repetition bound.
func (g Grapheme) Equal(other Grapheme) bool {
	return g.value == other.value && g.min == other.min && g.max == other.max
}

// FirstScalar returns the first Unicode scalar value of the grapheme's
// text, and whether one was present (false only for an empty value). The
// character-class merge path (union rule 4) uses this to pull a single
// rune out of an otherwise single-codepoint grapheme.
func (g Grapheme) FirstScalar() (rune, bool) {
	for _, r := range g.value {
		return r, true
	}
	return 0, false
}

// runeCount returns the number of Unicode scalar values in the grapheme's
// text. Used by GraphemeCluster.CharCount to decide how many "characters"
// a grapheme counts for under escaping.
func (g Grapheme) runeCount() int {
	n := 0
	for range g.value {
		n++
	}
	return n
}
