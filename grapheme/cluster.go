package grapheme

// GraphemeCluster is an ordered, mutable sequence of Graphemes — a literal
// text fragment. It is the payload of an ast.Expression Literal node.
//
// Grounded on literal.Seq's byte-sequence operations in the teacher
// (github.com/coregx/coregex/literal), generalized from bytes to
// Graphemes: Merge plays the role Seq concatenation would, and the
// prefix/suffix draining below mirrors the teacher's LongestCommonPrefix /
// LongestCommonSuffix trimming, one grapheme at a time instead of one byte.
type GraphemeCluster struct {
	graphemes []Grapheme
}

// FromString builds a GraphemeCluster from literal text, treating each rune
// as one grapheme. Real grapheme segmentation (handling combining marks,
// emoji sequences, etc.) is the upstream DFA builder's job; this
// constructor exists for tests and for building the epsilon literal.
func FromString(s string) GraphemeCluster {
	if s == "" {
		return GraphemeCluster{}
	}
	runes := []rune(s)
	gs := make([]Grapheme, len(runes))
	for i, r := range runes {
		gs[i] = New(string(r))
	}
	return GraphemeCluster{graphemes: gs}
}

// FromGraphemes builds a GraphemeCluster directly from a slice of
// Graphemes, as produced by an upstream Unicode segmenter. The slice is
// copied; the caller's backing array is never aliased.
func FromGraphemes(gs []Grapheme) GraphemeCluster {
	if len(gs) == 0 {
		return GraphemeCluster{}
	}
	out := make([]Grapheme, len(gs))
	copy(out, gs)
	return GraphemeCluster{graphemes: out}
}

// Merge concatenates two clusters into a new one, a and then b, without
// modifying either argument.
func Merge(a, b GraphemeCluster) GraphemeCluster {
	out := make([]Grapheme, 0, len(a.graphemes)+len(b.graphemes))
	out = append(out, a.graphemes...)
	out = append(out, b.graphemes...)
	return GraphemeCluster{graphemes: out}
}

// IsEmpty reports whether the cluster has no graphemes at all — the
// epsilon cluster.
func (c GraphemeCluster) IsEmpty() bool {
	return len(c.graphemes) == 0
}

// Size returns the number of graphemes in the cluster. This is the cost
// proxy ast.Expression.Len uses for a Literal node.
func (c GraphemeCluster) Size() int {
	return len(c.graphemes)
}

// Graphemes returns the underlying grapheme sequence. Callers must not
// retain the slice across a mutation made via DrainPrefix/DrainSuffix.
func (c GraphemeCluster) Graphemes() []Grapheme {
	return c.graphemes
}

// DrainPrefix removes the first n graphemes in place.
func (c *GraphemeCluster) DrainPrefix(n int) {
	c.graphemes = c.graphemes[n:]
}

// DrainSuffix removes the last n graphemes in place.
func (c *GraphemeCluster) DrainSuffix(n int) {
	c.graphemes = c.graphemes[:len(c.graphemes)-n]
}

// CharCount reports how many textual "characters" this cluster counts as
// under the given non-ASCII escaping mode. A single-rune ASCII grapheme
// always counts as one character. A multi-rune grapheme never counts as
// one, regardless of escaping mode — it cannot be the sole content of a
// single-codepoint literal. A single-rune non-ASCII grapheme counts as one
// character when escaping is off, and as more than one when escaping is
// on, since an escaped non-ASCII scalar (e.g. `\x{1F600}`) renders as
// several source characters.
func (c GraphemeCluster) CharCount(nonASCIICharEscaped bool) int {
	total := 0
	for _, g := range c.graphemes {
		total += charCountOf(g, nonASCIICharEscaped)
	}
	return total
}

func charCountOf(g Grapheme, nonASCIICharEscaped bool) int {
	if g.runeCount() != 1 {
		return g.runeCount()
	}
	r, _ := g.FirstScalar()
	if nonASCIICharEscaped && r > 127 {
		return 2
	}
	return 1
}

// Equal reports whether two clusters hold the same grapheme sequence.
func (c GraphemeCluster) Equal(other GraphemeCluster) bool {
	if len(c.graphemes) != len(other.graphemes) {
		return false
	}
	for i := range c.graphemes {
		if !c.graphemes[i].Equal(other.graphemes[i]) {
			return false
		}
	}
	return true
}
