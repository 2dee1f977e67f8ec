// Package ast implements the regex synthesis core's expression tree: the
// immutable (except for local affix trimming) algebraic data type that
// represents regex fragments, plus the normalising combinators that build
// it up from DFA edges.
//
// The sum type is modeled the way the teacher models NFA states
// (github.com/coregx/coregex/nfa.State / nfa.StateKind): one Kind-tagged
// struct rather than an interface per variant, with only the fields that
// apply to a given Kind populated.
package ast

import (
	"sort"

	"github.com/coregx/regexsynth/grapheme"
)

// Kind identifies which of the five Expression variants a node is.
type Kind uint8

const (
	// Literal holds a GraphemeCluster matched verbatim.
	Literal Kind = iota
	// CharacterClass holds an ordered set of single scalar values, any one
	// of which may match.
	CharacterClass
	// Concatenation holds two sub-expressions matched in sequence.
	Concatenation
	// Alternation holds an ordered list of sub-expressions, any one of
	// which may match.
	Alternation
	// Repetition holds one sub-expression and a quantifier.
	Repetition
)

// String returns a human-readable name for k, mirroring nfa.StateKind.String.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case CharacterClass:
		return "CharacterClass"
	case Concatenation:
		return "Concatenation"
	case Alternation:
		return "Alternation"
	case Repetition:
		return "Repetition"
	default:
		return "Unknown"
	}
}

// Quantifier identifies a Repetition node's quantifier. The core never
// produces bounded quantifiers (spec Non-goal); only these two exist.
type Quantifier uint8

const (
	// KleeneStar is the `*` quantifier: zero or more.
	KleeneStar Quantifier = iota
	// QuestionMark is the `?` quantifier: zero or one.
	QuestionMark
)

func (q Quantifier) String() string {
	if q == KleeneStar {
		return "*"
	}
	return "?"
}

// Substring directs an affix operation at the leading (Prefix) or trailing
// (Suffix) end of a literal-bearing node.
type Substring uint8

const (
	Prefix Substring = iota
	Suffix
)

// Expression is one node of the regex synthesis tree. Exactly one subset
// of fields is meaningful for any given Kind:
//
//	Literal         -> Cluster
//	CharacterClass  -> Chars
//	Concatenation   -> Left, Right
//	Alternation     -> Options
//	Repetition      -> Inner, Quantifier
//
// Expression is a value type; the tree is shared-nothing (no aliasing, no
// cycles), matching spec.md's ownership model. No configuration is stored
// on a node: the non-ASCII escaping flag the single-codepoint gate depends
// on is passed to IsSingleCodepoint and Union as an argument.
type Expression struct {
	Kind Kind

	Cluster grapheme.GraphemeCluster // Literal
	Chars   []rune                   // CharacterClass, sorted ascending, deduplicated

	Left, Right *Expression // Concatenation
	Options     []Expression // Alternation, flattened and sorted (invariant spec.md §3.1-2)

	Inner      *Expression // Repetition
	Quantifier Quantifier  // Repetition
}

// NewLiteral builds a Literal node.
func NewLiteral(cluster grapheme.GraphemeCluster) Expression {
	return Expression{Kind: Literal, Cluster: cluster}
}

// NewCharacterClass builds a CharacterClass node from a rune set. chars is
// copied and sorted; duplicates are removed.
func NewCharacterClass(chars []rune) Expression {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Expression{Kind: CharacterClass, Chars: out}
}

// NewConcatenation builds a Concatenation node of expr1 then expr2.
func NewConcatenation(expr1, expr2 Expression) Expression {
	return Expression{Kind: Concatenation, Left: &expr1, Right: &expr2}
}

// NewRepetition builds a Repetition node wrapping expr with quantifier.
func NewRepetition(expr Expression, quantifier Quantifier) Expression {
	return Expression{Kind: Repetition, Inner: &expr, Quantifier: quantifier}
}

// Epsilon returns the empty literal: the regex matching exactly the empty
// string. It is the sole representation of epsilon in this tree (spec.md
// §3 invariant 4, following the original grex ast.rs's
// Literal(GraphemeCluster::from("", config)) rather than a distinct
// variant).
func Epsilon() Expression {
	return NewLiteral(grapheme.FromString(""))
}

// IsEmpty reports whether e is the epsilon literal.
func (e *Expression) IsEmpty() bool {
	return e.Kind == Literal && e.Cluster.IsEmpty()
}

// IsSingleCodepoint reports whether e is eligible for character-class
// merging: either it already is a CharacterClass, or it is a Literal
// holding exactly one character (by cluster.CharCount under the given
// escaping mode) whose sole grapheme has a repetition maximum of 1.
func (e *Expression) IsSingleCodepoint(nonASCIICharEscaped bool) bool {
	switch e.Kind {
	case CharacterClass:
		return true
	case Literal:
		if e.Cluster.CharCount(nonASCIICharEscaped) != 1 {
			return false
		}
		return e.Cluster.Graphemes()[0].Maximum() == 1
	default:
		return false
	}
}

// Len returns the minimum number of graphemes the first alternative of e
// consumes — the cost proxy spec.md §3 invariant 5 defines, used to sort
// Alternation children longest-first.
func (e *Expression) Len() int {
	switch e.Kind {
	case Alternation:
		return e.Options[0].Len()
	case CharacterClass:
		return 1
	case Concatenation:
		return e.Left.Len() + e.Right.Len()
	case Literal:
		return e.Cluster.Size()
	case Repetition:
		return e.Inner.Len()
	default:
		return 0
	}
}

// Precedence returns the binding strength used by the downstream pretty
// printer to decide grouping, per the table in spec.md §3.
func (e *Expression) Precedence() uint8 {
	switch e.Kind {
	case Alternation, CharacterClass:
		return 1
	case Concatenation, Literal:
		return 2
	case Repetition:
		return 3
	default:
		return 0
	}
}

// Value returns the grapheme sequence exposed at the given side, or nil if
// e has no literal exposed there. This is a local, non-recursive
// inspection (spec.md §4.1): a Literal exposes its own graphemes
// regardless of side; a Concatenation exposes its left (Prefix) or right
// (Suffix) child only if that immediate child is itself a Literal; every
// other shape, and every other combination, exposes nothing.
//
// The asymmetry this produces for a Concatenation whose right child is
// itself a Concatenation ending in a literal (it exposes nothing on
// Suffix) is a deliberate limitation inherited from the source
// implementation — see DESIGN.md's "Open-question decisions" and spec.md's
// "Open question — suffix-factoring" note.
func (e *Expression) Value(side Substring) []grapheme.Grapheme {
	switch e.Kind {
	case Literal:
		return e.Cluster.Graphemes()
	case Concatenation:
		switch side {
		case Prefix:
			if e.Left.Kind == Literal {
				return e.Left.Cluster.Graphemes()
			}
		case Suffix:
			if e.Right.Kind == Literal {
				return e.Right.Cluster.Graphemes()
			}
		}
		return nil
	default:
		return nil
	}
}

// RemoveSubstring drains n leading (Prefix) or trailing (Suffix) graphemes
// from e. For a Concatenation, it descends into the left or right child
// only if that child is a Literal — the same local shape Value inspects.
// Every other shape is a no-op. The caller must ensure n does not exceed
// the available grapheme count.
func (e *Expression) RemoveSubstring(side Substring, n int) {
	switch e.Kind {
	case Literal:
		switch side {
		case Prefix:
			e.Cluster.DrainPrefix(n)
		case Suffix:
			e.Cluster.DrainSuffix(n)
		}
	case Concatenation:
		switch side {
		case Prefix:
			if e.Left.Kind == Literal {
				e.Left.RemoveSubstring(side, n)
			}
		case Suffix:
			if e.Right.Kind == Literal {
				e.Right.RemoveSubstring(side, n)
			}
		}
	}
}

// Equal reports whether e and other are structurally identical trees. This
// backs the equality short-circuit spec.md §4.2.3 performs before any
// affix work in Union (see SPEC_FULL.md §3.1).
func (e *Expression) Equal(other *Expression) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case Literal:
		return e.Cluster.Equal(other.Cluster)
	case CharacterClass:
		if len(e.Chars) != len(other.Chars) {
			return false
		}
		for i := range e.Chars {
			if e.Chars[i] != other.Chars[i] {
				return false
			}
		}
		return true
	case Concatenation:
		return e.Left.Equal(other.Left) && e.Right.Equal(other.Right)
	case Alternation:
		if len(e.Options) != len(other.Options) {
			return false
		}
		for i := range e.Options {
			a, b := e.Options[i], other.Options[i]
			if !a.Equal(&b) {
				return false
			}
		}
		return true
	case Repetition:
		return e.Quantifier == other.Quantifier && e.Inner.Equal(other.Inner)
	default:
		return false
	}
}

// Clone returns a deep copy of e: no pointer or slice in the result is
// shared with e. Combinators clone freely rather than mutate shared
// matrix/vector entries in place (spec.md §5 Resource policy) — Union in
// particular must never trim a Concatenation's Literal child that some
// other matrix cell still references.
func (e *Expression) Clone() *Expression {
	if e == nil {
		return nil
	}
	clone := Expression{Kind: e.Kind, Quantifier: e.Quantifier}
	switch e.Kind {
	case Literal:
		clone.Cluster = grapheme.FromGraphemes(e.Cluster.Graphemes())
	case CharacterClass:
		chars := make([]rune, len(e.Chars))
		copy(chars, e.Chars)
		clone.Chars = chars
	case Concatenation:
		clone.Left = e.Left.Clone()
		clone.Right = e.Right.Clone()
	case Alternation:
		opts := make([]Expression, len(e.Options))
		for i := range e.Options {
			opts[i] = *e.Options[i].Clone()
		}
		clone.Options = opts
	case Repetition:
		clone.Inner = e.Inner.Clone()
	}
	return &clone
}
