package ast

import (
	"testing"

	"github.com/coregx/regexsynth/grapheme"
)

func TestIsEmpty(t *testing.T) {
	eps := Epsilon()
	if got := eps.IsEmpty(); !got {
		t.Error("Epsilon() should be empty")
	}
	nonEmpty := lit("a")
	if nonEmpty.IsEmpty() {
		t.Error("non-empty literal should not be empty")
	}
	cc := NewCharacterClass([]rune{'a', 'b'})
	if cc.IsEmpty() {
		t.Error("CharacterClass is never empty")
	}
}

func TestIsSingleCodepoint(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expression
		escaped bool
		want    bool
	}{
		{"character class", NewCharacterClass([]rune{'a', 'b'}), false, true},
		{"single ascii literal", lit("a"), false, true},
		{"multi-char literal", lit("ab"), false, false},
		{"empty literal", Epsilon(), false, false},
		{"non-ascii literal unescaped", NewLiteral(grapheme.FromGraphemes([]grapheme.Grapheme{grapheme.New("é")})), false, true},
		{"non-ascii literal escaped", NewLiteral(grapheme.FromGraphemes([]grapheme.Grapheme{grapheme.New("é")})), true, false},
		{"widened repetition bound", NewLiteral(grapheme.FromGraphemes([]grapheme.Grapheme{grapheme.NewWithBounds("a", 1, 2)})), false, false},
		{"concatenation", NewConcatenation(lit("a"), lit("b")), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.IsSingleCodepoint(tt.escaped); got != tt.want {
				t.Errorf("IsSingleCodepoint(%v) = %v, want %v", tt.escaped, got, tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want int
	}{
		{"literal", lit("abc"), 3},
		{"character class", NewCharacterClass([]rune{'a', 'b', 'c'}), 1},
		{"concatenation", NewConcatenation(lit("ab"), lit("cde")), 5},
		{"repetition", NewRepetition(lit("abc"), KleeneStar), 3},
		{"alternation picks first option's len", NewAlternation(lit("abc"), lit("de")), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want uint8
	}{
		{"alternation", NewAlternation(lit("a"), lit("b")), 1},
		{"character class", NewCharacterClass([]rune{'a', 'b'}), 1},
		{"concatenation", NewConcatenation(lit("a"), lit("b")), 2},
		{"literal", lit("abc"), 2},
		{"repetition", NewRepetition(lit("a"), KleeneStar), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Precedence(); got != tt.want {
				t.Errorf("Precedence() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValue(t *testing.T) {
	literal := lit("abcdef")
	if got := literal.Value(Prefix); textOf(got) != "abcdef" {
		t.Errorf("Value(Prefix) = %q, want %q", textOf(got), "abcdef")
	}
	if got := literal.Value(Suffix); textOf(got) != "abcdef" {
		t.Errorf("Value(Suffix) = %q, want %q", textOf(got), "abcdef")
	}

	concat := NewConcatenation(lit("abc"), lit("def"))
	if got := concat.Value(Prefix); textOf(got) != "abc" {
		t.Errorf("Value(Prefix) of concatenation = %q, want %q", textOf(got), "abc")
	}
	if got := concat.Value(Suffix); textOf(got) != "def" {
		t.Errorf("Value(Suffix) of concatenation = %q, want %q", textOf(got), "def")
	}

	// A Concatenation whose left child is itself not a Literal exposes
	// nothing on Prefix.
	nested := NewConcatenation(NewAlternation(lit("a"), lit("b")), lit("c"))
	if got := nested.Value(Prefix); got != nil {
		t.Errorf("Value(Prefix) of non-literal left child = %v, want nil", got)
	}

	alt := NewAlternation(lit("a"), lit("b"))
	if got := alt.Value(Prefix); got != nil {
		t.Errorf("Value(Prefix) of alternation = %v, want nil", got)
	}
}

func TestRemoveSubstringLiteral(t *testing.T) {
	// spec.md §8 remove-substring laws.
	literal := lit("abcdef")
	literal.RemoveSubstring(Prefix, 2)
	if got := textOf(literal.Value(Prefix)); got != "cdef" {
		t.Errorf("after RemoveSubstring(Prefix, 2): %q, want %q", got, "cdef")
	}

	literal2 := lit("abcdef")
	literal2.RemoveSubstring(Suffix, 2)
	if got := textOf(literal2.Value(Suffix)); got != "abcd" {
		t.Errorf("after RemoveSubstring(Suffix, 2): %q, want %q", got, "abcd")
	}
}

func TestRemoveSubstringConcatenation(t *testing.T) {
	concat := NewConcatenation(lit("abc"), lit("def"))
	concat.RemoveSubstring(Prefix, 1)
	if got := textOf(concat.Left.Value(Prefix)); got != "bc" {
		t.Errorf("left child after RemoveSubstring(Prefix, 1) = %q, want %q", got, "bc")
	}
	if got := textOf(concat.Right.Value(Prefix)); got != "def" {
		t.Errorf("right child must be untouched, got %q", got)
	}
}

func TestRemoveSubstringNoOpOnOtherShapes(t *testing.T) {
	alt := NewAlternation(lit("a"), lit("b"))
	before := alt.String()
	alt.RemoveSubstring(Prefix, 1)
	if after := alt.String(); after != before {
		t.Errorf("RemoveSubstring on Alternation must be a no-op, got %q want %q", after, before)
	}
}

func TestEqual(t *testing.T) {
	a := NewConcatenation(lit("ab"), lit("c"))
	b := NewConcatenation(lit("ab"), lit("c"))
	c := NewConcatenation(lit("ab"), lit("d"))

	if !a.Equal(&b) {
		t.Error("expected structurally identical trees to be equal")
	}
	if a.Equal(&c) {
		t.Error("expected differing trees to not be equal")
	}
}

func TestCloneIndependence(t *testing.T) {
	original := NewConcatenation(lit("abc"), lit("def"))
	clone := original.Clone()
	clone.RemoveSubstring(Prefix, 1)

	if got := textOf(original.Value(Prefix)); got != "abc" {
		t.Errorf("mutating a clone affected the original: left child = %q, want %q", got, "abc")
	}
	if got := textOf(clone.Value(Prefix)); got != "bc" {
		t.Errorf("clone was not trimmed: left child = %q, want %q", got, "bc")
	}
}

func textOf(gs []grapheme.Grapheme) string {
	s := ""
	for _, g := range gs {
		s += g.Value()
	}
	return s
}
