package ast

import (
	"testing"

	"github.com/coregx/regexsynth/grapheme"
)

// Mirrors the string-representation assertions in the original grex
// ast.rs unit tests (_examples/original_source/src/ast.rs), adapted to
// this package's debug Stringer.

func lit(s string) Expression {
	return NewLiteral(grapheme.FromString(s))
}

func TestStringAlternation(t *testing.T) {
	alt := NewAlternation(lit("abc"), lit("def"))
	if got, want := alt.String(), "abc|def"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringAlternationFlattenedAndSorted(t *testing.T) {
	alt1 := NewAlternation(lit("a"), lit("ab"))
	alt2 := NewAlternation(alt1, lit("abc"))
	if got, want := alt2.String(), "abc|ab|a"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringCharacterClass(t *testing.T) {
	cc := NewCharacterClass([]rune{'a', 'b'})
	if got, want := cc.String(), "[ab]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringConcatenation(t *testing.T) {
	concat := NewConcatenation(lit("abc"), lit("def"))
	if got, want := concat.String(), "abcdef"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringConcatenationWithRepetition(t *testing.T) {
	rep := NewRepetition(lit("abc"), KleeneStar)
	concat := NewConcatenation(rep, lit("def"))
	if got, want := concat.String(), "(?:abc)*def"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringRepetitionKleeneStar(t *testing.T) {
	rep := NewRepetition(lit("abc"), KleeneStar)
	if got, want := rep.String(), "(?:abc)*"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringRepetitionQuestionMark(t *testing.T) {
	rep := NewRepetition(lit("a"), QuestionMark)
	if got, want := rep.String(), "a?"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
