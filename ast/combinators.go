package ast

import "github.com/coregx/regexsynth/grapheme"

// Star wraps e in a Kleene-star Repetition. e may be nil (absent), in
// which case Star returns nil. No simplification happens here —
// absorption happens inside Union and Concatenate.
func Star(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	return &Expression{Kind: Repetition, Inner: e.Clone(), Quantifier: KleeneStar}
}

// Question wraps e in a `?` Repetition. e may be nil (absent), in which
// case Question returns nil.
func Question(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	return &Expression{Kind: Repetition, Inner: e.Clone(), Quantifier: QuestionMark}
}

// Concatenate combines a then b, simplifying adjacent literals so that no
// two Literal nodes ever sit next to each other along a Concatenation
// spine (spec.md §4.2.2). Either operand may be nil (absent); the result
// is nil unless both are present.
func Concatenate(a, b *Expression) *Expression {
	if a == nil || b == nil {
		return nil
	}
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}

	if a.Kind == Literal && b.Kind == Literal {
		merged := NewLiteral(grapheme.Merge(a.Cluster, b.Cluster))
		return &merged
	}

	// a is a Literal, b is Concatenation(Literal, second): left-associate
	// the two literals so the spine never carries adjacent Literal nodes.
	if a.Kind == Literal && b.Kind == Concatenation && b.Left.Kind == Literal {
		merged := NewLiteral(grapheme.Merge(a.Cluster, b.Left.Cluster))
		result := NewConcatenation(merged, *b.Right.Clone())
		return &result
	}

	// Symmetric case: b is a Literal, a is Concatenation(first, Literal).
	if b.Kind == Literal && a.Kind == Concatenation && a.Right.Kind == Literal {
		merged := NewLiteral(grapheme.Merge(a.Right.Cluster, b.Cluster))
		result := NewConcatenation(*a.Left.Clone(), merged)
		return &result
	}

	result := NewConcatenation(*a.Clone(), *b.Clone())
	return &result
}

// Union combines a and b into the language that matches either, applying
// affix factoring, epsilon/optional absorption, and character-class
// merging before falling back to a flattened Alternation (spec.md
// §4.2.3). Either operand may be nil (absent); if exactly one is present
// that one is returned (cloned). If both are present and structurally
// equal, that shared value is returned — checked first, so the
// degenerate one-element character class spec.md's Open Question warns
// about can never be produced (SPEC_FULL.md §3.1).
func Union(a, b *Expression, nonASCIICharEscaped bool) *Expression {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}
	if a.Equal(b) {
		return a.Clone()
	}

	expr1 := a.Clone()
	expr2 := b.Clone()

	commonPrefix := removeCommonSubstring(expr1, expr2, Prefix)
	commonSuffix := removeCommonSubstring(expr1, expr2, Suffix)

	var result *Expression

	switch {
	case expr1.IsEmpty():
		result = &Expression{Kind: Repetition, Inner: expr2.Clone(), Quantifier: QuestionMark}
	case expr2.IsEmpty():
		result = &Expression{Kind: Repetition, Inner: expr1.Clone(), Quantifier: QuestionMark}
	}

	if result == nil && expr1.Kind == Repetition && expr1.Quantifier == QuestionMark {
		alt := NewAlternation(*expr1.Inner.Clone(), *expr2.Clone())
		result = &Expression{Kind: Repetition, Inner: &alt, Quantifier: QuestionMark}
	}

	if result == nil && expr2.Kind == Repetition && expr2.Quantifier == QuestionMark {
		alt := NewAlternation(*expr1.Clone(), *expr2.Inner.Clone())
		result = &Expression{Kind: Repetition, Inner: &alt, Quantifier: QuestionMark}
	}

	if result == nil && expr1.IsSingleCodepoint(nonASCIICharEscaped) && expr2.IsSingleCodepoint(nonASCIICharEscaped) {
		chars := append(extractCharacterSet(expr1), extractCharacterSet(expr2)...)
		merged := NewCharacterClass(chars)
		result = &merged
	}

	if result == nil {
		alt := NewAlternation(*expr1, *expr2)
		result = &alt
	}

	if commonPrefix != nil {
		prefixLit := NewLiteral(grapheme.FromGraphemes(commonPrefix))
		wrapped := NewConcatenation(prefixLit, *result)
		result = &wrapped
	}
	if commonSuffix != nil {
		suffixLit := NewLiteral(grapheme.FromGraphemes(commonSuffix))
		wrapped := NewConcatenation(*result, suffixLit)
		result = &wrapped
	}

	return result
}

// extractCharacterSet pulls the scalar set out of a single-codepoint
// expression: a Literal's sole grapheme's first scalar, or a
// CharacterClass's own set.
func extractCharacterSet(e *Expression) []rune {
	switch e.Kind {
	case Literal:
		r, _ := e.Cluster.Graphemes()[0].FirstScalar()
		return []rune{r}
	case CharacterClass:
		out := make([]rune, len(e.Chars))
		copy(out, e.Chars)
		return out
	default:
		return nil
	}
}
