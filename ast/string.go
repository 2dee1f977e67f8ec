package ast

import "strings"

// String renders e as regex-like text, using each child's Kind (and, for a
// Literal under a quantifier, its size) to decide where a non-capturing
// group is required.
//
// This is a debug/test convenience only — it is deliberately not the
// downstream pretty printer spec.md describes as an external collaborator
// (§1 "Output collaborator"): it performs no character-class range
// compression and no non-ASCII escaping. It exists so tests can assert
// against a textual shape the same way the original grex ast.rs's own
// unit tests call to_string() directly on an Expression (see
// SPEC_FULL.md §1.3).
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case Literal:
		var sb strings.Builder
		for _, g := range e.Cluster.Graphemes() {
			sb.WriteString(g.Value())
		}
		return sb.String()
	case CharacterClass:
		var sb strings.Builder
		sb.WriteByte('[')
		for _, r := range e.Chars {
			sb.WriteRune(r)
		}
		sb.WriteByte(']')
		return sb.String()
	case Concatenation:
		return groupForConcatenation(e.Left) + groupForConcatenation(e.Right)
	case Alternation:
		parts := make([]string, len(e.Options))
		for i := range e.Options {
			parts[i] = e.Options[i].String()
		}
		return strings.Join(parts, "|")
	case Repetition:
		s := e.Inner.String()
		if needsGroupUnderRepetition(e.Inner) {
			s = "(?:" + s + ")"
		}
		return s + e.Quantifier.String()
	default:
		return ""
	}
}

// groupForConcatenation wraps child in a non-capturing group when it is an
// Alternation — the only shape that binds more loosely than concatenation.
func groupForConcatenation(child *Expression) string {
	s := child.String()
	if child.Kind == Alternation {
		return "(?:" + s + ")"
	}
	return s
}

// needsGroupUnderRepetition reports whether inner must be wrapped in a
// non-capturing group before a quantifier can apply to it as a whole: a
// CharacterClass or a single-grapheme Literal is already an atomic token,
// everything else is not.
func needsGroupUnderRepetition(inner *Expression) bool {
	switch inner.Kind {
	case CharacterClass:
		return false
	case Literal:
		return inner.Cluster.Size() > 1
	default:
		return true
	}
}
