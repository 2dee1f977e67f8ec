package ast

import "github.com/coregx/regexsynth/grapheme"

// FindCommonSubstring returns the longest run of graphemes shared between
// a.Value(side) and b.Value(side), read from the appropriate end, or nil
// if there is none. Absence on either side is treated as an empty
// sequence, matching spec.md §4.3.
//
// Grounded on the teacher's literal.Seq.LongestCommonPrefix /
// LongestCommonSuffix (github.com/coregx/coregex/literal/seq.go), which
// compares byte slices pairwise from the front (or, for suffixes, reverses
// both slices, compares, then reverses the result). This is the same
// algorithm generalized from bytes to Graphemes.
func FindCommonSubstring(a, b *Expression, side Substring) []grapheme.Grapheme {
	ga := a.Value(side)
	gb := b.Value(side)

	if side == Suffix {
		ga = reversedGraphemes(ga)
		gb = reversedGraphemes(gb)
	}

	n := len(ga)
	if len(gb) < n {
		n = len(gb)
	}

	common := make([]grapheme.Grapheme, 0, n)
	for i := 0; i < n; i++ {
		if !ga[i].Equal(gb[i]) {
			break
		}
		common = append(common, ga[i])
	}

	if side == Suffix {
		common = reversedGraphemes(common)
	}

	if len(common) == 0 {
		return nil
	}
	return common
}

func reversedGraphemes(gs []grapheme.Grapheme) []grapheme.Grapheme {
	out := make([]grapheme.Grapheme, len(gs))
	for i, g := range gs {
		out[len(gs)-1-i] = g
	}
	return out
}

// removeCommonSubstring finds the common substring on the given side
// between a and b and, if one exists, destructively trims it from both via
// RemoveSubstring. It returns the removed graphemes, or nil if there was
// nothing to remove.
func removeCommonSubstring(a, b *Expression, side Substring) []grapheme.Grapheme {
	common := FindCommonSubstring(a, b, side)
	if common == nil {
		return nil
	}
	a.RemoveSubstring(side, len(common))
	b.RemoveSubstring(side, len(common))
	return common
}
