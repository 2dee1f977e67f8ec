package ast

import "sort"

// NewAlternation builds an Alternation node from expr1 and expr2, flattening
// any nested Alternation children (spec.md §3 invariant 1) and sorting the
// resulting options by non-increasing Len (invariant 2). The sort is
// stable so that equal-length alternatives preserve the order they were
// combined in — this matters for chains like {a, ab, abc} (spec.md §9,
// "Determinism of alternation sort").
func NewAlternation(expr1, expr2 Expression) Expression {
	var options []Expression
	options = flattenAlternations(options, expr1)
	options = flattenAlternations(options, expr2)
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Len() > options[j].Len()
	})
	return Expression{Kind: Alternation, Options: options}
}

func flattenAlternations(into []Expression, expr Expression) []Expression {
	if expr.Kind == Alternation {
		for _, opt := range expr.Options {
			into = flattenAlternations(into, opt)
		}
		return into
	}
	return append(into, expr)
}
