package regexsynth

import (
	"fmt"

	"github.com/coregx/regexsynth/ast"
	"github.com/coregx/regexsynth/grapheme"
)

// FromDFA synthesizes a regex expression tree recognizing exactly the
// language dfa recognizes, via classical state elimination (spec.md
// §4.4): every state but the start state is removed in reverse
// depth-first order, folding its self-loop and incoming/outgoing edges
// into the expressions labelling its neighbours, until only the start
// state's accepted-suffix expression remains.
//
// FromDFA panics if dfa reports an edge whose target is not among its
// own states — that is a defect in the caller's DFA, not a condition
// this package can recover from meaningfully.
func FromDFA(dfa DFA, config Config) ast.Expression {
	states := dfa.StatesInDepthFirstOrder()
	n := len(states)
	if n == 0 {
		return ast.Epsilon()
	}

	index := make(map[StateHandle]int, n)
	for i, s := range states {
		index[s] = i
	}

	// a[i][j] is the expression labelling the (not yet eliminated) edge
	// from state i to state j; nil means "no such edge". b[i] is the
	// expression for what state i accepts once dangling at the end of
	// the match; nil means "state i does not yet accept".
	a := make([][]*ast.Expression, n)
	for i := range a {
		a[i] = make([]*ast.Expression, n)
	}
	b := make([]*ast.Expression, n)

	for i, s := range states {
		if dfa.IsFinalState(s) {
			eps := ast.Epsilon()
			b[i] = &eps
		}
		for _, edge := range dfa.OutgoingEdges(s) {
			j, ok := index[edge.Target()]
			if !ok {
				panic(fmt.Sprintf("regexsynth: DFA edge targets state %v, which is not among its states", edge.Target()))
			}
			lit := ast.NewLiteral(grapheme.FromGraphemes([]grapheme.Grapheme{edge.Weight()}))
			if a[i][j] == nil {
				a[i][j] = &lit
			} else {
				a[i][j] = ast.Union(a[i][j], &lit, config.NonASCIICharEscaped)
			}
		}
	}

	for k := n - 1; k >= 0; k-- {
		// Self-loop absorption: fold state k's self-loop into a Kleene
		// star and apply it to everything k still accepts or reaches.
		if a[k][k] != nil {
			star := ast.Star(a[k][k])
			b[k] = ast.Concatenate(star, b[k])
			for j := 0; j < k; j++ {
				a[k][j] = ast.Concatenate(star, a[k][j])
			}
		}

		// Incoming absorption: every state i that still leads into k
		// inherits k's accepted suffix and k's remaining outgoing edges,
		// then loses its own edge into k.
		for i := 0; i < k; i++ {
			if a[i][k] == nil {
				continue
			}
			b[i] = ast.Union(b[i], ast.Concatenate(a[i][k], b[k]), config.NonASCIICharEscaped)
			for j := 0; j < k; j++ {
				a[i][j] = ast.Union(a[i][j], ast.Concatenate(a[i][k], a[k][j]), config.NonASCIICharEscaped)
			}
		}
	}

	if b[0] == nil {
		return ast.Epsilon()
	}
	return *b[0]
}
