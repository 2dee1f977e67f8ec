package regexsynth

import "github.com/coregx/regexsynth/grapheme"

// StateHandle identifies one DFA state. It is opaque to this package —
// the caller's DFA implementation chooses the concrete type (an int
// index, a pointer, a string id, ...) and must make it comparable, since
// FromDFA uses it as a map key while indexing states.
type StateHandle any

// Edge is one outgoing transition of a DFA state, labelled by the
// grapheme consumed to follow it.
type Edge interface {
	// Weight is the grapheme consumed when this edge is taken.
	Weight() grapheme.Grapheme
	// Target is the state this edge leads to.
	Target() StateHandle
}

// DFA is the narrow, capability-based view this package needs of the
// upstream DFA-construction collaborator (spec.md §6). It never inspects
// anything beyond these four methods.
type DFA interface {
	// StatesInDepthFirstOrder returns every state, ordered depth-first
	// from the start state. The start state is StatesInDepthFirstOrder()[0].
	// This ordering is a heuristic the DFA builder controls to keep affix
	// factoring productive — neighbouring indices tend to share prefixes
	// in the recognized language (spec.md §4.4).
	StatesInDepthFirstOrder() []StateHandle

	// StateCount returns the total number of states.
	StateCount() int

	// IsFinalState reports whether handle is an accepting state.
	IsFinalState(handle StateHandle) bool

	// OutgoingEdges returns every edge leaving handle, in the order the
	// builder enumerated them. Enumeration order must be stable across
	// calls for FromDFA's output to be stable (spec.md §5 Ordering).
	OutgoingEdges(handle StateHandle) []Edge
}
