// Package fixture builds small, deliberately unminimized DFAs for tests,
// plus an independent membership oracle to check synthesis output
// against without routing through the same code the DFA was built with.
package fixture

import (
	"sort"

	"github.com/coregx/regexsynth"
	"github.com/coregx/regexsynth/grapheme"
)

type trieState struct {
	transitions map[string]int
	final       bool
}

// TrieDFA is a regexsynth.DFA over an unminimized trie: one state per
// distinct prefix of the accepted strings, with no state sharing and no
// cycles. Its size is proportional to the sum of the input lengths, not
// to any minimal automaton — exactly what makes it a simple, obviously
// correct fixture rather than a candidate implementation of the thing
// under test.
type TrieDFA struct {
	states []trieState
	order  []regexsynth.StateHandle
}

// NewTrieDFA builds a trie recognizing exactly the given strings,
// splitting each into graphemes by Unicode scalar value (this fixture
// has no need for full grapheme-cluster segmentation).
func NewTrieDFA(strings ...string) *TrieDFA {
	t := &TrieDFA{states: []trieState{{transitions: map[string]int{}}}}
	for _, s := range strings {
		cur := 0
		for _, r := range s {
			label := string(r)
			next, ok := t.states[cur].transitions[label]
			if !ok {
				t.states = append(t.states, trieState{transitions: map[string]int{}})
				next = len(t.states) - 1
				t.states[cur].transitions[label] = next
			}
			cur = next
		}
		t.states[cur].final = true
	}

	t.order = make([]regexsynth.StateHandle, len(t.states))
	for i := range t.states {
		t.order[i] = i
	}
	return t
}

// StatesInDepthFirstOrder returns the states in the order NewTrieDFA
// created them, the root first. That order is a depth-first preorder
// whenever the strings passed to NewTrieDFA that share a prefix are given
// next to each other (sorted input, for example); otherwise it is not.
func (t *TrieDFA) StatesInDepthFirstOrder() []regexsynth.StateHandle { return t.order }

func (t *TrieDFA) StateCount() int { return len(t.states) }

func (t *TrieDFA) IsFinalState(h regexsynth.StateHandle) bool {
	return t.states[h.(int)].final
}

type trieEdge struct {
	weight grapheme.Grapheme
	target int
}

func (e trieEdge) Weight() grapheme.Grapheme      { return e.weight }
func (e trieEdge) Target() regexsynth.StateHandle { return e.target }

// OutgoingEdges returns edges sorted by label so callers get a stable,
// reproducible enumeration order across calls.
func (t *TrieDFA) OutgoingEdges(h regexsynth.StateHandle) []regexsynth.Edge {
	transitions := t.states[h.(int)].transitions
	labels := make([]string, 0, len(transitions))
	for label := range transitions {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	edges := make([]regexsynth.Edge, 0, len(labels))
	for _, label := range labels {
		edges = append(edges, trieEdge{weight: grapheme.New(label), target: transitions[label]})
	}
	return edges
}
