package fixture

import "testing"

func TestNewTrieDFAStateCount(t *testing.T) {
	// "a" and "ab" share the state for "a"; "b" branches separately off the
	// root: root, a, ab, b -> 4 states.
	d := NewTrieDFA("a", "ab", "b")
	if got, want := d.StateCount(), 4; got != want {
		t.Fatalf("StateCount() = %d, want %d", got, want)
	}
}

func TestNewTrieDFAEmptyStringIsFinalRoot(t *testing.T) {
	d := NewTrieDFA("")
	if !d.IsFinalState(0) {
		t.Error("root state must be final when \"\" is in the accepted set")
	}
}

func TestNewTrieDFASharesCommonPrefix(t *testing.T) {
	d := NewTrieDFA("abc", "abd")
	// root -(a)-> -(b)-> -(c or d)-> two distinct leaves: 5 states total.
	if got, want := d.StateCount(), 5; got != want {
		t.Fatalf("StateCount() = %d, want %d", got, want)
	}
}

func TestOutgoingEdgesSortedByLabel(t *testing.T) {
	d := NewTrieDFA("b", "a", "c")
	edges := d.OutgoingEdges(0)
	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d, want 3", len(edges))
	}
	labels := make([]string, len(edges))
	for i, e := range edges {
		labels[i] = e.Weight().Value()
	}
	if labels[0] != "a" || labels[1] != "b" || labels[2] != "c" {
		t.Errorf("labels = %v, want sorted [a b c]", labels)
	}
}
