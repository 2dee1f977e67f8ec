package fixture

import ahocorasick "github.com/coregx/ahocorasick"

// Oracle answers whether a candidate string is exactly one of a known
// set of strings, using an Aho-Corasick automaton rather than the trie
// walk TrieDFA itself does — so a property test that checks synthesis
// output against an Oracle is not just checking TrieDFA against itself.
//
// It works because Aho-Corasick reports substring occurrences: a
// dictionary word that occurs as a substring of candidate and is exactly
// as long as candidate must equal candidate.
type Oracle struct {
	matcher  *ahocorasick.Matcher
	words    []string
	hasEmpty bool
}

// NewOracle builds an Oracle recognizing exactly the given strings.
func NewOracle(strings ...string) *Oracle {
	words := make([]string, len(strings))
	copy(words, strings)

	o := &Oracle{matcher: ahocorasick.NewStringMatcher(words), words: words}
	for _, w := range words {
		if w == "" {
			o.hasEmpty = true
			break
		}
	}
	return o
}

// Accepts reports whether candidate is one of the oracle's strings. The
// empty string is handled directly: the Aho-Corasick walk this oracle
// otherwise relies on never visits a node for a zero-length input, so it
// cannot observe an empty-string dictionary entry on its own.
func (o *Oracle) Accepts(candidate string) bool {
	if candidate == "" {
		return o.hasEmpty
	}
	for _, idx := range o.matcher.MatchString(candidate) {
		if len(o.words[idx]) == len(candidate) {
			return true
		}
	}
	return false
}
