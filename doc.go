// Package regexsynth synthesizes a regular expression tree from a DFA that
// recognizes a finite set of input strings.
//
// The entry point is FromDFA, which runs classical state elimination
// (github.com/coregx/regexsynth, spec.md §4.4) over a caller-supplied DFA
// (see the DFA interface below), invoking the combinators in
// github.com/coregx/regexsynth/ast at every step to keep the resulting
// tree small: common affixes are factored out, single-codepoint
// alternatives are merged into character classes, and optional branches
// collapse into `?`.
//
// This package has no I/O and no concurrency: synthesis is a pure
// function of its DFA and Config arguments, matching the teacher's own
// regex-matching core in spirit (github.com/coregx/coregex) — a library
// with no hidden state, safe to call from any number of goroutines
// concurrently since nothing here is mutated after a call returns.
//
// Building the DFA itself, rendering the resulting Expression to regex
// syntax, Unicode grapheme segmentation, and CLI plumbing are explicitly
// out of scope — see SPEC_FULL.md §4 for the full list of non-goals.
package regexsynth
