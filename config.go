package regexsynth

// Config holds the two fields the synthesis core takes from the upstream
// configuration collaborator (spec.md §6); only NonASCIICharEscaped affects
// FromDFA's output. That flag is passed through to every single-codepoint
// eligibility check; it never changes the shape of the elimination
// algorithm itself.
//
// Grounded on meta.Config / meta.DefaultConfig / meta.ConfigError
// (github.com/coregx/coregex/meta/config.go): a plain exported struct, a
// defaults constructor, and a typed validation error.
type Config struct {
	// NonASCIICharEscaped controls how GraphemeCluster.CharCount counts a
	// non-ASCII grapheme: as one character when false, as more than one
	// when true (an escaped non-ASCII scalar renders as several source
	// characters downstream). This is the only flag the core's
	// single-codepoint gate (ast.Expression.IsSingleCodepoint) reads.
	//
	// Default: false.
	NonASCIICharEscaped bool

	// MinimumRepetitions is carried through from the original grex
	// RegExpConfig for parity with upstream configuration, but this core
	// never emits bounded quantifiers (spec.md Non-goals) — it has no
	// effect on FromDFA's output. Validate still range-checks it and
	// rejects zero; any non-zero value is accepted.
	//
	// Default: 1.
	MinimumRepetitions uint32
}

// DefaultConfig returns a Config with sensible defaults: non-ASCII
// graphemes are not escaped (each counts as one character), and
// MinimumRepetitions is 1, the lowest value Validate accepts.
func DefaultConfig() Config {
	return Config{
		NonASCIICharEscaped: false,
		MinimumRepetitions:  1,
	}
}

// Validate checks that c's fields are within range. MinimumRepetitions
// must be at least 1 — zero has no meaning as a repetition floor.
func (c Config) Validate() error {
	if c.MinimumRepetitions < 1 {
		return &ConfigError{
			Field:   "MinimumRepetitions",
			Message: "must be at least 1",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexsynth: invalid config: " + e.Field + ": " + e.Message
}
