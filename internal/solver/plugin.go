package solver

// Plugin is the contract every invariant recognizer implements.
//
// TrySolve inspects a problem statement and either claims it or declines.
// Returning (nil, nil) is the primary routing signal: the plugin's trigger
// keywords or patterns are absent. An error is reserved for internal
// arithmetic failure (malformed capture groups, division by zero) and is
// treated by the dispatcher identically to a decline.
//
// Implementations must be pure with respect to the input: no shared mutable
// state, so a single plugin value can serve concurrent solves.
type Plugin interface {
	// Name uniquely identifies the plugin within a registry.
	Name() string

	// Tag is the invariant tag attached to this plugin's successful outcomes.
	Tag() InvariantTag

	// TrySolve attempts the problem. The text has already been normalized
	// (NFC, collapsed whitespace, ASCII-folded punctuation variants).
	TrySolve(text string) (*Outcome, error)
}
