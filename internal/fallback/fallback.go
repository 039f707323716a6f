// Package fallback is the boundary to the external, non-deterministic
// reasoning service. The deterministic core never calls it; the console
// orchestrator consults it only after the dispatcher reports no match.
//
// The boundary contract keeps the merged result shape uniform: a Reasoner
// returns a well-formed outcome even on transport failure (answer absent
// plus an error-severity log entry), never a raw error surfaced as a panic
// or an untagged crash.
package fallback

import (
	"context"

	"closedform/internal/solver"
)

// Query describes one escalation to the reasoning service.
type Query struct {
	// Problem is the raw problem statement.
	Problem string

	// HighReasoning requests the service's slower, deeper reasoning mode.
	HighReasoning bool

	// ImageURL optionally references an image of the problem. The core
	// does not process images; they pass through opaquely.
	ImageURL string
}

// Reasoner is implemented by external reasoning backends.
type Reasoner interface {
	// Ask performs the network-bound reasoning call. The returned outcome
	// always carries the QuantumFallback tag on success and an empty
	// answer with an error log entry on failure. The error return is
	// reserved for context cancellation.
	Ask(ctx context.Context, q Query) (*solver.Outcome, error)
}
