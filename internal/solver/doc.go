// Package solver contains the deterministic invariant-matching core: the
// plugin contract, the ordered plugin registry, and the dispatching solver.
//
// A plugin is a self-contained recognizer and solver for one closed-form
// mathematical identity. The solver runs plugins in a fixed priority order
// against free-text input; the first plugin returning a concrete outcome
// wins. There is no scoring or ranking between plugins.
//
// # Dispatch semantics
//
// For each plugin, in registration order:
//
//   - (nil, nil) means the plugin's trigger did not fire. Not an error -
//     silently skipped.
//   - (nil, err) means an internal computation fault (malformed capture
//     group, division by zero, ...). Logged and skipped; failure is absorbed
//     at this layer, never surfaced to the caller.
//   - A concrete outcome is accepted unless it carries the legacy non-match
//     sentinel (answer "0" with no invariant tag), which is treated exactly
//     like (nil, nil).
//
// When every plugin misses, Solve returns a sentinel outcome (answer "0", no
// tag, a warning log entry) signalling that the caller should consult the
// external fallback reasoner.
//
// # Concurrency
//
// A Solver is immutable after construction. Solve performs pure computation
// over its input plus a call-local accumulator, so independent calls may run
// concurrently without coordination.
package solver
