package solver

import (
	"io"
	"log/slog"
)

// NoMatchStep is the single derivation step carried by the sentinel outcome
// returned when no deterministic invariant matched.
const NoMatchStep = "No deterministic invariant matched."

// Solver owns an ordered plugin registry and dispatches problem statements
// across it. Immutable after construction; Solve holds no cross-call state,
// so concurrent calls need no coordination.
type Solver struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the structured logger used for per-plugin diagnostics.
// Defaults to a discarding logger so library callers opt in to output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// New creates a Solver over plugins in the given order. The order is the
// dispatch priority order and never changes after construction; the slice
// is consumed into an internal registry, so later mutation by the caller
// has no effect.
func New(plugins []Plugin, opts ...Option) *Solver {
	s := &Solver{
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, p := range plugins {
		s.registry.Register(p)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry exposes the solver's plugin registry for introspection.
// Mutating it after construction is the caller's responsibility to avoid.
func (s *Solver) Registry() *Registry {
	return s.registry
}

// Solve runs the plugins in dispatch order against the problem statement
// and returns the first concrete outcome (first-match-wins). It always
// returns a well-formed outcome: plugin faults are logged and skipped, and
// if every plugin declines the result is the no-match sentinel with a
// warning log entry recommending the external fallback.
func (s *Solver) Solve(text string) *Outcome {
	normalized := Normalize(text)

	var trail []LogEntry
	trail = append(trail, NewLogEntry(SeverityInfo, "dispatch started across %d plugins", s.registry.Len()))

	for _, p := range s.registry.All() {
		out, err := p.TrySolve(normalized)
		if err != nil {
			// Internal computation fault. Absorbed here: logged, then the
			// scan continues as if the plugin had declined.
			s.logger.Warn("plugin fault, skipping",
				"plugin", p.Name(),
				"error", err,
			)
			trail = append(trail, NewLogEntry(SeverityError, "plugin %s faulted: %v", p.Name(), err))
			continue
		}
		if out.IsNoMatch() {
			// nil, or the legacy zero-answer/untagged sentinel.
			continue
		}

		s.logger.Info("invariant matched",
			"plugin", p.Name(),
			"tag", string(out.Tag),
			"answer", out.Answer,
		)
		trail = append(trail, NewLogEntry(SeverityInfo, "plugin %s claimed the problem (tag=%s)", p.Name(), out.Tag))
		out.Log = append(trail, out.Log...)
		if len(out.Steps) == 0 {
			out.AddStep("Answer: %s", out.Answer)
		}
		return out
	}

	s.logger.Warn("no deterministic invariant matched", "text_len", len(normalized))
	trail = append(trail, NewLogEntry(SeverityWarn, "no plugin matched; external fallback recommended"))
	return &Outcome{
		Answer: "0",
		Steps:  []string{NoMatchStep},
		Log:    trail,
	}
}
