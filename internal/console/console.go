// Package console wires the deterministic dispatcher, the optional
// fallback reasoner and the history store into the question-answering
// surface the CLI talks to.
package console

import (
	"context"
	"io"
	"log/slog"
	"time"

	"closedform/internal/fallback"
	"closedform/internal/history"
	"closedform/internal/solver"
)

// Console answers problems, preferring deterministic plugin matches and
// escalating to the fallback reasoner only when nothing matched.
type Console struct {
	solver   *solver.Solver
	reasoner fallback.Reasoner
	store    *history.Store
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithReasoner attaches a fallback reasoning service.
func WithReasoner(r fallback.Reasoner) Option {
	return func(c *Console) { c.reasoner = r }
}

// WithHistory attaches a store that records every answered problem.
func WithHistory(s *history.Store) Option {
	return func(c *Console) { c.store = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// WithNowFunc replaces the wall clock. Used by tests.
func WithNowFunc(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// New creates a Console around a configured solver.
func New(s *solver.Solver, opts ...Option) *Console {
	c := &Console{
		solver: s,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AskOptions control a single Ask.
type AskOptions struct {
	// UseFallback permits escalation to the reasoning service when no
	// plugin matches. Without it the sentinel outcome is returned as is.
	UseFallback bool
	// HighReasoning asks the service for its highest reasoning effort.
	HighReasoning bool
	// ImageURL points at a picture of the problem, forwarded verbatim.
	ImageURL string
}

// Result is an answered problem plus where the answer came from.
type Result struct {
	Outcome  *solver.Outcome
	Source   history.Source
	Duration time.Duration
}

// Ask answers one problem. The deterministic dispatcher always runs
// first; the fallback reasoner is consulted only for the no-match
// sentinel, and only when opts.UseFallback is set. When a history store
// is attached the result is appended before returning.
func (c *Console) Ask(ctx context.Context, problem string, opts AskOptions) (*Result, error) {
	start := c.now()

	out := c.solver.Solve(problem)
	source := history.SourcePlugin
	if out.IsNoMatch() {
		source = history.SourceNone
	}

	if source == history.SourceNone && opts.UseFallback && c.reasoner != nil {
		c.logger.Info("no plugin matched; consulting fallback reasoner",
			"high_reasoning", opts.HighReasoning,
		)
		remote, err := c.reasoner.Ask(ctx, fallback.Query{
			Problem:       problem,
			HighReasoning: opts.HighReasoning,
			ImageURL:      opts.ImageURL,
		})
		if err != nil {
			return nil, err
		}
		if remote != nil && remote.Answer != "" {
			// Keep the dispatcher's trail in front of the remote log so
			// the full path to the answer stays readable.
			remote.Log = append(out.Log, remote.Log...)
			out = remote
			source = history.SourceFallback
		}
	}

	res := &Result{
		Outcome:  out,
		Source:   source,
		Duration: c.now().Sub(start),
	}

	if c.store != nil {
		_, err := c.store.Append(ctx, history.Record{
			AskedAt:    start.UTC(),
			Problem:    problem,
			Answer:     out.Answer,
			Tag:        string(out.Tag),
			Source:     source,
			DurationMS: res.Duration.Milliseconds(),
		})
		if err != nil {
			// History is a convenience; losing a row must not hide the answer.
			c.logger.Error("failed to record solve history", "error", err)
		}
	}

	return res, nil
}
