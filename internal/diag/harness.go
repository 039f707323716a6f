package diag

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"closedform/internal/solver"
)

// Case is one regression case: a problem statement with the answer and
// invariant tag the dispatcher must produce. An empty WantAnswer skips the
// answer comparison and checks the tag alone.
type Case struct {
	Name       string              `yaml:"name"`
	Input      string              `yaml:"input"`
	WantAnswer string              `yaml:"want_answer"`
	WantTag    solver.InvariantTag `yaml:"want_tag"`
}

// CaseResult records one executed case. Expected and Actual carry the
// literal values only on failure.
type CaseResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"` // "pass" or "fail"
	DurationMs int64  `json:"duration_ms"`
	Expected   string `json:"expected,omitempty"`
	Actual     string `json:"actual,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Report aggregates a harness run. Reports are ephemeral: generated on
// demand, never persisted by the core.
type Report struct {
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// Pass reports whether every case passed.
func (r *Report) Pass() bool {
	return r.Failed == 0
}

// Harness runs regression cases through a solver.
type Harness struct {
	solver *solver.Solver
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithNowFunc overrides the wall clock used for per-case durations.
// Tests inject a deterministic clock for golden report comparison.
func WithNowFunc(now func() time.Time) Option {
	return func(h *Harness) {
		h.now = now
	}
}

// WithLogger sets the structured logger. Defaults to discard.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness over the given solver.
func New(s *solver.Solver, opts ...Option) *Harness {
	h := &Harness{
		solver: s,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes the built-in battery.
func (h *Harness) Run() *Report {
	return h.RunCases(Builtin())
}

// RunCases executes the given cases in order and aggregates a report.
func (h *Harness) RunCases(cases []Case) *Report {
	report := &Report{
		Total: len(cases),
		Cases: make([]CaseResult, 0, len(cases)),
	}

	for _, c := range cases {
		start := h.now()
		out := h.solver.Solve(c.Input)
		elapsed := h.now().Sub(start)

		result := CaseResult{
			Name:       c.Name,
			Status:     "pass",
			DurationMs: elapsed.Milliseconds(),
		}

		if failure := check(c, out); failure != "" {
			result.Status = "fail"
			result.Expected = expectation(c)
			result.Actual = fmt.Sprintf("%s (tag=%s)", out.Answer, out.Tag)
			result.Error = failure
			report.Failed++
			h.logger.Warn("diagnostic case failed",
				"case", c.Name,
				"expected", result.Expected,
				"actual", result.Actual,
			)
		} else {
			report.Passed++
			h.logger.Debug("diagnostic case passed", "case", c.Name, "duration_ms", result.DurationMs)
		}

		report.Cases = append(report.Cases, result)
	}

	h.logger.Info("diagnostics complete",
		"total", report.Total,
		"passed", report.Passed,
		"failed", report.Failed,
	)
	return report
}

// check compares an outcome against a case, returning an empty string on
// success or a description of the first mismatch.
func check(c Case, out *solver.Outcome) string {
	if out == nil {
		return "dispatcher returned no outcome"
	}
	if out.Tag != c.WantTag {
		return fmt.Sprintf("invariant tag mismatch: want %q, got %q", c.WantTag, out.Tag)
	}
	if c.WantAnswer != "" && out.Answer != c.WantAnswer {
		return fmt.Sprintf("answer mismatch: want %q, got %q", c.WantAnswer, out.Answer)
	}
	if out.Tag != "" && len(out.Steps) == 0 {
		return "successful outcome carries no derivation steps"
	}
	return ""
}

func expectation(c Case) string {
	if c.WantAnswer == "" {
		return fmt.Sprintf("any answer (tag=%s)", c.WantTag)
	}
	return fmt.Sprintf("%s (tag=%s)", c.WantAnswer, c.WantTag)
}
