package plugins

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/solver"
)

// spectralTerms is the fixed truncation depth of the Dirichlet partial sum.
// Bounded local computation: this is the longest-running plugin and is O(1)
// relative to input size.
const spectralTerms = 400

// defaultOrdinate is the ordinate of the first non-trivial zeta zero, used
// when no frequency can be parsed from the text.
const defaultOrdinate = 14.1347

var ordinatePattern = regexp.MustCompile(`t\s*=\s*(\d+(?:\.\d+)?)`)

// SpectralZeta scores a frequency against a truncated Dirichlet series on
// the critical line. Unlike every other plugin it works in floating point
// on purpose: the score is a numerical heuristic, not an exact identity,
// and it proves nothing about zeta.
type SpectralZeta struct{}

func (p *SpectralZeta) Name() string             { return "spectral-zeta" }
func (p *SpectralZeta) Tag() solver.InvariantTag { return solver.TagSpectralZeta }

func (p *SpectralZeta) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)
	if !containsAny(lower, "zeta sum", "riemann", "critical line", "zeta zero", "dirichlet") {
		return nil, nil
	}

	t := defaultOrdinate
	parsed := false
	if m := ordinatePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			t = v
			parsed = true
		}
	}

	// Partial sum of n^(-1/2) * cos(t * ln n) over the first 400 terms.
	var sum float64
	for n := 1; n <= spectralTerms; n++ {
		sum += math.Cos(t*math.Log(float64(n))) / math.Sqrt(float64(n))
	}

	var score float64
	if sum != 0 {
		score = 1 / math.Abs(sum)
	} else {
		score = math.Inf(1)
	}

	out := &solver.Outcome{
		Answer: strconv.FormatFloat(score, 'f', 6, 64),
		Tag:    p.Tag(),
	}
	if parsed {
		out.AddStep("Frequency t = %g extracted from the statement.", t)
	} else {
		out.AddStep("No frequency found; defaulting to t = %g (first non-trivial zeta zero ordinate).", t)
	}
	out.AddStep("Partial Dirichlet sum over %d terms: sum = %.6f.", spectralTerms, sum)
	out.AddStep("Resonance score 1/|sum| = %.6f.", score)
	out.AddLog(solver.SeverityInfo, "spectral heuristic evaluated at t=%g", t)
	return out, nil
}
