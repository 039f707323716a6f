package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/rat"
	"closedform/internal/solver"
)

var (
	leadingPattern = regexp.MustCompile(`leading coefficients?\s+(?:of\s+)?(-?\d+)\s+and\s+(-?\d+)`)
	pointPattern   = regexp.MustCompile(`\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)
	targetPattern  = regexp.MustCompile(`[PpQq]\s*\(\s*(-?\d+)\s*\)\s*\+\s*[PpQq]\s*\(\s*(-?\d+)\s*\)`)
)

// Polynomial solves the two-quadratic linear-reduction problem: given the
// leading coefficients of P and Q and two shared points, eliminate the
// unknown linear and constant terms by exact-fraction arithmetic and
// evaluate P(x)+Q(x) at the requested target.
//
// All intermediate values are rat.Fraction; results that are exact
// integers come out as exact integers with no fractional residue.
type Polynomial struct{}

func (p *Polynomial) Name() string             { return "polynomial-linear-reduction" }
func (p *Polynomial) Tag() solver.InvariantTag { return solver.TagPolynomial }

func (p *Polynomial) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)
	if !containsAny(lower, "quadratic", "polynomial") {
		return nil, nil
	}

	lead := leadingPattern.FindStringSubmatch(lower)
	points := pointPattern.FindAllStringSubmatch(text, -1)
	if lead == nil || len(points) < 2 {
		return nil, nil
	}

	a1, err := strconv.ParseInt(lead[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse leading coefficient %q: %w", lead[1], err)
	}
	a2, err := strconv.ParseInt(lead[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse leading coefficient %q: %w", lead[2], err)
	}

	x1, y1, err := parsePoint(points[0])
	if err != nil {
		return nil, err
	}
	x2, y2, err := parsePoint(points[1])
	if err != nil {
		return nil, err
	}

	// P(x)+Q(x) = A*x^2 + s*x + c with A = a1+a2 known. Both curves pass
	// through both points, so the sum passes through (x1, 2*y1) and
	// (x2, 2*y2). Two equations, two unknowns; eliminate by subtraction.
	a := rat.FromInt(a1 + a2)
	r1 := rat.FromInt(2 * y1).Sub(a.Mul(rat.FromInt(x1 * x1))) // s*x1 + c
	r2 := rat.FromInt(2 * y2).Sub(a.Mul(rat.FromInt(x2 * x2))) // s*x2 + c

	var s rat.Fraction
	if x1 == x2 {
		// Coincident x-coordinates: the slope term is degenerate and
		// defined as zero.
		s = rat.FromInt(0)
	} else {
		s, err = r2.Sub(r1).Div(rat.FromInt(x2 - x1))
		if err != nil {
			return nil, fmt.Errorf("slope elimination: %w", err)
		}
	}
	c := r1.Sub(s.Mul(rat.FromInt(x1)))

	target := int64(0)
	if m := targetPattern.FindStringSubmatch(text); m != nil {
		target, err = strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse evaluation target %q: %w", m[1], err)
		}
	}

	tf := rat.FromInt(target)
	value := a.Mul(tf).Mul(tf).Add(s.Mul(tf)).Add(c)

	out := &solver.Outcome{
		Answer: value.String(),
		Tag:    p.Tag(),
	}
	out.AddStep("Leading coefficients %d and %d; sum of quadratic terms has coefficient %s.", a1, a2, a.String())
	out.AddStep("Both curves pass through (%d,%d) and (%d,%d), so P+Q passes through (%d,%d) and (%d,%d).",
		x1, y1, x2, y2, x1, 2*y1, x2, 2*y2)
	out.AddStep("Eliminating: slope term s = %s, constant term c = %s.", s.String(), c.String())
	out.AddStep("P(%d)+Q(%d) = %s.", target, target, value.String())
	out.AddLog(solver.SeverityInfo, "polynomial reduction over exact fractions, target=%d", target)
	return out, nil
}

func parsePoint(m []string) (x, y int64, err error) {
	x, err = strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse point x %q: %w", m[1], err)
	}
	y, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse point y %q: %w", m[2], err)
	}
	return x, y, nil
}
