package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/solver"
)

// quadraticPattern recognizes ax^2 + bx + c = 0 with explicit signs on both
// lower-order terms. The optional leading coefficient is captured only so
// non-monic equations can be rejected - Go's regexp has no lookbehind.
var quadraticPattern = regexp.MustCompile(`(\d*)\s*x\s*\^\s*2\s*([+-])\s*(\d+)\s*x\s*([+-])\s*(\d+)\s*=\s*0`)

// RootDynamics answers root questions about monic quadratics without
// solving for the roots:
//
//   - Vieta: the roots of x^2 + bx + c sum to -b
//   - Newton's identity: the squares of the roots sum to (-b)^2 - 2c
//
// Any other root question yields no match.
type RootDynamics struct{}

func (p *RootDynamics) Name() string             { return "root-dynamics" }
func (p *RootDynamics) Tag() solver.InvariantTag { return solver.TagRootDynamics }

func (p *RootDynamics) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "root") {
		return nil, nil
	}
	m := quadraticPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil, nil
	}
	if m[1] != "" && m[1] != "1" {
		// Only monic quadratics are recognized.
		return nil, nil
	}

	b, err := signedCoefficient(m[2], m[3])
	if err != nil {
		return nil, err
	}
	c, err := signedCoefficient(m[4], m[5])
	if err != nil {
		return nil, err
	}

	sumRoots := -b
	product := c

	out := &solver.Outcome{Tag: p.Tag()}
	out.AddStep("Monic quadratic x^2 %+dx %+d = 0.", b, c)

	switch {
	case strings.Contains(lower, "sum of the squares"):
		// Newton: r1^2 + r2^2 = (r1 + r2)^2 - 2*r1*r2.
		value := sumRoots*sumRoots - 2*product
		out.Answer = strconv.FormatInt(value, 10)
		out.AddStep("Vieta: r1 + r2 = %d, r1 * r2 = %d.", sumRoots, product)
		out.AddStep("Newton's identity: r1^2 + r2^2 = (r1+r2)^2 - 2*r1*r2 = %d.", value)
	case strings.Contains(lower, "sum of the roots"):
		out.Answer = strconv.FormatInt(sumRoots, 10)
		out.AddStep("Vieta: r1 + r2 = -b = %d.", sumRoots)
	default:
		// Product-of-roots and anything fancier is not recognized.
		return nil, nil
	}

	out.AddLog(solver.SeverityInfo, "vieta relations for monic quadratic")
	return out, nil
}

// signedCoefficient combines a sign capture with a magnitude capture.
func signedCoefficient(sign, magnitude string) (int64, error) {
	v, err := strconv.ParseInt(magnitude, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse coefficient %q: %w", magnitude, err)
	}
	if sign == "-" {
		v = -v
	}
	return v, nil
}
