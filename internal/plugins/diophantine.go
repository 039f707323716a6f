package plugins

import (
	"strconv"
	"strings"

	"closedform/internal/solver"
)

// Generator bounds for the Frobenius extraction. Integers outside this
// range are assumed to be incidental (years, answers quoted in the text).
const (
	frobeniusMin = 2
	frobeniusMax = 500
)

// InfinityAnswer is the textual placeholder returned when no finite
// Frobenius number exists (non-coprime generators).
const InfinityAnswer = "Infinity"

// Diophantine computes the Frobenius boundary for two coprime generators:
// the largest integer not representable as a non-negative combination of
// a and b is a*b - a - b. More than two generators is out of scope; the
// first two qualifying integers win.
type Diophantine struct{}

func (p *Diophantine) Name() string             { return "diophantine-frobenius" }
func (p *Diophantine) Tag() solver.InvariantTag { return solver.TagDiophantine }

func (p *Diophantine) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)
	if !containsAny(lower,
		"largest integer",
		"largest number",
		"greatest integer",
		"frobenius",
		"chicken mcnugget",
		"cannot be written",
		"cannot be formed",
		"cannot be made",
	) {
		return nil, nil
	}

	var gens []int64
	for _, v := range extractInts(lower) {
		if v >= frobeniusMin && v <= frobeniusMax {
			gens = append(gens, v)
			if len(gens) == 2 {
				break
			}
		}
	}
	if len(gens) < 2 {
		return nil, nil
	}
	a, b := gens[0], gens[1]

	out := &solver.Outcome{Tag: p.Tag()}
	out.AddStep("Recognized a Frobenius boundary question with generators %d and %d.", a, b)

	if g := gcd(a, b); g != 1 {
		// Every representable value is a multiple of g, so arbitrarily
		// large integers are unrepresentable: no finite boundary.
		out.Answer = InfinityAnswer
		out.AddStep("gcd(%d, %d) = %d != 1: no finite Frobenius number exists.", a, b, g)
		out.AddLog(solver.SeverityWarn, "non-coprime generators %d, %d", a, b)
		return out, nil
	}

	value := a*b - a - b
	out.Answer = strconv.FormatInt(value, 10)
	out.AddStep("g(%d, %d) = %d*%d - %d - %d = %d.", a, b, a, b, a, b, value)
	out.AddLog(solver.SeverityInfo, "frobenius boundary for coprime pair")
	return out, nil
}
