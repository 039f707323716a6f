package plugins

import (
	"strings"

	"closedform/internal/solver"
)

// ShiftedCauchyAnswer is the symbolic family solving the shifted Cauchy
// equation f(m + n + mn) = f(m) + f(n) + f(m)f(n): substituting
// g(x) = 1 + f(x) turns it into multiplicativity under (1+m)(1+n).
const ShiftedCauchyAnswer = "f(n) = (1 + n)^c - 1 for a constant c"

// FunctionalEquation recognizes the shifted Cauchy structure. It is the
// one inherently symbolic plugin: the answer is a formatted family of
// solutions, not an evaluated integer.
type FunctionalEquation struct{}

func (p *FunctionalEquation) Name() string             { return "functional-equation" }
func (p *FunctionalEquation) Tag() solver.InvariantTag { return solver.TagFunctionalEquation }

func (p *FunctionalEquation) TrySolve(text string) (*solver.Outcome, error) {
	// Whitespace-insensitive literal check for all three substrings.
	compact := strings.ReplaceAll(strings.ToLower(text), " ", "")
	if !strings.Contains(compact, "f(m)") ||
		!strings.Contains(compact, "f(n)") ||
		!strings.Contains(compact, "f(m+n+mn)") {
		return nil, nil
	}

	out := &solver.Outcome{
		Answer: ShiftedCauchyAnswer,
		Tag:    p.Tag(),
	}
	out.AddStep("Recognized the shifted Cauchy equation f(m + n + mn) = f(m) + f(n) + f(m)f(n).")
	out.AddStep("Substituting g(x) = 1 + f(x) gives g(m + n + mn) = g(m)g(n), i.e. g((1+m)(1+n) - 1) = g(m)g(n).")
	out.AddStep("So g(x) = (1 + x)^c and %s.", ShiftedCauchyAnswer)
	out.AddLog(solver.SeverityInfo, "symbolic answer; no numeric evaluation")
	return out, nil
}
