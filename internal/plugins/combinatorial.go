package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/solver"
)

var (
	subscriptNPattern = regexp.MustCompile(`[Ss]_\{?(\d+)\}?`)
	explicitNPattern  = regexp.MustCompile(`\bn\s*=\s*(\d+)`)
	literalSetPattern = regexp.MustCompile(`=\s*\{([^{}]*)\}`)
	setOfNPattern     = regexp.MustCompile(`set (?:of|with) (\d+) elements`)
)

// Combinatorial applies the subset-intersection identity: over all ordered
// pairs (A, B) of subsets of an n-element set, the sizes of A intersect B
// sum to n * 4^(n-1). The result is reduced modulo the configured display
// modulus.
//
// n is resolved from the first of several textual patterns that succeeds:
// an explicit subscript (S_n), an explicit "n = ...", a literal set whose
// elements can be counted, or "set of N elements" phrasing.
type Combinatorial struct {
	// Modulus reduces the final answer. Must be positive.
	Modulus int64
}

func (p *Combinatorial) Name() string             { return "combinatorial-subset" }
func (p *Combinatorial) Tag() solver.InvariantTag { return solver.TagCombinatorial }

func (p *Combinatorial) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)
	if !containsAny(lower, "subset", "intersect", "set s") {
		return nil, nil
	}

	n, how, ok := resolveSetSize(text)
	if !ok {
		return nil, nil
	}
	if n < 1 {
		return nil, fmt.Errorf("set size %d out of range", n)
	}
	mod := p.Modulus
	if mod <= 0 {
		mod = DefaultModulus
	}

	// n * 4^(n-1) mod m, entirely in modular arithmetic so large n cannot
	// overflow.
	value := n % mod * powMod(4, n-1, mod) % mod

	out := &solver.Outcome{
		Answer: strconv.FormatInt(value, 10),
		Tag:    p.Tag(),
	}
	out.AddStep("Resolved n = %d (%s).", n, how)
	out.AddStep("Sum of |A intersect B| over ordered subset pairs = n * 4^(n-1).")
	out.AddStep("%d * 4^%d = %d (mod %d).", n, n-1, value, mod)
	out.AddLog(solver.SeverityInfo, "subset identity with modulus %d", mod)
	return out, nil
}

// resolveSetSize tries the n-extraction patterns in fixed order and returns
// the first hit along with a human-readable description of which pattern
// fired.
func resolveSetSize(text string) (n int64, how string, ok bool) {
	if m := subscriptNPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return v, "explicit subscript", true
		}
	}
	if m := explicitNPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return v, "explicit n =", true
		}
	}
	if m := literalSetPattern.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if inner == "" {
			return 0, "", false
		}
		return int64(len(strings.Split(inner, ","))), "literal set cardinality", true
	}
	if m := setOfNPattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return v, "stated element count", true
		}
	}
	return 0, "", false
}
