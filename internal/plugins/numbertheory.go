package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/solver"
)

var (
	binomPattern = regexp.MustCompile(`(?i)(?:C\s*\(\s*(\d+)\s*,\s*(\d+)\s*\)|(\d+)\s+choose\s+(\d+)|binom\s*\(\s*(\d+)\s*,\s*(\d+)\s*\))\s*(?:mod(?:ulo)?|%)\s*(\d+)`)
	powerPattern = regexp.MustCompile(`(\d+)\s*\^\s*(\d+)\s*(?:mod(?:ulo)?|%)\s*(\d+)`)
	phiPattern   = regexp.MustCompile(`(?:totient of|phi\s*\(\s*|coprime to)\s*(\d+)`)
)

// NumberTheory handles three families of modular questions:
//
//   - binomial coefficients modulo a prime, by Lucas's theorem with
//     modular inverses from Fermat's little theorem
//   - plain modular exponentiation a^b mod m, by binary exponentiation
//   - Euler totient / coprime-count questions, by trial division
//
// The Lucas branch assumes the extracted modulus is prime; this is
// unchecked, matching the identity's precondition.
type NumberTheory struct{}

func (p *NumberTheory) Name() string             { return "number-theory" }
func (p *NumberTheory) Tag() solver.InvariantTag { return solver.TagNumberTheory }

func (p *NumberTheory) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)

	if m := binomPattern.FindStringSubmatch(text); m != nil {
		return p.solveBinomial(m)
	}
	if m := powerPattern.FindStringSubmatch(text); m != nil {
		return p.solvePower(m)
	}
	if containsAny(lower, "totient", "coprime", "relatively prime") {
		if m := phiPattern.FindStringSubmatch(lower); m != nil {
			return p.solveTotient(m[1])
		}
		// Phrasing without an anchor ("integers up to 60 coprime with 60"):
		// fall back to the last integer in the statement.
		if ints := extractInts(lower); len(ints) > 0 && ints[len(ints)-1] > 0 {
			return p.solveTotient(strconv.FormatInt(ints[len(ints)-1], 10))
		}
	}
	return nil, nil
}

func (p *NumberTheory) solveBinomial(m []string) (*solver.Outcome, error) {
	// The alternation leaves n,k in one of three capture pairs.
	pick := func(idxs ...int) string {
		for _, i := range idxs {
			if m[i] != "" {
				return m[i]
			}
		}
		return ""
	}
	n, err := strconv.ParseInt(pick(1, 3, 5), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse binomial n: %w", err)
	}
	k, err := strconv.ParseInt(pick(2, 4, 6), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse binomial k: %w", err)
	}
	mod, err := strconv.ParseInt(m[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse binomial modulus: %w", err)
	}
	if mod < 2 {
		return nil, fmt.Errorf("binomial modulus %d out of range", mod)
	}

	value := lucas(n, k, mod)
	out := &solver.Outcome{
		Answer: strconv.FormatInt(value, 10),
		Tag:    p.Tag(),
	}
	out.AddStep("Recognized C(%d, %d) mod %d.", n, k, mod)
	out.AddStep("Lucas's theorem: decompose both arguments base %d and multiply digit binomials.", mod)
	out.AddStep("C(%d, %d) = %d (mod %d).", n, k, value, mod)
	out.AddLog(solver.SeverityInfo, "lucas decomposition base %d", mod)
	if !isPrime(mod) {
		// Lucas assumes a prime modulus. Compute anyway, but flag it.
		out.AddLog(solver.SeverityWarn, "modulus %d is not prime; Lucas precondition violated", mod)
	}
	return out, nil
}

func (p *NumberTheory) solvePower(m []string) (*solver.Outcome, error) {
	base, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse power base: %w", err)
	}
	exp, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse power exponent: %w", err)
	}
	mod, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse power modulus: %w", err)
	}
	if mod < 1 {
		return nil, fmt.Errorf("power modulus %d out of range", mod)
	}

	value := powMod(base, exp, mod)
	out := &solver.Outcome{
		Answer: strconv.FormatInt(value, 10),
		Tag:    p.Tag(),
	}
	out.AddStep("Recognized modular exponentiation %d^%d mod %d.", base, exp, mod)
	out.AddStep("Binary exponentiation: %d^%d = %d (mod %d).", base, exp, value, mod)
	return out, nil
}

func (p *NumberTheory) solveTotient(raw string) (*solver.Outcome, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse totient argument: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("totient argument %d must be positive", n)
	}

	value := totient(n)
	out := &solver.Outcome{
		Answer: strconv.FormatInt(value, 10),
		Tag:    p.Tag(),
	}
	out.AddStep("Recognized an Euler totient question for n = %d.", n)
	out.AddStep("Trial-division factorization gives phi(%d) = %d.", n, value)
	return out, nil
}

// lucas computes C(n, k) mod p for prime p via base-p digit decomposition.
func lucas(n, k, p int64) int64 {
	if k == 0 {
		return 1
	}
	return lucas(n/p, k/p, p) * binomialModPrime(n%p, k%p, p) % p
}

// binomialModPrime computes C(n, k) mod p for 0 <= n, k < p, using
// factorials and a Fermat inverse.
func binomialModPrime(n, k, p int64) int64 {
	if k > n {
		return 0
	}
	num, den := int64(1), int64(1)
	for i := int64(0); i < k; i++ {
		num = num * ((n - i) % p) % p
		den = den * ((i + 1) % p) % p
	}
	// Fermat: den^(p-2) is den's inverse mod prime p.
	return num * powMod(den, p-2, p) % p
}
