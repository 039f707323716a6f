package diag

import "closedform/internal/solver"

// Builtin returns the fixed regression battery, in a stable order. Every
// case resolves through a deterministic plugin (or the deterministic
// no-match sentinel); none targets the external fallback.
func Builtin() []Case {
	return []Case{
		{
			Name:       "polynomial_linear_reduction",
			Input:      "Quadratic polynomials P(x) and Q(x) have leading coefficients 2 and -2. They pass through (16,54) and (20,53). Find P(0)+Q(0).",
			WantAnswer: "116",
			WantTag:    solver.TagPolynomial,
		},
		{
			Name:       "polynomial_degenerate_shared_x",
			Input:      "Quadratic polynomials with leading coefficients 1 and 1 pass through (2,10) and (2,10). Find P(0)+Q(0).",
			WantAnswer: "12",
			WantTag:    solver.TagPolynomial,
		},
		{
			Name:       "frobenius_coprime",
			Input:      "What is the largest integer that cannot be written as a sum of multiples of 6 and 11?",
			WantAnswer: "49",
			WantTag:    solver.TagDiophantine,
		},
		{
			Name:       "frobenius_non_coprime_infinity",
			Input:      "Find the largest integer that cannot be formed from 6 and 9.",
			WantAnswer: "Infinity",
			WantTag:    solver.TagDiophantine,
		},
		{
			Name:       "subset_intersection_identity",
			Input:      "Let S = {1, 2}. Find the sum of the sizes of the intersections of all ordered pairs of subsets of S.",
			WantAnswer: "8",
			WantTag:    solver.TagCombinatorial,
		},
		{
			Name:       "modular_exponentiation",
			Input:      "What is 3^4 mod 10?",
			WantAnswer: "1",
			WantTag:    solver.TagNumberTheory,
		},
		{
			Name:       "lucas_binomial_mod_prime",
			Input:      "Compute C(10, 3) mod 7.",
			WantAnswer: "1",
			WantTag:    solver.TagNumberTheory,
		},
		{
			Name:       "euler_totient",
			Input:      "What is the totient of 100?",
			WantAnswer: "40",
			WantTag:    solver.TagNumberTheory,
		},
		{
			Name:       "newton_sum_of_squares",
			Input:      "Find the sum of the squares of the roots of x^2 - 5x + 6 = 0.",
			WantAnswer: "13",
			WantTag:    solver.TagRootDynamics,
		},
		{
			Name:       "vieta_sum_of_roots",
			Input:      "What is the sum of the roots of x^2 - 5x + 6 = 0?",
			WantAnswer: "5",
			WantTag:    solver.TagRootDynamics,
		},
		{
			Name:       "arithmetic_series_sum",
			Input:      "Sum the first 100 terms of the arithmetic series with first term 1 and common difference 1.",
			WantAnswer: "5050",
			WantTag:    solver.TagSequences,
		},
		{
			Name:       "shifted_cauchy_symbolic",
			Input:      "Suppose f(m + n + mn) = f(m) + f(n) + f(m)f(n) for all positive integers m, n. Describe f.",
			WantAnswer: "f(n) = (1 + n)^c - 1 for a constant c",
			WantTag:    solver.TagFunctionalEquation,
		},
		{
			// Floating-point heuristic: pin the tag, not the formatting.
			Name:    "spectral_zeta_heuristic",
			Input:   "Evaluate the zeta sum on the critical line at t = 14.1347",
			WantTag: solver.TagSpectralZeta,
		},
		{
			Name:       "no_match_sentinel",
			Input:      "How many apples are in a basket if I have 2 and give 1 away?",
			WantAnswer: "0",
			WantTag:    "",
		},
	}
}
