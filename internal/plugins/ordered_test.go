package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/solver"
)

func TestOrdered_CanonicalDispatchOrder(t *testing.T) {
	s := NewSolver(Config{})

	assert.Equal(t, []string{
		"spectral-zeta",
		"polynomial-linear-reduction",
		"number-theory",
		"combinatorial-subset",
		"diophantine-frobenius",
		"sequences-arithmetic",
		"root-dynamics",
		"functional-equation",
	}, s.Registry().Names())
}

// The six literal end-to-end scenarios, run through the full dispatcher.
func TestSolver_KnownScenarios(t *testing.T) {
	s := NewSolver(Config{})

	testCases := []struct {
		name       string
		in         string
		wantAnswer string
		wantTag    solver.InvariantTag
	}{
		{
			"polynomial linear reduction",
			"Quadratic polynomials P(x) and Q(x) have leading coefficients 2 and -2. They pass through (16,54) and (20,53). Find P(0)+Q(0).",
			"116", solver.TagPolynomial,
		},
		{
			"frobenius boundary",
			"What is the largest integer that cannot be written as a sum of multiples of 6 and 11?",
			"49", solver.TagDiophantine,
		},
		{
			"subset intersection identity",
			"Let S = {1, 2}. Find the sum of the sizes of the intersections of all ordered pairs of subsets of S.",
			"8", solver.TagCombinatorial,
		},
		{
			"modular exponentiation",
			"What is 3^4 mod 10?",
			"1", solver.TagNumberTheory,
		},
		{
			"newton identity",
			"Find the sum of the squares of the roots of x^2 - 5x + 6 = 0.",
			"13", solver.TagRootDynamics,
		},
		{
			"genuine no-match",
			"How many apples are in a basket if I have 2 and give 1 away?",
			"0", solver.InvariantTag(""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := s.Solve(tc.in)
			require.NotNil(t, out)
			assert.Equal(t, tc.wantAnswer, out.Answer)
			assert.Equal(t, tc.wantTag, out.Tag)
			require.NotEmpty(t, out.Steps)
			if tc.wantTag == "" {
				assert.Equal(t, solver.NoMatchStep, out.Steps[0])
			}
		})
	}
}

// Adversarial input satisfying both the Polynomial and Combinatorial
// triggers: the earlier-registered Polynomial plugin must win.
func TestSolver_FirstMatchWinsOnAmbiguousInput(t *testing.T) {
	s := NewSolver(Config{})
	out := s.Solve("Quadratic polynomials with leading coefficients 1 and -1 pass through (1,2) and (3,4); " +
		"also sum intersection sizes over ordered pairs of subsets with n = 4. Find P(0)+Q(0).")

	require.NotNil(t, out)
	assert.Equal(t, solver.TagPolynomial, out.Tag, "earlier-registered plugin claims the problem")
	assert.Equal(t, "2", out.Answer)
}

func TestSolver_RepeatedSolveIsIdentical(t *testing.T) {
	s := NewSolver(Config{})
	input := "What is the largest integer that cannot be written as a sum of multiples of 6 and 11?"

	first := s.Solve(input)
	for i := 0; i < 10; i++ {
		again := s.Solve(input)
		assert.Equal(t, first.Answer, again.Answer)
		assert.Equal(t, first.Tag, again.Tag)
		assert.Equal(t, first.Steps, again.Steps)
	}
}

func TestConfig_ModulusDefault(t *testing.T) {
	assert.Equal(t, int64(DefaultModulus), Config{}.modulus())
	assert.Equal(t, int64(7), Config{Modulus: 7}.modulus())
	assert.Equal(t, int64(DefaultModulus), Config{Modulus: -1}.modulus())
}
