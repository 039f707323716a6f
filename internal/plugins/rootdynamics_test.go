package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/solver"
)

func TestRootDynamics_SumOfSquares(t *testing.T) {
	p := &RootDynamics{}
	out, err := p.TrySolve("Find the sum of the squares of the roots of x^2 - 5x + 6 = 0.")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "13", out.Answer)
	assert.Equal(t, solver.TagRootDynamics, out.Tag)
}

func TestRootDynamics_SumOfRoots(t *testing.T) {
	p := &RootDynamics{}
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"negative b", "What is the sum of the roots of x^2 - 5x + 6 = 0?", "5"},
		{"positive b", "Sum of the roots of x^2 + 7x + 12 = 0.", "-7"},
		{"negative c", "Sum of the roots of x^2 + 3x - 10 = 0.", "-3"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.TrySolve(tc.in)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, tc.want, out.Answer)
		})
	}
}

func TestRootDynamics_NewtonIdentity(t *testing.T) {
	p := &RootDynamics{}
	// x^2 + 3x - 10: roots 2 and -5, squares sum to 29 = 9 + 20.
	out, err := p.TrySolve("Find the sum of the squares of the roots of x^2 + 3x - 10 = 0.")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "29", out.Answer)
}

func TestRootDynamics_Declines(t *testing.T) {
	p := &RootDynamics{}
	testCases := []struct {
		name string
		in   string
	}{
		{"no root keyword", "Solve x^2 - 5x + 6 = 0."},
		{"non-monic", "Sum of the roots of 2x^2 - 5x + 6 = 0 where the quadratic is 2x^2..."},
		{"cubic", "Sum of the roots of x^3 - 5x + 6 = 0."},
		{"unrecognized question", "Find the product of the roots of x^2 - 5x + 6 = 0."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.TrySolve(tc.in)
			require.NoError(t, err)
			assert.Nil(t, out)
		})
	}
}
