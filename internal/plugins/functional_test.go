package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/solver"
)

func TestFunctionalEquation_ShiftedCauchy(t *testing.T) {
	p := &FunctionalEquation{}
	out, err := p.TrySolve("Suppose f(m + n + mn) = f(m) + f(n) + f(m)f(n) for all positive integers m, n. Describe f.")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, ShiftedCauchyAnswer, out.Answer)
	assert.Equal(t, solver.TagFunctionalEquation, out.Tag)
	assert.NotEmpty(t, out.Steps)
}

func TestFunctionalEquation_WhitespaceInsensitive(t *testing.T) {
	p := &FunctionalEquation{}
	out, err := p.TrySolve("f( m + n + mn ) = f( m ) + f( n ) + f( m )f( n )")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, ShiftedCauchyAnswer, out.Answer)
}

func TestFunctionalEquation_Declines(t *testing.T) {
	p := &FunctionalEquation{}
	testCases := []struct {
		name string
		in   string
	}{
		{"plain cauchy", "f(m + n) = f(m) + f(n)"},
		{"missing shifted argument", "f(m) + f(n) = something"},
		{"unrelated", "What is the largest integer that cannot be written as 6a + 11b?"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.TrySolve(tc.in)
			require.NoError(t, err)
			assert.Nil(t, out)
		})
	}
}
