package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/solver"
)

func TestSequences_ArithmeticSum(t *testing.T) {
	p := &Sequences{}
	testCases := []struct {
		name string
		in   string
		want string
	}{
		// 1+2+...+100
		{"unit difference", "Sum the first 100 terms of the arithmetic series with first term 1 and common difference 1.", "5050"},
		// a=3, d=4, n=10: 10/2 * (6 + 36) = 210
		{"general", "An arithmetic sequence has first term 3 and common difference 4. Find the sum of the first 10 terms.", "210"},
		// a=5, d=-2, n=6: 3 * (10 - 10) = 0
		{"negative difference", "Arithmetic progression, first term 5, common difference -2: sum of the first 6 terms?", "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.TrySolve(tc.in)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, tc.want, out.Answer)
			assert.Equal(t, solver.TagSequences, out.Tag)
		})
	}
}

func TestSequences_TaggedZeroIsNotTheSentinel(t *testing.T) {
	// A legitimate zero sum must not be confused with the dispatcher's
	// zero-and-untagged non-match sentinel.
	p := &Sequences{}
	out, err := p.TrySolve("Arithmetic progression, first term 5, common difference -2: sum of the first 6 terms?")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "0", out.Answer)
	assert.False(t, out.IsNoMatch())
}

func TestSequences_GeometricTriggerFallsThrough(t *testing.T) {
	p := &Sequences{}
	out, err := p.TrySolve("Sum the first 5 terms of the geometric series with first term 2 and common ratio 3.")

	require.NoError(t, err)
	assert.Nil(t, out, "geometric phrasing triggers but has no implemented formula")
}

func TestSequences_Declines(t *testing.T) {
	p := &Sequences{}
	testCases := []struct {
		name string
		in   string
	}{
		{"no trigger", "Sum the numbers from 1 to 100."},
		{"missing difference", "Arithmetic series with first term 3, sum of the first 10 terms."},
		{"missing count", "Arithmetic series with first term 3 and common difference 4."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.TrySolve(tc.in)
			require.NoError(t, err)
			assert.Nil(t, out)
		})
	}
}
