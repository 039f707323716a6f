package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"closedform/internal/solver"
)

var (
	firstTermPattern  = regexp.MustCompile(`first term\s*(?:is|=|of)?\s*(-?\d+)`)
	commonDiffPattern = regexp.MustCompile(`common difference\s*(?:is|=|of)?\s*(-?\d+)`)
	termCountPattern  = regexp.MustCompile(`(?:first\s+)?(\d+)\s+terms`)
)

// Sequences sums finite arithmetic series from explicit first term, common
// difference, and term count: n/2 * (2a + (n-1)d).
//
// Geometric phrasing is accepted as a trigger for historical reasons but
// has no implemented formula, so it falls through to a non-match.
type Sequences struct{}

func (p *Sequences) Name() string             { return "sequences-arithmetic" }
func (p *Sequences) Tag() solver.InvariantTag { return solver.TagSequences }

func (p *Sequences) TrySolve(text string) (*solver.Outcome, error) {
	lower := strings.ToLower(text)

	arithmetic := containsAny(lower, "arithmetic series", "arithmetic sequence", "arithmetic progression")
	geometric := containsAny(lower, "geometric series", "geometric sequence", "geometric progression")
	if !arithmetic && !geometric {
		return nil, nil
	}
	if geometric && !arithmetic {
		// Triggered but unimplemented: decline so later plugins (or the
		// fallback) get a chance.
		return nil, nil
	}

	ft := firstTermPattern.FindStringSubmatch(lower)
	cd := commonDiffPattern.FindStringSubmatch(lower)
	tc := termCountPattern.FindStringSubmatch(lower)
	if ft == nil || cd == nil || tc == nil {
		return nil, nil
	}

	a, err := strconv.ParseInt(ft[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse first term: %w", err)
	}
	d, err := strconv.ParseInt(cd[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse common difference: %w", err)
	}
	n, err := strconv.ParseInt(tc[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse term count: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("term count %d must be positive", n)
	}

	// n*(2a + (n-1)d) is always even, so integer division is exact.
	sum := n * (2*a + (n-1)*d) / 2

	out := &solver.Outcome{
		Answer: strconv.FormatInt(sum, 10),
		Tag:    p.Tag(),
	}
	out.AddStep("Arithmetic series with a = %d, d = %d, n = %d.", a, d, n)
	out.AddStep("Sum = n/2 * (2a + (n-1)d) = %d.", sum)
	return out, nil
}
