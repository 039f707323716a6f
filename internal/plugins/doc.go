// Package plugins implements the deterministic invariant recognizers and
// their canonical dispatch ordering.
//
// Each plugin encodes one closed-form identity: it fires on fixed keyword
// and regex triggers, extracts the relevant quantities, and computes an
// exact answer without search. Triggering is a heuristic router, not a
// parser - false positives and negatives on adversarial phrasing are
// expected and acceptable at this layer.
//
// The canonical priority order (see Ordered) is:
//
//	SpectralZeta -> Polynomial -> NumberTheory -> Combinatorial ->
//	Diophantine -> Sequences -> RootDynamics -> FunctionalEquation
package plugins
