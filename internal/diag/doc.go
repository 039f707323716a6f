// Package diag provides the self-verifying diagnostic harness: a fixed
// battery of input -> expected-answer regression cases run through the
// dispatcher on demand, producing a pass/fail report with per-case timing.
//
// Every built-in case targets only deterministic plugins, so the battery is
// repeatable: the same solver construction produces the same report (modulo
// durations, which a deterministic clock can also pin down for golden file
// comparison).
//
// Additional suites can be loaded from YAML files:
//
//	cases:
//	  - name: frobenius_coprime
//	    input: "Largest integer that cannot be written from 6 and 11?"
//	    want_answer: "49"
//	    want_tag: Diophantine
//
// An empty want_answer checks only the invariant tag, which is how the
// heuristic floating-point spectral case is covered without pinning float
// formatting.
package diag
