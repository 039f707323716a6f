package plugins

import (
	"regexp"
	"strconv"
	"strings"
)

// gcd returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. gcd(0, 0) is 0.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// powMod computes base^exp mod m by binary exponentiation.
// m must be > 0; exp must be >= 0.
func powMod(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	result := int64(1)
	base %= m
	if base < 0 {
		base += m
	}
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

// isPrime reports primality by trial division. Adequate for the small
// moduli the triggers extract; not intended for cryptographic sizes.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// totient computes Euler's phi by trial-division factorization.
// n must be positive.
func totient(n int64) int64 {
	result := n
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			for n%p == 0 {
				n /= p
			}
			result -= result / p
		}
	}
	if n > 1 {
		result -= result / n
	}
	return result
}

var intPattern = regexp.MustCompile(`-?\d+`)

// extractInts pulls every integer literal out of the text, in order.
// Values that overflow int64 are skipped.
func extractInts(text string) []int64 {
	var out []int64
	for _, m := range intPattern.FindAllString(text, -1) {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// containsAny reports whether text contains at least one of the needles.
// Callers pass pre-lowercased text and needles.
func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
