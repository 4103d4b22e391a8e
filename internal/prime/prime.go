// Package prime provides an exact primality test for 64-bit integers.
package prime

import "math/bits"

var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. The result is exact for every uint64.
//
// Inputs are first checked against the small primes; what survives goes
// through Miller-Rabin with the first twelve primes as witnesses, which has
// no pseudoprimes below 2^64.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	if n < 41*41 {
		return true
	}

	d := n - 1
	r := bits.TrailingZeros64(d)
	d >>= uint(r)

	for _, a := range smallPrimes {
		if !witnessPasses(a, d, r, n) {
			return false
		}
	}
	return true
}

// witnessPasses runs one Miller-Rabin round for n-1 = d*2^r.
func witnessPasses(a, d uint64, r int, n uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < r; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
