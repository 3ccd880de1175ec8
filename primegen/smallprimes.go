package primegen

// smallPrimes holds the first ~1000 odd primes, used for trial division
// before falling back to Solovay–Strassen. Rather than embedding a
// thousand-entry literal (as the C engine this package is modeled on
// does with its PRIMES[] array), the table is built once at package
// initialization with a plain sieve of Eratosthenes up to the 1000th
// prime (7919) — same fixed table, same trial-division behavior, without
// hand-transcribing a thousand numbers.
var smallPrimes = sieve(7919)[1:] // drop 2: candidates are always forced odd

func sieve(limit uint64) []uint64 {
	composite := make([]bool, limit+1)
	var primes []uint64
	for n := uint64(2); n <= limit; n++ {
		if composite[n] {
			continue
		}
		primes = append(primes, n)
		for m := n * n; m <= limit && n != 0; m += n {
			composite[m] = true
		}
	}
	return primes
}
