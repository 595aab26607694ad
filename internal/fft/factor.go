package fft

// factorize splits n into the radices used by the mixed-radix kernel.
// Radix 4 is taken first, then 2, then odd factors in increasing order.
// factorize(1) returns nil.
func factorize(n int) []int {
	var factors []int

	for n%4 == 0 {
		factors = append(factors, 4)
		n /= 4
	}

	for p := 2; n > 1; {
		if p*p > n {
			factors = append(factors, n)
			break
		}

		if n%p == 0 {
			factors = append(factors, p)
			n /= p

			continue
		}

		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}

	return factors
}

func maxFactor(factors []int) int {
	m := 1
	for _, f := range factors {
		if f > m {
			m = f
		}
	}

	return m
}
