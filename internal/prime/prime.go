// Package prime finds prime numbers by trial division.
package prime

// IsPrime reports whether x is prime. Divisors are tried from 2 upwards
// while i*i <= x; the bound is written as i <= x/i so it cannot overflow.
func IsPrime(x int) bool {
	if x < 2 {
		return false
	}
	for i := 2; i <= x/i; i++ {
		if x%i == 0 {
			return false
		}
	}
	return true
}
