package prime

import "time"

// Stats describes a single collection run.
type Stats struct {
	Candidates int           // integers passed to IsPrime
	Found      int           // primes appended during the run
	Elapsed    time.Duration // wall time spent in the search loop
}

// Collect fills seq with consecutive primes until it is full. The candidate
// starts one past the last element (3 for a fresh sequence) and advances by
// one after every test. The loop ends only when seq is full.
func Collect(seq *Sequence) Stats {
	var st Stats
	start := time.Now()

	for candidate := seq.Last() + 1; !seq.Full(); candidate++ {
		if IsPrime(candidate) {
			seq.push(candidate)
			st.Found++
		}
		st.Candidates++
	}

	st.Elapsed = time.Since(start)
	return st
}

// Generate returns the first n primes in increasing order.
func Generate(n int) (*Sequence, Stats, error) {
	seq, err := NewSequence(n)
	if err != nil {
		return nil, Stats{}, err
	}
	return seq, Collect(seq), nil
}
