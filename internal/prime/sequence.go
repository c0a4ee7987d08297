package prime

import (
	"math"

	"github.com/pkg/errors"
)

// MaxCount is the number of primes representable as an int32. The last of
// them is math.MaxInt32 itself.
const MaxCount = 105_097_565

var (
	ErrInvalidCount  = errors.New("prime count out of range")
	ErrSequenceFull  = errors.New("sequence is full")
	ErrNotIncreasing = errors.New("value does not exceed the last element")
	ErrOutOfRange    = errors.New("value does not fit in 32 bits")
)

// Sequence is an ordered, fixed-capacity buffer of primes seeded with 2.
// Storage is allocated once by NewSequence; once Full, the sequence no
// longer changes. The zero value is not usable.
type Sequence struct {
	values []int32
}

// CheckCount returns ErrInvalidCount unless 1 <= n <= MaxCount.
func CheckCount(n int) error {
	if n < 1 || n > MaxCount {
		return errors.Wrapf(ErrInvalidCount, "%d not in [1, %d]", n, MaxCount)
	}
	return nil
}

// NewSequence allocates a sequence with capacity n holding the single
// element 2.
func NewSequence(n int) (*Sequence, error) {
	if err := CheckCount(n); err != nil {
		return nil, err
	}
	values := make([]int32, 1, n)
	values[0] = 2
	return &Sequence{values: values}, nil
}

// Append adds p to the end of the sequence. It does not test primality;
// see Verify for that.
func (s *Sequence) Append(p int) error {
	switch {
	case s.Full():
		return ErrSequenceFull
	case p <= s.Last():
		return errors.Wrapf(ErrNotIncreasing, "%d after %d", p, s.Last())
	case p > math.MaxInt32:
		return errors.Wrapf(ErrOutOfRange, "%d", p)
	}
	s.push(p)
	return nil
}

// push appends without checks. Callers guarantee the invariants.
func (s *Sequence) push(p int) {
	s.values = append(s.values, int32(p))
}

func (s *Sequence) Len() int   { return len(s.values) }
func (s *Sequence) Cap() int   { return cap(s.values) }
func (s *Sequence) Full() bool { return len(s.values) == cap(s.values) }

// At returns the i-th element, counting from 0.
func (s *Sequence) At(i int) int { return int(s.values[i]) }

// Last returns the largest element, which is the Len()-th prime once the
// sequence has been collected.
func (s *Sequence) Last() int { return int(s.values[len(s.values)-1]) }

// Values returns a copy of the elements.
func (s *Sequence) Values() []int {
	out := make([]int, len(s.values))
	for i, v := range s.values {
		out[i] = int(v)
	}
	return out
}
