package prime

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Verify checks that seq holds consecutive primes starting at 2. Every
// violation found is reported; use multierr.Errors to split the result.
func Verify(seq *Sequence) error {
	if seq == nil || seq.Len() == 0 {
		return errors.New("empty sequence")
	}

	var err error
	if first := seq.At(0); first != 2 {
		err = multierr.Append(err, errors.Errorf("sequence starts at %d, not 2", first))
	}

	for i := 0; i < seq.Len(); i++ {
		v := seq.At(i)
		if !IsPrime(v) {
			err = multierr.Append(err, errors.Errorf("element %d (%d) is not prime", i, v))
		}
		if i == 0 {
			continue
		}

		prev := seq.At(i - 1)
		if v <= prev {
			err = multierr.Append(err, errors.Errorf("element %d (%d) does not exceed %d", i, v, prev))
			continue
		}
		for c := prev + 1; c < v; c++ {
			if IsPrime(c) {
				err = multierr.Append(err, errors.Errorf("prime %d missing between %d and %d", c, prev, v))
				break
			}
		}
	}
	return err
}
