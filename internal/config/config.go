// Package config holds the generation parameters.
package config

import (
	"github.com/pkg/errors"

	"github.com/1ureka/nthprime/internal/prime"
)

// DefaultCount is the number of primes generated by the CLI.
const DefaultCount = 1_000_000

// Config stores all parameters of a run. There are no flags or environment
// variables; values are fixed when the binary is built.
type Config struct {
	Count  int  // how many primes to generate; the last one is reported
	Verify bool // re-check the finished sequence before reporting
}

// Default returns the configuration used by the CLI.
func Default() Config {
	return Config{Count: DefaultCount}
}

// Validate rejects counts whose primes would not fit the 32-bit storage.
func (c Config) Validate() error {
	return errors.Wrap(prime.CheckCount(c.Count), "count")
}
