// Package app contains the top-level orchestration of a generation run.
package app

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/1ureka/nthprime/internal/config"
	"github.com/1ureka/nthprime/internal/prime"
	"github.com/1ureka/nthprime/internal/util"
)

// Run orchestrates one generation run:
//  1. Validate the configuration
//  2. Collect the first cfg.Count primes
//  3. Optionally re-check the sequence
//  4. Write the last prime to w as a single decimal line
func Run(cfg config.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	util.LogDebug("generating the first %d primes", cfg.Count)

	seq, stats, err := prime.Generate(cfg.Count)
	if err != nil {
		return err
	}

	util.LogDebug("%s", util.FormatRun(stats.Candidates, seq.Len(), stats.Elapsed))

	if cfg.Verify {
		if err := prime.Verify(seq); err != nil {
			return errors.Wrap(err, "sequence failed verification")
		}
		util.LogDebug("verified %d primes", seq.Len())
	}

	if _, err := fmt.Fprintln(w, seq.Last()); err != nil {
		return errors.Wrap(err, "failed to write result")
	}
	return nil
}
