package casefile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/symcheck/pkg/symbols"
	"golang.org/x/sync/errgroup"
)

// ErrCaseFailed is returned by Run in fail-fast mode once a case fails.
var ErrCaseFailed = errors.New("case failed")

// Result is the outcome of one case.
type Result struct {
	Name    string `json:"name"`
	Mode    string `json:"mode"`
	Expect  string `json:"expect"`
	Outcome string `json:"outcome"` // ok or a symbols.Kind code
	Message string `json:"message,omitempty"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
}

// RunOptions configures Run.
type RunOptions struct {
	Jobs     int  // Maximum cases validated at once (<= 0 means 1)
	FailFast bool // Stop scheduling cases after the first failure
	Logger   *slog.Logger
}

// Run validates every case of f and returns one Result per case, in file order.
// Cases that were not run because of fail-fast or cancellation are marked
// Skipped. The returned error is ErrCaseFailed in fail-fast mode, or the
// context error on cancellation.
func Run(ctx context.Context, f *File, opts RunOptions) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]Result, len(f.Cases))
	for i, c := range f.Cases {
		results[i] = Result{Name: c.Name, Mode: c.Mode(), Expect: expectation(c), Skipped: true}
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, c := range f.Cases {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if egctx.Err() != nil {
				return nil
			}
			res := evaluate(c, f.ReferenceFor(c))
			results[i] = res
			logger.Debug("case evaluated", "case", res.Name, "outcome", res.Outcome, "passed", res.Passed)

			if !res.Passed && opts.FailFast {
				return ErrCaseFailed
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func evaluate(c Case, reference symbols.Set) Result {
	res := Result{Name: c.Name, Mode: c.Mode(), Expect: expectation(c), Outcome: ExpectOK}
	if err := c.Check(reference); err != nil {
		res.Message = err.Error()
		if kind, ok := symbols.KindOf(err); ok {
			res.Outcome = kind.String()
		}
	}
	res.Passed = res.Outcome == res.Expect
	return res
}

func expectation(c Case) string {
	if c.Expect == "" {
		return ExpectOK
	}
	return strings.ToLower(c.Expect)
}

// Failed returns the number of results that ran and did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Skipped && !r.Passed {
			n++
		}
	}
	return n
}
