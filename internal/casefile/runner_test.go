package casefile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/leapstack-labs/symcheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	results, err := Run(context.Background(), f, RunOptions{Jobs: 4, Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, r := range results {
		assert.True(t, r.Passed, "case %q: outcome %s, expect %s (%s)", r.Name, r.Outcome, r.Expect, r.Message)
		assert.False(t, r.Skipped)
	}
	assert.Equal(t, "duplicate_symbol", results[1].Outcome)
	assert.Equal(t, "invalid_boolean_value", results[3].Outcome)
	assert.Contains(t, results[3].Message, `"maybe" passed as value for "A"`)
	assert.Equal(t, 0, Failed(results))
}

func TestRunReportsUnexpectedOutcome(t *testing.T) {
	f, err := Decode(strings.NewReader(`
symbols: [A, B]
cases:
  - name: missing
    symbols: [A]
  - name: extra
    values: {A: 1, C: 0}
    expect: ok
`))
	require.NoError(t, err)

	results, err := Run(context.Background(), f, RunOptions{})
	require.NoError(t, err)

	assert.False(t, results[0].Passed)
	assert.Equal(t, "missing_symbol", results[0].Outcome)
	assert.False(t, results[1].Passed)
	assert.Equal(t, "extra_symbol", results[1].Outcome)
	assert.Equal(t, 2, Failed(results))
}

func TestRunFailFast(t *testing.T) {
	var b strings.Builder
	b.WriteString("symbols: [A]\ncases:\n  - name: first\n    values: {A: 2}\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "  - name: c%d\n    symbols: [A]\n", i)
	}
	f, err := Decode(strings.NewReader(b.String()))
	require.NoError(t, err)

	results, err := Run(context.Background(), f, RunOptions{Jobs: 1, FailFast: true})
	require.ErrorIs(t, err, ErrCaseFailed)

	assert.False(t, results[0].Passed)
	assert.False(t, results[0].Skipped)
	assert.True(t, results[len(results)-1].Skipped, "cases after the failure should not run")
	assert.Equal(t, 1, Failed(results))
}

func TestRunCancelled(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, f, RunOptions{Jobs: 2})
	assert.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.True(t, r.Skipped)
	}
}
