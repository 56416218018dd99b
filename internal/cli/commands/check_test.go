package commands

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/symcheck/internal/casefile"
	"github.com/leapstack-labs/symcheck/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []casefile.Result {
	return []casefile.Result{
		{Name: "complete", Mode: "symbols", Expect: "ok", Outcome: "ok", Passed: true},
		{Name: "short", Mode: "symbols", Expect: "ok", Outcome: "missing_symbol",
			Message: `did not receive value for the following symbols: "C"`},
		{Name: "later", Mode: "values", Expect: "ok", Skipped: true},
	}
}

func TestSummarize(t *testing.T) {
	s := summarize("cases.yaml", sampleResults())

	assert.Equal(t, "cases.yaml", s.File)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Skipped)
}

func TestRenderCheckMarkdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()
	require.NoError(t, renderCheck(tr.Renderer, summarize("cases.yaml", sampleResults())))

	out := tr.Output()
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "| # | Case | Input | Expect | Outcome | Result |")
	assert.Contains(t, out, "| 2 | short | symbols | ok | missing_symbol | FAIL |")
	assert.Contains(t, out, "| 3 | later | values | ok |  | SKIP |")
	assert.Contains(t, out, `**short:** did not receive value`)
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped")
}

func TestRenderCheckJSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()
	require.NoError(t, renderCheck(tr.Renderer, summarize("cases.yaml", sampleResults())))

	var got CheckOutput
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "missing_symbol", got.Results[1].Outcome)
}

func TestResultStatus(t *testing.T) {
	results := sampleResults()
	assert.Equal(t, "PASS", resultStatus(results[0]))
	assert.Equal(t, "FAIL", resultStatus(results[1]))
	assert.Equal(t, "SKIP", resultStatus(results[2]))
}
