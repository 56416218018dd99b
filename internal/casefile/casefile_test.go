package casefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/symcheck/pkg/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `
symbols: [A, B, C]
cases:
  - name: complete
    symbols: [A, B, C]
  - name: duplicate
    symbols: [A, A, B]
    reference: [A, B]
    expect: duplicate_symbol
  - values: {A: true, B: 0, C: 1.0}
    strict: true
  - name: bad value
    values: {A: maybe}
    expect: invalid_boolean_value
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, f.Symbols)
	require.Len(t, f.Cases, 4)

	assert.Equal(t, "complete", f.Cases[0].Name)
	assert.Equal(t, "symbols", f.Cases[0].Mode())

	assert.Equal(t, "case 3", f.Cases[2].Name, "unnamed cases get a positional name")
	assert.Equal(t, "values", f.Cases[2].Mode())
	assert.True(t, f.Cases[2].Strict)
	assert.Equal(t, map[string]any{"A": true, "B": 0, "C": 1.0}, f.Cases[2].Values)

	assert.Equal(t, []string{"A", "B"}, f.ReferenceFor(f.Cases[1]).Sorted())
	assert.Equal(t, []string{"A", "B", "C"}, f.ReferenceFor(f.Cases[0]).Sorted())
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "empty",
			content: "",
			wantMsg: "case file is empty",
		},
		{
			name:    "no cases",
			content: "symbols: [A]\n",
			wantMsg: "no cases defined",
		},
		{
			name:    "unknown field",
			content: "symbols: [A]\nextra: 1\ncases:\n  - symbols: [A]\n",
			wantMsg: "invalid YAML",
		},
		{
			name:    "both shapes",
			content: "cases:\n  - name: x\n    symbols: [A]\n    values: {A: 1}\n",
			wantMsg: "x: set either symbols or values, not both",
		},
		{
			name:    "no shape",
			content: "cases:\n  - name: x\n",
			wantMsg: "x: one of symbols or values is required",
		},
		{
			name:    "strict symbols",
			content: "cases:\n  - name: x\n    symbols: [A]\n    strict: true\n",
			wantMsg: "strict applies to values cases only",
		},
		{
			name:    "unknown expectation",
			content: "cases:\n  - name: x\n    symbols: [A]\n    expect: broken\n",
			wantMsg: `unknown expectation "broken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("symbols: [A]\n"), 0600))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), bad+": "), "error should name the file: %v", err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCaseCheck(t *testing.T) {
	ref := symbols.NewSet("A", "B")

	assert.NoError(t, Case{Symbols: []string{"A", "B"}}.Check(ref))
	assert.ErrorIs(t, Case{Symbols: []string{"A"}}.Check(ref), symbols.ErrMissingSymbol)
	assert.NoError(t, Case{Values: map[string]any{"A": 1}}.Check(ref))
	assert.ErrorIs(t, Case{Values: map[string]any{"A": 1}, Strict: true}.Check(ref), symbols.ErrMissingSymbol)
}
