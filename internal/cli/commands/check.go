package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/symcheck/internal/casefile"
	"github.com/leapstack-labs/symcheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// ErrCasesFailed is returned when at least one case of a case file fails.
var ErrCasesFailed = errors.New("case file has failing cases")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Jobs     int  // Concurrent cases (0 uses the configured value)
	FailFast bool // Stop after the first failing case
}

// CheckOutput is the JSON output for the check command.
type CheckOutput struct {
	File    string            `json:"file"`
	Results []casefile.Result `json:"results"`
	Passed  int               `json:"passed"`
	Failed  int               `json:"failed"`
	Skipped int               `json:"skipped"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Run the validation cases of a YAML case file",
		Long: `Run every case of a YAML case file and report the outcomes.

A case gives either a symbol list (checked like 'symcheck symbols') or a
map of values (checked like 'symcheck values'). The file's top-level
'symbols' list is the reference set; a case may override it with
'reference'. When the file has no reference set the configured one is used.

A case passes when its outcome matches 'expect' (default: ok).

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable format`,
		Example: `  # Run all cases
  symcheck check cases.yaml

  # Stop at the first failing case
  symcheck check cases.yaml --fail-fast --jobs 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of cases validated concurrently (default from config)")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "Stop after the first failing case")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	f, err := casefile.Load(path)
	if err != nil {
		return err
	}
	if f.Symbols == nil {
		f.Symbols = cfg.Symbols
	}

	jobs := cfg.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	cmdCtx.Logger.Info("running case file", "file", path, "cases", len(f.Cases), "jobs", jobs)
	results, err := casefile.Run(cmd.Context(), f, casefile.RunOptions{
		Jobs:     jobs,
		FailFast: opts.FailFast,
		Logger:   cmdCtx.Logger,
	})
	if err != nil && !errors.Is(err, casefile.ErrCaseFailed) {
		return err
	}

	summary := summarize(path, results)
	if err := renderCheck(r, summary); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, summary.Failed, len(results))
	}
	return nil
}

func summarize(path string, results []casefile.Result) CheckOutput {
	out := CheckOutput{File: path, Results: results, Failed: casefile.Failed(results)}
	for _, res := range results {
		switch {
		case res.Skipped:
			out.Skipped++
		case res.Passed:
			out.Passed++
		}
	}
	return out
}

func resultStatus(res casefile.Result) string {
	switch {
	case res.Skipped:
		return "SKIP"
	case res.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

func renderCheck(r *output.Renderer, summary CheckOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	rows := make([][]string, 0, len(summary.Results))
	for i, res := range summary.Results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			res.Name,
			res.Mode,
			res.Expect,
			res.Outcome,
			resultStatus(res),
		})
	}
	r.Table([]string{"#", "Case", "Input", "Expect", "Outcome", "Result"}, rows)
	r.Println("")

	for _, res := range summary.Results {
		if !res.Skipped && !res.Passed && res.Message != "" {
			r.Failure(res.Name, res.Message)
		}
	}

	line := fmt.Sprintf("%d passed, %d failed, %d skipped", summary.Passed, summary.Failed, summary.Skipped)
	if summary.Failed == 0 {
		r.Success(line)
	} else {
		r.Println(line)
	}
	return nil
}
