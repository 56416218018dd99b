package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/symcheck/pkg/symbols"
	"github.com/spf13/cobra"
)

// ValuesOptions holds options for the values command.
type ValuesOptions struct {
	Strict bool // Require a value for every reference symbol
}

// NewValuesCommand creates the values command.
func NewValuesCommand() *cobra.Command {
	opts := &ValuesOptions{}
	cmd := &cobra.Command{
		Use:   "values [NAME=VALUE...]",
		Short: "Check symbol values against the reference set",
		Long: `Check that every NAME is a reference symbol and every VALUE is Boolean.

Accepted values are 1, 0, true and false (case-insensitive). Validation stops
at the first offending pair, visiting names in sorted order:
  - extra_symbol:          NAME is not in the reference set
  - invalid_boolean_value: VALUE is not a Boolean value

Reference symbols without a value are accepted unless --strict is given.`,
		Example: `  # Partial assignment
  symcheck values -s A,B A=1

  # Every symbol must be assigned
  symcheck values -s A,B --strict A=true B=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Require a value for every reference symbol")

	return cmd
}

func runValues(cmd *cobra.Command, pairs []string, opts *ValuesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	reference := cmdCtx.Cfg.Reference()

	candidate, err := symbols.ParseAssignment(pairs)
	if errors.Is(err, symbols.ErrMalformedPair) {
		return fmt.Errorf("invalid argument: %w", err)
	}
	if err != nil {
		return renderValidation(r, "values", reference, err)
	}

	if reference.Len() == 0 {
		r.Warning("no reference symbols configured (use --symbols or symcheck.yaml)")
	}

	validate := symbols.ValidateMapping
	if opts.Strict {
		validate = symbols.ValidateAssignment
	}

	cmdCtx.Logger.Debug("validating values", "pairs", len(candidate), "strict", opts.Strict)
	return renderValidation(r, "values", reference, validate(candidate, reference))
}
