package commands

import (
	"github.com/leapstack-labs/symcheck/pkg/symbols"
	"github.com/spf13/cobra"
)

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols [name...]",
		Short: "Check a list of symbols against the reference set",
		Long: `Check that the given symbol names match the reference set exactly.

Every reference symbol must appear once and no other symbol may appear.
Failures are reported in this order of precedence:
  - duplicate_symbol: a name was given more than once
  - missing_symbol:   reference symbols were not given
  - extra_symbol:     names outside the reference set were given`,
		Example: `  # Reference set from the flag
  symcheck symbols --symbols A,B,C A B C

  # Reference set from symcheck.yaml
  symcheck symbols A B

  # Output as JSON
  symcheck symbols -s op,rand rand -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd, args)
		},
	}
}

func runSymbols(cmd *cobra.Command, names []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	reference := cmdCtx.Cfg.Reference()

	if reference.Len() == 0 {
		r.Warning("no reference symbols configured (use --symbols or symcheck.yaml)")
	}

	cmdCtx.Logger.Debug("reconciling symbols", "candidate", names, "reference", reference.Sorted())
	return renderValidation(r, "symbols", reference, symbols.Reconcile(names, reference))
}
