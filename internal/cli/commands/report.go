package commands

import (
	"fmt"

	"github.com/leapstack-labs/symcheck/internal/cli/output"
	"github.com/leapstack-labs/symcheck/pkg/symbols"
)

// ValidationOutput is the JSON output of the symbols and values commands.
type ValidationOutput struct {
	Mode      string       `json:"mode"` // "symbols" or "values"
	Reference []string     `json:"reference"`
	Valid     bool         `json:"valid"`
	Error     *ErrorOutput `json:"error,omitempty"`
}

// ErrorOutput describes a validation failure in JSON output.
type ErrorOutput struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Symbols []string `json:"symbols,omitempty"`
	Value   any      `json:"value,omitempty"`
}

func newErrorOutput(err error) *ErrorOutput {
	out := &ErrorOutput{Kind: "unknown", Message: err.Error()}
	if kind, ok := symbols.KindOf(err); ok {
		out.Kind = kind.String()
	}

	switch e := err.(type) {
	case *symbols.DuplicateSymbolError:
		out.Symbols = e.Symbols
	case *symbols.MissingSymbolError:
		out.Symbols = e.Symbols
	case *symbols.ExtraSymbolError:
		out.Symbols = e.Symbols
	case *symbols.InvalidBooleanValueError:
		out.Symbols = []string{e.Symbol}
		out.Value = e.Value
	}
	return out
}

// renderValidation renders the outcome of a single validation and returns an
// error wrapping the validation error when it failed.
func renderValidation(r *output.Renderer, mode string, reference symbols.Set, verr error) error {
	if r.EffectiveMode() == output.ModeJSON {
		res := ValidationOutput{
			Mode:      mode,
			Reference: reference.Sorted(),
			Valid:     verr == nil,
		}
		if verr != nil {
			res.Error = newErrorOutput(verr)
		}
		if err := r.JSON(res); err != nil {
			return err
		}
	} else if verr == nil {
		r.Success(fmt.Sprintf("%s valid against %d reference symbols", mode, reference.Len()))
	} else {
		r.Failure(newErrorOutput(verr).Kind, verr.Error())
	}

	if verr != nil {
		return fmt.Errorf("%s validation failed: %w", mode, verr)
	}
	return nil
}
