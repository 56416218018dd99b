// Package casefile loads YAML case files and runs their cases through the
// symbol validators.
//
// A case file declares a default reference set and a list of cases:
//
//	symbols: [A, B, C]
//	cases:
//	  - name: complete
//	    symbols: [A, B, C]
//	  - name: bad value
//	    values: {A: true, B: maybe}
//	    expect: invalid_boolean_value
package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/symcheck/pkg/symbols"
	"gopkg.in/yaml.v3"
)

// ExpectOK is the expectation for a case that must validate cleanly.
const ExpectOK = "ok"

// File is a decoded case file.
type File struct {
	Path    string   `yaml:"-"`
	Symbols []string `yaml:"symbols"`
	Cases   []Case   `yaml:"cases"`
}

// Case is a single validation case.
// Exactly one of Symbols and Values is set.
type Case struct {
	Name      string         `yaml:"name"`
	Reference []string       `yaml:"reference"` // Overrides File.Symbols when set
	Symbols   []string       `yaml:"symbols"`
	Values    map[string]any `yaml:"values"`
	Strict    bool           `yaml:"strict"` // Require every reference symbol in Values
	Expect    string         `yaml:"expect"` // ok or a symbols.Kind code
}

// ParseError describes a structurally invalid case file.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Load reads and decodes the case file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Decode decodes a case file from r. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Message: "case file is empty"}
		}
		return nil, &ParseError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	if len(f.Cases) == 0 {
		return nil, &ParseError{Message: "no cases defined"}
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if err := c.validate(); err != nil {
			return nil, &ParseError{Message: fmt.Sprintf("%s: %v", c.Name, err)}
		}
	}
	return &f, nil
}

func (c *Case) validate() error {
	hasSymbols := c.Symbols != nil
	hasValues := c.Values != nil
	switch {
	case hasSymbols && hasValues:
		return errors.New("set either symbols or values, not both")
	case !hasSymbols && !hasValues:
		return errors.New("one of symbols or values is required")
	case c.Strict && !hasValues:
		return errors.New("strict applies to values cases only")
	}

	if c.Expect != "" && !strings.EqualFold(c.Expect, ExpectOK) {
		if _, ok := symbols.ParseKind(c.Expect); !ok {
			return fmt.Errorf("unknown expectation %q", c.Expect)
		}
	}
	return nil
}

// ReferenceFor returns the reference set that applies to c.
func (f *File) ReferenceFor(c Case) symbols.Set {
	if c.Reference != nil {
		return symbols.NewSet(c.Reference...)
	}
	return symbols.NewSet(f.Symbols...)
}

// Check validates the case against reference and returns the validator's error.
func (c Case) Check(reference symbols.Set) error {
	switch {
	case c.Symbols != nil:
		return symbols.Reconcile(c.Symbols, reference)
	case c.Strict:
		return symbols.ValidateAssignment(c.Values, reference)
	default:
		return symbols.ValidateMapping(c.Values, reference)
	}
}

// Mode returns "symbols" or "values" depending on the case input shape.
func (c Case) Mode() string {
	if c.Symbols != nil {
		return "symbols"
	}
	return "values"
}
