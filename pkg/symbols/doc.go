// Package symbols validates user-supplied symbols and symbol values against the
// reference set of symbols of a Boolean expression.
//
// This package contains:
//   - Set, the reference vocabulary for an expression
//   - Reconcile, which checks a list of symbol names against a Set
//   - ValidateMapping and ValidateAssignment, which check symbol-to-value maps
//   - The error taxonomy (DuplicateSymbolError, MissingSymbolError,
//     ExtraSymbolError, InvalidBooleanValueError)
//
// Every function is pure: inputs are never retained or modified, so all of
// them are safe for concurrent use.
package symbols
