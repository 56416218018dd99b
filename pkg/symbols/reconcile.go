package symbols

// Reconcile checks that candidate names exactly the symbols of reference,
// each one once.
//
// Failures are reported with a fixed precedence:
//  1. *DuplicateSymbolError if any name repeats
//  2. *MissingSymbolError if reference names are absent from candidate
//  3. *ExtraSymbolError if candidate names are absent from reference
//
// Only one error is returned even when several conditions hold. Names in the
// error are sorted.
func Reconcile(candidate []string, reference Set) error {
	seen := make(Set, len(candidate))
	var dups []string
	for _, name := range candidate {
		if seen.Has(name) {
			dups = append(dups, name)
			continue
		}
		seen[name] = struct{}{}
	}

	if len(candidate) != len(seen) {
		return NewDuplicateSymbolError(uniqueSorted(dups))
	}

	if missing := reference.Difference(seen); len(missing) > 0 {
		return NewMissingSymbolError(missing)
	}

	if extra := seen.Difference(reference); len(extra) > 0 {
		return NewExtraSymbolError(extra)
	}

	return nil
}

func uniqueSorted(names []string) []string {
	return NewSet(names...).Sorted()
}
