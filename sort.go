package diffselect

import "slices"

// Ranger is the narrow capability the multi-selection helpers need: a
// selection-like value exposing its normalized range. *Selection
// implements it; so does any other type with a Range method.
type Ranger interface {
	Range() (low, high Position)
}

// SortAscending returns a copy of sels ordered by the low endpoint of
// each range, ascending. The input is not mutated. Callers applying a
// staging or patch operation across multiple selections use this to get
// a deterministic, boundary-consistent order.
func SortAscending[T Ranger](sels []T) []T {
	out := slices.Clone(sels)
	slices.SortStableFunc(out, func(a, b T) int {
		aLow, _ := a.Range()
		bLow, _ := b.Range()
		return ComparePositions(aLow, bLow)
	})
	return out
}

// SortDescending returns a copy of sels ordered by the low endpoint of
// each range, descending. The input is not mutated.
func SortDescending[T Ranger](sels []T) []T {
	out := slices.Clone(sels)
	slices.SortStableFunc(out, func(a, b T) int {
		aLow, _ := a.Range()
		bLow, _ := b.Range()
		return ComparePositions(bLow, aLow)
	})
	return out
}
