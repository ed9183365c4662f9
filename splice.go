package blocks

import "slices"

// Splice relocates one element of an ordered collection: remove it at From,
// then insert it at To.
type Splice struct {
	From int
	To   int
}

// Noop reports whether the splice leaves the collection unchanged.
func (s Splice) Noop() bool { return s.From == s.To }

// Valid reports whether both indices address a collection of length n.
func (s Splice) Valid(n int) bool {
	return s.From >= 0 && s.From < n && s.To >= 0 && s.To < n
}

// ApplySplice returns a copy of items with the splice applied. The relative
// order of every other element is preserved. An invalid or no-op splice
// returns an unmodified copy.
func ApplySplice[T any](items []T, s Splice) []T {
	out := slices.Clone(items)
	if !s.Valid(len(items)) || s.Noop() {
		return out
	}
	moved := out[s.From]
	out = slices.Delete(out, s.From, s.From+1)
	return slices.Insert(out, s.To, moved)
}
