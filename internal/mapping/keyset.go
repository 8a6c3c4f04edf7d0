package mapping

import (
	"sort"

	"github.com/sudesh955/evremap/internal/keycodes"
)

// KeySet is an unordered set of KeyCode. Held-key sets are small in
// practice (the spec assumes at most ~8 simultaneous keys), so a plain
// slice with linear Contains checks is used instead of a map. The
// set operations return freshly allocated slices rather than
// modifying their receiver.
type KeySet []keycodes.KeyCode

// NewKeySet builds a KeySet from the given codes, deduplicated.
func NewKeySet(codes ...keycodes.KeyCode) KeySet {
	var s KeySet
	for _, c := range codes {
		s = s.Add(c)
	}
	return s
}

// Contains reports whether k is a member of the set.
func (s KeySet) Contains(k keycodes.KeyCode) bool {
	for _, c := range s {
		if c == k {
			return true
		}
	}
	return false
}

// Add returns a new KeySet with k inserted, or s unchanged if k is
// already present.
func (s KeySet) Add(k keycodes.KeyCode) KeySet {
	if s.Contains(k) {
		return s
	}
	return append(append(KeySet{}, s...), k)
}

// Remove returns a new KeySet with k removed.
func (s KeySet) Remove(k keycodes.KeyCode) KeySet {
	out := make(KeySet, 0, len(s))
	for _, c := range s {
		if c != k {
			out = append(out, c)
		}
	}
	return out
}

// Subset reports whether every element of s is contained in other.
func (s KeySet) Subset(other KeySet) bool {
	for _, c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Union returns the set union of s and other.
func (s KeySet) Union(other KeySet) KeySet {
	out := append(KeySet{}, s...)
	for _, c := range other {
		out = out.Add(c)
	}
	return out
}

// Intersect returns the elements of s that are also present in other.
func (s KeySet) Intersect(other KeySet) KeySet {
	out := make(KeySet, 0, len(s))
	for _, c := range s {
		if other.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Difference returns the elements of s not present in other (s \ other).
func (s KeySet) Difference(other KeySet) KeySet {
	out := make(KeySet, 0, len(s))
	for _, c := range s {
		if !other.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of elements in the set.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns a copy of s sorted by ascending KeyCode, for
// deterministic iteration order where one is required (e.g. building
// reproducible batches before modifier-class reordering).
func (s KeySet) Sorted() KeySet {
	out := append(KeySet{}, s...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
