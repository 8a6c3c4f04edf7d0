package mapping

import (
	"sort"

	"github.com/sudesh955/evremap/internal/keycodes"
)

// Table is the immutable, precomputed index over a loaded set of
// rules. DualRoleFor is a single map lookup. RemapFor walks the remaps
// pre-sorted longest-input first and stops at the first whose input is
// held, so its cost still grows with the number of remap rules.
type Table struct {
	remapsByLengthDesc []Remap
	dualRoleByCode      map[keycodes.KeyCode]DualRole
	capabilities        KeySet
}

// NewTable builds a Table from an ordered list of remaps and dual-role
// rules. Declaration order is preserved within each input-length
// bucket, so RemapFor's longest-wins tie-break falls back to
// declaration order exactly as spec.md §3 requires.
func NewTable(remaps []Remap, dualRoles []DualRole) *Table {
	t := &Table{
		remapsByLengthDesc: append([]Remap{}, remaps...),
		dualRoleByCode:      make(map[keycodes.KeyCode]DualRole, len(dualRoles)),
	}

	sort.SliceStable(t.remapsByLengthDesc, func(i, j int) bool {
		return t.remapsByLengthDesc[i].Input.Len() > t.remapsByLengthDesc[j].Input.Len()
	})

	for _, dr := range dualRoles {
		t.dualRoleByCode[dr.Input] = dr
	}

	t.capabilities = t.computeCapabilities()
	return t
}

// RemapFor returns the longest-input Remap whose Input is fully
// contained in held, ties broken by declaration order (spec.md §4.3).
// It returns false if no Remap's Input is satisfied.
func (t *Table) RemapFor(held KeySet) (Remap, bool) {
	for _, r := range t.remapsByLengthDesc {
		if r.Input.Subset(held) {
			return r, true
		}
	}
	return Remap{}, false
}

// DualRoleFor returns the DualRole rule for code, if any.
func (t *Table) DualRoleFor(code keycodes.KeyCode) (DualRole, bool) {
	dr, ok := t.dualRoleByCode[code]
	return dr, ok
}

// Capabilities returns the full set of codes any rule may ever emit:
// every Remap.Output, every DualRole.Hold and DualRole.Tap. The sink
// must declare at least this set at creation time, or writes for
// missing codes will be silently dropped by the kernel (spec.md §4.2).
func (t *Table) Capabilities() KeySet {
	return t.capabilities
}

func (t *Table) computeCapabilities() KeySet {
	var caps KeySet
	for _, r := range t.remapsByLengthDesc {
		caps = caps.Union(r.Output)
	}
	for _, dr := range t.dualRoleByCode {
		caps = caps.Union(dr.Hold)
		caps = caps.Union(dr.Tap)
	}
	return caps
}
