// Package mapping defines the remapping rule types and the precomputed
// table the engine consults on every event.
package mapping

import "github.com/sudesh955/evremap/internal/keycodes"

// Remap substitutes a chord of physical keys for a different set of
// held keys: when every code in Input is held simultaneously, the
// engine behaves as if Output were held instead.
type Remap struct {
	Input  KeySet
	Output KeySet
}

// DualRole gives a single physical key two personalities: while held
// in combination with other keys it behaves as Hold; if pressed and
// released alone (a tap) it instead emits Tap as a press+release.
type DualRole struct {
	Input keycodes.KeyCode
	Hold  KeySet
	Tap   KeySet
}

// modifierClass lists the conventional modifier codes that must be
// pressed before, and released after, their non-modifier companions
// in a reconciliation batch (spec.md §4.4 Stage 3 ordering rules).
var modifierClass = map[keycodes.KeyCode]bool{
	keycodes.KEY_LEFTSHIFT:  true,
	keycodes.KEY_RIGHTSHIFT: true,
	keycodes.KEY_LEFTCTRL:   true,
	keycodes.KEY_RIGHTCTRL:  true,
	keycodes.KEY_LEFTALT:    true,
	keycodes.KEY_RIGHTALT:   true,
	keycodes.KEY_LEFTMETA:   true,
	keycodes.KEY_RIGHTMETA:  true,
}

// IsModifierClass reports whether code is a conventional modifier, or
// a rule-declared analogue of one (any Remap/DualRole output code that
// is itself a conventional modifier also counts, which the predicate
// captures automatically since it only inspects the code, not its
// origin).
func IsModifierClass(code keycodes.KeyCode) bool {
	return modifierClass[code]
}
