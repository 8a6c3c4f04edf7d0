// Package engine implements the remapping core: the single-threaded
// state machine that tracks held physical keys, matches them against
// the mapping table, and drives a consistent output stream (spec.md
// §4.4). This is the part the whole system exists for.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sudesh955/evremap/internal/device"
	"github.com/sudesh955/evremap/internal/keycodes"
	"github.com/sudesh955/evremap/internal/mapping"
)

// Source is whatever yields the physical event stream. device.Source
// satisfies it directly; tests supply a fake.
type Source interface {
	Next() (device.Event, error)
	ReadHeldKeys() (map[keycodes.KeyCode]bool, error)
}

// Sink is whatever accepts the transformed output stream. sink.Sink
// satisfies it directly; tests supply a fake that records calls.
type Sink interface {
	Emit(code keycodes.KeyCode, value keycodes.KeyValue) error
	Sync() error
}

// Engine owns all mutable remapping state (spec.md §3 "Engine state").
// It is not safe for concurrent use: the whole design is a
// single-threaded read-process-write loop (spec.md §5).
type Engine struct {
	table *mapping.Table
	src   Source
	sink  Sink
	log   zerolog.Logger

	inputKeys  mapping.KeySet
	outputKeys mapping.KeySet
	tapping    *keycodes.KeyCode

	// consumed is the subset of inputKeys currently "owned" by a Remap
	// match: codes that produce no output of their own, bare or
	// DualRole, because a Remap's output is standing in for them. It
	// survives a chord breaking (a member being released drops the
	// whole match) so the remaining held member(s) stay suppressed
	// instead of reappearing as bare keys — see desiredOutput.
	consumed mapping.KeySet
}

// New creates an Engine with empty state, bound to table, src and sink.
func New(table *mapping.Table, src Source, sink Sink, log zerolog.Logger) *Engine {
	return &Engine{table: table, src: src, sink: sink, log: log}
}

// Run blocks, consuming events from the source and driving the sink,
// until the source reports EOF or a fatal error occurs. EOF is
// returned as (nil, io.EOF)-shaped via ErrDeviceLost so callers can
// distinguish planned shutdown from real failure with errors.Is.
func (e *Engine) Run() error {
	for {
		ev, err := e.src.Next()
		if err != nil {
			return fmt.Errorf("reading source event: %w", err)
		}

		switch ev.Kind {
		case device.EventEOF:
			return ErrDeviceLost
		case device.EventSync:
			if err := e.resync(); err != nil {
				return err
			}
		case device.EventOther:
			if err := e.sink.Emit(keycodes.KeyCode(ev.RawCode), keycodes.KeyValue(ev.RawValue)); err != nil {
				return e.fatal(fmt.Errorf("forwarding non-key event: %w", err))
			}
			if err := e.sink.Sync(); err != nil {
				return e.fatal(fmt.Errorf("syncing sink: %w", err))
			}
		case device.EventKey:
			if err := e.handleKey(ev.Code, ev.Value); err != nil {
				return err
			}
		}
	}
}

// ErrDeviceLost is returned by Run when the source reports EOF
// (spec.md §7 DeviceLost).
var ErrDeviceLost = errors.New("device lost")

// handleKey runs Stages 1, 2/3, 4 and 5 for a single key event.
func (e *Engine) handleKey(code keycodes.KeyCode, value keycodes.KeyValue) error {
	switch value {
	case keycodes.Press:
		e.inputKeys = e.inputKeys.Add(code) // Stage 1
		e.armTapping(code)                  // Stage 5 (arm/disarm)
		if err := e.reconcile(); err != nil {
			return e.fatal(err)
		}
		return nil

	case keycodes.Release:
		wasTapping := e.tapping != nil && *e.tapping == code
		e.inputKeys = e.inputKeys.Remove(code) // Stage 1
		if err := e.reconcile(); err != nil {
			return e.fatal(err)
		}
		if wasTapping {
			if err := e.emitTap(code); err != nil {
				return e.fatal(err)
			}
		}
		e.tapping = nil
		return nil

	case keycodes.Repeat:
		return e.handleRepeat(code) // Stage 4, no state change (Stage 1)

	default:
		return e.fatal(fmt.Errorf("unknown key value %d for code %s", value, code))
	}
}

// armTapping implements Stage 5's press-time bookkeeping: a press of a
// DualRole key arms it as a tap candidate; a press of any other key
// while one is armed commits it to its hold role.
func (e *Engine) armTapping(code keycodes.KeyCode) {
	if _, isDualRole := e.table.DualRoleFor(code); isDualRole {
		k := code
		e.tapping = &k
		return
	}
	if e.tapping != nil && *e.tapping != code {
		e.tapping = nil
	}
}

// desiredOutput implements Stage 2 (Remap first, DualRole on the
// residue) together with the "chord breakup" invariant spec.md §1/§8
// require but its literal per-event Stage 2 text, read alone, does
// not: once a Remap match consumes a set of codes, those codes stay
// consumed — producing no bare or DualRole output — for as long as
// they remain held, even once releasing one of their siblings makes
// the chord stop matching. Concretely (spec.md §8 scenario 2,
// `{LCTRL,A}→{HOME}`): releasing A must emit only `release HOME`, not
// `release HOME` followed by a revived `press LCTRL`.
//
// consumed is first pruned to members still held (a released code can
// no longer be "consumed"), then grown by the codes of whatever Remap
// matches this step, if any — a fresh, unrelated match doesn't evict
// an older chord's still-held leftovers from suppression.
func (e *Engine) desiredOutput() (desired mapping.KeySet, remap mapping.Remap, matched bool) {
	prevConsumed := e.consumed.Intersect(e.inputKeys)
	remap, matched = e.table.RemapFor(e.inputKeys)

	if matched {
		e.consumed = prevConsumed.Union(remap.Input)
		desired = desired.Union(remap.Output)
	} else {
		e.consumed = prevConsumed
	}

	residue := e.inputKeys.Difference(e.consumed)
	for _, code := range residue {
		if dr, ok := e.table.DualRoleFor(code); ok {
			desired = desired.Union(dr.Hold)
		} else {
			desired = desired.Add(code)
		}
	}

	return desired, remap, matched
}

// reconcile implements Stage 3: diff outputKeys against the freshly
// computed desired output, emit releases then presses (each ordered by
// modifier class), sync, and commit the new outputKeys.
func (e *Engine) reconcile() error {
	desired, _, _ := e.desiredOutput()

	toRelease := e.outputKeys.Difference(desired)
	toPress := desired.Difference(e.outputKeys)

	for _, code := range orderRelease(toRelease) {
		if err := e.sink.Emit(code, keycodes.Release); err != nil {
			return fmt.Errorf("releasing %s: %w", code, err)
		}
	}
	for _, code := range orderPress(toPress) {
		if err := e.sink.Emit(code, keycodes.Press); err != nil {
			return fmt.Errorf("pressing %s: %w", code, err)
		}
	}
	// A SYN_REPORT is emitted whether or not anything changed (spec.md
	// §4.4 Stage 3 "After issuing the diff, emit a SYN_REPORT to
	// commit" — scenario 2's final step syncs on a no-op diff).
	if err := e.sink.Sync(); err != nil {
		return fmt.Errorf("syncing sink: %w", err)
	}

	e.outputKeys = desired
	return nil
}

// orderPress sorts a press batch modifier-class codes first (spec.md
// §4.4 Stage 3), preserving relative order within each class.
func orderPress(keys mapping.KeySet) mapping.KeySet {
	return orderByClass(keys, true)
}

// orderRelease sorts a release batch non-modifier codes first.
func orderRelease(keys mapping.KeySet) mapping.KeySet {
	return orderByClass(keys, false)
}

func orderByClass(keys mapping.KeySet, modifiersFirst bool) mapping.KeySet {
	var first, second mapping.KeySet
	for _, code := range keys {
		if mapping.IsModifierClass(code) == modifiersFirst {
			first = append(first, code)
		} else {
			second = append(second, code)
		}
	}
	return append(first, second...)
}

// handleRepeat implements Stage 4: a repeat of a code currently
// covered by a Remap re-emits the Remap's output; otherwise a
// DualRole's hold, or the code itself.
//
// A code can also be in consumed without an active Remap match — a
// leftover from a chord that partially released (see desiredOutput).
// It currently has no output of its own, so its autorepeat doesn't
// either.
func (e *Engine) handleRepeat(code keycodes.KeyCode) error {
	remap, matched := e.table.RemapFor(e.inputKeys)

	var codes mapping.KeySet
	switch {
	case matched && remap.Input.Contains(code):
		codes = remap.Output
	case e.consumed.Contains(code):
		// suppressed broken-chord residual; nothing to repeat
	default:
		if dr, ok := e.table.DualRoleFor(code); ok {
			codes = dr.Hold
		} else {
			codes = mapping.KeySet{code}
		}
	}

	for _, c := range codes {
		if err := e.sink.Emit(c, keycodes.Repeat); err != nil {
			return e.fatal(fmt.Errorf("repeating %s: %w", c, err))
		}
	}
	if err := e.sink.Sync(); err != nil {
		return e.fatal(fmt.Errorf("syncing sink: %w", err))
	}
	return nil
}

// emitTap implements the tap half of Stage 5: a synchronized
// press-then-release of the DualRole's Tap set, modifier-first on the
// way down and mirrored in reverse on the way up.
func (e *Engine) emitTap(key keycodes.KeyCode) error {
	dr, ok := e.table.DualRoleFor(key)
	if !ok {
		return nil
	}

	press := orderPress(dr.Tap)
	for _, code := range press {
		if err := e.sink.Emit(code, keycodes.Press); err != nil {
			return fmt.Errorf("tap-pressing %s: %w", code, err)
		}
	}
	if err := e.sink.Sync(); err != nil {
		return fmt.Errorf("syncing tap press: %w", err)
	}

	for i := len(press) - 1; i >= 0; i-- {
		if err := e.sink.Emit(press[i], keycodes.Release); err != nil {
			return fmt.Errorf("tap-releasing %s: %w", press[i], err)
		}
	}
	return e.sink.Sync()
}

// resync implements Stage 6: rebuild input_keys from the kernel's
// ground truth and re-converge the sink. tapping is cleared, per
// spec.md's Open Question resolution (clear, to avoid a false tap).
func (e *Engine) resync() error {
	held, err := e.src.ReadHeldKeys()
	if err != nil {
		return fmt.Errorf("resyncing: %w", err)
	}

	var keys mapping.KeySet
	for code, down := range held {
		if down {
			keys = keys.Add(code)
		}
	}
	e.inputKeys = keys
	e.tapping = nil
	e.consumed = nil

	if err := e.reconcile(); err != nil {
		return e.fatal(err)
	}
	return nil
}

// fatal implements the SinkWriteFailed path (spec.md §4.4, §7): best
// effort release of every currently-held output code in one batch,
// then propagate the original error.
func (e *Engine) fatal(cause error) error {
	e.log.Error().Err(cause).Msg("unrecoverable engine error, releasing all output keys")
	for _, code := range e.outputKeys {
		_ = e.sink.Emit(code, keycodes.Release)
	}
	_ = e.sink.Sync()
	e.outputKeys = nil
	return cause
}

// Shutdown releases every currently-held output key and syncs the
// sink; it does not close the sink or the source (spec.md §5
// "Cancellation").
func (e *Engine) Shutdown() error {
	for _, code := range e.outputKeys {
		if err := e.sink.Emit(code, keycodes.Release); err != nil {
			return fmt.Errorf("releasing %s during shutdown: %w", code, err)
		}
	}
	e.outputKeys = nil
	return e.sink.Sync()
}
