package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudesh955/evremap/internal/device"
	"github.com/sudesh955/evremap/internal/keycodes"
	"github.com/sudesh955/evremap/internal/mapping"
)

// recordedEmit is one call recorded against a fakeSink.
type recordedEmit struct {
	code  keycodes.KeyCode
	value keycodes.KeyValue
}

// fakeSink records every Emit/Sync call in order, mirroring the shape
// a real integration test would assert against a uinput fixture.
type fakeSink struct {
	calls []recordedEmit
	syncs int
}

func (s *fakeSink) Emit(code keycodes.KeyCode, value keycodes.KeyValue) error {
	s.calls = append(s.calls, recordedEmit{code, value})
	return nil
}

func (s *fakeSink) Sync() error {
	s.syncs++
	return nil
}

// sinceReset returns every call recorded so far, in order, and clears
// the record so later assertions see only calls made after it.
func (s *fakeSink) sinceReset() []recordedEmit {
	out := s.calls
	s.calls = nil
	return out
}

// fakeSource replays a fixed queue of events and answers ReadHeldKeys
// from whatever map was queued for it.
type fakeSource struct {
	events []device.Event
	pos    int
	held   map[keycodes.KeyCode]bool
}

func (s *fakeSource) Next() (device.Event, error) {
	if s.pos >= len(s.events) {
		return device.Event{Kind: device.EventEOF}, nil
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func (s *fakeSource) ReadHeldKeys() (map[keycodes.KeyCode]bool, error) {
	return s.held, nil
}

func keyEvent(code keycodes.KeyCode, value keycodes.KeyValue) device.Event {
	return device.Event{Kind: device.EventKey, Code: code, Value: value}
}

func newTestEngine(t *testing.T, table *mapping.Table, events []device.Event) (*Engine, *fakeSink) {
	t.Helper()
	sink := &fakeSink{}
	src := &fakeSource{events: events}
	e := New(table, src, sink, zerolog.Nop())
	return e, sink
}

// runUntilEOF drives e.Run and asserts it stops cleanly at device EOF.
func runUntilEOF(t *testing.T, e *Engine) {
	t.Helper()
	err := e.Run()
	require.ErrorIs(t, err, ErrDeviceLost)
}

func TestSimpleRemap(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_CAPSLOCK), Output: mapping.NewKeySet(keycodes.KEY_LEFTCTRL)},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
	}, sink.calls)
	assert.Equal(t, 2, sink.syncs)
}

// TestChordRemap is spec.md §8 scenario 2 verbatim:
// {KEY_LEFTCTRL,KEY_A}->{KEY_HOME}, pressed then released one key at a
// time. Releasing A must emit only `release HOME` — the Ctrl that fed
// the chord must stay suppressed (consumed) rather than reappearing as
// a revived `press LEFTCTRL`, and the final release-LCTRL event (a
// no-op diff once the chord has already fully unwound) still syncs.
func TestChordRemap(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_LEFTCTRL, keycodes.KEY_A), Output: mapping.NewKeySet(keycodes.KEY_HOME)},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_LEFTCTRL, keycodes.Press),
		keyEvent(keycodes.KEY_A, keycodes.Press),
		keyEvent(keycodes.KEY_A, keycodes.Release),
		keyEvent(keycodes.KEY_LEFTCTRL, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
		{keycodes.KEY_HOME, keycodes.Press},
		{keycodes.KEY_HOME, keycodes.Release},
	}, sink.calls)
	// One sync per event, including the final release-LCTRL's no-op diff.
	assert.Equal(t, 4, sink.syncs)
}

// TestChordBreakupLeavesNoResidue is spec.md §8 scenario 6 verbatim:
// {KEY_J,KEY_K}->{KEY_ESC}. Releasing J (the chord's first-pressed
// member) must leave the sink holding nothing at all — not a revived
// `press K` — because K stays consumed by the now-broken match.
func TestChordBreakupLeavesNoResidue(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_J, keycodes.KEY_K), Output: mapping.NewKeySet(keycodes.KEY_ESC)},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_J, keycodes.Press),
		keyEvent(keycodes.KEY_K, keycodes.Press),
		keyEvent(keycodes.KEY_J, keycodes.Release),
		keyEvent(keycodes.KEY_K, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_J, keycodes.Press},
		{keycodes.KEY_J, keycodes.Release},
		{keycodes.KEY_ESC, keycodes.Press},
		{keycodes.KEY_ESC, keycodes.Release},
	}, sink.calls)
	assert.Empty(t, e.outputKeys)
	// One sync per event, including the final release-K's no-op diff.
	assert.Equal(t, 4, sink.syncs)
}

func TestDualRoleTap(t *testing.T) {
	table := mapping.NewTable(nil, []mapping.DualRole{
		{Input: keycodes.KEY_CAPSLOCK, Hold: mapping.NewKeySet(keycodes.KEY_LEFTCTRL), Tap: mapping.NewKeySet(keycodes.KEY_ESC)},
	})

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
		{keycodes.KEY_ESC, keycodes.Press},
		{keycodes.KEY_ESC, keycodes.Release},
	}, sink.calls)
}

func TestDualRoleHold(t *testing.T) {
	table := mapping.NewTable(nil, []mapping.DualRole{
		{Input: keycodes.KEY_CAPSLOCK, Hold: mapping.NewKeySet(keycodes.KEY_LEFTCTRL), Tap: mapping.NewKeySet(keycodes.KEY_ESC)},
	})

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
		keyEvent(keycodes.KEY_A, keycodes.Press),
		keyEvent(keycodes.KEY_A, keycodes.Release),
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_A, keycodes.Press},
		{keycodes.KEY_A, keycodes.Release},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
	}, sink.calls)
}

func TestRepeatPassthrough(t *testing.T) {
	table := mapping.NewTable(nil, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_A, keycodes.Press),
		keyEvent(keycodes.KEY_A, keycodes.Repeat),
		keyEvent(keycodes.KEY_A, keycodes.Repeat),
		keyEvent(keycodes.KEY_A, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_A, keycodes.Press},
		{keycodes.KEY_A, keycodes.Repeat},
		{keycodes.KEY_A, keycodes.Repeat},
		{keycodes.KEY_A, keycodes.Release},
	}, sink.calls)
}

func TestRepeatRemapped(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_CAPSLOCK), Output: mapping.NewKeySet(keycodes.KEY_LEFTCTRL)},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Repeat),
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_LEFTCTRL, keycodes.Repeat},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
	}, sink.calls)
}

// TestOverlappingPressChord: two remaps share a prefix. The longer one
// must win once fully held, and releasing back down to the shorter
// chord's input must re-converge to the shorter rule's output — not to
// bare keys, and not skip straight to nothing — because the residual
// LCTRL+LSHIFT are still consumed by a match when Alt lets go.
func TestOverlappingPressChord(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_LEFTCTRL, keycodes.KEY_LEFTSHIFT), Output: mapping.NewKeySet(keycodes.KEY_F1)},
		{
			Input:  mapping.NewKeySet(keycodes.KEY_LEFTCTRL, keycodes.KEY_LEFTSHIFT, keycodes.KEY_LEFTALT),
			Output: mapping.NewKeySet(keycodes.KEY_F2),
		},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_LEFTCTRL, keycodes.Press),
		keyEvent(keycodes.KEY_LEFTSHIFT, keycodes.Press),
		keyEvent(keycodes.KEY_LEFTALT, keycodes.Press),
		keyEvent(keycodes.KEY_LEFTALT, keycodes.Release),
		keyEvent(keycodes.KEY_LEFTSHIFT, keycodes.Release),
		keyEvent(keycodes.KEY_LEFTCTRL, keycodes.Release),
	})
	runUntilEOF(t, e)

	assert.Equal(t, []recordedEmit{
		{keycodes.KEY_LEFTCTRL, keycodes.Press},
		{keycodes.KEY_LEFTCTRL, keycodes.Release},
		{keycodes.KEY_F1, keycodes.Press},
		{keycodes.KEY_F1, keycodes.Release},
		{keycodes.KEY_F2, keycodes.Press},
		{keycodes.KEY_F2, keycodes.Release},
		{keycodes.KEY_F1, keycodes.Press},
		{keycodes.KEY_F1, keycodes.Release},
	}, sink.calls)
	assert.Empty(t, e.outputKeys)
	// One sync per event, including the final release-LCTRL's no-op diff.
	assert.Equal(t, 6, sink.syncs)
}

func TestResyncAfterSynDropped(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_CAPSLOCK), Output: mapping.NewKeySet(keycodes.KEY_LEFTCTRL)},
	}, nil)

	sink := &fakeSink{}
	src := &fakeSource{
		events: []device.Event{
			keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
			{Kind: device.EventSync},
		},
		held: map[keycodes.KeyCode]bool{}, // kernel now reports nothing held
	}
	e := New(table, src, sink, zerolog.Nop())
	runUntilEOF(t, e)

	// The resync must release KEY_LEFTCTRL since the kernel says
	// CapsLock is no longer physically held.
	last := sink.calls[len(sink.calls)-1]
	assert.Equal(t, recordedEmit{keycodes.KEY_LEFTCTRL, keycodes.Release}, last)
}

func TestModifierOrderingOnPress(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{
			Input:  mapping.NewKeySet(keycodes.KEY_F13),
			Output: mapping.NewKeySet(keycodes.KEY_A, keycodes.KEY_LEFTSHIFT),
		},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_F13, keycodes.Press),
		keyEvent(keycodes.KEY_F13, keycodes.Release),
	})
	runUntilEOF(t, e)

	require.Len(t, sink.calls, 4)
	// Press batch: modifier first.
	assert.Equal(t, recordedEmit{keycodes.KEY_LEFTSHIFT, keycodes.Press}, sink.calls[0])
	assert.Equal(t, recordedEmit{keycodes.KEY_A, keycodes.Press}, sink.calls[1])
	// Release batch: non-modifier first.
	assert.Equal(t, recordedEmit{keycodes.KEY_A, keycodes.Release}, sink.calls[2])
	assert.Equal(t, recordedEmit{keycodes.KEY_LEFTSHIFT, keycodes.Release}, sink.calls[3])
}

func TestShutdownReleasesHeldOutput(t *testing.T) {
	table := mapping.NewTable([]mapping.Remap{
		{Input: mapping.NewKeySet(keycodes.KEY_CAPSLOCK), Output: mapping.NewKeySet(keycodes.KEY_LEFTCTRL)},
	}, nil)

	e, sink := newTestEngine(t, table, []device.Event{
		keyEvent(keycodes.KEY_CAPSLOCK, keycodes.Press),
	})

	// Drive one event by hand rather than running to EOF, so output is
	// still held when Shutdown is called.
	ev, err := e.src.Next()
	require.NoError(t, err)
	require.NoError(t, e.handleKey(ev.Code, ev.Value))
	sink.sinceReset()

	require.NoError(t, e.Shutdown())
	assert.Equal(t, []recordedEmit{{keycodes.KEY_LEFTCTRL, keycodes.Release}}, sink.calls)
	assert.Empty(t, e.outputKeys)
}
