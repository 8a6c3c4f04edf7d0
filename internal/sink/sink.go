// Package sink wraps a synthetic uinput keyboard as the engine's
// output Sink (spec.md §4.2).
package sink

import (
	"fmt"

	"github.com/bendahl/uinput"
	"github.com/rs/zerolog"

	"github.com/sudesh955/evremap/internal/keycodes"
	"github.com/sudesh955/evremap/internal/mapping"
)

// maxDeclaredKeyCode is the highest KeyCode bendahl/uinput registers
// via UI_SET_KEYBIT when it creates a keyboard device. Anything above
// this is still written to the sink if a rule asks for it, but the
// kernel will silently drop it, so we log a loud warning at startup
// rather than at the first missed keystroke (spec.md §4.2 rationale).
const maxDeclaredKeyCode = 248

// Sink is the virtual output device the engine drives.
type Sink struct {
	kb  uinput.Keyboard
	log zerolog.Logger
}

// New creates a synthetic uinput keyboard and validates that caps (the
// mapping table's precomputed capability union, see mapping.Table.
// Capabilities) is coverable by it, logging a warning for any code the
// kernel will not accept.
func New(name string, caps mapping.KeySet, log zerolog.Logger) (*Sink, error) {
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("creating virtual keyboard %q: %w", name, err)
	}

	s := &Sink{kb: kb, log: log}
	s.warnUndeclarable(caps)
	return s, nil
}

func (s *Sink) warnUndeclarable(caps mapping.KeySet) {
	for _, code := range caps {
		if uint16(code) > maxDeclaredKeyCode {
			s.log.Warn().
				Str("key", code.String()).
				Uint16("code", uint16(code)).
				Msg("rule output code exceeds the virtual keyboard's declared capability range; kernel will drop writes for it")
		}
	}
}

// Close destroys the virtual device.
func (s *Sink) Close() error {
	return s.kb.Close()
}

// Emit writes a single (code, value) event. bendahl/uinput commits a
// SYN_REPORT internally with every KeyDown/KeyUp call, so every Emit
// is already a self-contained, synchronized unit; Sync exists for
// call-site clarity with spec.md §4.4's "emit a SYN_REPORT to commit"
// and to give tests and future lower-level sinks an explicit flush
// point, but has nothing left to do here.
func (s *Sink) Emit(code keycodes.KeyCode, value keycodes.KeyValue) error {
	switch value {
	case keycodes.Release:
		return s.kb.KeyUp(int(code))
	case keycodes.Press, keycodes.Repeat:
		// bendahl/uinput has no call that writes a repeat (value 2), so
		// a repeat is written as another KeyDown (a press, value 1) of
		// a key that is already down (spec.md §4.4 Stage 4).
		return s.kb.KeyDown(int(code))
	default:
		return fmt.Errorf("unknown key value %d for code %s", value, code)
	}
}

// Sync commits the current batch. See the Emit doc comment for why
// this is a no-op against bendahl/uinput.
func (s *Sink) Sync() error {
	return nil
}
