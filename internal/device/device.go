// Package device wraps a grabbed evdev input device as the engine's
// event Source (spec.md §4.1), and provides enumeration for the
// `list-devices` CLI subcommand and the supervisor's name/phys/path
// device-selection hints.
package device

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	evdev "github.com/holoplot/go-evdev"

	"github.com/sudesh955/evremap/internal/keycodes"
)

// Raw evdev event-type and SYN-code values (linux/input-event-codes.h),
// used to classify events the keycodes package has no business naming.
const (
	evSyn = 0x00
	evKey = 0x01
	evLed = 0x11

	synReport  = 0
	synDropped = 3
)

// EventKind classifies a Source event for the engine's dispatch.
type EventKind int

const (
	// EventKey is an EV_KEY press/release/repeat.
	EventKey EventKind = iota
	// EventOther is any non-key, non-SYN_REPORT event (LED, MSC, ...)
	// to be forwarded to the sink verbatim, unchanged.
	EventOther
	// EventSync signals a kernel buffer overrun (SYN_DROPPED): the
	// engine must resynchronize from ground truth (spec.md §4.4 Stage 6).
	EventSync
	// EventEOF signals the device disappeared.
	EventEOF
)

// Event is one item yielded by Source.Next.
type Event struct {
	Kind EventKind

	// Valid when Kind == EventKey.
	Code  keycodes.KeyCode
	Value keycodes.KeyValue

	// Valid when Kind == EventOther: the raw evdev type/code/value,
	// forwarded to the sink without interpretation.
	RawType  uint16
	RawCode  uint16
	RawValue int32

	Time syscall.Timeval
}

// Info describes a discoverable input device without holding it open,
// for `list-devices` and config-driven device selection.
type Info struct {
	Path string
	Name string
	Phys string
}

// Source is a grabbed physical input device yielding a blocking
// stream of events.
type Source struct {
	path string
	name string
	phys string
	dev  *evdev.InputDevice
}

// Open opens path, requests an exclusive grab so no other consumer
// observes the raw stream, and returns a ready Source.
func Open(path string) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	name, _ := dev.Name()
	phys, _ := dev.Phys()

	if err := dev.Grab(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("grabbing %s: %w", path, err)
	}

	return &Source{path: path, name: name, phys: phys, dev: dev}, nil
}

// Path, Name and Phys identify the underlying device.
func (s *Source) Path() string { return s.path }
func (s *Source) Name() string { return s.name }
func (s *Source) Phys() string { return s.phys }

// Close ungrabs and closes the device. The kernel also releases the
// grab automatically on file-descriptor close (spec.md §5), so Close
// is safe to call even if Ungrab already failed.
func (s *Source) Close() error {
	s.dev.Ungrab()
	return s.dev.Close()
}

// Next blocks until the next event is available.
func (s *Source) Next() (Event, error) {
	ev, err := s.dev.ReadOne()
	if err != nil {
		if os.IsNotExist(err) {
			return Event{Kind: EventEOF}, nil
		}
		return Event{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	evType := uint16(ev.Type)
	evCode := uint16(ev.Code)

	switch {
	case evType == evKey:
		return Event{
			Kind:  EventKey,
			Code:  keycodes.KeyCode(evCode),
			Value: keycodes.KeyValue(ev.Value),
			Time:  ev.Time,
		}, nil
	case evType == evSyn && evCode == synDropped:
		return Event{Kind: EventSync, Time: ev.Time}, nil
	case evType == evSyn && evCode == synReport:
		// A plain frame boundary; the engine already reconciles and
		// syncs the sink per key event, so there is nothing to do.
		return s.Next()
	default:
		return Event{
			Kind:     EventOther,
			RawType:  evType,
			RawCode:  evCode,
			RawValue: ev.Value,
			Time:     ev.Time,
		}, nil
	}
}

// ReadHeldKeys queries the kernel for the device's current key state
// (EVIOCGKEY), used to rebuild input_keys from ground truth after a
// SYN_DROPPED overrun (spec.md §4.4 Stage 6).
func (s *Source) ReadHeldKeys() (map[keycodes.KeyCode]bool, error) {
	bits, err := evioctlGetKey(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading key state of %s: %w", s.path, err)
	}

	held := make(map[keycodes.KeyCode]bool)
	for code := 0; code < len(bits)*8; code++ {
		if bits[code/8]&(1<<uint(code%8)) != 0 {
			held[keycodes.KeyCode(code)] = true
		}
	}
	return held, nil
}

// IsKeyboard reports whether dev exposes EV_KEY capability with at
// least one code from KEY_A through KEY_DOT (30..52: the home and
// bottom letter rows with their punctuation and KEY_LEFTSHIFT), the
// same heuristic used by `list-devices` to filter out devices like
// backlight or power buttons.
func IsKeyboard(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if uint16(t) != evKey {
			continue
		}
		for _, code := range dev.CapableEvents(t) {
			if code >= 30 && code <= 52 { // KEY_A..KEY_DOT range
				return true
			}
		}
	}
	return false
}

// Enumerate lists readable keyboard-capable devices under /dev/input,
// for the `list-devices` CLI subcommand.
func Enumerate() ([]Info, error) {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("globbing input devices: %w", err)
	}

	var infos []Info
	for _, path := range matches {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}
		if IsKeyboard(dev) {
			name, _ := dev.Name()
			phys, _ := dev.Phys()
			infos = append(infos, Info{Path: path, Name: name, Phys: phys})
		}
		dev.Close()
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

// Find resolves device-selection hints (path takes precedence, then
// name+phys) to a single candidate Info. It does not open or grab the
// device.
func Find(path, name, phys string) (Info, error) {
	if path != "" {
		dev, err := evdev.Open(path)
		if err != nil {
			return Info{}, fmt.Errorf("opening %s: %w", path, err)
		}
		defer dev.Close()
		devName, _ := dev.Name()
		devPhys, _ := dev.Phys()
		return Info{Path: path, Name: devName, Phys: devPhys}, nil
	}

	if name == "" {
		return Info{}, fmt.Errorf("device path or device name is required")
	}

	infos, err := Enumerate()
	if err != nil {
		return Info{}, err
	}
	for _, info := range infos {
		if info.Name != name {
			continue
		}
		if phys != "" && info.Phys != phys {
			continue
		}
		return info, nil
	}

	return Info{}, fmt.Errorf("no device found with name %q", name)
}
