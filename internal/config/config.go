// Package config loads the MappingConfig file: the declarative YAML
// document describing which device to grab and which remap/dual-role
// rules to apply to it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sudesh955/evremap/internal/keycodes"
	"github.com/sudesh955/evremap/internal/mapping"
)

// RemapEntry is the on-disk shape of a Remap rule.
type RemapEntry struct {
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

// DualRoleEntry is the on-disk shape of a DualRole rule.
type DualRoleEntry struct {
	Input string   `yaml:"input"`
	Hold  []string `yaml:"hold"`
	Tap   []string `yaml:"tap"`
}

// MappingConfig is the top-level configuration file (spec.md §6):
// device-selection hints plus the ordered rule lists. Order among
// DualRole/Remap matters only for deterministic tie-breaks (spec.md
// §3): longer Remap.Input wins, ties broken by earlier declaration.
type MappingConfig struct {
	DeviceName string          `yaml:"device_name"`
	Phys       string          `yaml:"phys"`
	Path       string          `yaml:"path"`
	DualRole   []DualRoleEntry `yaml:"dual_role"`
	Remap      []RemapEntry    `yaml:"remap"`
}

// InvalidError reports a config file that failed to parse or that
// names a KeyCode the keycodes package doesn't recognize. It is the
// spec's ConfigInvalid error kind (spec.md §7): always fatal, always
// surfaced with the file path and offending value.
type InvalidError struct {
	Path   string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// Load reads and validates a MappingConfig from path.
func Load(path string) (*MappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg MappingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &MappingConfig{}, &InvalidError{Path: path, Reason: err.Error()}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *MappingConfig) validate(path string) error {
	for _, dr := range c.DualRole {
		if _, ok := keycodes.Parse(dr.Input); !ok {
			return &InvalidError{Path: path, Reason: fmt.Sprintf("unknown dual_role input key %q", dr.Input)}
		}
		for _, name := range dr.Hold {
			if _, ok := keycodes.Parse(name); !ok {
				return &InvalidError{Path: path, Reason: fmt.Sprintf("unknown dual_role hold key %q", name)}
			}
		}
		for _, name := range dr.Tap {
			if _, ok := keycodes.Parse(name); !ok {
				return &InvalidError{Path: path, Reason: fmt.Sprintf("unknown dual_role tap key %q", name)}
			}
		}
	}

	for _, r := range c.Remap {
		if len(r.Input) == 0 {
			return &InvalidError{Path: path, Reason: "remap rule has empty input set"}
		}
		for _, name := range r.Input {
			if _, ok := keycodes.Parse(name); !ok {
				return &InvalidError{Path: path, Reason: fmt.Sprintf("unknown remap input key %q", name)}
			}
		}
		for _, name := range r.Output {
			if _, ok := keycodes.Parse(name); !ok {
				return &InvalidError{Path: path, Reason: fmt.Sprintf("unknown remap output key %q", name)}
			}
		}
	}

	return nil
}

// Mappings compiles the validated config into a mapping.Table, ready
// for the engine to consult. Load must have already validated the
// config, so key name resolution here cannot fail.
func (c *MappingConfig) Mappings() *mapping.Table {
	remaps := make([]mapping.Remap, 0, len(c.Remap))
	for _, r := range c.Remap {
		remaps = append(remaps, mapping.Remap{
			Input:  parseSet(r.Input),
			Output: parseSet(r.Output),
		})
	}

	dualRoles := make([]mapping.DualRole, 0, len(c.DualRole))
	for _, dr := range c.DualRole {
		input, _ := keycodes.Parse(dr.Input)
		dualRoles = append(dualRoles, mapping.DualRole{
			Input: input,
			Hold:  parseSet(dr.Hold),
			Tap:   parseSet(dr.Tap),
		})
	}

	return mapping.NewTable(remaps, dualRoles)
}

func parseSet(names []string) mapping.KeySet {
	var set mapping.KeySet
	for _, name := range names {
		if code, ok := keycodes.Parse(name); ok {
			set = set.Add(code)
		}
	}
	return set
}
