// Package preview exercises conditional markup slots from declarative YAML
// scenarios: each slot is an ordered case list gated by named boolean flags,
// resolved through the markup protocol exactly as a template engine would
// resolve an interpolation slot. An interactive session can flip flags from
// the terminal and re-render.
package preview

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markup/pkg/markup"
	"github.com/goliatone/go-markup/pkg/sanitize"
)

// ValueSpec describes one slot payload. Exactly one field must be set: html
// is emitted verbatim as trusted text, text is escaped, and sanitize is run
// through the UGC sanitizer when (and only when) its branch is selected.
type ValueSpec struct {
	HTML     string `yaml:"html,omitempty"`
	Text     string `yaml:"text,omitempty"`
	Sanitize string `yaml:"sanitize,omitempty"`
}

// CaseSpec gates a payload behind a named flag.
type CaseSpec struct {
	When      string `yaml:"when"`
	ValueSpec `yaml:",inline"`
}

// SlotSpec is an ordered case list plus an optional default payload. A
// present-but-empty default is an explicit empty value, distinct from no
// default at all.
type SlotSpec struct {
	Cases   []CaseSpec `yaml:"cases"`
	Default *ValueSpec `yaml:"default,omitempty"`
}

// Scenario is a parsed scenario document: named slots and the flag table
// their cases reference.
type Scenario struct {
	Slots map[string]SlotSpec `yaml:"slots"`
	Flags map[string]bool     `yaml:"flags"`
}

// Load parses and validates a YAML scenario document.
func Load(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("preview: parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preview: scenario path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preview: read scenario: %w", err)
	}
	return Load(data)
}

func (s *Scenario) validate() error {
	if len(s.Slots) == 0 {
		return errors.New("preview: scenario defines no slots")
	}
	for name, slot := range s.Slots {
		if strings.TrimSpace(name) == "" {
			return errors.New("preview: scenario defines an empty slot name")
		}
		for i, cs := range slot.Cases {
			flag := strings.TrimSpace(cs.When)
			if flag == "" {
				return fmt.Errorf("preview: slot %q case %d has no when flag", name, i)
			}
			if _, ok := s.Flags[flag]; !ok {
				return fmt.Errorf("preview: slot %q case %d references unknown flag %q", name, i, flag)
			}
			if err := cs.ValueSpec.validate(); err != nil {
				return fmt.Errorf("preview: slot %q case %d: %w", name, i, err)
			}
		}
		if slot.Default != nil {
			if err := slot.Default.validate(); err != nil {
				return fmt.Errorf("preview: slot %q default: %w", name, err)
			}
		}
	}
	return nil
}

func (v ValueSpec) validate() error {
	set := 0
	if v.HTML != "" {
		set++
	}
	if v.Text != "" {
		set++
	}
	if v.Sanitize != "" {
		set++
	}
	if set > 1 {
		return errors.New("html, text, and sanitize are mutually exclusive")
	}
	return nil
}

// value maps a payload spec onto the markup protocol. Sanitization is
// wrapped in a Thunk so the policy only runs for the selected branch.
func (v ValueSpec) value() any {
	switch {
	case v.HTML != "":
		return markup.Safe(v.HTML)
	case v.Sanitize != "":
		raw := v.Sanitize
		return markup.Thunk(func() any { return sanitize.Fragment(raw) })
	default:
		return v.Text
	}
}

// FlagNames returns the scenario's flag names in deterministic order.
func (s *Scenario) FlagNames() []string {
	names := make([]string, 0, len(s.Flags))
	for name := range s.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SlotNames returns the scenario's slot names in deterministic order.
func (s *Scenario) SlotNames() []string {
	names := make([]string, 0, len(s.Slots))
	for name := range s.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render resolves every slot against the scenario's flag table, with entries
// in overrides taking precedence. Each slot builds a Conditions expression
// (first truthy case wins, optional default) and renders it through the
// markup protocol.
func (s *Scenario) Render(overrides map[string]bool) (map[string]markup.Safe, error) {
	flags := make(map[string]bool, len(s.Flags))
	for name, value := range s.Flags {
		flags[name] = value
	}
	for name, value := range overrides {
		if _, ok := s.Flags[name]; !ok {
			return nil, fmt.Errorf("preview: override references unknown flag %q", name)
		}
		flags[name] = value
	}

	out := make(map[string]markup.Safe, len(s.Slots))
	for name, slot := range s.Slots {
		conditions := markup.NewConditions()
		for _, cs := range slot.Cases {
			conditions.When(flags[strings.TrimSpace(cs.When)], cs.ValueSpec.value())
		}
		if slot.Default != nil {
			conditions.Default(slot.Default.value())
		}
		out[name] = markup.From(conditions)
	}
	return out, nil
}
