package group

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for group operations.
var (
	ErrUnknownGroup = errors.New("group: unknown group")
	ErrInvalidFile  = errors.New("group: groups file is malformed")
)

//go:embed groups.yaml
var builtinYAML []byte

// fileGroups is the YAML shape of a groups file.
type fileGroups struct {
	Groups map[string][]string `yaml:"groups"`
}

// Set maps group names to their identifiers. The zero value is empty and usable.
type Set struct {
	groups map[string][]string
}

// Builtin parses the embedded presets. Panics if the embedded file is malformed.
func Builtin() *Set {
	s, err := ParseBytes(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("group: builtin presets: %v", err))
	}
	return s
}

// ParseBytes parses a YAML groups file.
func ParseBytes(data []byte) (*Set, error) {
	var f fileGroups
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	s := &Set{groups: make(map[string][]string, len(f.Groups))}
	for name, ids := range f.Groups {
		if err := validateName(name); err != nil {
			return nil, err
		}
		for i, id := range ids {
			if strings.TrimSpace(id) == "" {
				return nil, fmt.Errorf("%w: group %q: entry %d is empty", ErrInvalidFile, name, i)
			}
		}
		s.groups[name] = slices.Clone(ids)
	}
	return s, nil
}

// ParseFile reads and parses a groups file.
func ParseFile(path string) (*Set, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		return nil, fmt.Errorf("group: read file: %w", err)
	}
	return ParseBytes(data)
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "+@/ \t") {
		return fmt.Errorf("%w: invalid group name %q", ErrInvalidFile, name)
	}
	return nil
}

// Merge returns a new Set with other's groups replacing same-named groups in s.
func (s *Set) Merge(other *Set) *Set {
	out := &Set{groups: make(map[string][]string, s.Len()+other.Len())}
	for _, src := range []*Set{s, other} {
		if src == nil {
			continue
		}
		for name, ids := range src.groups {
			out.groups[name] = slices.Clone(ids)
		}
	}
	return out
}

// Lookup returns a copy of the identifiers in group name.
func (s *Set) Lookup(name string) ([]string, error) {
	if s != nil {
		if ids, ok := s.groups[name]; ok {
			return slices.Clone(ids), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Names returns group names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of groups.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.groups)
}
