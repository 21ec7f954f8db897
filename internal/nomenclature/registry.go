package nomenclature

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is the immutable set of known product families. It is built once
// at startup and only read afterwards, so it is safe for concurrent use.
type Registry struct {
	families map[string]*Family
	prefixes []string // family keys, longest first, for inference
}

// NewRegistry validates every family and builds the prefix index.
func NewRegistry(families []*Family) (*Registry, error) {
	r := &Registry{families: make(map[string]*Family, len(families))}
	for _, f := range families {
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.families[f.Key]; dup {
			return nil, fmt.Errorf("duplicate family key %s", f.Key)
		}
		r.families[f.Key] = f
		r.prefixes = append(r.prefixes, f.Key)
	}
	sort.Slice(r.prefixes, func(i, j int) bool {
		if len(r.prefixes[i]) != len(r.prefixes[j]) {
			return len(r.prefixes[i]) > len(r.prefixes[j])
		}
		return r.prefixes[i] < r.prefixes[j]
	})
	return r, nil
}

// Family looks up a family by key.
func (r *Registry) Family(key string) (*Family, error) {
	f, ok := r.families[strings.ToUpper(strings.TrimSpace(key))]
	if !ok {
		return nil, &UnknownFamilyError{Key: key}
	}
	return f, nil
}

// Infer resolves a family from a canonicalized model number by longest
// matching prefix.
func (r *Registry) Infer(model string) (*Family, error) {
	for _, p := range r.prefixes {
		if strings.HasPrefix(model, p) {
			return r.families[p], nil
		}
	}
	return nil, &UnknownFamilyError{Model: model}
}

// Families returns the registered families sorted by key.
func (r *Registry) Families() []*Family {
	out := make([]*Family, 0, len(r.families))
	for _, f := range r.families {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

type registryFile struct {
	Families []*Family `yaml:"families"`
}

// Load builds a registry from the built-in tables, optionally replaced by a
// YAML file so families can be edited without a code change. path == ""
// means built-ins only.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(builtinFamilies())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	var rf registryFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("parse registry file %s: %w", path, err)
	}
	if len(rf.Families) == 0 {
		return nil, fmt.Errorf("registry file %s declares no families", path)
	}
	return NewRegistry(rf.Families)
}
