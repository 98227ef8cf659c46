package crops

import (
	"fmt"
	"sort"
)

// Table is the validated, read-only crop table together with its
// alternative-name index. A Table is never mutated after NewTable returns,
// so it is safe for concurrent readers.
type Table struct {
	entries      []Entry
	index        map[string]int
	alternatives map[string]string
}

// NewTable validates a dataset and builds an immutable Table from it.
// Keys and alternative names are stored normalized so they can be matched
// against normalized input.
func NewTable(ds Dataset) (*Table, error) {
	t := &Table{
		entries:      make([]Entry, 0, len(ds.Crops)),
		index:        make(map[string]int, len(ds.Crops)),
		alternatives: make(map[string]string, len(ds.Alternatives)),
	}

	for _, e := range ds.Crops {
		key := Normalize(e.Key)
		if key == "" {
			return nil, ErrEmptyKey
		}
		if _, exists := t.index[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		if e.GrowthDurationDays < 0 || e.ExpectedYieldKgPerHectare < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRequirements, key)
		}
		e.Key = key
		t.index[key] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	for name, key := range ds.Alternatives {
		target := Normalize(key)
		if _, ok := t.index[target]; !ok {
			return nil, fmt.Errorf("%w: %q -> %q", ErrDanglingAlternative, name, key)
		}
		normalized := Normalize(name)
		if existing, ok := t.alternatives[normalized]; ok && existing != target {
			return nil, fmt.Errorf("%w: %q maps to both %q and %q", ErrDuplicateAlternative, normalized, existing, target)
		}
		t.alternatives[normalized] = target
	}

	return t, nil
}

// Lookup returns the requirements stored under a canonical key.
// The key is normalized before comparison.
func (t *Table) Lookup(key string) (Requirements, bool) {
	i, ok := t.index[Normalize(key)]
	if !ok {
		return Requirements{}, false
	}
	return t.entries[i].Requirements, true
}

// Alternative returns the canonical key an alternative name maps to.
func (t *Table) Alternative(name string) (string, bool) {
	key, ok := t.alternatives[name]
	return key, ok
}

// Entries returns a copy of the table rows in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the canonical keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Alternatives returns a copy of the alternative-name index.
func (t *Table) Alternatives() map[string]string {
	out := make(map[string]string, len(t.alternatives))
	for name, key := range t.alternatives {
		out[name] = key
	}
	return out
}

// Len returns the number of crops in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// types returns the distinct crop types in ordinal order.
func (t *Table) types() []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, e := range t.entries {
		if _, ok := seen[e.Type]; ok {
			continue
		}
		seen[e.Type] = struct{}{}
		types = append(types, e.Type)
	}
	sort.Strings(types)
	return types
}
