package crops

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// suffixGroup is shared by the depluralization strategies: once one of
// them applies to the input, the others are not tried.
const suffixGroup = "suffix"

// Strategy is one named step of the resolution chain. Candidate maps the
// normalized input to a canonical key candidate; ok is false when the
// strategy does not apply to the input.
type Strategy struct {
	Name      StrategyName
	Group     string
	Candidate func(normalized string) (candidate string, ok bool)
}

// Resolver resolves free-text crop names against a Table.
type Resolver struct {
	table      *Table
	strategies []Strategy
}

// NewResolver creates a Resolver with the standard strategy chain:
// direct, alternative, then the ies/es/s suffix rules.
func NewResolver(table *Table) *Resolver {
	return &Resolver{
		table:      table,
		strategies: defaultStrategies(table),
	}
}

func defaultStrategies(table *Table) []Strategy {
	return []Strategy{
		{
			Name: StrategyDirect,
			Candidate: func(s string) (string, bool) {
				return s, true
			},
		},
		{
			Name:      StrategyAlternative,
			Candidate: table.Alternative,
		},
		{
			Name:  StrategyDepluralizeIES,
			Group: suffixGroup,
			Candidate: func(s string) (string, bool) {
				if strings.HasSuffix(s, "ies") && utf8.RuneCountInString(s) > 4 {
					return s[:len(s)-3] + "y", true
				}
				return "", false
			},
		},
		{
			Name:  StrategyDepluralizeES,
			Group: suffixGroup,
			Candidate: func(s string) (string, bool) {
				if strings.HasSuffix(s, "es") && utf8.RuneCountInString(s) > 3 {
					return s[:len(s)-2], true
				}
				return "", false
			},
		},
		{
			Name:  StrategyDepluralizeS,
			Group: suffixGroup,
			Candidate: func(s string) (string, bool) {
				if strings.HasSuffix(s, "s") && utf8.RuneCountInString(s) > 2 {
					return s[:len(s)-1], true
				}
				return "", false
			},
		},
	}
}

// Normalize trims surrounding whitespace and lowercases a name using
// locale-independent case mapping.
func Normalize(name string) string {
	// Casers are stateful and must not be shared between goroutines.
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// Table returns the table backing the resolver.
func (r *Resolver) Table() *Table {
	return r.table
}

// Strategies returns the names of the resolution chain in evaluation order.
func (r *Resolver) Strategies() []StrategyName {
	names := make([]StrategyName, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name
	}
	return names
}

// Resolve looks a crop up by name. It returns false for blank input and
// for names no strategy can resolve.
func (r *Resolver) Resolve(name string) (Requirements, bool) {
	m, ok := r.ResolveMatch(name)
	if !ok {
		return Requirements{}, false
	}
	return m.Requirements, true
}

// ResolveMatch is like Resolve but also reports the canonical key and the
// strategy that produced the match.
func (r *Resolver) ResolveMatch(name string) (Match, bool) {
	if strings.TrimSpace(name) == "" {
		return Match{}, false
	}
	normalized := Normalize(name)

	tried := make(map[string]bool)
	for _, s := range r.strategies {
		candidate, ok := s.Candidate(normalized)
		if !ok {
			continue
		}
		if s.Group != "" {
			if tried[s.Group] {
				continue
			}
			tried[s.Group] = true
		}
		if req, found := r.table.Lookup(candidate); found {
			return Match{
				Key:          Normalize(candidate),
				Strategy:     s.Name,
				Requirements: req,
			}, true
		}
	}
	return Match{}, false
}

// ListByType returns the crops whose type equals t case-insensitively,
// in table order.
func (r *Resolver) ListByType(t string) []Requirements {
	out := make([]Requirements, 0)
	for _, e := range r.table.entries {
		if strings.EqualFold(e.Type, t) {
			out = append(out, e.Requirements)
		}
	}
	return out
}

// ListAllTypes returns the distinct crop types sorted ascending.
func (r *Resolver) ListAllTypes() []string {
	return r.table.types()
}

// ListBySeason returns the crops whose planting season contains season,
// in table order. The match is case-sensitive.
func (r *Resolver) ListBySeason(season string) []Requirements {
	out := make([]Requirements, 0)
	for _, e := range r.table.entries {
		if strings.Contains(e.PlantingSeason, season) {
			out = append(out, e.Requirements)
		}
	}
	return out
}

// SearchNames returns the canonical keys containing term, sorted ascending.
// A blank term yields an empty result.
func (r *Resolver) SearchNames(term string) []string {
	out := make([]string, 0)
	if strings.TrimSpace(term) == "" {
		return out
	}
	needle := cases.Lower(language.Und).String(term)
	for _, e := range r.table.entries {
		if strings.Contains(e.Key, needle) {
			out = append(out, e.Key)
		}
	}
	sort.Strings(out)
	return out
}
