// Package crops provides the crop requirements reference table and the
// name resolver used to look crops up by free-text names.
package crops

import "errors"

// Errors returned while building a Table.
var (
	// ErrEmptyKey is returned when a crop entry has a blank canonical key.
	ErrEmptyKey = errors.New("crop key is empty")

	// ErrDuplicateKey is returned when two keys are equal case-insensitively.
	ErrDuplicateKey = errors.New("duplicate crop key")

	// ErrDanglingAlternative is returned when an alternative name maps to a
	// key that is not present in the crop table.
	ErrDanglingAlternative = errors.New("alternative name maps to unknown crop")

	// ErrDuplicateAlternative is returned when two alternative names are
	// equal after normalization but map to different crops.
	ErrDuplicateAlternative = errors.New("conflicting alternative name")

	// ErrInvalidRequirements is returned for negative durations or yields.
	ErrInvalidRequirements = errors.New("invalid crop requirements")
)

// ErrCropNotFound is returned by the Service when a name cannot be resolved.
var ErrCropNotFound = errors.New("crop not found")

// Requirements holds the agronomic data for a single crop.
type Requirements struct {
	ScientificName            string  `json:"scientificName" yaml:"scientific_name"`
	Type                      string  `json:"type" yaml:"type"`
	PlantingSeason            string  `json:"plantingSeason" yaml:"planting_season"`
	GrowthDurationDays        int     `json:"growthDurationDays" yaml:"growth_duration_days"`
	ExpectedYieldKgPerHectare float64 `json:"expectedYieldKgPerHectare" yaml:"expected_yield_kg_per_hectare"`
	PreferredSoil             string  `json:"preferredSoil" yaml:"preferred_soil"`
	MinTemperature            string  `json:"minTemperature" yaml:"min_temperature"`
	CommonPestsDiseases       string  `json:"commonPestsDiseases" yaml:"common_pests_diseases"`
	Notes                     string  `json:"notes" yaml:"notes"`
	Source                    string  `json:"source" yaml:"source"`
}

// Entry is one row of the crop table.
type Entry struct {
	Key          string `json:"key" yaml:"key"`
	Requirements `yaml:",inline"`
}

// Dataset is the raw payload produced by a Source.
// Crops are kept in insertion order; Alternatives maps alternative names
// to canonical keys.
type Dataset struct {
	Crops        []Entry           `yaml:"crops"`
	Alternatives map[string]string `yaml:"alternatives"`
}

// StrategyName identifies one step of the resolution chain.
type StrategyName string

// Resolution strategies, in chain order.
const (
	StrategyDirect         StrategyName = "direct"
	StrategyAlternative    StrategyName = "alternative"
	StrategyDepluralizeIES StrategyName = "depluralize_ies"
	StrategyDepluralizeES  StrategyName = "depluralize_es"
	StrategyDepluralizeS   StrategyName = "depluralize_s"
)

// Match describes a successful resolution.
type Match struct {
	Key          string
	Strategy     StrategyName
	Requirements Requirements
}
