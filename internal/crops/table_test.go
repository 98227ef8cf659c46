package crops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstack/cropreqs/internal/crops"
)

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dataset crops.Dataset
		wantErr error
	}{
		{
			name: "empty key",
			dataset: crops.Dataset{
				Crops: []crops.Entry{{Key: "  "}},
			},
			wantErr: crops.ErrEmptyKey,
		},
		{
			name: "duplicate key differing in case",
			dataset: crops.Dataset{
				Crops: []crops.Entry{{Key: "maize"}, {Key: "Maize"}},
			},
			wantErr: crops.ErrDuplicateKey,
		},
		{
			name: "dangling alternative",
			dataset: crops.Dataset{
				Crops:        []crops.Entry{{Key: "maize"}},
				Alternatives: map[string]string{"wheaties": "wheat"},
			},
			wantErr: crops.ErrDanglingAlternative,
		},
		{
			name: "alternative names colliding after normalization",
			dataset: crops.Dataset{
				Crops:        []crops.Entry{{Key: "maize"}, {Key: "wheat"}},
				Alternatives: map[string]string{"Corn": "maize", "corn": "wheat"},
			},
			wantErr: crops.ErrDuplicateAlternative,
		},
		{
			name: "negative growth duration",
			dataset: crops.Dataset{
				Crops: []crops.Entry{{
					Key:          "maize",
					Requirements: crops.Requirements{GrowthDurationDays: -1},
				}},
			},
			wantErr: crops.ErrInvalidRequirements,
		},
		{
			name: "negative yield",
			dataset: crops.Dataset{
				Crops: []crops.Entry{{
					Key:          "maize",
					Requirements: crops.Requirements{ExpectedYieldKgPerHectare: -0.5},
				}},
			},
			wantErr: crops.ErrInvalidRequirements,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := crops.NewTable(tt.dataset)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTable_NormalizesKeys(t *testing.T) {
	table, err := crops.NewTable(crops.Dataset{
		Crops: []crops.Entry{
			{Key: " Sweet_Potato ", Requirements: crops.Requirements{Type: "Root Vegetable"}},
			{Key: "maize", Requirements: crops.Requirements{Type: "Cereal"}},
		},
		Alternatives: map[string]string{" Kumara ": "SWEET_POTATO"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sweet_potato", "maize"}, table.Keys())
	assert.Equal(t, 2, table.Len())

	req, ok := table.Lookup("SWEET_potato")
	require.True(t, ok)
	assert.Equal(t, "Root Vegetable", req.Type)

	key, ok := table.Alternative("kumara")
	require.True(t, ok)
	assert.Equal(t, "sweet_potato", key)
}

func TestNewTable_EquivalentAlternativesToSameCrop(t *testing.T) {
	table, err := crops.NewTable(crops.Dataset{
		Crops:        []crops.Entry{{Key: "maize"}},
		Alternatives: map[string]string{"Corn": "maize", "corn": "MAIZE"},
	})
	require.NoError(t, err)

	key, ok := table.Alternative("corn")
	require.True(t, ok)
	assert.Equal(t, "maize", key)
	assert.Len(t, table.Alternatives(), 1)
}

func TestNewTable_KeysUseSameCaseMappingAsInput(t *testing.T) {
	// A word-final capital sigma lowercases to ς, not σ.
	table, err := crops.NewTable(crops.Dataset{
		Crops: []crops.Entry{{Key: "ΚΡΟΚΟΣ", Requirements: crops.Requirements{Type: "Spice"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"κροκος"}, table.Keys())

	r := crops.NewResolver(table)
	for _, name := range []string{"ΚΡΟΚΟΣ", "κροκος", "Κροκος"} {
		m, ok := r.ResolveMatch(name)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, "κροκος", m.Key)
		assert.Equal(t, crops.StrategyDirect, m.Strategy)
	}
}

func TestTable_ReturnsCopies(t *testing.T) {
	table, err := crops.DefaultTable()
	require.NoError(t, err)

	entries := table.Entries()
	entries[0].ScientificName = "mutated"
	assert.NotEqual(t, "mutated", table.Entries()[0].ScientificName)

	alternatives := table.Alternatives()
	alternatives["mealies"] = "wheat"
	key, _ := table.Alternative("mealies")
	assert.Equal(t, "maize", key)
}

func TestDefaultTable_ReferenceData(t *testing.T) {
	table, err := crops.DefaultTable()
	require.NoError(t, err)

	assert.Equal(t, 35, table.Len())

	maize, ok := table.Lookup("maize")
	require.True(t, ok)
	assert.Equal(t, "Zea mays", maize.ScientificName)
	assert.Equal(t, "Cereal", maize.Type)
	assert.Equal(t, "Spring/Summer", maize.PlantingSeason)
	assert.Equal(t, 120, maize.GrowthDurationDays)
	assert.InDelta(t, 5500.0, maize.ExpectedYieldKgPerHectare, 0.001)
	assert.Equal(t, "10°C", maize.MinTemperature)
	assert.Equal(t, "ARC-GCI", maize.Source)

	for name, key := range table.Alternatives() {
		_, ok := table.Lookup(key)
		assert.True(t, ok, "alternative %q maps to unknown key %q", name, key)
	}
}
