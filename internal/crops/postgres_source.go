package crops

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the crop dataset from PostgreSQL.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a new PostgreSQL crop data source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name returns "postgres".
func (s *PostgresSource) Name() string {
	return "postgres"
}

// Load reads all crops ordered by position, then all alternative names.
func (s *PostgresSource) Load(ctx context.Context) (Dataset, error) {
	crops, err := s.loadCrops(ctx)
	if err != nil {
		return Dataset{}, err
	}
	alternatives, err := s.loadAlternatives(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Crops: crops, Alternatives: alternatives}, nil
}

func (s *PostgresSource) loadCrops(ctx context.Context) ([]Entry, error) {
	query := `
		SELECT key, scientific_name, type, planting_season, growth_duration_days,
		       expected_yield_kg_per_hectare, preferred_soil, min_temperature,
		       common_pests_diseases, notes, source
		FROM crop_requirements
		ORDER BY position, key
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query crop requirements: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(
			&e.Key,
			&e.ScientificName,
			&e.Type,
			&e.PlantingSeason,
			&e.GrowthDurationDays,
			&e.ExpectedYieldKgPerHectare,
			&e.PreferredSoil,
			&e.MinTemperature,
			&e.CommonPestsDiseases,
			&e.Notes,
			&e.Source,
		)
		if err != nil {
			return nil, fmt.Errorf("scan crop requirements: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *PostgresSource) loadAlternatives(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT name, crop_key
		FROM crop_alternative_names
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query alternative names: %w", err)
	}
	defer rows.Close()

	alternatives := make(map[string]string)
	for rows.Next() {
		var name, key string
		if err := rows.Scan(&name, &key); err != nil {
			return nil, fmt.Errorf("scan alternative names: %w", err)
		}
		alternatives[name] = key
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alternatives, nil
}

// Ensure PostgresSource implements Source interface.
var _ Source = (*PostgresSource)(nil)
