package crops

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/farmstack/cropreqs/internal/crops"

// Lookup outcomes recorded on the lookup counter.
const (
	outcomeHit  = "hit"
	outcomeMiss = "miss"
)

// ServiceConfig holds configuration for the crops service.
type ServiceConfig struct {
	// Resolver answers all lookups. Required.
	Resolver *Resolver

	// SourceName is reported by readiness checks (default: "embedded").
	SourceName string

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service exposes the resolver to transport callers with tracing,
// metrics and logging.
type Service struct {
	resolver    *Resolver
	sourceName  string
	logger      zerolog.Logger
	tracer      trace.Tracer
	lookupTotal metric.Int64Counter
}

// NewService creates a new crops service.
func NewService(cfg ServiceConfig) (*Service, error) {
	sourceName := cfg.SourceName
	if sourceName == "" {
		sourceName = EmbeddedSource{}.Name()
	}

	lookupTotal, err := otel.Meter(instrumentationName).Int64Counter(
		"crops.lookup.total",
		metric.WithDescription("Total number of crop lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		resolver:    cfg.Resolver,
		sourceName:  sourceName,
		logger:      cfg.Logger,
		tracer:      otel.Tracer(instrumentationName),
		lookupTotal: lookupTotal,
	}, nil
}

// Resolve resolves a crop name. Returns ErrCropNotFound when no strategy
// matches.
func (s *Service) Resolve(ctx context.Context, name string) (Match, error) {
	ctx, span := s.tracer.Start(ctx, "crops.Resolve",
		trace.WithAttributes(attribute.String("crops.name", name)))
	defer span.End()

	m, ok := s.resolver.ResolveMatch(name)
	if !ok {
		s.record(ctx, "resolve", "", outcomeMiss)
		s.logger.Debug().
			Str("name", name).
			Msg("crop name not resolved")
		return Match{}, ErrCropNotFound
	}

	span.SetAttributes(
		attribute.String("crops.key", m.Key),
		attribute.String("crops.strategy", string(m.Strategy)),
	)
	s.record(ctx, "resolve", m.Strategy, outcomeHit)
	return m, nil
}

// All returns every crop in table order.
func (s *Service) All(_ context.Context) []Entry {
	return s.resolver.Table().Entries()
}

// Count returns the number of crops in the table.
func (s *Service) Count() int {
	return s.resolver.Table().Len()
}

// SourceName returns the name of the source the table was loaded from.
func (s *Service) SourceName() string {
	return s.sourceName
}

// ListByType returns the crops of the given type.
func (s *Service) ListByType(ctx context.Context, cropType string) []Requirements {
	ctx, span := s.tracer.Start(ctx, "crops.ListByType")
	defer span.End()

	out := s.resolver.ListByType(cropType)
	s.record(ctx, "list_by_type", "", outcomeOf(len(out)))
	return out
}

// ListBySeason returns the crops planted in the given season.
func (s *Service) ListBySeason(ctx context.Context, season string) []Requirements {
	ctx, span := s.tracer.Start(ctx, "crops.ListBySeason")
	defer span.End()

	out := s.resolver.ListBySeason(season)
	s.record(ctx, "list_by_season", "", outcomeOf(len(out)))
	return out
}

// ListAllTypes returns the distinct crop types.
func (s *Service) ListAllTypes(ctx context.Context) []string {
	ctx, span := s.tracer.Start(ctx, "crops.ListAllTypes")
	defer span.End()

	out := s.resolver.ListAllTypes()
	s.record(ctx, "list_all_types", "", outcomeOf(len(out)))
	return out
}

// SearchNames returns canonical keys containing term.
func (s *Service) SearchNames(ctx context.Context, term string) []string {
	ctx, span := s.tracer.Start(ctx, "crops.SearchNames")
	defer span.End()

	out := s.resolver.SearchNames(term)
	s.record(ctx, "search_names", "", outcomeOf(len(out)))
	return out
}

func (s *Service) record(ctx context.Context, operation string, strategy StrategyName, outcome string) {
	attrs := []attribute.KeyValue{
		attribute.String("crops.operation", operation),
		attribute.String("crops.outcome", outcome),
	}
	if strategy != "" {
		attrs = append(attrs, attribute.String("crops.strategy", string(strategy)))
	}
	s.lookupTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func outcomeOf(n int) string {
	if n == 0 {
		return outcomeMiss
	}
	return outcomeHit
}
