package service

import (
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"astrova/internal/repository"
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	parallelLimit          = 5
	partialOverlapFloor    = 0.6
	narrativeTruncateRunes = 200
)

// ParallelQuery carries everything the cascade strategies need: the
// fresh snapshot (for the similarity fallback) and the strongest
// pattern IDs from the current forecast (for the store lookups).
type ParallelQuery struct {
	Snapshot   *domain.Snapshot
	PatternIDs []uuid.UUID
}

// ParallelService surfaces historical analogues for a fresh snapshot.
// Strategies run in a fixed order and the first one to produce any rows
// wins; a strategy failing is logged and skipped, never fatal.
type ParallelService interface {
	FindParallels(ctx context.Context, query ParallelQuery) ([]domain.HistoricalParallel, string, error)
}

type parallelStrategy struct {
	name string
	run  func(ctx context.Context, query ParallelQuery) ([]domain.HistoricalParallel, error)
}

type parallelServiceHandler struct {
	PatternMatchRepository repository.PatternMatchRepository
	SimilarityRepository   repository.SimilarityRepository

	strategies []parallelStrategy
}

func NewParallelService(
	patternMatchRepository repository.PatternMatchRepository,
	similarityRepository repository.SimilarityRepository,
) ParallelService {
	h := &parallelServiceHandler{
		PatternMatchRepository: patternMatchRepository,
		SimilarityRepository:   similarityRepository,
	}
	h.strategies = []parallelStrategy{
		{"view", h.viewLookup},
		{"join", h.joinLookup},
		{"partial-overlap", h.partialOverlapLookup},
		{"similarity", h.similarityLookup},
	}
	return h
}

func (h *parallelServiceHandler) FindParallels(ctx context.Context, query ParallelQuery) ([]domain.HistoricalParallel, string, error) {
	for _, strategy := range h.strategies {
		parallels, err := strategy.run(ctx, query)
		if err != nil {
			zap.S().Warnw("historical parallel strategy failed, falling through",
				"strategy", strategy.name,
				"err", err,
			)
			continue
		}
		if len(parallels) > 0 {
			return parallels, strategy.name, nil
		}
	}
	return nil, "", nil
}

func (h *parallelServiceHandler) viewLookup(_ context.Context, query ParallelQuery) ([]domain.HistoricalParallel, error) {
	if len(query.PatternIDs) == 0 {
		return nil, nil
	}
	rows, err := h.PatternMatchRepository.ListEventMatches(query.PatternIDs, parallelLimit)
	if err != nil {
		return nil, err
	}
	return parallelsFromRows(rows), nil
}

func (h *parallelServiceHandler) joinLookup(_ context.Context, query ParallelQuery) ([]domain.HistoricalParallel, error) {
	if len(query.PatternIDs) == 0 {
		return nil, nil
	}
	rows, err := h.PatternMatchRepository.ListEventMatchesJoin(query.PatternIDs, parallelLimit)
	if err != nil {
		return nil, err
	}
	return parallelsFromRows(rows), nil
}

// partialOverlapLookup relaxes the lookup to events matching at least
// 60% of the forecast's top patterns, ranked by summed match strength.
func (h *parallelServiceHandler) partialOverlapLookup(_ context.Context, query ParallelQuery) ([]domain.HistoricalParallel, error) {
	if len(query.PatternIDs) == 0 {
		return nil, nil
	}
	rows, err := h.PatternMatchRepository.ListEventMatchesJoin(query.PatternIDs, 1000)
	if err != nil {
		return nil, err
	}

	type eventAccumulator struct {
		row         model.EventsWithPatternMatches
		patternsHit map[uuid.UUID]bool
		strengthSum float64
	}
	byEvent := map[uuid.UUID]*eventAccumulator{}
	for _, row := range rows {
		acc, ok := byEvent[row.EventID]
		if !ok {
			acc = &eventAccumulator{row: row, patternsHit: map[uuid.UUID]bool{}}
			byEvent[row.EventID] = acc
		}
		if !acc.patternsHit[row.PatternID] {
			acc.patternsHit[row.PatternID] = true
			acc.strengthSum += row.MatchStrength
		}
		if row.MatchStrength > acc.row.MatchStrength {
			acc.row = row
		}
	}

	required := partialOverlapFloor * float64(len(query.PatternIDs))
	qualifying := make([]*eventAccumulator, 0, len(byEvent))
	for _, acc := range byEvent {
		if float64(len(acc.patternsHit)) >= required {
			qualifying = append(qualifying, acc)
		}
	}
	sort.Slice(qualifying, func(i, j int) bool {
		if qualifying[i].strengthSum != qualifying[j].strengthSum {
			return qualifying[i].strengthSum > qualifying[j].strengthSum
		}
		return qualifying[i].row.EventDate.After(qualifying[j].row.EventDate)
	})
	if len(qualifying) > parallelLimit {
		qualifying = qualifying[:parallelLimit]
	}

	parallels := make([]domain.HistoricalParallel, 0, len(qualifying))
	for _, acc := range qualifying {
		parallels = append(parallels, parallelFromRow(acc.row))
	}
	return parallels, nil
}

func (h *parallelServiceHandler) similarityLookup(ctx context.Context, query ParallelQuery) ([]domain.HistoricalParallel, error) {
	if h.SimilarityRepository == nil || query.Snapshot == nil {
		return nil, nil
	}
	return h.SimilarityRepository.FindSimilar(ctx, query.Snapshot, parallelLimit)
}

func parallelsFromRows(rows []model.EventsWithPatternMatches) []domain.HistoricalParallel {
	parallels := make([]domain.HistoricalParallel, 0, len(rows))
	for _, row := range rows {
		parallels = append(parallels, parallelFromRow(row))
	}
	return parallels
}

func parallelFromRow(row model.EventsWithPatternMatches) domain.HistoricalParallel {
	narrative := ""
	if row.Description != nil {
		narrative = truncateRunes(*row.Description, narrativeTruncateRunes)
	}
	return domain.HistoricalParallel{
		Title:         row.Title,
		EventDate:     row.EventDate,
		Category:      row.Category,
		ImpactLevel:   row.ImpactLevel,
		MatchStrength: row.MatchStrength,
		Narrative:     narrative,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
