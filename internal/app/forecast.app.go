package app

import (
	"astrova/internal/calculator"
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"astrova/internal/repository"
	"astrova/internal/service"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	activePatternLimit   = 10
	parallelPatternLimit = 5
)

// EphemerisClient is the upstream position source. Satisfied by the
// swiss engine HTTP client.
type EphemerisClient interface {
	PlanetaryPositions(ctx context.Context, instant time.Time, latitude, longitude float64) (map[domain.Body]domain.RawPosition, error)
	Ascendant(ctx context.Context, instant time.Time, latitude, longitude float64) (float64, error)
}

type ForecastHandler struct {
	EphemerisClient          EphemerisClient
	PatternRepository        repository.PatternRepository
	MlPredictionRepository   repository.MlPredictionRepository
	PatternMatchService      service.PatternMatchService
	OutlookService           service.OutlookService
	ParallelService          service.ParallelService
	InterpretationRepository repository.InterpretationRepository

	AspectConfig calculator.AspectConfig
}

type GenerateForecastInput struct {
	Instant   time.Time
	Latitude  float64
	Longitude float64

	// SkipParallels suppresses the historical-parallel cascade, for
	// callers that only need the snapshot and pattern hits.
	SkipParallels bool
}

// ForecastResult is the assembled forecast. StoreAvailable is false
// when the pattern store could not be read; the snapshot is still
// returned and the store-dependent sections are empty.
type ForecastResult struct {
	Snapshot       *domain.Snapshot
	ActivePatterns []domain.PatternHit
	Parallels      []domain.HistoricalParallel
	ParallelSource string
	Outlooks       []domain.CategoryOutlook
	StoreAvailable bool
}

// GenerateForecast computes the snapshot for the requested instant and
// location, matches it against the stored pattern corpus, and builds
// the outlook and historical-parallel sections. An unreachable
// ephemeris fails the whole request; an unreachable store degrades it.
func (h ForecastHandler) GenerateForecast(ctx context.Context, in GenerateForecastInput) (*ForecastResult, error) {
	profile, ok := ctx.Value(domain.ContextProfileKey).(*domain.Profile)
	if !ok {
		profile, _ = domain.NewProfile()
	}

	_, endSpan := profile.StartNewSpan("compute ephemeris positions")
	rawPositions, err := h.EphemerisClient.PlanetaryPositions(ctx, in.Instant, in.Latitude, in.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch planetary positions: %w", err)
	}
	ascendant, err := h.EphemerisClient.Ascendant(ctx, in.Instant, in.Latitude, in.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ascendant: %w", err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("build snapshot")
	snapshot := calculator.BuildSnapshot(in.Instant, in.Latitude, in.Longitude, rawPositions, ascendant, h.AspectConfig)
	endSpan()

	result := &ForecastResult{
		Snapshot:       snapshot,
		StoreAvailable: true,
	}

	_, endSpan = profile.StartNewSpan("match pattern corpus")
	patterns, err := h.PatternRepository.ListAll()
	if err != nil {
		zap.S().Warnw("pattern store unavailable, returning degraded forecast", "err", err)
		result.StoreAvailable = false
		endSpan()
		return result, nil
	}

	hits := h.matchCorpus(snapshot, patterns)
	endSpan()

	_, endSpan = profile.StartNewSpan("build outlooks")
	result.ActivePatterns = topHits(hits, activePatternLimit)
	mlProbabilities := h.latestMlProbabilities(in.Instant)
	result.Outlooks = h.OutlookService.BuildOutlooks(hits, mlProbabilities)
	h.enhanceNarratives(ctx, result.Outlooks)
	endSpan()

	if !in.SkipParallels {
		_, endSpan = profile.StartNewSpan("find historical parallels")
		parallels, source, err := h.ParallelService.FindParallels(ctx, service.ParallelQuery{
			Snapshot:   snapshot,
			PatternIDs: hitPatternIDs(result.ActivePatterns, parallelPatternLimit),
		})
		if err != nil {
			zap.S().Warnw("historical parallel lookup failed", "err", err)
		} else {
			result.Parallels = parallels
			result.ParallelSource = source
		}
		endSpan()
	}

	return result, nil
}

func (h ForecastHandler) matchCorpus(snapshot *domain.Snapshot, patterns []model.AstrologicalPattern) []domain.PatternHit {
	hits := []domain.PatternHit{}
	for _, pattern := range patterns {
		match := h.PatternMatchService.Match(snapshot, "", pattern)
		if match == nil {
			continue
		}
		hits = append(hits, domain.PatternHit{
			PatternID:        pattern.PatternID,
			PatternName:      pattern.PatternName,
			PatternType:      pattern.PatternType,
			MatchStrength:    match.Strength,
			ExactMatch:       match.Exact,
			OrbApplied:       match.OrbApplied,
			SuccessRate:      pattern.SuccessRate,
			TotalOccurrences: pattern.TotalOccurrences,
		})
	}
	sortHits(hits)
	return hits
}

func topHits(hits []domain.PatternHit, limit int) []domain.PatternHit {
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func hitPatternIDs(hits []domain.PatternHit, limit int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, limit)
	for _, hit := range hits {
		if len(ids) == limit {
			break
		}
		ids = append(ids, hit.PatternID)
	}
	return ids
}

func (h ForecastHandler) latestMlProbabilities(asOf time.Time) map[string]float64 {
	if h.MlPredictionRepository == nil {
		return nil
	}
	probabilities, err := h.MlPredictionRepository.LatestProbabilities(asOf)
	if err != nil {
		zap.S().Warnw("ml predictions unavailable, blending pattern evidence only", "err", err)
		return nil
	}
	return probabilities
}

// enhanceNarratives swaps the templated narrative for a generated one
// where the language model is configured. Failures keep the template.
func (h ForecastHandler) enhanceNarratives(ctx context.Context, outlooks []domain.CategoryOutlook) {
	if h.InterpretationRepository == nil {
		return
	}
	for i := range outlooks {
		narrative, err := h.InterpretationRepository.OutlookNarrative(
			ctx,
			outlooks[i].Category,
			outlooks[i].Likelihood,
			outlooks[i].ContributingPatternNames,
		)
		if err != nil {
			zap.S().Warnw("narrative generation failed, keeping template",
				"category", outlooks[i].Category,
				"err", err,
			)
			continue
		}
		if narrative != "" {
			outlooks[i].NarrativeContext = narrative
		}
	}
}

func sortHits(hits []domain.PatternHit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].MatchStrength != hits[j].MatchStrength {
			return hits[i].MatchStrength > hits[j].MatchStrength
		}
		return hits[i].PatternName < hits[j].PatternName
	})
}
