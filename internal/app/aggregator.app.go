package app

import (
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"astrova/internal/repository"
	"astrova/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	eventPageSize = 100

	// minimum recurrences before a tallied configuration becomes a
	// stored pattern
	minPatternOccurrences = 2

	// impact_level at or above this counts as a high-impact event
	highImpactThreshold = 7
)

// AggregatorHandler rebuilds the pattern corpus from the stored event
// history. The three phases are ordered: patterns are generated from
// raw snapshots, the match table is rebuilt against the fresh corpus,
// and the per-pattern statistics are recomputed from the new matches.
type AggregatorHandler struct {
	WorldEventRepository   repository.WorldEventRepository
	PatternRepository      repository.PatternRepository
	PatternMatchRepository repository.PatternMatchRepository
	PatternMatchService    service.PatternMatchService
}

type patternCandidate struct {
	patternType string
	conditions  domain.PatternConditions
	occurrences int32
	description string
}

// RunAll executes the full pipeline in order.
func (h AggregatorHandler) RunAll(ctx context.Context) error {
	if _, err := h.GeneratePatterns(ctx); err != nil {
		return err
	}
	if _, err := h.RebuildMatches(ctx); err != nil {
		return err
	}
	return h.RecomputeStats(ctx)
}

// GeneratePatterns scans every stored event snapshot, tallies recurring
// planetary configurations, and upserts the ones seen at least twice.
// Returns the number of patterns written.
func (h AggregatorHandler) GeneratePatterns(ctx context.Context) (int, error) {
	totalEvents, err := h.WorldEventRepository.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	if totalEvents == 0 {
		return 0, nil
	}

	candidates := map[string]*patternCandidate{}
	scanned := 0
	err = h.forEachSnapshot(func(event model.WorldEvent, snapshot *domain.Snapshot) {
		scanned++
		h.tallySnapshot(candidates, snapshot)
	})
	if err != nil {
		return 0, err
	}

	zap.S().Infow("scanned event snapshots for pattern generation",
		"events", scanned,
		"candidates", len(candidates),
	)

	written := 0
	for _, candidate := range sortedCandidates(candidates) {
		if candidate.occurrences < minPatternOccurrences {
			continue
		}
		conditions, err := json.Marshal(candidate.conditions)
		if err != nil {
			zap.S().Warnw("skipping candidate with unserializable conditions", "pattern", candidate.description, "err", err)
			continue
		}
		description := candidate.description
		_, err = h.PatternRepository.Upsert(model.AstrologicalPattern{
			PatternName:       candidate.name(),
			PatternType:       candidate.patternType,
			PatternConditions: string(conditions),
			Description:       &description,
			TotalOccurrences:  candidate.occurrences,
			SuccessRate:       float64(candidate.occurrences) / float64(totalEvents) * 100,
		})
		if err != nil {
			zap.S().Warnw("failed to upsert pattern", "pattern", candidate.name(), "err", err)
			continue
		}
		written++
	}
	return written, nil
}

// RebuildMatches clears the match table and re-matches every stored
// event against the current pattern corpus. Returns the number of
// match rows written.
func (h AggregatorHandler) RebuildMatches(ctx context.Context) (int, error) {
	patterns, err := h.PatternRepository.ListAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list patterns: %w", err)
	}

	if err := h.PatternMatchRepository.DeleteAll(); err != nil {
		return 0, fmt.Errorf("failed to clear match table: %w", err)
	}

	written := 0
	err = h.forEachSnapshot(func(event model.WorldEvent, snapshot *domain.Snapshot) {
		for _, pattern := range patterns {
			match := h.PatternMatchService.Match(snapshot, event.Category, pattern)
			if match == nil {
				continue
			}
			orb := match.OrbApplied
			details := match.Details
			err := h.PatternMatchRepository.Upsert(model.EventPatternMatch{
				EventID:       event.EventID,
				PatternID:     pattern.PatternID,
				MatchStrength: match.Strength,
				ExactMatch:    match.Exact,
				OrbApplied:    &orb,
				MatchDetails:  &details,
			})
			if err != nil {
				zap.S().Warnw("failed to write match",
					"event", event.EventID,
					"pattern", pattern.PatternName,
					"err", err,
				)
				continue
			}
			written++
		}
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// RecomputeStats recounts each pattern's occurrences from the rebuilt
// match table and refreshes its success rate.
func (h AggregatorHandler) RecomputeStats(ctx context.Context) error {
	patterns, err := h.PatternRepository.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list patterns: %w", err)
	}

	for _, pattern := range patterns {
		stats, err := h.PatternMatchRepository.StatsForPattern(pattern.PatternID, highImpactThreshold)
		if err != nil {
			zap.S().Warnw("failed to compute stats", "pattern", pattern.PatternName, "err", err)
			continue
		}
		successRate := 0.0
		if stats.TotalOccurrences > 0 {
			successRate = float64(stats.HighImpactOccurrences) / float64(stats.TotalOccurrences) * 100
		}
		err = h.PatternRepository.UpdateStats(pattern.PatternID, stats.TotalOccurrences, stats.HighImpactOccurrences, successRate)
		if err != nil {
			zap.S().Warnw("failed to update stats", "pattern", pattern.PatternName, "err", err)
		}
	}
	return nil
}

// forEachSnapshot pages through every stored event and invokes fn for
// each one carrying a decodable snapshot. Events without snapshots or
// with corrupt payloads are logged and skipped.
func (h AggregatorHandler) forEachSnapshot(fn func(model.WorldEvent, *domain.Snapshot)) error {
	offset := int64(0)
	for {
		events, err := h.WorldEventRepository.List(eventPageSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list events at offset %d: %w", offset, err)
		}
		if len(events) == 0 {
			return nil
		}
		for _, event := range events {
			if event.PlanetarySnapshot == nil || *event.PlanetarySnapshot == "" {
				continue
			}
			snapshot, err := domain.UnmarshalSnapshot([]byte(*event.PlanetarySnapshot))
			if err != nil {
				zap.S().Warnw("skipping event with corrupt snapshot", "event", event.EventID, "err", err)
				continue
			}
			fn(event, snapshot)
		}
		if int64(len(events)) < eventPageSize {
			return nil
		}
		offset += eventPageSize
	}
}

// tallySnapshot records every recognizable configuration in one
// snapshot against the candidate map.
func (h AggregatorHandler) tallySnapshot(candidates map[string]*patternCandidate, snapshot *domain.Snapshot) {
	for _, body := range domain.AllBodies {
		position, ok := snapshot.Position(body)
		if !ok {
			continue
		}

		tally(candidates, &patternCandidate{
			patternType: domain.PatternTypeSign,
			conditions: domain.PatternConditions{
				Planet: strings.ToLower(string(body)),
				Sign:   position.Sign,
			},
			description: fmt.Sprintf("%s placed in %s", body, position.Sign),
		})

		if house, ok := snapshot.House(body); ok {
			houseCopy := house
			tally(candidates, &patternCandidate{
				patternType: domain.PatternTypeHouse,
				conditions: domain.PatternConditions{
					Planet: strings.ToLower(string(body)),
					House:  &houseCopy,
				},
				description: fmt.Sprintf("%s placed in house %d", body, house),
			})
		}
	}

	// conjunctions: unordered body pairs sharing a house
	for i, first := range domain.AllBodies {
		firstHouse, ok := snapshot.House(first)
		if !ok {
			continue
		}
		for _, second := range domain.AllBodies[i+1:] {
			secondHouse, ok := snapshot.House(second)
			if !ok || firstHouse != secondHouse {
				continue
			}
			tally(candidates, &patternCandidate{
				patternType: domain.PatternTypeAspect,
				conditions: domain.PatternConditions{
					Planets:    []string{strings.ToLower(string(first)), strings.ToLower(string(second))},
					AspectType: domain.AspectTypeConjunction,
				},
				description: fmt.Sprintf("%s and %s sharing a house", first, second),
			})
		}
	}

	for _, aspect := range snapshot.Aspects {
		tally(candidates, &patternCandidate{
			patternType: domain.PatternTypeAspect,
			conditions: domain.PatternConditions{
				Planets:    []string{strings.ToLower(string(aspect.Source)), strings.ToLower(string(aspect.Target))},
				AspectType: aspect.Type,
			},
			description: aspect.Description(),
		})
	}

	if moon, ok := snapshot.Position(domain.BodyMoon); ok {
		tally(candidates, &patternCandidate{
			patternType: domain.PatternTypeNakshatra,
			conditions: domain.PatternConditions{
				Planet:    strings.ToLower(string(domain.BodyMoon)),
				Nakshatra: moon.Nakshatra,
			},
			description: fmt.Sprintf("Moon in %s nakshatra", moon.Nakshatra),
		})
	}
}

func tally(candidates map[string]*patternCandidate, candidate *patternCandidate) {
	key := candidate.name()
	existing, ok := candidates[key]
	if !ok {
		candidates[key] = candidate
		candidate.occurrences = 1
		return
	}
	existing.occurrences++
}

// name derives the stable pattern_name used as the upsert key.
func (c *patternCandidate) name() string {
	switch c.patternType {
	case domain.PatternTypeSign:
		return fmt.Sprintf("%s in %s", strings.ToUpper(c.conditions.Planet), c.conditions.Sign)
	case domain.PatternTypeHouse:
		return fmt.Sprintf("%s in House %d", strings.ToUpper(c.conditions.Planet), *c.conditions.House)
	case domain.PatternTypeAspect:
		if strings.EqualFold(c.conditions.AspectType, domain.AspectTypeConjunction) {
			return fmt.Sprintf("%s conjunct %s",
				strings.ToUpper(c.conditions.Planets[0]),
				strings.ToUpper(c.conditions.Planets[1]),
			)
		}
		return fmt.Sprintf("%s %s on %s",
			strings.ToUpper(c.conditions.Planets[0]),
			c.conditions.AspectType,
			strings.ToUpper(c.conditions.Planets[1]),
		)
	case domain.PatternTypeNakshatra:
		return fmt.Sprintf("%s in %s nakshatra", strings.ToUpper(c.conditions.Planet), c.conditions.Nakshatra)
	}
	return c.description
}

// sortedCandidates yields candidates in deterministic name order so
// repeated runs write patterns in the same sequence.
func sortedCandidates(candidates map[string]*patternCandidate) []*patternCandidate {
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)
	ordered := make([]*patternCandidate, 0, len(candidates))
	for _, name := range names {
		ordered = append(ordered, candidates[name])
	}
	return ordered
}
