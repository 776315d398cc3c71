package service

import (
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	signMatchStrength      = 80
	houseMatchStrength     = 75
	aspectMatchStrength    = 85
	nakshatraMatchStrength = 90
	categoryMatchStrength  = 70

	combinedDefaultThreshold = 0.5
	combinedExactRatio       = 0.8
)

// PatternMatchService evaluates a stored pattern against a planetary
// snapshot. A nil result means the pattern did not match; errors are
// reserved for malformed input, not for non-matches.
type PatternMatchService interface {
	Match(snapshot *domain.Snapshot, subjectCategory string, pattern model.AstrologicalPattern) *domain.MatchResult
}

type patternMatchServiceHandler struct{}

func NewPatternMatchService() PatternMatchService {
	return &patternMatchServiceHandler{}
}

func (h *patternMatchServiceHandler) Match(snapshot *domain.Snapshot, subjectCategory string, pattern model.AstrologicalPattern) *domain.MatchResult {
	if snapshot == nil {
		return nil
	}

	conditions := domain.PatternConditions{}
	err := json.Unmarshal([]byte(pattern.PatternConditions), &conditions)
	if err != nil {
		zap.S().Warnw("skipping pattern with unparseable conditions",
			"patternName", pattern.PatternName,
			"err", err,
		)
		return nil
	}

	switch strings.ToLower(pattern.PatternType) {
	case domain.PatternTypeSign:
		return h.matchSign(snapshot, conditions)
	case domain.PatternTypeHouse:
		return h.matchHouse(snapshot, conditions)
	case domain.PatternTypeAspect:
		return h.matchAspect(snapshot, conditions)
	case domain.PatternTypeNakshatra:
		return h.matchNakshatra(snapshot, conditions)
	case domain.PatternTypeCombined:
		return h.matchCombined(snapshot, subjectCategory, conditions)
	}

	zap.S().Warnw("skipping pattern with unknown type",
		"patternName", pattern.PatternName,
		"patternType", pattern.PatternType,
	)
	return nil
}

func (h *patternMatchServiceHandler) matchSign(snapshot *domain.Snapshot, conditions domain.PatternConditions) *domain.MatchResult {
	body, ok := domain.ParseBody(conditions.Planet)
	if !ok {
		return nil
	}
	position, ok := snapshot.Position(body)
	if !ok {
		return nil
	}
	if !strings.EqualFold(position.Sign, conditions.Sign) {
		return nil
	}
	return &domain.MatchResult{
		Strength: signMatchStrength,
		Exact:    true,
		Details:  fmt.Sprintf("%s in %s (%.1f°)", body, position.Sign, position.DegreeInSign),
	}
}

func (h *patternMatchServiceHandler) matchHouse(snapshot *domain.Snapshot, conditions domain.PatternConditions) *domain.MatchResult {
	if conditions.House == nil {
		return nil
	}
	body, ok := domain.ParseBody(conditions.Planet)
	if !ok {
		return nil
	}
	house, ok := snapshot.Houses[body]
	if !ok || house != *conditions.House {
		return nil
	}
	return &domain.MatchResult{
		Strength: houseMatchStrength,
		Exact:    true,
		Details:  fmt.Sprintf("%s in house %d", body, house),
	}
}

func (h *patternMatchServiceHandler) matchAspect(snapshot *domain.Snapshot, conditions domain.PatternConditions) *domain.MatchResult {
	if len(conditions.Planets) < 2 {
		return nil
	}
	first, ok := domain.ParseBody(conditions.Planets[0])
	if !ok {
		return nil
	}
	second, ok := domain.ParseBody(conditions.Planets[1])
	if !ok {
		return nil
	}

	if strings.EqualFold(conditions.AspectType, domain.AspectTypeConjunction) {
		return h.matchConjunction(snapshot, first, second)
	}

	for _, aspect := range snapshot.Aspects {
		if !aspect.Involves(first, second) {
			continue
		}
		if conditions.AspectType != "" && !strings.EqualFold(aspect.Type, conditions.AspectType) {
			continue
		}
		return &domain.MatchResult{
			Strength:   aspectMatchStrength,
			Exact:      aspect.Orb <= 1,
			OrbApplied: aspect.Orb,
			Details:    aspect.Description(),
		}
	}
	return nil
}

func (h *patternMatchServiceHandler) matchConjunction(snapshot *domain.Snapshot, first, second domain.Body) *domain.MatchResult {
	firstHouse, ok := snapshot.Houses[first]
	if !ok {
		return nil
	}
	secondHouse, ok := snapshot.Houses[second]
	if !ok || firstHouse != secondHouse {
		return nil
	}

	firstPos, _ := snapshot.Position(first)
	secondPos, _ := snapshot.Position(second)
	orb := firstPos.Longitude - secondPos.Longitude
	if orb < 0 {
		orb = -orb
	}
	if orb > 180 {
		orb = 360 - orb
	}

	return &domain.MatchResult{
		Strength:   aspectMatchStrength,
		Exact:      orb <= 1,
		OrbApplied: orb,
		Details:    fmt.Sprintf("%s conjunct %s in house %d (%.1f° apart)", first, second, firstHouse, orb),
	}
}

func (h *patternMatchServiceHandler) matchNakshatra(snapshot *domain.Snapshot, conditions domain.PatternConditions) *domain.MatchResult {
	// nakshatra patterns are tracked for the Moon only
	if conditions.Planet != "" && !strings.EqualFold(conditions.Planet, string(domain.BodyMoon)) {
		return nil
	}
	position, ok := snapshot.Position(domain.BodyMoon)
	if !ok {
		return nil
	}
	if !strings.EqualFold(position.Nakshatra, conditions.Nakshatra) {
		return nil
	}
	return &domain.MatchResult{
		Strength: nakshatraMatchStrength,
		Exact:    true,
		Details:  fmt.Sprintf("Moon in %s nakshatra (pada %d)", position.Nakshatra, position.Pada),
	}
}

func (h *patternMatchServiceHandler) matchCombined(snapshot *domain.Snapshot, subjectCategory string, conditions domain.PatternConditions) *domain.MatchResult {
	totalConditions := 0
	matchedConditions := 0
	strengthSum := 0.0
	matchedDetails := []string{}

	for _, aspectCondition := range conditions.Aspects {
		totalConditions++
		sub := h.matchAspect(snapshot, domain.PatternConditions{
			Planets:    aspectCondition.Planets,
			AspectType: aspectCondition.AspectType,
		})
		if sub != nil {
			matchedConditions++
			strengthSum += sub.Strength
			matchedDetails = append(matchedDetails, sub.Details)
		}
	}

	for _, signCondition := range conditions.Signs {
		totalConditions++
		sub := h.matchSign(snapshot, domain.PatternConditions{
			Planet: signCondition.Planet,
			Sign:   signCondition.Sign,
		})
		if sub != nil {
			matchedConditions++
			strengthSum += sub.Strength
			matchedDetails = append(matchedDetails, sub.Details)
		}
	}

	if conditions.Category != "" {
		totalConditions++
		if strings.EqualFold(subjectCategory, conditions.Category) {
			matchedConditions++
			strengthSum += categoryMatchStrength
			matchedDetails = append(matchedDetails, fmt.Sprintf("category %s", conditions.Category))
		}
	}

	if totalConditions == 0 || matchedConditions == 0 {
		return nil
	}

	threshold := combinedDefaultThreshold
	if conditions.Threshold != nil {
		threshold = *conditions.Threshold
	}

	ratio := float64(matchedConditions) / float64(totalConditions)
	if ratio < threshold {
		return nil
	}

	strength := (strengthSum / float64(matchedConditions)) * ratio
	if strength > 100 {
		strength = 100
	}

	return &domain.MatchResult{
		Strength: strength,
		Exact:    ratio >= combinedExactRatio,
		Details:  fmt.Sprintf("%d/%d conditions: %s", matchedConditions, totalConditions, strings.Join(matchedDetails, "; ")),
	}
}
