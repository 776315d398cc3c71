package service

import (
	"astrova/internal/domain"
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	patternBlendWeight = 0.6
	mlBlendWeight      = 0.4

	moderateLikelihoodFloor = 0.3
	highLikelihoodFloor     = 0.6
)

// categoryKeywords maps pattern-name substrings to event categories.
// Checked in order; the first hit wins so combined patterns naming
// several bodies resolve deterministically.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"rahu", "disaster"},
	{"ketu", "disaster"},
	{"mars", "political"},
	{"sun", "political"},
	{"saturn", "financial"},
	{"jupiter", "financial"},
	{"mercury", "financial"},
	{"venus", "financial"},
	{"moon", "pandemic"},
}

// OutlookService folds fresh pattern hits and the latest ML model
// probabilities into per-category outlooks.
type OutlookService interface {
	// InferCategory derives the event category a pattern speaks to from
	// its name. Unrecognized names fall into "general".
	InferCategory(patternName string) string

	// BuildOutlooks groups hits by inferred category, blends historical
	// pattern evidence with the ML probability for the category, and
	// returns outlooks sorted by composite probability, strongest first.
	BuildOutlooks(hits []domain.PatternHit, mlProbabilities map[string]float64) []domain.CategoryOutlook
}

type outlookServiceHandler struct{}

func NewOutlookService() OutlookService {
	return &outlookServiceHandler{}
}

func (h *outlookServiceHandler) InferCategory(patternName string) string {
	lowered := strings.ToLower(patternName)
	for _, entry := range categoryKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.category
		}
	}
	return "general"
}

func (h *outlookServiceHandler) BuildOutlooks(hits []domain.PatternHit, mlProbabilities map[string]float64) []domain.CategoryOutlook {
	grouped := map[string][]domain.PatternHit{}
	for _, hit := range hits {
		category := h.InferCategory(hit.PatternName)
		grouped[category] = append(grouped[category], hit)
	}

	outlooks := make([]domain.CategoryOutlook, 0, len(grouped))
	for category, categoryHits := range grouped {
		outlooks = append(outlooks, h.buildCategoryOutlook(category, categoryHits, mlProbabilities[category]))
	}

	sort.SliceStable(outlooks, func(i, j int) bool {
		if outlooks[i].ProbabilityPercent != outlooks[j].ProbabilityPercent {
			return outlooks[i].ProbabilityPercent > outlooks[j].ProbabilityPercent
		}
		return outlooks[i].Category < outlooks[j].Category
	})

	return outlooks
}

func (h *outlookServiceHandler) buildCategoryOutlook(category string, hits []domain.PatternHit, mlProbability float64) domain.CategoryOutlook {
	strengths := make([]float64, 0, len(hits))
	successRates := make([]float64, 0, len(hits))
	patternNames := make([]string, 0, len(hits))
	caseCount := 0
	estimatedSuccesses := decimal.Zero

	for _, hit := range hits {
		strengths = append(strengths, hit.MatchStrength)
		successRates = append(successRates, hit.SuccessRate)
		patternNames = append(patternNames, hit.PatternName)
		caseCount += int(hit.TotalOccurrences)

		// each pattern contributes a whole number of estimated successes
		estimatedSuccesses = estimatedSuccesses.Add(
			decimal.NewFromInt(int64(hit.TotalOccurrences)).
				Mul(decimal.NewFromFloat(hit.SuccessRate)).
				Div(decimal.NewFromInt(100)).
				Round(0),
		)
	}

	// stats.Mean errors only on empty input, and hits is never empty here
	avgStrength, _ := stats.Mean(strengths)
	avgSuccessRate, _ := stats.Mean(successRates)

	patternProbability := decimal.NewFromFloat(avgStrength).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromFloat(avgSuccessRate)).
		Div(decimal.NewFromInt(100))

	composite := patternProbability.Mul(decimal.NewFromFloat(patternBlendWeight)).
		Add(decimal.NewFromFloat(mlProbability).Mul(decimal.NewFromFloat(mlBlendWeight)))

	compositeValue, _ := composite.Float64()
	probabilityPercent, _ := composite.Mul(decimal.NewFromInt(100)).Round(2).Float64()

	sort.Strings(patternNames)

	return domain.CategoryOutlook{
		Category:                 category,
		Likelihood:               likelihoodLabel(compositeValue),
		ProbabilityPercent:       probabilityPercent,
		NarrativeContext:         defaultNarrative(category, len(hits), avgSuccessRate),
		HistoricalCaseCount:      caseCount,
		EstimatedSuccessCount:    int(estimatedSuccesses.IntPart()),
		ContributingPatternNames: patternNames,
	}
}

func likelihoodLabel(composite float64) string {
	switch {
	case composite >= highLikelihoodFloor:
		return domain.LikelihoodHigh
	case composite >= moderateLikelihoodFloor:
		return domain.LikelihoodModerate
	default:
		return domain.LikelihoodLow
	}
}

func defaultNarrative(category string, patternCount int, avgSuccessRate float64) string {
	return fmt.Sprintf(
		"%d active pattern(s) historically linked to %s events, with an average historical success rate of %.1f%%.",
		patternCount, category, avgSuccessRate,
	)
}
