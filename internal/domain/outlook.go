package domain

import (
	"time"

	"github.com/google/uuid"
)

// Likelihood labels for a category outlook.
const (
	LikelihoodLow      = "low"
	LikelihoodModerate = "moderate"
	LikelihoodHigh     = "high"
)

// CategoryOutlook is the blended probabilistic outlook for one event
// category. Derived per request, never authoritative stored state.
type CategoryOutlook struct {
	Category                 string   `json:"category"`
	Likelihood               string   `json:"likelihood"`
	ProbabilityPercent       float64  `json:"probabilityPercent"`
	NarrativeContext         string   `json:"narrativeContext"`
	HistoricalCaseCount      int      `json:"historicalCaseCount"`
	EstimatedSuccessCount    int      `json:"estimatedSuccessCount"`
	ContributingPatternNames []string `json:"contributingPatternNames"`
}

// HistoricalParallel is one historical analogue surfaced for a fresh
// snapshot by the cascade lookup.
type HistoricalParallel struct {
	Title         string    `json:"title"`
	EventDate     time.Time `json:"eventDate"`
	Category      string    `json:"category"`
	ImpactLevel   int32     `json:"impactLevel"`
	MatchStrength float64   `json:"matchStrength"`
	Narrative     string    `json:"narrative"`
}

// PatternHit couples a stored pattern's metadata with the fresh match
// result produced for the current snapshot.
type PatternHit struct {
	PatternID        uuid.UUID `json:"-"`
	PatternName      string    `json:"patternName"`
	PatternType      string    `json:"patternType"`
	MatchStrength    float64   `json:"matchStrength"`
	ExactMatch       bool      `json:"exactMatch"`
	OrbApplied       float64   `json:"orbApplied"`
	SuccessRate      float64   `json:"successRate"`
	TotalOccurrences int32     `json:"totalOccurrences"`
}
