package domain

// Pattern type discriminators, stored in astrological_pattern.pattern_type.
const (
	PatternTypeSign      = "sign"
	PatternTypeHouse     = "house"
	PatternTypeAspect    = "aspect"
	PatternTypeNakshatra = "nakshatra"
	PatternTypeCombined  = "combined"
)

// AspectTypeConjunction marks a pattern over two bodies sharing a house.
// Conjunctions are not emitted by the aspect engine (distance 1 is not a
// cast distance), so the matcher checks house equality directly.
const AspectTypeConjunction = "Conjunction"

// PatternConditions is the decoded pattern_conditions JSONB payload.
// The populated fields depend on the pattern type; decoding happens
// once per pattern, never per comparison.
type PatternConditions struct {
	Planet     string   `json:"planet,omitempty"`
	Sign       string   `json:"sign,omitempty"`
	House      *int     `json:"house,omitempty"`
	Nakshatra  string   `json:"nakshatra,omitempty"`
	AspectType string   `json:"aspect_type,omitempty"`
	Planets    []string `json:"planets,omitempty"`

	// Combined-pattern sub-conditions.
	Aspects   []AspectCondition `json:"aspects,omitempty"`
	Signs     []SignCondition   `json:"signs,omitempty"`
	Category  string            `json:"category,omitempty"`
	Threshold *float64          `json:"threshold,omitempty"`
}

// AspectCondition is one aspect sub-condition inside a combined pattern.
type AspectCondition struct {
	Planets    []string `json:"planets"`
	AspectType string   `json:"aspect_type"`
}

// SignCondition is one sign sub-condition inside a combined pattern.
type SignCondition struct {
	Planet string `json:"planet"`
	Sign   string `json:"sign"`
}

// MatchResult is the outcome of matching one snapshot against one
// pattern. A nil *MatchResult means "no match", which is a normal,
// frequent outcome rather than an error.
type MatchResult struct {
	Strength   float64 `json:"match_strength"`
	Exact      bool    `json:"exact_match"`
	OrbApplied float64 `json:"orb_applied"`
	Details    string  `json:"match_details"`
}
