package domain

import "fmt"

// AspectStrength is the qualitative tier assigned to a drishti after
// orb adjustment.
type AspectStrength string

const (
	StrengthWeak       AspectStrength = "Weak"
	StrengthModerate   AspectStrength = "Moderate"
	StrengthStrong     AspectStrength = "Strong"
	StrengthVeryStrong AspectStrength = "Very Strong"
)

// AspectNature is the qualitative tone of an aspect, derived from the
// source body's classification and the target placement.
type AspectNature string

const (
	AspectBenefic     AspectNature = "Benefic"
	AspectChallenging AspectNature = "Challenging"
	AspectMixed       AspectNature = "Mixed"
	AspectNeutral     AspectNature = "Neutral"
)

// aspectLabels maps an inclusive house distance to its drishti name.
// These strings are part of the stored wire format.
var aspectLabels = map[int]string{
	3:  "Third House Drishti",
	4:  "Fourth House Drishti",
	5:  "Fifth House Drishti",
	7:  "Seventh House Drishti",
	8:  "Eighth House Drishti",
	9:  "Ninth House Drishti",
	10: "Tenth House Drishti",
}

// AspectLabel returns the drishti name for a house distance, or "" when
// the distance is not an aspect-casting one.
func AspectLabel(houseDistance int) string {
	return aspectLabels[houseDistance]
}

// Aspect is one drishti cast by Source onto Target's house. Created
// fresh per computation and never mutated.
type Aspect struct {
	Source        Body           `json:"source"`
	Target        Body           `json:"target"`
	Type          string         `json:"type"`
	HouseDistance int            `json:"house_distance"`
	Orb           float64        `json:"orb"`
	Strength      AspectStrength `json:"strength"`
	Nature        AspectNature   `json:"nature"`
	FromHouse     int            `json:"from_house"`
	ToHouse       int            `json:"to_house"`
	Applying      bool           `json:"applying"`
}

// Description renders the stored aspect string, e.g.
// "Mars casts Fourth House Drishti on Sun".
func (a Aspect) Description() string {
	return fmt.Sprintf("%s casts %s on %s", a.Source, a.Type, a.Target)
}

// Involves reports whether the aspect's unordered body pair is {a, b}.
func (a Aspect) Involves(x, y Body) bool {
	return (a.Source == x && a.Target == y) || (a.Source == y && a.Target == x)
}
