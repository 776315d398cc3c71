package domain

import "strings"

// Body is one of the nine grahas tracked by the engine.
type Body string

const (
	BodySun     Body = "Sun"
	BodyMoon    Body = "Moon"
	BodyMercury Body = "Mercury"
	BodyVenus   Body = "Venus"
	BodyMars    Body = "Mars"
	BodyJupiter Body = "Jupiter"
	BodySaturn  Body = "Saturn"
	BodyRahu    Body = "Rahu"
	BodyKetu    Body = "Ketu"
)

// AllBodies lists every graha in traditional order. Iteration over
// aspects and snapshots follows this order so output is deterministic.
var AllBodies = []Body{
	BodySun,
	BodyMoon,
	BodyMercury,
	BodyVenus,
	BodyMars,
	BodyJupiter,
	BodySaturn,
	BodyRahu,
	BodyKetu,
}

// BodyNature is the natural benefic/malefic classification of a graha.
type BodyNature string

const (
	NatureBenefic BodyNature = "benefic"
	NatureMalefic BodyNature = "malefic"
	NatureNeutral BodyNature = "neutral"
)

var bodyNatures = map[Body]BodyNature{
	BodySun:     NatureMalefic,
	BodyMoon:    NatureBenefic,
	BodyMercury: NatureNeutral,
	BodyVenus:   NatureBenefic,
	BodyMars:    NatureMalefic,
	BodyJupiter: NatureBenefic,
	BodySaturn:  NatureMalefic,
	BodyRahu:    NatureMalefic,
	BodyKetu:    NatureMalefic,
}

// Nature returns the natural classification for b. Unknown bodies are
// treated as neutral.
func (b Body) Nature() BodyNature {
	if n, ok := bodyNatures[b]; ok {
		return n
	}
	return NatureNeutral
}

func (b Body) IsBenefic() bool { return b.Nature() == NatureBenefic }
func (b Body) IsMalefic() bool { return b.Nature() == NatureMalefic }

// ParseBody resolves a body by name, case-insensitively. ok is false
// for names outside the nine grahas.
func ParseBody(name string) (Body, bool) {
	for _, b := range AllBodies {
		if strings.EqualFold(string(b), name) {
			return b, true
		}
	}
	return "", false
}

// ZodiacSigns in order, index 0 = Aries.
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras in order, index 0 = Ashwini. Each spans 13°20′.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}
