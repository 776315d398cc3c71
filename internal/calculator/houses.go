package calculator

import (
	"math"

	"astrova/internal/domain"
)

// nakshatraSize is 13°20′, one 27th of the zodiac.
const nakshatraSize = 13.0 + 20.0/60.0

func norm360(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}

// signIndex returns the 1-based zodiac sign index for a longitude,
// 1 = Aries.
func signIndex(longitude float64) int {
	return int(math.Floor(norm360(longitude)/30)) + 1
}

// HouseOf maps an ecliptic longitude into a whole-sign house 1..12
// anchored at the ascendant's sign. This is the single house formula
// for the entire engine; every house number anywhere must come from
// here.
func HouseOf(longitude, ascendant float64) int {
	house := (signIndex(longitude)-signIndex(ascendant))%12 + 1
	if house < 1 {
		house += 12
	}
	if house > 12 {
		house -= 12
	}
	return house
}

// SignOf returns the zodiac sign name for a longitude.
func SignOf(longitude float64) string {
	return domain.ZodiacSigns[signIndex(longitude)-1]
}

// DegreeInSign returns the degrees traversed within the sign, [0,30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(norm360(longitude), 30)
}

// NakshatraOf returns the nakshatra name for a sidereal longitude.
func NakshatraOf(longitude float64) string {
	idx := int(math.Floor(norm360(longitude) / nakshatraSize))
	if idx > 26 {
		idx = 26
	}
	return domain.Nakshatras[idx]
}

// PadaOf returns the quarter (1..4) of the nakshatra the longitude
// falls in.
func PadaOf(longitude float64) int {
	posInNak := math.Mod(norm360(longitude), nakshatraSize)
	return int(math.Floor(posInNak/nakshatraSize*4)) + 1
}

// DerivePosition builds the immutable placement for one body from raw
// ephemeris output.
func DerivePosition(body domain.Body, longitude, speed float64) domain.BodyPosition {
	return domain.BodyPosition{
		Body:         body,
		Longitude:    norm360(longitude),
		Speed:        speed,
		Sign:         SignOf(longitude),
		DegreeInSign: DegreeInSign(longitude),
		Nakshatra:    NakshatraOf(longitude),
		Pada:         PadaOf(longitude),
		Retrograde:   speed < 0,
	}
}

// DeriveAscendant builds the ascendant placement from its longitude.
func DeriveAscendant(longitude float64) domain.AscendantPosition {
	return domain.AscendantPosition{
		Longitude:    norm360(longitude),
		Sign:         SignOf(longitude),
		DegreeInSign: DegreeInSign(longitude),
		Nakshatra:    NakshatraOf(longitude),
	}
}
