package domain

import "fmt"

// RawPosition is the ephemeris engine's output for one body, before any
// derivation.
type RawPosition struct {
	Longitude float64
	Speed     float64
}

// BodyPosition is the computed placement of one graha at one instant.
// Immutable once derived; the sign, nakshatra and pada fields are all
// functions of the longitude.
type BodyPosition struct {
	Body         Body    `json:"body"`
	Longitude    float64 `json:"longitude"`
	Speed        float64 `json:"speed"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Nakshatra    string  `json:"nakshatra"`
	Pada         int     `json:"pada"`
	Retrograde   bool    `json:"retrograde"`
}

// AscendantPosition anchors the whole-sign house frame. Same shape as
// a body position minus motion.
type AscendantPosition struct {
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Nakshatra    string  `json:"nakshatra"`
}

// Display renders the legacy snapshot string, e.g. "Cancer 19.2° (Pushya)".
// Persisted snapshots carry this alongside the structured fields so rows
// written by the original pipeline stay comparable.
func (p BodyPosition) Display() string {
	return fmt.Sprintf("%s %.1f° (%s)", p.Sign, p.DegreeInSign, p.Nakshatra)
}

func (p AscendantPosition) Display() string {
	return fmt.Sprintf("%s %.1f° (%s)", p.Sign, p.DegreeInSign, p.Nakshatra)
}
