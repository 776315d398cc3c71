package domain

import (
	"encoding/json"
	"time"
)

// Snapshot is the full computed configuration for one instant and
// location: positions, the house frame, and every cast aspect. It is
// built exactly once by the calculator and consumed everywhere else;
// no component re-parses longitudes or display strings.
type Snapshot struct {
	Instant   time.Time             `json:"instant"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Positions map[Body]BodyPosition `json:"positions"`
	Ascendant AscendantPosition     `json:"ascendant"`
	Houses    map[Body]int          `json:"houses"`
	Aspects   []Aspect              `json:"aspects"`
}

// Position returns the placement for a body, ok=false when the body was
// absent from the ephemeris response.
func (s *Snapshot) Position(b Body) (BodyPosition, bool) {
	p, ok := s.Positions[b]
	return p, ok
}

// House returns the whole-sign house for a body, ok=false when absent.
func (s *Snapshot) House(b Body) (int, bool) {
	h, ok := s.Houses[b]
	return h, ok
}

// AspectDescriptions lists the stored string form of every aspect, in
// computation order.
func (s *Snapshot) AspectDescriptions() []string {
	out := make([]string, 0, len(s.Aspects))
	for _, a := range s.Aspects {
		out = append(out, a.Description())
	}
	return out
}

// persistedSnapshot is the JSONB shape written to world_event rows.
// It keeps the legacy per-body display strings next to the structured
// positions so rows from the original pipeline remain comparable.
type persistedSnapshot struct {
	Instant   time.Time             `json:"instant"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Positions map[Body]BodyPosition `json:"positions"`
	Display   map[Body]string       `json:"display"`
	Ascendant AscendantPosition     `json:"ascendant"`
	Houses    map[Body]int          `json:"houses"`
	Aspects   []Aspect              `json:"aspects"`
}

// MarshalSnapshot serializes a snapshot to the stored JSONB form.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	display := make(map[Body]string, len(s.Positions))
	for b, p := range s.Positions {
		display[b] = p.Display()
	}
	return json.Marshal(persistedSnapshot{
		Instant:   s.Instant,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Positions: s.Positions,
		Display:   display,
		Ascendant: s.Ascendant,
		Houses:    s.Houses,
		Aspects:   s.Aspects,
	})
}

// UnmarshalSnapshot decodes a stored JSONB snapshot.
func UnmarshalSnapshot(raw []byte) (*Snapshot, error) {
	var p persistedSnapshot
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &Snapshot{
		Instant:   p.Instant,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Positions: p.Positions,
		Ascendant: p.Ascendant,
		Houses:    p.Houses,
		Aspects:   p.Aspects,
	}, nil
}
