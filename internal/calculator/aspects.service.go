package calculator

import (
	"math"
	"time"

	"astrova/internal/domain"
)

// AspectConfig carries the knobs for aspect computation. It replaces
// what used to be ambient global flags; callers thread it explicitly.
type AspectConfig struct {
	// ExtendedNodalAspects gives Rahu and Ketu the jupiterian
	// {5,7,9} cast-set instead of the default {7}.
	ExtendedNodalAspects bool
}

// castSets lists the inclusive house distances each body projects
// drishti onto, counted from its own house as distance 1.
var castSets = map[domain.Body][]int{
	domain.BodySun:     {7},
	domain.BodyMoon:    {7},
	domain.BodyMercury: {7},
	domain.BodyVenus:   {7},
	domain.BodyMars:    {4, 7, 8},
	domain.BodyJupiter: {5, 7, 9},
	domain.BodySaturn:  {3, 7, 10},
	domain.BodyRahu:    {7},
	domain.BodyKetu:    {7},
}

// specialDistances are the non-seventh full-strength drishtis unique to
// the three outer grahas.
var specialDistances = map[domain.Body]map[int]bool{
	domain.BodyMars:    {4: true, 8: true},
	domain.BodyJupiter: {5: true, 9: true},
	domain.BodySaturn:  {3: true, 10: true},
}

// dusthanaHouses are the target houses a malefic's drishti reads as
// challenging.
var dusthanaHouses = map[int]bool{3: true, 6: true, 8: true, 11: true, 12: true}

func castSetFor(body domain.Body, cfg AspectConfig) []int {
	if cfg.ExtendedNodalAspects && (body == domain.BodyRahu || body == domain.BodyKetu) {
		return []int{5, 7, 9}
	}
	return castSets[body]
}

// houseDistance is the inclusive count from house a to house b, so a
// body aspecting its own house would be distance 1.
func houseDistance(from, to int) int {
	return (to-from+12)%12 + 1
}

// separation reduces the angular distance between two longitudes to
// [0,180].
func separation(a, b float64) float64 {
	d := math.Abs(norm360(a) - norm360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// idealAngle is the exact angle implied by a house distance, reduced to
// [0,180].
func idealAngle(distance int) float64 {
	raw := float64(distance-1) * 30
	if raw > 180 {
		raw = 360 - raw
	}
	return raw
}

func strengthFor(source domain.Body, distance int, orb float64) domain.AspectStrength {
	strength := domain.StrengthModerate
	if distance == 7 || specialDistances[source][distance] {
		strength = domain.StrengthStrong
	}

	switch {
	case orb <= 3:
		if strength == domain.StrengthStrong {
			strength = domain.StrengthVeryStrong
		} else {
			strength = domain.StrengthStrong
		}
	case orb <= 5:
		// baseline holds
	default:
		if strength == domain.StrengthStrong {
			strength = domain.StrengthModerate
		} else {
			strength = domain.StrengthWeak
		}
	}
	return strength
}

func natureFor(source, target domain.Body, distance, targetHouse int) domain.AspectNature {
	switch source.Nature() {
	case domain.NatureBenefic:
		if distance == 7 && target.IsMalefic() {
			return domain.AspectMixed
		}
		return domain.AspectBenefic
	case domain.NatureMalefic:
		if dusthanaHouses[targetHouse] || distance == 7 {
			return domain.AspectChallenging
		}
		return domain.AspectMixed
	default:
		return domain.AspectNeutral
	}
}

// ComputeAspects derives every drishti cast between the supplied bodies
// under the whole-sign house frame anchored at ascendant. Bodies missing
// from the position map are simply absent from the result; that is not
// an error. Output order is source-major, target-minor over
// domain.AllBodies.
func ComputeAspects(positions map[domain.Body]domain.BodyPosition, ascendant float64, cfg AspectConfig) []domain.Aspect {
	houses := make(map[domain.Body]int, len(positions))
	for body, pos := range positions {
		houses[body] = HouseOf(pos.Longitude, ascendant)
	}

	aspects := []domain.Aspect{}
	for _, source := range domain.AllBodies {
		sourcePos, ok := positions[source]
		if !ok {
			continue
		}
		cast := castSetFor(source, cfg)
		for _, target := range domain.AllBodies {
			if target == source {
				continue
			}
			targetPos, ok := positions[target]
			if !ok {
				continue
			}

			distance := houseDistance(houses[source], houses[target])
			if !containsInt(cast, distance) {
				continue
			}

			orb := math.Abs(separation(sourcePos.Longitude, targetPos.Longitude) - idealAngle(distance))
			aspects = append(aspects, domain.Aspect{
				Source:        source,
				Target:        target,
				Type:          domain.AspectLabel(distance),
				HouseDistance: distance,
				Orb:           orb,
				Strength:      strengthFor(source, distance, orb),
				Nature:        natureFor(source, target, distance, houses[target]),
				FromHouse:     houses[source],
				ToHouse:       houses[target],
				Applying:      sourcePos.Speed > targetPos.Speed,
			})
		}
	}
	return aspects
}

// BuildSnapshot assembles the complete typed configuration for one
// instant: derived positions, the house frame, and all aspects. This is
// the single producer of snapshots for the whole system.
func BuildSnapshot(instant time.Time, lat, lon float64, rawPositions map[domain.Body]domain.RawPosition, ascendantLongitude float64, cfg AspectConfig) *domain.Snapshot {
	positions := make(map[domain.Body]domain.BodyPosition, len(rawPositions))
	houses := make(map[domain.Body]int, len(rawPositions))
	for body, raw := range rawPositions {
		positions[body] = DerivePosition(body, raw.Longitude, raw.Speed)
		houses[body] = HouseOf(raw.Longitude, ascendantLongitude)
	}

	return &domain.Snapshot{
		Instant:   instant,
		Latitude:  lat,
		Longitude: lon,
		Positions: positions,
		Ascendant: DeriveAscendant(ascendantLongitude),
		Houses:    houses,
		Aspects:   ComputeAspects(positions, ascendantLongitude, cfg),
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
