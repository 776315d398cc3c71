package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"astrova/internal/domain"
)

func positionsFromLongitudes(longitudes map[domain.Body]float64) map[domain.Body]domain.BodyPosition {
	out := make(map[domain.Body]domain.BodyPosition, len(longitudes))
	for body, lon := range longitudes {
		out[body] = DerivePosition(body, lon, 0)
	}
	return out
}

func aspectsFrom(aspects []domain.Aspect, source domain.Body) []domain.Aspect {
	out := []domain.Aspect{}
	for _, a := range aspects {
		if a.Source == source {
			out = append(out, a)
		}
	}
	return out
}

func TestComputeAspects_castSets(t *testing.T) {
	t.Run("mars casts 4th 7th 8th", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMars:    15,  // house 1
			domain.BodySun:     105, // house 4
			domain.BodyMoon:    195, // house 7
			domain.BodyMercury: 225, // house 8
		})

		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.Len(t, aspects, 3)

		byTarget := map[domain.Body]domain.Aspect{}
		for _, a := range aspects {
			byTarget[a.Target] = a
		}
		require.Equal(t, "Fourth House Drishti", byTarget[domain.BodySun].Type)
		require.Equal(t, "Seventh House Drishti", byTarget[domain.BodyMoon].Type)
		require.Equal(t, "Eighth House Drishti", byTarget[domain.BodyMercury].Type)
	})

	t.Run("jupiter casts 5th 7th 9th", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyJupiter: 10,  // house 1
			domain.BodySun:     130, // house 5
			domain.BodyMoon:    190, // house 7
			domain.BodyVenus:   250, // house 9
		})

		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyJupiter)
		require.Len(t, aspects, 3)
		distances := []int{}
		for _, a := range aspects {
			distances = append(distances, a.HouseDistance)
		}
		require.ElementsMatch(t, []int{5, 7, 9}, distances)
	})

	t.Run("saturn casts 3rd 7th 10th", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodySaturn:  10,  // house 1
			domain.BodySun:     70,  // house 3
			domain.BodyMoon:    190, // house 7
			domain.BodyMercury: 280, // house 10
		})

		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodySaturn)
		require.Len(t, aspects, 3)
		distances := []int{}
		for _, a := range aspects {
			distances = append(distances, a.HouseDistance)
		}
		require.ElementsMatch(t, []int{3, 7, 10}, distances)
	})

	t.Run("luminaries only cast the 7th", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodySun:  10,
			domain.BodyMoon: 100, // house 4 from Sun's house
		})
		require.Empty(t, aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodySun))

		positions = positionsFromLongitudes(map[domain.Body]float64{
			domain.BodySun:  10,
			domain.BodyMoon: 190, // opposition
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodySun)
		require.Len(t, aspects, 1)
		require.Equal(t, 7, aspects[0].HouseDistance)
	})

	t.Run("nodes default to the 7th only", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyRahu: 10,
			domain.BodySun:  130, // house 5
			domain.BodyMoon: 250, // house 9
		})
		require.Empty(t, aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyRahu))
	})

	t.Run("extended nodal aspects unlock 5th and 9th", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyRahu: 10,
			domain.BodySun:  130, // house 5
			domain.BodyMoon: 250, // house 9
		})
		cfg := AspectConfig{ExtendedNodalAspects: true}
		aspects := aspectsFrom(ComputeAspects(positions, 0, cfg), domain.BodyRahu)
		require.Len(t, aspects, 2)
	})
}

func TestComputeAspects_orbAndStrength(t *testing.T) {
	t.Run("exact opposition has zero orb and promotes", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMars: 15,
			domain.BodyMoon: 195,
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.Len(t, aspects, 1)
		require.InDelta(t, 0.0, aspects[0].Orb, 1e-9)
		require.Equal(t, domain.StrengthVeryStrong, aspects[0].Strength)
	})

	t.Run("wide orb demotes a strong aspect", func(t *testing.T) {
		// Mars 1° Aries, Moon 22° Libra: same houses, separation 159,
		// ideal 180, orb 21.
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMars: 1,
			domain.BodyMoon: 202,
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.Len(t, aspects, 1)
		require.InDelta(t, 21.0, aspects[0].Orb, 1e-9)
		require.Equal(t, domain.StrengthModerate, aspects[0].Strength)
	})

	t.Run("moderate baseline within 5 degrees holds", func(t *testing.T) {
		// Needs a non-special, non-7th distance: only the nodes with the
		// extended set disabled have none, so use a benefic's 7th with
		// mid orb instead to pin the <=5 keep rule on a Strong baseline.
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyVenus: 10,
			domain.BodySun:   194, // separation 176, orb 4
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyVenus)
		require.Len(t, aspects, 1)
		require.InDelta(t, 4.0, aspects[0].Orb, 1e-9)
		require.Equal(t, domain.StrengthStrong, aspects[0].Strength)
	})

	t.Run("orb stays within 0..90 across a longitude sweep", func(t *testing.T) {
		for marsLon := 0.0; marsLon < 360; marsLon += 17 {
			for otherLon := 0.0; otherLon < 360; otherLon += 23 {
				positions := positionsFromLongitudes(map[domain.Body]float64{
					domain.BodyMars: marsLon,
					domain.BodySun:  otherLon,
				})
				for _, a := range ComputeAspects(positions, 120, AspectConfig{}) {
					require.GreaterOrEqual(t, a.Orb, 0.0)
					require.LessOrEqual(t, a.Orb, 90.0)
				}
			}
		}
	})
}

func TestComputeAspects_natureAndMotion(t *testing.T) {
	t.Run("malefic opposition is challenging", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMars: 15,
			domain.BodyMoon: 195,
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.Equal(t, domain.AspectChallenging, aspects[0].Nature)
	})

	t.Run("benefic trine is benefic", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyJupiter: 10,
			domain.BodyMoon:    250, // house 9
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyJupiter)
		require.Len(t, aspects, 1)
		require.Equal(t, domain.AspectBenefic, aspects[0].Nature)
	})

	t.Run("benefic opposing a malefic is mixed", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyJupiter: 10,
			domain.BodySaturn:  190,
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyJupiter)
		require.Len(t, aspects, 1)
		require.Equal(t, domain.AspectMixed, aspects[0].Nature)
	})

	t.Run("neutral source is neutral", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMercury: 10,
			domain.BodySaturn:  190,
		})
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMercury)
		require.Len(t, aspects, 1)
		require.Equal(t, domain.AspectNeutral, aspects[0].Nature)
	})

	t.Run("applying follows relative speed", func(t *testing.T) {
		positions := map[domain.Body]domain.BodyPosition{
			domain.BodyMars: DerivePosition(domain.BodyMars, 15, 0.7),
			domain.BodyMoon: DerivePosition(domain.BodyMoon, 195, 13.2),
		}
		aspects := aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.Len(t, aspects, 1)
		require.False(t, aspects[0].Applying)

		positions[domain.BodyMoon] = DerivePosition(domain.BodyMoon, 195, 0.1)
		aspects = aspectsFrom(ComputeAspects(positions, 0, AspectConfig{}), domain.BodyMars)
		require.True(t, aspects[0].Applying)
	})

	t.Run("missing bodies are skipped silently", func(t *testing.T) {
		positions := positionsFromLongitudes(map[domain.Body]float64{
			domain.BodyMars: 15,
		})
		require.Empty(t, ComputeAspects(positions, 0, AspectConfig{}))
	})
}

func TestBuildSnapshot(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	raw := map[domain.Body]domain.RawPosition{
		domain.BodyMars: {Longitude: 15, Speed: 0.6},
		domain.BodySun:  {Longitude: 105, Speed: 1.0},
		domain.BodyMoon: {Longitude: 195, Speed: 13.2},
	}

	snap := BuildSnapshot(instant, 28.6139, 77.209, raw, 0, AspectConfig{})

	require.Equal(t, 1, snap.Houses[domain.BodyMars])
	require.Equal(t, 4, snap.Houses[domain.BodySun])
	require.Equal(t, 7, snap.Houses[domain.BodyMoon])
	require.Equal(t, "Aries", snap.Ascendant.Sign)
	require.Len(t, aspectsFrom(snap.Aspects, domain.BodyMars), 2)

	descriptions := snap.AspectDescriptions()
	require.Contains(t, descriptions, "Mars casts Fourth House Drishti on Sun")
	require.Contains(t, descriptions, "Mars casts Seventh House Drishti on Moon")
}
