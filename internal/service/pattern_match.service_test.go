package service

import (
	"astrova/internal/calculator"
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T, raw map[domain.Body]domain.RawPosition, ascendant float64) *domain.Snapshot {
	t.Helper()
	return calculator.BuildSnapshot(
		time.Date(2020, 1, 12, 12, 0, 0, 0, time.UTC),
		28.6, 77.2,
		raw,
		ascendant,
		calculator.AspectConfig{},
	)
}

func newPattern(name, patternType, conditions string) model.AstrologicalPattern {
	return model.AstrologicalPattern{
		PatternName:       name,
		PatternType:       patternType,
		PatternConditions: conditions,
	}
}

func Test_Match_signPattern(t *testing.T) {
	handler := NewPatternMatchService()

	// Jupiter at 285° sits in Capricorn
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodyJupiter: {Longitude: 285.0, Speed: 0.2},
	}, 0)

	t.Run("matching sign yields fixed strength and exact match", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"JUPITER in Capricorn", domain.PatternTypeSign,
			`{"planet": "jupiter", "sign": "Capricorn"}`,
		))
		require.NotNil(t, result)
		require.Equal(t, 80.0, result.Strength)
		require.True(t, result.Exact)
	})

	t.Run("sign comparison is case-insensitive", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"JUPITER in Capricorn", domain.PatternTypeSign,
			`{"planet": "JUPITER", "sign": "capricorn"}`,
		))
		require.NotNil(t, result)
	})

	t.Run("wrong sign is a nil result, not an error", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"JUPITER in Aries", domain.PatternTypeSign,
			`{"planet": "jupiter", "sign": "Aries"}`,
		))
		require.Nil(t, result)
	})

	t.Run("body absent from snapshot does not match", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"MARS in Capricorn", domain.PatternTypeSign,
			`{"planet": "mars", "sign": "Capricorn"}`,
		))
		require.Nil(t, result)
	})

	t.Run("unknown planet name does not match", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"PLUTO in Capricorn", domain.PatternTypeSign,
			`{"planet": "pluto", "sign": "Capricorn"}`,
		))
		require.Nil(t, result)
	})
}

func Test_Match_housePattern(t *testing.T) {
	handler := NewPatternMatchService()

	// ascendant in Aries, Saturn at 275° (Capricorn) lands in house 10
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodySaturn: {Longitude: 275.0, Speed: 0.03},
	}, 10.0)

	t.Run("matching house", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"SATURN in House 10", domain.PatternTypeHouse,
			`{"planet": "saturn", "house": 10}`,
		))
		require.NotNil(t, result)
		require.Equal(t, 75.0, result.Strength)
		require.True(t, result.Exact)
	})

	t.Run("wrong house", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"SATURN in House 7", domain.PatternTypeHouse,
			`{"planet": "saturn", "house": 7}`,
		))
		require.Nil(t, result)
	})

	t.Run("missing house condition", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"SATURN somewhere", domain.PatternTypeHouse,
			`{"planet": "saturn"}`,
		))
		require.Nil(t, result)
	})
}

func Test_Match_aspectPattern(t *testing.T) {
	handler := NewPatternMatchService()

	// Mars at 15° casts its fourth-house drishti onto the Sun at 105°
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodyMars: {Longitude: 15.0, Speed: 0.5},
		domain.BodySun:  {Longitude: 105.0, Speed: 0.98},
	}, 0)

	t.Run("drishti aspect matches with its actual orb", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"MARS Fourth House Drishti on SUN", domain.PatternTypeAspect,
			`{"planets": ["mars", "sun"], "aspect_type": "Fourth House Drishti"}`,
		))
		require.NotNil(t, result)
		require.Equal(t, 85.0, result.Strength)
		require.Equal(t, 0.0, result.OrbApplied)
		require.True(t, result.Exact)
	})

	t.Run("aspect type not present between the pair", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"MARS Tenth House Drishti on SUN", domain.PatternTypeAspect,
			`{"planets": ["mars", "sun"], "aspect_type": "Tenth House Drishti"}`,
		))
		require.Nil(t, result)
	})

	t.Run("conjunction checks shared house instead of the aspect list", func(t *testing.T) {
		conjunct := testSnapshot(t, map[domain.Body]domain.RawPosition{
			domain.BodyJupiter: {Longitude: 280.0, Speed: 0.2},
			domain.BodySaturn:  {Longitude: 287.5, Speed: 0.03},
		}, 0)
		result := handler.Match(conjunct, "", newPattern(
			"JUPITER conjunct SATURN", domain.PatternTypeAspect,
			`{"planets": ["jupiter", "saturn"], "aspect_type": "Conjunction"}`,
		))
		require.NotNil(t, result)
		require.Equal(t, 85.0, result.Strength)
		require.InDelta(t, 7.5, result.OrbApplied, 1e-9)
		require.False(t, result.Exact)
	})

	t.Run("bodies in different signs are not conjunct", func(t *testing.T) {
		separate := testSnapshot(t, map[domain.Body]domain.RawPosition{
			domain.BodyJupiter: {Longitude: 280.0, Speed: 0.2},
			domain.BodySaturn:  {Longitude: 305.0, Speed: 0.03},
		}, 0)
		result := handler.Match(separate, "", newPattern(
			"JUPITER conjunct SATURN", domain.PatternTypeAspect,
			`{"planets": ["jupiter", "saturn"], "aspect_type": "Conjunction"}`,
		))
		require.Nil(t, result)
	})
}

func Test_Match_nakshatraPattern(t *testing.T) {
	handler := NewPatternMatchService()

	// Moon at 106° sits in Pushya
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodyMoon: {Longitude: 106.0, Speed: 13.2},
		domain.BodySun:  {Longitude: 40.0, Speed: 0.98},
	}, 0)

	t.Run("moon nakshatra matches", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"MOON in Pushya nakshatra", domain.PatternTypeNakshatra,
			`{"planet": "moon", "nakshatra": "Pushya"}`,
		))
		require.NotNil(t, result)
		require.Equal(t, 90.0, result.Strength)
		require.True(t, result.Exact)
	})

	t.Run("nakshatra patterns for other bodies are unsupported", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"SUN in Bharani nakshatra", domain.PatternTypeNakshatra,
			`{"planet": "sun", "nakshatra": "Bharani"}`,
		))
		require.Nil(t, result)
	})

	t.Run("wrong nakshatra", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"MOON in Rohini nakshatra", domain.PatternTypeNakshatra,
			`{"planet": "moon", "nakshatra": "Rohini"}`,
		))
		require.Nil(t, result)
	})
}

func Test_Match_combinedPattern(t *testing.T) {
	handler := NewPatternMatchService()

	// Jupiter and Saturn both in Capricorn, Mars aspecting the Sun
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodyJupiter: {Longitude: 285.0, Speed: 0.2},
		domain.BodySaturn:  {Longitude: 287.0, Speed: 0.03},
		domain.BodyMars:    {Longitude: 15.0, Speed: 0.5},
		domain.BodySun:     {Longitude: 105.0, Speed: 0.98},
	}, 0)

	t.Run("all conditions met", func(t *testing.T) {
		result := handler.Match(snapshot, "financial", newPattern(
			"great conjunction cluster", domain.PatternTypeCombined,
			`{
				"signs": [
					{"planet": "jupiter", "sign": "Capricorn"},
					{"planet": "saturn", "sign": "Capricorn"}
				],
				"aspects": [
					{"planets": ["mars", "sun"], "aspect_type": "Fourth House Drishti"}
				],
				"category": "financial"
			}`,
		))
		require.NotNil(t, result)
		require.True(t, result.Exact)
		// (80+80+85+70)/4 averaged over matches, full ratio
		require.InDelta(t, 78.75, result.Strength, 1e-9)
	})

	t.Run("ratio at the threshold still matches", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"half hit", domain.PatternTypeCombined,
			`{
				"signs": [
					{"planet": "jupiter", "sign": "Capricorn"},
					{"planet": "jupiter", "sign": "Aries"}
				]
			}`,
		))
		require.NotNil(t, result)
		require.False(t, result.Exact)
		// one of two sub-conditions: 80 * 0.5
		require.InDelta(t, 40.0, result.Strength, 1e-9)
	})

	t.Run("ratio below the threshold does not match", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"mostly missed", domain.PatternTypeCombined,
			`{
				"signs": [
					{"planet": "jupiter", "sign": "Capricorn"},
					{"planet": "jupiter", "sign": "Aries"},
					{"planet": "saturn", "sign": "Leo"}
				]
			}`,
		))
		require.Nil(t, result)
	})

	t.Run("explicit threshold overrides the default", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"strict cluster", domain.PatternTypeCombined,
			`{
				"signs": [
					{"planet": "jupiter", "sign": "Capricorn"},
					{"planet": "jupiter", "sign": "Aries"}
				],
				"threshold": 0.75
			}`,
		))
		require.Nil(t, result)
	})

	t.Run("strength is capped at 100", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"single condition", domain.PatternTypeCombined,
			`{"signs": [{"planet": "jupiter", "sign": "Capricorn"}]}`,
		))
		require.NotNil(t, result)
		require.LessOrEqual(t, result.Strength, 100.0)
	})

	t.Run("no conditions at all yields nil", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"empty", domain.PatternTypeCombined, `{}`,
		))
		require.Nil(t, result)
	})
}

func Test_Match_malformedConditions(t *testing.T) {
	handler := NewPatternMatchService()
	snapshot := testSnapshot(t, map[domain.Body]domain.RawPosition{
		domain.BodySun: {Longitude: 40.0, Speed: 0.98},
	}, 0)

	t.Run("unparseable JSON is skipped, not fatal", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"broken", domain.PatternTypeSign, `{"planet": `,
		))
		require.Nil(t, result)
	})

	t.Run("unknown pattern type is skipped", func(t *testing.T) {
		result := handler.Match(snapshot, "", newPattern(
			"mystery", "yoga", `{}`,
		))
		require.Nil(t, result)
	})

	t.Run("nil snapshot is tolerated", func(t *testing.T) {
		result := handler.Match(nil, "", newPattern(
			"anything", domain.PatternTypeSign, `{"planet": "sun", "sign": "Taurus"}`,
		))
		require.Nil(t, result)
	})
}
