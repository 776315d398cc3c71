package app

import (
	"astrova/internal/calculator"
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	mock_repository "astrova/internal/repository/mocks"
	"astrova/internal/service"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubEphemeris serves a fixed chart: Jupiter and Saturn in Capricorn,
// Mars casting its fourth-house drishti onto the Sun, Moon in Pushya.
type stubEphemeris struct {
	err error
}

func (s stubEphemeris) PlanetaryPositions(ctx context.Context, instant time.Time, latitude, longitude float64) (map[domain.Body]domain.RawPosition, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[domain.Body]domain.RawPosition{
		domain.BodyJupiter: {Longitude: 285.0, Speed: 0.2},
		domain.BodySaturn:  {Longitude: 287.0, Speed: 0.03},
		domain.BodyMars:    {Longitude: 15.0, Speed: 0.5},
		domain.BodySun:     {Longitude: 105.0, Speed: 0.98},
		domain.BodyMoon:    {Longitude: 106.0, Speed: 13.2},
	}, nil
}

func (s stubEphemeris) Ascendant(ctx context.Context, instant time.Time, latitude, longitude float64) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return 0, nil
}

func storedPattern(name, patternType, conditions string, successRate float64, occurrences int32) model.AstrologicalPattern {
	return model.AstrologicalPattern{
		PatternID:         uuid.New(),
		PatternName:       name,
		PatternType:       patternType,
		PatternConditions: conditions,
		SuccessRate:       successRate,
		TotalOccurrences:  occurrences,
	}
}

func Test_GenerateForecast(t *testing.T) {
	input := GenerateForecastInput{
		Instant:  time.Date(2020, 1, 12, 12, 0, 0, 0, time.UTC),
		Latitude: 28.6, Longitude: 77.2,
	}

	t.Run("full forecast against a small corpus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		patternRepository := mock_repository.NewMockPatternRepository(ctrl)
		mlRepository := mock_repository.NewMockMlPredictionRepository(ctrl)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		matching := storedPattern(
			"JUPITER in Capricorn", domain.PatternTypeSign,
			`{"planet": "jupiter", "sign": "Capricorn"}`,
			60, 12,
		)
		nonMatching := storedPattern(
			"MARS in Aries drishti miss", domain.PatternTypeSign,
			`{"planet": "mars", "sign": "Libra"}`,
			40, 4,
		)
		patternRepository.EXPECT().ListAll().Return([]model.AstrologicalPattern{matching, nonMatching}, nil)
		mlRepository.EXPECT().LatestProbabilities(input.Instant).Return(map[string]float64{"financial": 0.5}, nil)
		matchRepository.EXPECT().
			ListEventMatches([]uuid.UUID{matching.PatternID}, int64(5)).
			Return([]model.EventsWithPatternMatches{{
				EventID:       uuid.New(),
				Title:         "Great Depression onset",
				EventDate:     time.Date(1929, 10, 24, 0, 0, 0, 0, time.UTC),
				Category:      "financial",
				ImpactLevel:   10,
				PatternID:     matching.PatternID,
				PatternName:   matching.PatternName,
				MatchStrength: 83,
			}}, nil)

		handler := ForecastHandler{
			EphemerisClient:        stubEphemeris{},
			PatternRepository:      patternRepository,
			MlPredictionRepository: mlRepository,
			PatternMatchService:    service.NewPatternMatchService(),
			OutlookService:         service.NewOutlookService(),
			ParallelService:        service.NewParallelService(matchRepository, similarityRepository),
		}

		result, err := handler.GenerateForecast(context.Background(), input)
		require.NoError(t, err)
		require.True(t, result.StoreAvailable)
		require.NotNil(t, result.Snapshot)

		require.Len(t, result.ActivePatterns, 1)
		require.Equal(t, "JUPITER in Capricorn", result.ActivePatterns[0].PatternName)
		require.Equal(t, 80.0, result.ActivePatterns[0].MatchStrength)
		require.Equal(t, 60.0, result.ActivePatterns[0].SuccessRate)

		require.Len(t, result.Outlooks, 1)
		require.Equal(t, "financial", result.Outlooks[0].Category)

		require.Len(t, result.Parallels, 1)
		require.Equal(t, "Great Depression onset", result.Parallels[0].Title)
		require.Equal(t, "view", result.ParallelSource)
	})

	t.Run("active patterns are capped at ten, strongest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		patternRepository := mock_repository.NewMockPatternRepository(ctrl)
		mlRepository := mock_repository.NewMockMlPredictionRepository(ctrl)

		corpus := []model.AstrologicalPattern{}
		// every stored sign matches: 12 hits from one Jupiter placement
		for i := 0; i < 12; i++ {
			corpus = append(corpus, storedPattern(
				fmt.Sprintf("JUPITER in Capricorn variant %02d", i), domain.PatternTypeSign,
				`{"planet": "jupiter", "sign": "Capricorn"}`,
				50, 5,
			))
		}
		corpus = append(corpus, storedPattern(
			"MOON in Pushya nakshatra", domain.PatternTypeNakshatra,
			`{"planet": "moon", "nakshatra": "Pushya"}`,
			55, 7,
		))
		patternRepository.EXPECT().ListAll().Return(corpus, nil)
		mlRepository.EXPECT().LatestProbabilities(input.Instant).Return(nil, nil)

		handler := ForecastHandler{
			EphemerisClient:        stubEphemeris{},
			PatternRepository:      patternRepository,
			MlPredictionRepository: mlRepository,
			PatternMatchService:    service.NewPatternMatchService(),
			OutlookService:         service.NewOutlookService(),
		}

		in := input
		in.SkipParallels = true
		result, err := handler.GenerateForecast(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, result.ActivePatterns, 10)
		// nakshatra match at 90 outranks every sign match at 80
		require.Equal(t, "MOON in Pushya nakshatra", result.ActivePatterns[0].PatternName)
	})

	t.Run("unreachable ephemeris fails the request", func(t *testing.T) {
		handler := ForecastHandler{
			EphemerisClient: stubEphemeris{err: fmt.Errorf("connection refused")},
		}
		_, err := handler.GenerateForecast(context.Background(), input)
		require.Error(t, err)
	})

	t.Run("unreachable store degrades instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		patternRepository := mock_repository.NewMockPatternRepository(ctrl)
		patternRepository.EXPECT().ListAll().Return(nil, fmt.Errorf("dial tcp: connection refused"))

		handler := ForecastHandler{
			EphemerisClient:     stubEphemeris{},
			PatternRepository:   patternRepository,
			PatternMatchService: service.NewPatternMatchService(),
			OutlookService:      service.NewOutlookService(),
		}

		result, err := handler.GenerateForecast(context.Background(), input)
		require.NoError(t, err)
		require.False(t, result.StoreAvailable)
		require.NotNil(t, result.Snapshot)
		require.Empty(t, result.ActivePatterns)
		require.Empty(t, result.Parallels)
		require.Empty(t, result.Outlooks)
	})

	t.Run("profile from context records computation phases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		patternRepository := mock_repository.NewMockPatternRepository(ctrl)
		mlRepository := mock_repository.NewMockMlPredictionRepository(ctrl)
		patternRepository.EXPECT().ListAll().Return(nil, nil)
		mlRepository.EXPECT().LatestProbabilities(input.Instant).Return(nil, nil)

		handler := ForecastHandler{
			EphemerisClient:        stubEphemeris{},
			PatternRepository:      patternRepository,
			MlPredictionRepository: mlRepository,
			PatternMatchService:    service.NewPatternMatchService(),
			OutlookService:         service.NewOutlookService(),
		}

		profile, endProfile := domain.NewProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

		in := input
		in.SkipParallels = true
		_, err := handler.GenerateForecast(ctx, in)
		require.NoError(t, err)
		endProfile()
		require.NotEmpty(t, profile.Spans)
	})

	t.Run("extended nodal aspects flow through the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		patternRepository := mock_repository.NewMockPatternRepository(ctrl)
		mlRepository := mock_repository.NewMockMlPredictionRepository(ctrl)
		patternRepository.EXPECT().ListAll().Return(nil, nil).AnyTimes()
		mlRepository.EXPECT().LatestProbabilities(input.Instant).Return(nil, nil).AnyTimes()

		handler := ForecastHandler{
			EphemerisClient:        stubEphemeris{},
			PatternRepository:      patternRepository,
			MlPredictionRepository: mlRepository,
			PatternMatchService:    service.NewPatternMatchService(),
			OutlookService:         service.NewOutlookService(),
			AspectConfig:           calculator.AspectConfig{ExtendedNodalAspects: true},
		}

		in := input
		in.SkipParallels = true
		result, err := handler.GenerateForecast(context.Background(), in)
		require.NoError(t, err)
		require.NotNil(t, result.Snapshot)
	})
}
