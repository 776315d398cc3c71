package service

import (
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	mock_repository "astrova/internal/repository/mocks"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func matchRow(eventID, patternID uuid.UUID, title string, strength float64) model.EventsWithPatternMatches {
	return model.EventsWithPatternMatches{
		EventID:       eventID,
		Title:         title,
		EventDate:     time.Date(2008, 9, 15, 0, 0, 0, 0, time.UTC),
		Category:      "financial",
		ImpactLevel:   9,
		PatternID:     patternID,
		PatternName:   "SATURN in Capricorn",
		MatchStrength: strength,
	}
}

func Test_FindParallels(t *testing.T) {
	patternIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("view lookup wins when it returns rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		matchRepository.EXPECT().
			ListEventMatches(patternIDs, int64(5)).
			Return([]model.EventsWithPatternMatches{
				matchRow(uuid.New(), patternIDs[0], "Lehman collapse", 92),
			}, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{PatternIDs: patternIDs})
		require.NoError(t, err)
		require.Equal(t, "view", strategy)
		require.Len(t, parallels, 1)
		require.Equal(t, "Lehman collapse", parallels[0].Title)
		require.Equal(t, 92.0, parallels[0].MatchStrength)
	})

	t.Run("falls through to the join when the view is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		matchRepository.EXPECT().
			ListEventMatches(patternIDs, int64(5)).
			Return(nil, fmt.Errorf("relation \"events_with_pattern_matches\" does not exist"))
		matchRepository.EXPECT().
			ListEventMatchesJoin(patternIDs, int64(5)).
			Return([]model.EventsWithPatternMatches{
				matchRow(uuid.New(), patternIDs[0], "Black Monday", 88),
			}, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{PatternIDs: patternIDs})
		require.NoError(t, err)
		require.Equal(t, "join", strategy)
		require.Len(t, parallels, 1)
	})

	t.Run("partial overlap keeps events matching enough patterns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		qualifyingEvent := uuid.New()
		weakEvent := uuid.New()

		matchRepository.EXPECT().
			ListEventMatches(patternIDs, int64(5)).
			Return(nil, nil)
		matchRepository.EXPECT().
			ListEventMatchesJoin(patternIDs, int64(5)).
			Return(nil, nil)
		// two of two patterns for one event, one of two for the other:
		// with a 60% floor only the first survives
		matchRepository.EXPECT().
			ListEventMatchesJoin(patternIDs, int64(1000)).
			Return([]model.EventsWithPatternMatches{
				matchRow(qualifyingEvent, patternIDs[0], "Dot-com bust", 70),
				matchRow(qualifyingEvent, patternIDs[1], "Dot-com bust", 75),
				matchRow(weakEvent, patternIDs[0], "Minor correction", 95),
			}, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{PatternIDs: patternIDs})
		require.NoError(t, err)
		require.Equal(t, "partial-overlap", strategy)
		require.Len(t, parallels, 1)
		require.Equal(t, "Dot-com bust", parallels[0].Title)
	})

	t.Run("similarity service is the last resort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		snapshot := &domain.Snapshot{Instant: time.Now()}

		matchRepository.EXPECT().ListEventMatches(patternIDs, int64(5)).Return(nil, nil)
		matchRepository.EXPECT().ListEventMatchesJoin(patternIDs, int64(5)).Return(nil, nil)
		matchRepository.EXPECT().ListEventMatchesJoin(patternIDs, int64(1000)).Return(nil, nil)
		similarityRepository.EXPECT().
			FindSimilar(gomock.Any(), snapshot, 5).
			Return([]domain.HistoricalParallel{
				{Title: "Spanish flu", Category: "pandemic", MatchStrength: 61},
			}, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{
			Snapshot:   snapshot,
			PatternIDs: patternIDs,
		})
		require.NoError(t, err)
		require.Equal(t, "similarity", strategy)
		require.Len(t, parallels, 1)
		require.Equal(t, "Spanish flu", parallels[0].Title)
	})

	t.Run("every strategy empty returns no parallels and no error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		snapshot := &domain.Snapshot{Instant: time.Now()}

		matchRepository.EXPECT().ListEventMatches(patternIDs, int64(5)).Return(nil, nil)
		matchRepository.EXPECT().ListEventMatchesJoin(patternIDs, int64(5)).Return(nil, nil)
		matchRepository.EXPECT().ListEventMatchesJoin(patternIDs, int64(1000)).Return(nil, nil)
		similarityRepository.EXPECT().FindSimilar(gomock.Any(), snapshot, 5).Return(nil, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{
			Snapshot:   snapshot,
			PatternIDs: patternIDs,
		})
		require.NoError(t, err)
		require.Empty(t, parallels)
		require.Empty(t, strategy)
	})

	t.Run("no pattern ids skips straight to similarity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)

		snapshot := &domain.Snapshot{Instant: time.Now()}
		similarityRepository.EXPECT().
			FindSimilar(gomock.Any(), snapshot, 5).
			Return([]domain.HistoricalParallel{{Title: "Tunguska event"}}, nil)

		handler := NewParallelService(matchRepository, similarityRepository)
		parallels, strategy, err := handler.FindParallels(context.Background(), ParallelQuery{Snapshot: snapshot})
		require.NoError(t, err)
		require.Equal(t, "similarity", strategy)
		require.Len(t, parallels, 1)
	})

	t.Run("long descriptions are truncated for the narrative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		matchRepository := mock_repository.NewMockPatternMatchRepository(ctrl)

		longDescription := strings.Repeat("a", 300)
		row := matchRow(uuid.New(), patternIDs[0], "Verbose event", 80)
		row.Description = &longDescription

		matchRepository.EXPECT().
			ListEventMatches(patternIDs, int64(5)).
			Return([]model.EventsWithPatternMatches{row}, nil)

		handler := NewParallelService(matchRepository, nil)
		parallels, _, err := handler.FindParallels(context.Background(), ParallelQuery{PatternIDs: patternIDs})
		require.NoError(t, err)
		require.Len(t, parallels, 1)
		require.Equal(t, strings.Repeat("a", 200)+"…", parallels[0].Narrative)
	})
}
