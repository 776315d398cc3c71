package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// PatternMatchStats is the recomputed tally for one pattern after a
// match-table rebuild.
type PatternMatchStats struct {
	TotalOccurrences      int32
	HighImpactOccurrences int32
}

type PatternMatchRepository interface {
	Upsert(model.EventPatternMatch) error
	DeleteAll() error
	// ListEventMatches reads the events_with_pattern_matches view.
	ListEventMatches(patternIDs []uuid.UUID, limit int64) ([]model.EventsWithPatternMatches, error)
	// ListEventMatchesJoin produces the same rows via an explicit join,
	// for stores where the view has not been created.
	ListEventMatchesJoin(patternIDs []uuid.UUID, limit int64) ([]model.EventsWithPatternMatches, error)
	StatsForPattern(patternID uuid.UUID, highImpactThreshold int32) (*PatternMatchStats, error)
}

type patternMatchRepositoryHandler struct {
	Db *sql.DB
}

func NewPatternMatchRepository(db *sql.DB) PatternMatchRepository {
	return patternMatchRepositoryHandler{db}
}

// Upsert writes one match record, keyed by the (event, pattern) pair so
// at most one match exists per pair.
func (h patternMatchRepositoryHandler) Upsert(m model.EventPatternMatch) error {
	m.CreatedAt = time.Now().UTC()

	query := table.EventPatternMatch.
		INSERT(table.EventPatternMatch.MutableColumns).
		MODEL(m).
		ON_CONFLICT(table.EventPatternMatch.EventID, table.EventPatternMatch.PatternID).
		DO_UPDATE(postgres.SET(
			table.EventPatternMatch.MatchStrength.SET(table.EventPatternMatch.EXCLUDED.MatchStrength),
			table.EventPatternMatch.ExactMatch.SET(table.EventPatternMatch.EXCLUDED.ExactMatch),
			table.EventPatternMatch.OrbApplied.SET(table.EventPatternMatch.EXCLUDED.OrbApplied),
			table.EventPatternMatch.MatchDetails.SET(table.EventPatternMatch.EXCLUDED.MatchDetails),
		))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert pattern match: %w", err)
	}

	return nil
}

// DeleteAll clears the match table ahead of a full rebuild.
func (h patternMatchRepositoryHandler) DeleteAll() error {
	query := table.EventPatternMatch.
		DELETE().
		WHERE(postgres.Bool(true))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to clear pattern matches: %w", err)
	}

	return nil
}

func patternIDExpressions(patternIDs []uuid.UUID) []postgres.Expression {
	out := make([]postgres.Expression, 0, len(patternIDs))
	for _, id := range patternIDs {
		out = append(out, postgres.UUID(id))
	}
	return out
}

func (h patternMatchRepositoryHandler) ListEventMatches(patternIDs []uuid.UUID, limit int64) ([]model.EventsWithPatternMatches, error) {
	if len(patternIDs) == 0 {
		return nil, nil
	}

	query := table.EventsWithPatternMatches.
		SELECT(table.EventsWithPatternMatches.AllColumns).
		WHERE(table.EventsWithPatternMatches.PatternID.IN(patternIDExpressions(patternIDs)...)).
		ORDER_BY(
			table.EventsWithPatternMatches.MatchStrength.DESC(),
			table.EventsWithPatternMatches.EventDate.DESC(),
		).
		LIMIT(limit)

	out := []model.EventsWithPatternMatches{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list event matches: %w", err)
	}

	return out, nil
}

func (h patternMatchRepositoryHandler) ListEventMatchesJoin(patternIDs []uuid.UUID, limit int64) ([]model.EventsWithPatternMatches, error) {
	if len(patternIDs) == 0 {
		return nil, nil
	}

	query := postgres.
		SELECT(
			table.WorldEvent.EventID.AS("events_with_pattern_matches.event_id"),
			table.WorldEvent.Title.AS("events_with_pattern_matches.title"),
			table.WorldEvent.Description.AS("events_with_pattern_matches.description"),
			table.WorldEvent.EventDate.AS("events_with_pattern_matches.event_date"),
			table.WorldEvent.Category.AS("events_with_pattern_matches.category"),
			table.WorldEvent.ImpactLevel.AS("events_with_pattern_matches.impact_level"),
			table.EventPatternMatch.PatternID.AS("events_with_pattern_matches.pattern_id"),
			table.AstrologicalPattern.PatternName.AS("events_with_pattern_matches.pattern_name"),
			table.EventPatternMatch.MatchStrength.AS("events_with_pattern_matches.match_strength"),
			table.EventPatternMatch.ExactMatch.AS("events_with_pattern_matches.exact_match"),
		).
		FROM(
			table.EventPatternMatch.
				INNER_JOIN(table.WorldEvent, table.WorldEvent.EventID.EQ(table.EventPatternMatch.EventID)).
				INNER_JOIN(table.AstrologicalPattern, table.AstrologicalPattern.PatternID.EQ(table.EventPatternMatch.PatternID)),
		).
		WHERE(table.EventPatternMatch.PatternID.IN(patternIDExpressions(patternIDs)...)).
		ORDER_BY(
			table.EventPatternMatch.MatchStrength.DESC(),
			table.WorldEvent.EventDate.DESC(),
		).
		LIMIT(limit)

	out := []model.EventsWithPatternMatches{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to join event matches: %w", err)
	}

	return out, nil
}

func (h patternMatchRepositoryHandler) StatsForPattern(patternID uuid.UUID, highImpactThreshold int32) (*PatternMatchStats, error) {
	var totalDest struct {
		Count int64
	}
	totalQuery := postgres.
		SELECT(postgres.COUNT(table.EventPatternMatch.MatchID).AS("count")).
		FROM(table.EventPatternMatch).
		WHERE(table.EventPatternMatch.PatternID.EQ(postgres.UUID(patternID)))

	if err := totalQuery.Query(h.Db, &totalDest); err != nil {
		return nil, fmt.Errorf("failed to count matches for pattern %s: %w", patternID, err)
	}

	var highImpactDest struct {
		Count int64
	}
	highImpactQuery := postgres.
		SELECT(postgres.COUNT(table.EventPatternMatch.MatchID).AS("count")).
		FROM(
			table.EventPatternMatch.
				INNER_JOIN(table.WorldEvent, table.WorldEvent.EventID.EQ(table.EventPatternMatch.EventID)),
		).
		WHERE(
			postgres.AND(
				table.EventPatternMatch.PatternID.EQ(postgres.UUID(patternID)),
				table.WorldEvent.ImpactLevel.GT_EQ(postgres.Int32(highImpactThreshold)),
			),
		)

	if err := highImpactQuery.Query(h.Db, &highImpactDest); err != nil {
		return nil, fmt.Errorf("failed to count high-impact matches for pattern %s: %w", patternID, err)
	}

	return &PatternMatchStats{
		TotalOccurrences:      int32(totalDest.Count),
		HighImpactOccurrences: int32(highImpactDest.Count),
	}, nil
}
