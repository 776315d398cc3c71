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

type PatternRepository interface {
	ListAll() ([]model.AstrologicalPattern, error)
	GetByIDs([]uuid.UUID) ([]model.AstrologicalPattern, error)
	Upsert(model.AstrologicalPattern) (*model.AstrologicalPattern, error)
	UpdateStats(patternID uuid.UUID, totalOccurrences, highImpactOccurrences int32, successRate float64) error
}

type patternRepositoryHandler struct {
	Db *sql.DB
}

func NewPatternRepository(db *sql.DB) PatternRepository {
	return patternRepositoryHandler{db}
}

func (h patternRepositoryHandler) ListAll() ([]model.AstrologicalPattern, error) {
	query := table.AstrologicalPattern.
		SELECT(table.AstrologicalPattern.AllColumns).
		ORDER_BY(table.AstrologicalPattern.PatternName.ASC())

	out := []model.AstrologicalPattern{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	return out, nil
}

func (h patternRepositoryHandler) GetByIDs(ids []uuid.UUID) ([]model.AstrologicalPattern, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idExpressions := make([]postgres.Expression, 0, len(ids))
	for _, id := range ids {
		idExpressions = append(idExpressions, postgres.UUID(id))
	}

	query := table.AstrologicalPattern.
		SELECT(table.AstrologicalPattern.AllColumns).
		WHERE(table.AstrologicalPattern.PatternID.IN(idExpressions...))

	out := []model.AstrologicalPattern{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get patterns by ids: %w", err)
	}

	return out, nil
}

// Upsert inserts a pattern definition keyed by its generated name.
// Re-running aggregation over an unchanged corpus therefore never
// duplicates a pattern.
func (h patternRepositoryHandler) Upsert(m model.AstrologicalPattern) (*model.AstrologicalPattern, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.ModifiedAt = now

	query := table.AstrologicalPattern.
		INSERT(table.AstrologicalPattern.MutableColumns).
		MODEL(m).
		ON_CONFLICT(table.AstrologicalPattern.PatternName).
		DO_UPDATE(postgres.SET(
			table.AstrologicalPattern.PatternType.SET(table.AstrologicalPattern.EXCLUDED.PatternType),
			table.AstrologicalPattern.PatternConditions.SET(table.AstrologicalPattern.EXCLUDED.PatternConditions),
			table.AstrologicalPattern.Description.SET(table.AstrologicalPattern.EXCLUDED.Description),
			table.AstrologicalPattern.TotalOccurrences.SET(table.AstrologicalPattern.EXCLUDED.TotalOccurrences),
			table.AstrologicalPattern.HighImpactOccurrences.SET(table.AstrologicalPattern.EXCLUDED.HighImpactOccurrences),
			table.AstrologicalPattern.SuccessRate.SET(table.AstrologicalPattern.EXCLUDED.SuccessRate),
			table.AstrologicalPattern.ModifiedAt.SET(table.AstrologicalPattern.EXCLUDED.ModifiedAt),
		)).
		RETURNING(table.AstrologicalPattern.AllColumns)

	out := model.AstrologicalPattern{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pattern %q: %w", m.PatternName, err)
	}

	return &out, nil
}

func (h patternRepositoryHandler) UpdateStats(patternID uuid.UUID, totalOccurrences, highImpactOccurrences int32, successRate float64) error {
	query := table.AstrologicalPattern.
		UPDATE(
			table.AstrologicalPattern.TotalOccurrences,
			table.AstrologicalPattern.HighImpactOccurrences,
			table.AstrologicalPattern.SuccessRate,
			table.AstrologicalPattern.ModifiedAt,
		).
		SET(
			postgres.Int32(totalOccurrences),
			postgres.Int32(highImpactOccurrences),
			postgres.Float(successRate),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(table.AstrologicalPattern.PatternID.EQ(postgres.UUID(patternID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update stats for pattern %s: %w", patternID, err)
	}

	return nil
}
