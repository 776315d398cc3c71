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

type WorldEventRepository interface {
	Add(model.WorldEvent) (*model.WorldEvent, error)
	Get(uuid.UUID) (*model.WorldEvent, error)
	GetByIDs([]uuid.UUID) ([]model.WorldEvent, error)
	List(limit, offset int64) ([]model.WorldEvent, error)
	Count() (int64, error)
	UpdateSnapshot(eventID uuid.UUID, snapshot string) error
}

type worldEventRepositoryHandler struct {
	Db *sql.DB
}

func NewWorldEventRepository(db *sql.DB) WorldEventRepository {
	return worldEventRepositoryHandler{db}
}

func (h worldEventRepositoryHandler) Add(m model.WorldEvent) (*model.WorldEvent, error) {
	m.CreatedAt = time.Now().UTC()

	query := table.WorldEvent.
		INSERT(table.WorldEvent.MutableColumns).
		MODEL(m).
		RETURNING(table.WorldEvent.AllColumns)

	out := model.WorldEvent{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert world event: %w", err)
	}

	return &out, nil
}

func (h worldEventRepositoryHandler) Get(id uuid.UUID) (*model.WorldEvent, error) {
	query := table.WorldEvent.
		SELECT(table.WorldEvent.AllColumns).
		WHERE(table.WorldEvent.EventID.EQ(postgres.UUID(id)))

	out := model.WorldEvent{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get world event %s: %w", id, err)
	}

	return &out, nil
}

func (h worldEventRepositoryHandler) GetByIDs(ids []uuid.UUID) ([]model.WorldEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idExpressions := make([]postgres.Expression, 0, len(ids))
	for _, id := range ids {
		idExpressions = append(idExpressions, postgres.UUID(id))
	}

	query := table.WorldEvent.
		SELECT(table.WorldEvent.AllColumns).
		WHERE(table.WorldEvent.EventID.IN(idExpressions...))

	out := []model.WorldEvent{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list world events by ids: %w", err)
	}

	return out, nil
}

func (h worldEventRepositoryHandler) List(limit, offset int64) ([]model.WorldEvent, error) {
	query := table.WorldEvent.
		SELECT(table.WorldEvent.AllColumns).
		ORDER_BY(table.WorldEvent.EventDate.ASC(), table.WorldEvent.EventID.ASC()).
		LIMIT(limit).
		OFFSET(offset)

	out := []model.WorldEvent{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list world events: %w", err)
	}

	return out, nil
}

func (h worldEventRepositoryHandler) Count() (int64, error) {
	var dest struct {
		Count int64
	}
	query := postgres.
		SELECT(postgres.COUNT(table.WorldEvent.EventID).AS("count")).
		FROM(table.WorldEvent)

	err := query.Query(h.Db, &dest)
	if err != nil {
		return 0, fmt.Errorf("failed to count world events: %w", err)
	}

	return dest.Count, nil
}

func (h worldEventRepositoryHandler) UpdateSnapshot(eventID uuid.UUID, snapshot string) error {
	query := table.WorldEvent.
		UPDATE(table.WorldEvent.PlanetarySnapshot).
		SET(postgres.String(snapshot)).
		WHERE(table.WorldEvent.EventID.EQ(postgres.UUID(eventID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update snapshot for event %s: %w", eventID, err)
	}

	return nil
}
