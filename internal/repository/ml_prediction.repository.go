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
)

// MlPredictionRepository reads the category probabilities the external
// ML pipeline writes. An empty map is a valid outcome: categories
// without a stored prediction contribute zero to the blend.
type MlPredictionRepository interface {
	LatestProbabilities(asOf time.Time) (map[string]float64, error)
}

type mlPredictionRepositoryHandler struct {
	Db *sql.DB
}

func NewMlPredictionRepository(db *sql.DB) MlPredictionRepository {
	return mlPredictionRepositoryHandler{db}
}

func (h mlPredictionRepositoryHandler) LatestProbabilities(asOf time.Time) (map[string]float64, error) {
	query := table.MlPrediction.
		SELECT(table.MlPrediction.AllColumns).
		WHERE(table.MlPrediction.PredictionDate.LT_EQ(postgres.TimestampzT(asOf))).
		ORDER_BY(table.MlPrediction.PredictionDate.DESC(), table.MlPrediction.CreatedAt.DESC())

	rows := []model.MlPrediction{}
	err := query.Query(h.Db, &rows)
	if errors.Is(err, qrm.ErrNoRows) {
		return map[string]float64{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read ml predictions: %w", err)
	}

	// rows are newest-first; keep the first prediction seen per category
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		if _, ok := out[row.Category]; !ok {
			out[row.Category] = row.Probability
		}
	}

	return out, nil
}
