package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"astrova/internal/domain"
)

// SimilarityRepository talks to the external snapshot-similarity
// service. It is the last-resort source of historical parallels when
// nothing pattern-based produced results.
type SimilarityRepository interface {
	FindSimilar(ctx context.Context, snapshot *domain.Snapshot, limit int) ([]domain.HistoricalParallel, error)
}

func NewSimilarityRepository(endpoint string) SimilarityRepository {
	return &similarityRepositoryHandler{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type similarityRepositoryHandler struct {
	Endpoint string
	Client   *http.Client
}

type similarityRequest struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
	Limit    int              `json:"limit"`
}

type similarityResponse struct {
	Results []struct {
		Title         string    `json:"title"`
		EventDate     time.Time `json:"event_date"`
		Category      string    `json:"category"`
		ImpactLevel   int32     `json:"impact_level"`
		SimilarityPct float64   `json:"similarity"`
		Summary       string    `json:"summary"`
	} `json:"results"`
}

func (h *similarityRepositoryHandler) FindSimilar(ctx context.Context, snapshot *domain.Snapshot, limit int) ([]domain.HistoricalParallel, error) {
	body, err := json.Marshal(similarityRequest{Snapshot: snapshot, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal similarity request: %w", err)
	}

	url := h.Endpoint + "/v1/similar"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("similarity service unreachable: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("similarity service failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	out := similarityResponse{}
	if err := json.Unmarshal(responseBytes, &out); err != nil {
		return nil, fmt.Errorf("failed to decode similarity response: %w", err)
	}

	parallels := make([]domain.HistoricalParallel, 0, len(out.Results))
	for _, r := range out.Results {
		parallels = append(parallels, domain.HistoricalParallel{
			Title:         r.Title,
			EventDate:     r.EventDate,
			Category:      r.Category,
			ImpactLevel:   r.ImpactLevel,
			MatchStrength: r.SimilarityPct,
			Narrative:     r.Summary,
		})
	}
	return parallels, nil
}
