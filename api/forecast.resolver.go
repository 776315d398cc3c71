package api

import (
	"astrova/internal/app"
	"astrova/internal/domain"
	"astrova/internal/logger"
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type ForecastRequest struct {
	Datetime  string  `json:"datetime"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	SkipParallels bool `json:"skipParallels"`
}

type ForecastResponse struct {
	PlanetaryOverview   map[string]string           `json:"planetaryOverview"`
	ActivePatterns      []domain.PatternHit         `json:"activePatterns"`
	HistoricalParallels []domain.HistoricalParallel `json:"historicalParallels"`
	PredictiveOutlook   []domain.CategoryOutlook    `json:"predictiveOutlook"`
	Timeline            ForecastTimeline            `json:"timeline"`
	Persisted           bool                        `json:"persisted"`
}

type ForecastTimeline struct {
	Instant        string         `json:"instant"`
	GeneratedAt    string         `json:"generatedAt"`
	ParallelSource string         `json:"parallelSource,omitempty"`
	Phases         []*domain.Span `json:"phases"`
}

func (h ApiHandler) forecast(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)
	defer endProfile()

	var requestBody ForecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.Latitude < -90 || requestBody.Latitude > 90 {
		returnErrorJsonCode(fmt.Errorf("latitude %f out of range [-90, 90]", requestBody.Latitude), c, 400)
		return
	}
	if requestBody.Longitude < -180 || requestBody.Longitude > 180 {
		returnErrorJsonCode(fmt.Errorf("longitude %f out of range [-180, 180]", requestBody.Longitude), c, 400)
		return
	}

	instant := time.Now().UTC()
	if requestBody.Datetime != "" {
		parsed, err := time.Parse(time.RFC3339, requestBody.Datetime)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse datetime: %w", err), c, 400)
			return
		}
		instant = parsed.UTC()
	}

	lg := logger.FromContext(c)
	lg.Infow("generating forecast",
		"instant", instant,
		"latitude", requestBody.Latitude,
		"longitude", requestBody.Longitude,
	)

	result, err := h.ForecastHandler.GenerateForecast(ctx, app.GenerateForecastInput{
		Instant:       instant,
		Latitude:      requestBody.Latitude,
		Longitude:     requestBody.Longitude,
		SkipParallels: requestBody.SkipParallels,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, buildForecastResponse(result, instant, profile))
}

func buildForecastResponse(result *app.ForecastResult, instant time.Time, profile *domain.Profile) ForecastResponse {
	overview := map[string]string{}
	for body, position := range result.Snapshot.Positions {
		overview[string(body)] = position.Display()
	}
	overview["Ascendant"] = result.Snapshot.Ascendant.Display()

	// empty slices serialize as [] instead of null
	activePatterns := result.ActivePatterns
	if activePatterns == nil {
		activePatterns = []domain.PatternHit{}
	}
	parallels := result.Parallels
	if parallels == nil {
		parallels = []domain.HistoricalParallel{}
	}
	outlooks := result.Outlooks
	if outlooks == nil {
		outlooks = []domain.CategoryOutlook{}
	}

	return ForecastResponse{
		PlanetaryOverview:   overview,
		ActivePatterns:      activePatterns,
		HistoricalParallels: parallels,
		PredictiveOutlook:   outlooks,
		Timeline: ForecastTimeline{
			Instant:        instant.Format(time.RFC3339),
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
			ParallelSource: result.ParallelSource,
			Phases:         profile.Spans,
		},
		Persisted: result.StoreAvailable,
	}
}
