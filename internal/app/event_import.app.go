package app

import (
	"astrova/internal/calculator"
	"astrova/internal/db/models/postgres/public/model"
	"astrova/internal/domain"
	"astrova/internal/repository"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// ephemerisCallDelay throttles backfill requests so a large import
// does not hammer the swiss engine.
const ephemerisCallDelay = 250 * time.Millisecond

// EventImportHandler loads historical events from CSV and backfills
// their planetary snapshots from the ephemeris.
type EventImportHandler struct {
	WorldEventRepository repository.WorldEventRepository
	EphemerisClient      EphemerisClient
	AspectConfig         calculator.AspectConfig
}

type eventCsvRow struct {
	Title              string  `csv:"title"`
	Description        string  `csv:"description"`
	EventDate          string  `csv:"event_date"`
	Category           string  `csv:"category"`
	EventType          string  `csv:"event_type"`
	ImpactLevel        int32   `csv:"impact_level"`
	LocationName       string  `csv:"location_name"`
	Latitude           float64 `csv:"latitude"`
	Longitude          float64 `csv:"longitude"`
	CountryCode        string  `csv:"country_code"`
	AffectedPopulation int64   `csv:"affected_population"`
	SourceURL          string  `csv:"source_url"`
}

// ImportFromCsv reads the file, stores each row as a world event, and
// computes its snapshot when coordinates are present. Bad rows are
// logged and skipped; the import only fails on file-level problems.
func (h EventImportHandler) ImportFromCsv(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []eventCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	imported := 0
	for i, row := range rows {
		eventDate, err := time.Parse("2006-01-02", row.EventDate)
		if err != nil {
			zap.S().Warnw("skipping row with unparseable date", "row", i+1, "eventDate", row.EventDate)
			continue
		}

		event := model.WorldEvent{
			Title:       row.Title,
			EventDate:   eventDate,
			Category:    row.Category,
			ImpactLevel: row.ImpactLevel,
		}
		if row.Description != "" {
			event.Description = &row.Description
		}
		if row.EventType != "" {
			event.EventType = &row.EventType
		}
		if row.LocationName != "" {
			event.LocationName = &row.LocationName
		}
		if row.CountryCode != "" {
			event.CountryCode = &row.CountryCode
		}
		if row.SourceURL != "" {
			event.SourceURL = &row.SourceURL
		}
		if row.AffectedPopulation > 0 {
			event.AffectedPopulation = &row.AffectedPopulation
		}
		hasCoordinates := row.Latitude != 0 || row.Longitude != 0
		if hasCoordinates {
			event.Latitude = &row.Latitude
			event.Longitude = &row.Longitude
		}

		stored, err := h.WorldEventRepository.Add(event)
		if err != nil {
			zap.S().Warnw("failed to store event", "row", i+1, "title", row.Title, "err", err)
			continue
		}
		imported++

		if !hasCoordinates {
			continue
		}
		if err := h.backfillSnapshot(ctx, stored, eventDate, row.Latitude, row.Longitude); err != nil {
			zap.S().Warnw("failed to backfill snapshot", "title", row.Title, "err", err)
		}
		time.Sleep(ephemerisCallDelay)
	}
	return imported, nil
}

// BackfillSnapshots computes snapshots for stored events that do not
// have one yet. Returns how many events were updated.
func (h EventImportHandler) BackfillSnapshots(ctx context.Context) (int, error) {
	updated := 0
	offset := int64(0)
	for {
		events, err := h.WorldEventRepository.List(eventPageSize, offset)
		if err != nil {
			return updated, fmt.Errorf("failed to list events at offset %d: %w", offset, err)
		}
		if len(events) == 0 {
			return updated, nil
		}
		for _, event := range events {
			if event.PlanetarySnapshot != nil && *event.PlanetarySnapshot != "" {
				continue
			}
			if event.Latitude == nil || event.Longitude == nil {
				continue
			}
			if err := h.backfillSnapshot(ctx, &event, event.EventDate, *event.Latitude, *event.Longitude); err != nil {
				zap.S().Warnw("failed to backfill snapshot", "event", event.EventID, "err", err)
				continue
			}
			updated++
			time.Sleep(ephemerisCallDelay)
		}
		if int64(len(events)) < eventPageSize {
			return updated, nil
		}
		offset += eventPageSize
	}
}

func (h EventImportHandler) backfillSnapshot(ctx context.Context, event *model.WorldEvent, instant time.Time, latitude, longitude float64) error {
	positions, err := h.EphemerisClient.PlanetaryPositions(ctx, instant, latitude, longitude)
	if err != nil {
		return fmt.Errorf("failed to fetch positions: %w", err)
	}
	ascendant, err := h.EphemerisClient.Ascendant(ctx, instant, latitude, longitude)
	if err != nil {
		return fmt.Errorf("failed to fetch ascendant: %w", err)
	}

	snapshot := calculator.BuildSnapshot(instant, latitude, longitude, positions, ascendant, h.AspectConfig)
	raw, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return h.WorldEventRepository.UpdateSnapshot(event.EventID, string(raw))
}
