package cmd

import (
	"astrova/api"
	"astrova/internal"
	"astrova/internal/app"
	"astrova/internal/calculator"
	"astrova/internal/repository"
	"astrova/internal/service"
	swissengine_client "astrova/pkg/swissengine"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies wires the full dependency graph for the API.
func InitializeDependencies() (*api.ApiHandler, error) {
	deps, err := buildDependencies()
	if err != nil {
		return nil, err
	}
	return deps.ApiHandler, nil
}

// BatchDependencies is the subset the batch CLI needs.
type BatchDependencies struct {
	Db                 *sql.DB
	AggregatorHandler  app.AggregatorHandler
	EventImportHandler app.EventImportHandler
}

// InitializeBatchDependencies wires the dependency graph for the
// aggregation and import commands.
func InitializeBatchDependencies() (*BatchDependencies, error) {
	deps, err := buildDependencies()
	if err != nil {
		return nil, err
	}
	return &BatchDependencies{
		Db:                 deps.ApiHandler.Db,
		AggregatorHandler:  deps.AggregatorHandler,
		EventImportHandler: deps.EventImportHandler,
	}, nil
}

type dependencies struct {
	ApiHandler         *api.ApiHandler
	AggregatorHandler  app.AggregatorHandler
	EventImportHandler app.EventImportHandler
}

func buildDependencies() (*dependencies, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	worldEventRepository := repository.NewWorldEventRepository(dbConn)
	patternRepository := repository.NewPatternRepository(dbConn)
	patternMatchRepository := repository.NewPatternMatchRepository(dbConn)
	mlPredictionRepository := repository.NewMlPredictionRepository(dbConn)

	var similarityRepository repository.SimilarityRepository
	if secrets.SimilarityUrl != "" {
		similarityRepository = repository.NewSimilarityRepository(secrets.SimilarityUrl)
	}

	var interpretationRepository repository.InterpretationRepository
	if secrets.ChatGPTApiKey != "" {
		interpretationRepository, err = repository.NewInterpretationRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	ephemerisClient := swissengine_client.New(secrets.SwissEngineUrl)

	aspectConfig := calculator.AspectConfig{
		ExtendedNodalAspects: strings.EqualFold(os.Getenv("EXTENDED_NODAL_ASPECTS"), "true"),
	}

	patternMatchService := service.NewPatternMatchService()
	outlookService := service.NewOutlookService()
	parallelService := service.NewParallelService(patternMatchRepository, similarityRepository)

	forecastHandler := app.ForecastHandler{
		EphemerisClient:          ephemerisClient,
		PatternRepository:        patternRepository,
		MlPredictionRepository:   mlPredictionRepository,
		PatternMatchService:      patternMatchService,
		OutlookService:           outlookService,
		ParallelService:          parallelService,
		InterpretationRepository: interpretationRepository,
		AspectConfig:             aspectConfig,
	}

	aggregatorHandler := app.AggregatorHandler{
		WorldEventRepository:   worldEventRepository,
		PatternRepository:      patternRepository,
		PatternMatchRepository: patternMatchRepository,
		PatternMatchService:    patternMatchService,
	}

	eventImportHandler := app.EventImportHandler{
		WorldEventRepository: worldEventRepository,
		EphemerisClient:      ephemerisClient,
		AspectConfig:         aspectConfig,
	}

	return &dependencies{
		ApiHandler: &api.ApiHandler{
			Db:                   dbConn,
			ForecastHandler:      forecastHandler,
			PatternRepository:    patternRepository,
			ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		},
		AggregatorHandler:  aggregatorHandler,
		EventImportHandler: eventImportHandler,
	}, nil
}
