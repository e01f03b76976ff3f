package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"car-rental/cmd"
	"car-rental/internal/data/repository"
	"car-rental/internal/usecase"
	"car-rental/internal/wire"
	"car-rental/pkg/database"
	"car-rental/pkg/metrics"
	"car-rental/pkg/storage"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos *repository.Repository
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	default:
		repos = repository.NewMemoryRepository(repository.SampleSeed(), logger)
	}

	var m *metrics.Metrics
	if config.Metrics.Enabled {
		m = metrics.New("car_rental")
	}

	deps := usecase.Deps{Metrics: m}
	if config.Storage.Bucket != "" {
		s3Client, err := storage.NewS3Client(ctx, config.Storage)
		if err != nil {
			logger.Fatal("Failed to create S3 client", zap.Error(err))
		}
		deps.Storage = storage.NewS3Store(s3Client, config.Storage, logger)

		mongoClient, err := database.InitMongo(ctx, config.Mongo)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(context.Background())

		cars := mongoClient.Database(config.Mongo.Database).Collection(config.Mongo.Collection)
		if err := repository.EnsureCarIndexes(ctx, cars, logger); err != nil {
			logger.Error("Failed to create cars indexes", zap.Error(err))
		}
		deps.Documents = repository.NewCarDocumentRepository(cars, logger)

		logger.Info("Upload backends connected",
			zap.String("bucket", config.Storage.Bucket),
			zap.String("collection", config.Mongo.Database+"."+config.Mongo.Collection),
		)
	} else {
		logger.Warn("S3_BUCKET not set, car uploads are disabled")
	}

	service := usecase.NewService(repos, deps, config, logger)
	go service.Carousel.Run(ctx)

	// Wire all dependencies
	app := wire.Wiring(service, config, m, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
