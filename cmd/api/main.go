package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/mikiasgoitom/Studiofolio/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Studiofolio/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Studiofolio/internal/infrastructure/database"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/storage"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/store"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Studiofolio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Studiofolio/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger, err := logger.NewZapLogger(appConfig.GetAppEnv())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, appConfig.GetMongoURI(), appConfig.GetMongoDBName())
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	galleryRepo := mongodb.NewGalleryRepository(mongoClient.DB)
	mediaRepo := mongodb.NewMediaRepository(mongoClient.DB)
	aboutRepo := mongodb.NewAboutRepository(mongoClient.DB)
	engagementRepo := mongodb.NewEngagementRepository(mongoClient.DB)
	if err := galleryRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warningf("gallery indexes: %v", err)
	}
	if err := mediaRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warningf("media indexes: %v", err)
	}

	// Dependency Injection: Services
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	galleryUsecase := usecase.NewGalleryUseCase(galleryRepo, mediaRepo, uuidGenerator, appValidator, appLogger, appConfig.GetBoardSettings())
	aboutUsecase := usecase.NewAboutUseCase(aboutRepo, uuidGenerator, appValidator, appLogger)
	engagementUsecase := usecase.NewEngagementUseCase(engagementRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			appLogger.Warningf("Redis unavailable, serving without cache: %v", err)
		} else {
			defer func() { _ = redisclient.Close(rdb) }()
			contentCache := store.NewContentCacheStore(rdb, appConfig.GetCacheTTL())
			galleryUsecase.SetContentCache(contentCache)
			aboutUsecase.SetContentCache(contentCache)
			engagementUsecase.SetContentCache(contentCache)
		}
	}

	// Optional Dependency Injection: S3 object removal
	if bucket := appConfig.GetS3BucketName(); bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, bucket, appConfig.GetS3Region())
		if err != nil {
			appLogger.Warningf("S3 unavailable, media objects will not be removed: %v", err)
		} else {
			galleryUsecase.SetObjectStorage(s3Store)
		}
	}

	if appConfig.GetAppEnv() != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(galleryUsecase, aboutUsecase, engagementUsecase, appConfig)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + appConfig.GetPort(),
		Handler: router,
	}
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.GetShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server shutdown: %v", err)
	}
	// flush board saves still waiting on their debounce
	galleryUsecase.Close()
}
