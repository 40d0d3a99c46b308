package main

import (
	"context"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"vidyashare/internal/adapter/api"
	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
	"vidyashare/internal/adapter/api/router"
	"vidyashare/internal/adapter/repository"
	"vidyashare/internal/infrastructure/auth"
	"vidyashare/internal/usecase"
	"vidyashare/pkg/config"
	"vidyashare/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	firestoreClient, err := newFirestoreClient(ctx, cfg.FirestoreProject)
	if err != nil {
		logger.Error("Failed to create Firestore client: %v", err)
		os.Exit(1)
	}
	defer firestoreClient.Close()

	// Repositories
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	bookRepo := repository.NewFirestoreBookRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	subscriptionRepo := repository.NewFirestoreSubscriptionRepository(firestoreClient)

	// Infrastructure services
	passwordHasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokenService := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, passwordHasher, tokenService)
	bookUseCase := usecase.NewBookUseCase(bookRepo, userRepo)
	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo, bookRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, transactionRepo, bookRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, bookRepo, transactionRepo)

	handler.Setup(authUseCase, bookUseCase, transactionUseCase, reviewUseCase, subscriptionUseCase, userUseCase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	authLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer authLimiter.Stop()

	router.Setup(e, authMiddleware, authLimiter)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func newFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if credsJSON := os.Getenv("FIRESTORE_SERVICE_ACCOUNT_JSON"); credsJSON != "" {
		return firestore.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(credsJSON)))
	}
	if credsPath := os.Getenv("FIRESTORE_SERVICE_ACCOUNT_PATH"); credsPath != "" {
		return firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credsPath))
	}
	return firestore.NewClient(ctx, projectID)
}
