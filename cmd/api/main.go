package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"farmlytic/internal/adapter/api"
	"farmlytic/internal/adapter/api/handler"
	apimiddleware "farmlytic/internal/adapter/api/middleware"
	"farmlytic/internal/adapter/api/router"
	"farmlytic/internal/adapter/repository"
	"farmlytic/internal/domain/service"
	"farmlytic/internal/infrastructure/firebase"
	"farmlytic/internal/infrastructure/localcache"
	"farmlytic/internal/infrastructure/websocket"
	"farmlytic/internal/sync"
	"farmlytic/internal/usecase"
	"farmlytic/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	cache, err := localcache.Open(cfg.CacheDir)
	if err != nil {
		log.Fatalf("Failed to open local cache: %v", err)
	}
	defer cache.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	fieldRepo := repository.NewFirestoreFieldRepository(firestoreClient)
	inventoryRepo := repository.NewFirestoreInventoryRepository(firestoreClient)

	// Requests and conversations go through the fallback layer so the
	// dashboard keeps working when the remote store is unreachable.
	requestRepo := repository.NewFallbackRequestRepository(
		repository.NewFirestoreRequestRepository(firestoreClient), cache)
	conversationRepo := repository.NewFallbackConversationRepository(
		repository.NewFirestoreConversationRepository(firestoreClient), cache)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	watcher := sync.NewWatcher(firestoreClient, requestRepo, wsManager)
	watcher.Start(ctx)

	weatherService := service.NewMockWeatherService()

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, conversationRepo, profileRepo, usecase.RequestPolicy{
		RequireAdviceTarget: cfg.RequireAdviceTarget,
	})
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo, requestRepo, profileRepo)
	fieldUseCase := usecase.NewFieldUseCase(fieldRepo, weatherService)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo)

	handler.Setup(authUseCase, profileUseCase, requestUseCase, conversationUseCase, fieldUseCase, inventoryUseCase, wsManager)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(profileRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
