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

	"connectfood/internal/adapter/api"
	"connectfood/internal/adapter/api/handler"
	apimiddleware "connectfood/internal/adapter/api/middleware"
	"connectfood/internal/adapter/api/router"
	"connectfood/internal/adapter/repository"
	"connectfood/internal/infrastructure/firebase"
	"connectfood/internal/infrastructure/token"
	"connectfood/internal/usecase"
	"connectfood/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment (production) or file (local dev).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	donationRepo := repository.NewFirestoreDonationRepository(firestoreClient)
	donorRepo := repository.NewFirestoreDonorRepository(firestoreClient)
	recipientRepo := repository.NewFirestoreRecipientRepository(firestoreClient)
	accountRegistry := repository.NewFirestoreAccountRegistry(firestoreClient)

	identityClient := firebase.NewIdentityClient(authClient)
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(accountRegistry, identityClient, tokenService)
	donationUseCase := usecase.NewDonationUseCase(donationRepo, donorRepo, recipientRepo)
	profileUseCase := usecase.NewProfileUseCase(donorRepo, recipientRepo, donationRepo)

	handler.Setup(authUseCase, donationUseCase, profileUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendOrigin},
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenService)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
