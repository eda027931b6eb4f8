package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"mbogamarket/internal/adapter/api"
	"mbogamarket/internal/adapter/api/handler"
	apimiddleware "mbogamarket/internal/adapter/api/middleware"
	"mbogamarket/internal/adapter/api/router"
	"mbogamarket/internal/adapter/repository"
	"mbogamarket/internal/infrastructure/firebase"
	"mbogamarket/internal/infrastructure/storage"
	"mbogamarket/internal/usecase"
	"mbogamarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firebaseAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	vendorRepo := repository.NewFirestoreVendorRepository(firestoreClient)
	vegetableRepo := repository.NewFirestoreVegetableRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)

	authClient := firebase.NewAuthClient(firebaseAuth, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(vendorRepo, authClient)
	catalogUseCase := usecase.NewCatalogUseCase(vegetableRepo, vendorRepo)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, vegetableRepo, storageClient)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, vendorRepo, vegetableRepo)

	handler.Setup(authUseCase, catalogUseCase, vendorUseCase, adminUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminRepo)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
