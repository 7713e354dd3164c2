package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/placer-backend/internal/clients/openai"
	"github.com/yungbote/placer-backend/internal/db"
	"github.com/yungbote/placer-backend/internal/handlers"
	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/observability"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/server"
	"github.com/yungbote/placer-backend/internal/services"
	"github.com/yungbote/placer-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "placer-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	profileRepo := repos.NewUserProfileRepo(thePG, log)
	cardRepo := repos.NewExperienceCardRepo(thePG, log)
	swipeRepo := repos.NewSwipeRepo(thePG, log)
	statusRepo := repos.NewStatusCheckRepo(thePG, log)
	aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

	// Clients
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAI client", "error", err)
		os.Exit(1)
	}
	if !openaiClient.Configured() {
		log.Warn("OPENAI_API_KEY not set; suggestion generation will fail until it is configured")
	}

	// Services
	log.Info("Setting up services from main...")
	profileService := services.NewProfileService(thePG, log, profileRepo)
	suggestionService := services.NewSuggestionService(thePG, log, profileRepo, cardRepo, aiCallLogRepo, openaiClient)
	cardService := services.NewCardService(thePG, log, cardRepo, swipeRepo)
	swipeService := services.NewSwipeService(thePG, log, cardRepo, swipeRepo)
	statusService := services.NewStatusService(thePG, log, statusRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	placerHandler := handlers.NewPlacerHandler(profileService, suggestionService, cardService, swipeService)
	statusHandler := handlers.NewStatusHandler(statusService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:           log,
		CORSOrigins:   utils.GetEnv("CORS_ORIGINS", "*", log),
		StatusHandler: statusHandler,
		PlacerHandler: placerHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
