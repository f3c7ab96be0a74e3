package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/legalbook-api/internal/config"
	"github.com/harentsoaR/legalbook-api/internal/database"
	"github.com/harentsoaR/legalbook-api/internal/handlers"
	"github.com/harentsoaR/legalbook-api/internal/middleware"
	"github.com/harentsoaR/legalbook-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("MONGO_DATABASE: %s", cfg.MongoDatabase)
	log.Printf("API_PORT: %s", cfg.APIPort)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// run owns the MongoDB connection, so it is released before main exits.
func run(cfg *config.Config) error {
	// --- Database Connection ---
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(ctx)

	userStore := database.NewMongoUserStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Printf("Could not create user indexes: %v", err)
	}

	// --- Initialize Services ---
	userSvc := services.NewUserService(userStore)

	// --- Initialize Handlers ---
	h := handlers.NewHandler(userSvc)

	r := newRouter(cfg, h)

	log.Printf("Starting server on port %s", cfg.APIPort)
	return r.Run(":" + cfg.APIPort)
}

func newRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	// --- Gin Router ---
	r := gin.Default()

	// ---  Middleware ---
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	// --- Routes ---
	h.RegisterRoutes(r)

	return r
}
