package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"picpoints/cache"
	"picpoints/config"
	"picpoints/database"
	"picpoints/handlers"
	"picpoints/middleware"
	"picpoints/routes"
	"picpoints/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env first so viper sees the variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	defer cache.Close()

	// Initialize blob storage
	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	// Initialize handlers and middleware with config
	handlers.InitAuthHandlers(cfg)
	handlers.InitPostHandlers(store)
	middleware.InitMiddleware(cfg)

	// Connect to database
	database.Connect(cfg)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "picpoints API",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Setup routes
	routes.Setup(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
