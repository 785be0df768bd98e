package main // Entry point package

import (
	"context"
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/movie-rental-api/internal/config"
	"github.com/iliyamo/movie-rental-api/internal/database"
	"github.com/iliyamo/movie-rental-api/internal/handler"
	"github.com/iliyamo/movie-rental-api/internal/middleware"
	"github.com/iliyamo/movie-rental-api/internal/queue"
	"github.com/iliyamo/movie-rental-api/internal/repository"
	"github.com/iliyamo/movie-rental-api/internal/router"
)

func main() {
	_ = godotenv.Load() // best-effort; env vars win when .env is absent
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	rentalRepo := repository.NewRentalRepo(db)

	h := router.Handlers{
		Rental: handler.NewRentalHandler(userRepo, movieRepo, rentalRepo),
		Movie:  handler.NewMovieHandler(movieRepo),
		User:   handler.NewUserHandler(userRepo, rentalRepo),
		Admin:  handler.NewAdminHandler(userRepo, movieRepo, rentalRepo),
	}

	e := echo.New()

	// Redis is optional: without it the cache and the rate limiter
	// collapse into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e, h, userRepo, cache)

	// The event consumer only runs when a broker is configured; the
	// API itself stays fully synchronous either way.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go queue.StartRentalConsumer()
	}

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
