package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"fleet-dispatch-service/internal/adapters/cache"
	"fleet-dispatch-service/internal/adapters/directions"
	"fleet-dispatch-service/internal/adapters/repositories"
	"fleet-dispatch-service/internal/api"
	"fleet-dispatch-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, ORS) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/fleet.json")
	port := getEnv("PORT", "8080")

	// A missing key is not fatal: the provider degrades to local estimates.
	orsKey := strings.TrimSpace(os.Getenv("ORS_API_KEY"))

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// The leg cache is optional; without Redis every leg hits the provider
	// (or the local fallback) directly.
	var legCache ports.LegCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		legCache = cache.NewRedisLegCache(client, 24*time.Hour)
	}

	provider := directions.NewORSDirectionsProvider(orsKey, legCache)

	vehicleRepo := repositories.NewSQLVehicleRepository(db)
	orderRepo := repositories.NewSQLOrderRepository(db)
	router := api.NewRouter(vehicleRepo, orderRepo, provider)

	// Timeouts are tuned for cold-cache route enrichment (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
