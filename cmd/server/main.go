package main

import (
	"birth-chart-service/internal/adapters/cache"
	"birth-chart-service/internal/adapters/ephemeris"
	"birth-chart-service/internal/adapters/ephemeris/swisseph"
	"birth-chart-service/internal/adapters/geocode"
	"birth-chart-service/internal/api"
	"birth-chart-service/internal/config"
	"birth-chart-service/internal/platform/db"
	"birth-chart-service/internal/ports"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Swiss Ephemeris, Open-Meteo, the place
// cache backend) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	ephePath := config.Get("SWEPHE_PATH", "ephe")
	includeNode := config.GetBool("EPHE_INCLUDE_NODE", false)
	dbPath := config.Get("DB_PATH", "data/app.db")
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	placeCache, closeDB, err := openPlaceCache(databaseURL, dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	geocoder := geocode.NewOpenMeteoClient(placeCache)

	engine := swisseph.New(ephePath)
	defer engine.Close()

	provider := ephemeris.NewProvider(engine, ephemeris.Config{
		DataPath:        ephePath,
		IncludeTrueNode: includeNode,
	})
	log.Printf("Ephemeris path=%s bodies=%d", ephePath, len(provider.Bodies()))

	router := api.NewRouter(geocoder, provider)

	// Write timeout covers the slowest path: a cold-cache geocode call
	// against the upstream's 20s budget.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPlaceCache selects the cache backend: Postgres when DATABASE_URL
// is set, a local sqlite file otherwise.
func openPlaceCache(databaseURL, dbPath string) (ports.PlaceCache, func(), error) {
	if databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open place cache: %w", err)
		}
		if err := cache.InitSQLSchema(pg); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("open place cache: %w", err)
		}
		return cache.NewSQLPlaceCache(pg), func() { pg.Close() }, nil
	}

	lite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open place cache: %w", err)
	}
	if err := cache.InitSqliteSchema(lite); err != nil {
		lite.Close()
		return nil, nil, fmt.Errorf("open place cache: %w", err)
	}
	return cache.NewSqlitePlaceCache(lite), func() { lite.Close() }, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := lite.Ping(); err != nil {
		lite.Close()
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, nil
}
