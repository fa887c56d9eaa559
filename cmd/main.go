package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/reusehub/reuse-platform/internal/db"
	"github.com/reusehub/reuse-platform/internal/handlers"
	"github.com/reusehub/reuse-platform/internal/repository"
	"github.com/reusehub/reuse-platform/internal/router"
	"github.com/reusehub/reuse-platform/internal/router/config"
	"github.com/reusehub/reuse-platform/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer dbPool.Close()

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	listingRepo := repository.NewPostgresListingRepository(dbPool)
	listingService := services.NewListingService(listingRepo)
	listingHandler := handlers.NewListingHandler(listingService, logger, 5*time.Second)

	routes := router.InitRoutes(listingHandler)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
