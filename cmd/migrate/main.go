// Command migrate applies the fabric's relational schema migrations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/relaywire/chat/internal/config"
)

func main() {
	path := flag.String("path", "migrations", "directory of migration files")
	down := flag.Bool("down", false, "roll back one migration instead of applying pending ones")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()
	if cfg.DB.URL == "" {
		log.Fatal("migrate: DATABASE_URL is not set")
	}

	sourceURL := fmt.Sprintf("file://%s", *path)
	m, err := migrate.New(sourceURL, cfg.DB.URL)
	if err != nil {
		log.Fatalf("migrate: create instance: %v", err)
	}

	if *down {
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migrate: down: %v", err)
		}
		log.Println("migrate: rolled back one migration")
		return
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate: up: %v", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Printf("migrate: could not read version: %v", err)
	}
	if dirty {
		log.Fatalf("migrate: database at version %d is marked dirty", version)
	}
	log.Println("migrate: up to date")
}
