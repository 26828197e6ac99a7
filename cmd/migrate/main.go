package main

import (
	"errors"
	"flag"
	"log"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/database"
)

var errRollbackInProduction = errors.New("refusing to roll back a production database without -force")

// checkRollback reports whether a rollback may run in the current environment
func checkRollback(force bool) error {
	if config.IsProduction() && !force {
		return errRollbackInProduction
	}
	return nil
}

func main() {
	down := flag.Bool("down", false, "Roll back instead of applying migrations")
	steps := flag.Int("steps", 1, "Number of migrations to roll back with -down")
	force := flag.Bool("force", false, "Allow -down when ENV=production")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Using %s database (environment: %s)", cfg.DBDriver, config.GetEnvironment())

	if *down {
		if err := checkRollback(*force); err != nil {
			log.Fatal(err)
		}
		if err := database.RollbackMigrations(cfg, *steps); err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
	} else {
		if err := database.RunMigrations(cfg); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	version, ok, err := database.MigrationVersion(cfg)
	if err != nil {
		log.Fatalf("Failed to read migration version: %v", err)
	}
	if !ok {
		log.Println("No migrations applied")
		return
	}
	log.Printf("Schema is at version %d", version)
}
