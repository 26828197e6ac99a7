package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/fixtures"
	"github.com/pageza/foodgram/backend/internal/service"
)

func main() {
	file := flag.String("file", "data/ingredients.json", "Ingredient file (.json or .csv)")
	timeout := flag.Duration("timeout", 5*time.Minute, "Maximum time to spend loading")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	inserted, err := fixtures.ImportIngredients(ctx, service.NewIngredientService(db), *file)
	if err != nil {
		log.Fatalf("Failed to load ingredients: %v", err)
	}
	log.Printf("Successfully loaded %d ingredients", inserted)
}
