package fixtures

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/service"
)

// ErrUnsupportedFormat is returned for files that are neither .json nor .csv
var ErrUnsupportedFormat = errors.New("unsupported ingredient file format")

// ParseIngredientsJSON reads a list of {"name", "measurement_unit"} objects
func ParseIngredientsJSON(r io.Reader) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := json.NewDecoder(r).Decode(&ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	return normalize(ingredients), nil
}

// ParseIngredientsCSV reads "name,measurement_unit" rows without a header
func ParseIngredientsCSV(r io.Reader) ([]models.Ingredient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var ingredients []models.Ingredient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ingredients: %w", err)
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:            record[0],
			MeasurementUnit: record[1],
		})
	}
	return normalize(ingredients), nil
}

// LoadIngredientsFile parses path according to its extension
func LoadIngredientsFile(path string) ([]models.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseIngredientsJSON(f)
	case ".csv":
		return ParseIngredientsCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ImportIngredients loads path into the ingredient table. Names already
// present are left untouched; the number of new rows is returned.
func ImportIngredients(ctx context.Context, svc service.IIngredientService, path string) (int64, error) {
	ingredients, err := LoadIngredientsFile(path)
	if err != nil {
		return 0, err
	}
	log.Printf("Loaded %d ingredients from %s", len(ingredients), path)

	inserted, err := svc.BulkCreateIngredients(ctx, ingredients)
	if err != nil {
		return 0, err
	}
	log.Printf("Inserted %d new ingredients, skipped %d", inserted, int64(len(ingredients))-inserted)
	return inserted, nil
}

// normalize trims whitespace and drops repeated names, keeping the first
func normalize(in []models.Ingredient) []models.Ingredient {
	seen := make(map[string]bool, len(in))
	out := make([]models.Ingredient, 0, len(in))
	for _, ingredient := range in {
		ingredient.Name = strings.TrimSpace(ingredient.Name)
		ingredient.MeasurementUnit = strings.TrimSpace(ingredient.MeasurementUnit)
		if seen[ingredient.Name] {
			continue
		}
		seen[ingredient.Name] = true
		out = append(out, ingredient)
	}
	return out
}
