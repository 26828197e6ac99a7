package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/service"
)

// DefaultTags are the meal tags a fresh installation starts with
var DefaultTags = []models.Tag{
	{Name: "Breakfast", HexColor: "#e26c2d", Slug: "breakfast"},
	{Name: "Lunch", HexColor: "#49b64e", Slug: "lunch"},
	{Name: "Dinner", HexColor: "#8775d2", Slug: "dinner"},
}

// SeedTags creates each tag whose slug is not in use yet and returns how
// many were created
func SeedTags(ctx context.Context, svc service.ITagService, tags []models.Tag) (int, error) {
	created := 0
	for _, tag := range tags {
		_, err := svc.GetTagBySlug(ctx, tag.Slug)
		if err == nil {
			log.Printf("Tag %q already exists, skipping", tag.Slug)
			continue
		}
		if !errors.Is(err, database.ErrNotFound) {
			return created, fmt.Errorf("failed to look up tag %q: %w", tag.Slug, err)
		}

		if _, err := svc.CreateTag(ctx, &tag); err != nil {
			return created, fmt.Errorf("failed to create tag %q: %w", tag.Slug, err)
		}
		log.Printf("Created tag %s", tag.Name)
		created++
	}
	return created, nil
}
