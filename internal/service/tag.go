package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// TagService handles tag operations
type TagService struct {
	db *gorm.DB
}

var _ ITagService = (*TagService)(nil)

// NewTagService creates a new TagService instance
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// CreateTag stores a tag, filling in the default color and a slug derived
// from the name when they are empty
func (s *TagService) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	normalized, err := models.NewTag(tag.Name, tag.HexColor, tag.Slug)
	if err != nil {
		return nil, err
	}
	tag.HexColor = normalized.HexColor
	tag.Slug = normalized.Slug

	if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", database.TranslateError(err))
	}
	return tag, nil
}

// GetTag retrieves a tag by ID
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &tag, nil
}

// GetTagBySlug returns the first tag carrying slug. Slugs are not unique.
func (s *TagService) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Order("name").First(&tag).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &tag, nil
}

// ListTags lists all tags ordered by name
func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := s.db.WithContext(ctx).Order("name").Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// UpdateTag overwrites name, color and slug of an existing tag
func (s *TagService) UpdateTag(ctx context.Context, id uuid.UUID, tag *models.Tag) (*models.Tag, error) {
	normalized, err := models.NewTag(tag.Name, tag.HexColor, tag.Slug)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":      normalized.Name,
		"hex_color": normalized.HexColor,
		"slug":      normalized.Slug,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update tag: %w", database.TranslateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return s.GetTag(ctx, id)
}

// DeleteTag deletes a tag; recipes lose the tag but are kept
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", database.TranslateDeleteError(result.Error))
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
