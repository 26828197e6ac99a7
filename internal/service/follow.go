package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// FollowService handles subscriptions between users
type FollowService struct {
	db *gorm.DB
}

var _ IFollowService = (*FollowService)(nil)

// NewFollowService creates a new FollowService instance
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow subscribes userID to authorID. A second subscription to the same
// author fails with database.ErrDuplicate.
func (s *FollowService) Follow(ctx context.Context, userID, authorID uuid.UUID) (*models.Follow, error) {
	follow := &models.Follow{UserID: userID, AuthorID: authorID}
	if err := follow.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(follow).Error; err != nil {
		return nil, fmt.Errorf("failed to follow author: %w", database.TranslateError(err))
	}
	return follow, nil
}

// Unfollow removes a subscription
func (s *FollowService) Unfollow(ctx context.Context, userID, authorID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("failed to unfollow author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// IsFollowing reports whether userID is subscribed to authorID
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

// ListFollowing lists the authors userID is subscribed to
func (s *FollowService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	var users []*models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}
	return users, nil
}

// ListFollowers lists the users subscribed to authorID
func (s *FollowService) ListFollowers(ctx context.Context, authorID uuid.UUID) ([]*models.User, error) {
	var users []*models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.author_id = ?", authorID).
		Order("users.username").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, nil
}
