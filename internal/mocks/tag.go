package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockTagService is a mock implementation of the tag service
type MockTagService struct {
	mock.Mock
}

// CreateTag mocks the CreateTag method
func (m *MockTagService) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// GetTag mocks the GetTag method
func (m *MockTagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// GetTagBySlug mocks the GetTagBySlug method
func (m *MockTagService) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// ListTags mocks the ListTags method
func (m *MockTagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tag), args.Error(1)
}

// UpdateTag mocks the UpdateTag method
func (m *MockTagService) UpdateTag(ctx context.Context, id uuid.UUID, tag *models.Tag) (*models.Tag, error) {
	args := m.Called(ctx, id, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// DeleteTag mocks the DeleteTag method
func (m *MockTagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
