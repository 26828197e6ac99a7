package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockIngredientService is a mock implementation of the ingredient service
type MockIngredientService struct {
	mock.Mock
}

// CreateIngredient mocks the CreateIngredient method
func (m *MockIngredientService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	args := m.Called(ctx, ingredient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

// BulkCreateIngredients mocks the BulkCreateIngredients method
func (m *MockIngredientService) BulkCreateIngredients(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	args := m.Called(ctx, ingredients)
	return args.Get(0).(int64), args.Error(1)
}

// GetIngredient mocks the GetIngredient method
func (m *MockIngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

// ListIngredients mocks the ListIngredients method
func (m *MockIngredientService) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ingredient), args.Error(1)
}

// SearchIngredients mocks the SearchIngredients method
func (m *MockIngredientService) SearchIngredients(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ingredient), args.Error(1)
}

// UpdateIngredient mocks the UpdateIngredient method
func (m *MockIngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error) {
	args := m.Called(ctx, id, ingredient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

// DeleteIngredient mocks the DeleteIngredient method
func (m *MockIngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
