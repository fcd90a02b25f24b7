package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) IssueToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, fields models.RecipeFields) (*models.Recipe, error) {
	args := m.Called(ctx, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context, offset, limit int) ([]models.Recipe, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, fields models.RecipeFields, callerID uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id, fields, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

// MockFavoriteService is a mock implementation of service.IFavoriteService
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (service.FavoriteState, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(service.FavoriteState), args.Error(1)
}

func (m *MockFavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockFavoriteService) CountFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockObjectStore is a mock implementation of service.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PresignPutObject(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) ObjectURL(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

var (
	_ service.IAuthService     = (*MockAuthService)(nil)
	_ service.IRecipeService   = (*MockRecipeService)(nil)
	_ service.IFavoriteService = (*MockFavoriteService)(nil)
	_ service.ObjectStore      = (*MockObjectStore)(nil)
)
