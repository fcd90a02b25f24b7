package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	IssueToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, fields models.RecipeFields) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	ListRecipes(ctx context.Context, offset, limit int) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, fields models.RecipeFields, callerID uuid.UUID) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.Recipe, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (FavoriteState, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	CountFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error)
}

// IImageService defines the interface for recipe image uploads
type IImageService interface {
	CreateUploadURL(ctx context.Context, recipeID, callerID uuid.UUID, contentType string) (*types.ImageUploadResponse, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ IRecipeService   = (*RecipeService)(nil)
	_ IFavoriteService = (*FavoriteService)(nil)
	_ IImageService    = (*ImageService)(nil)
)
