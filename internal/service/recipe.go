package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts a recipe owned by ownerID
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, fields models.RecipeFields) (*models.Recipe, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	recipe := &models.Recipe{UserID: ownerID}
	recipe.Apply(fields)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	return findRecipe(s.db.WithContext(ctx), id)
}

// ListRecipes returns a page of recipes in insertion order. Ids are UUIDv7, so
// they break ties between equal created_at values.
func (s *RecipeService) ListRecipes(ctx context.Context, offset, limit int) ([]models.Recipe, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	recipes := make([]models.Recipe, 0)
	err := s.db.WithContext(ctx).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// UpdateRecipe overwrites every mutable field of a recipe owned by callerID
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, fields models.RecipeFields, callerID uuid.UUID) (*models.Recipe, error) {
	var recipe *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		recipe, err = findOwnedRecipe(tx, id, callerID)
		if err != nil {
			return err
		}

		recipe.Apply(fields)
		// Select writes zero values too; unlike Save it never falls back to an insert
		res := tx.Model(recipe).
			Where("user_id = ?", callerID).
			Select("title", "cuisine_type", "cooking_time", "ingredients", "instructions", "updated_at").
			Updates(recipe)
		if res.Error != nil {
			return fmt.Errorf("update recipe: %w", res.Error)
		}
		// deleted by a concurrent request after the lookup
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe owned by callerID together with its favorite edges
// and returns the record as it was before deletion.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*models.Recipe, error) {
	var recipe *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		recipe, err = findOwnedRecipe(tx, id, callerID)
		if err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeFavorite{}).Error; err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		if err := tx.Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func findRecipe(db *gorm.DB, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := db.First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return &recipe, nil
}

// findOwnedRecipe checks existence before ownership so a missing recipe is
// always reported as not found, whoever asks.
func findOwnedRecipe(db *gorm.DB, id, callerID uuid.UUID) (*models.Recipe, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	recipe, err := findRecipe(db, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != callerID {
		return nil, ErrForbidden
	}
	return recipe, nil
}
