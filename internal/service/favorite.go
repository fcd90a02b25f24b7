package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteState is the membership of a (user, recipe) pair after a toggle
type FavoriteState string

const (
	Liked   FavoriteState = "liked"
	Unliked FavoriteState = "unliked"
)

// FavoriteService manages the favorite edges between users and recipes
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// ToggleFavorite flips the favorite state of recipeID for userID.
// The unique index on (user_id, recipe_id) backs the check-then-act: a racing
// toggle that loses either finds nothing to delete or nothing to insert, and
// reports ErrFavoriteConflict instead of leaving a duplicate edge.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, recipeID, userID uuid.UUID) (FavoriteState, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthenticated
	}

	var state FavoriteState
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRecipe(tx, recipeID); err != nil {
			return err
		}

		var existing models.RecipeFavorite
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Limit(1).Find(&existing)
		if res.Error != nil {
			return fmt.Errorf("find favorite: %w", res.Error)
		}

		if res.RowsAffected > 0 {
			del := tx.Delete(&models.RecipeFavorite{}, "id = ?", existing.ID)
			if del.Error != nil {
				return fmt.Errorf("delete favorite: %w", del.Error)
			}
			if del.RowsAffected == 0 {
				return ErrFavoriteConflict
			}
			state = Unliked
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.RecipeFavorite{
			UserID:   userID,
			RecipeID: recipeID,
		})
		if ins.Error != nil {
			if isUniqueViolation(ins.Error) {
				return ErrFavoriteConflict
			}
			return fmt.Errorf("create favorite: %w", ins.Error)
		}
		if ins.RowsAffected == 0 {
			return ErrFavoriteConflict
		}
		state = Liked
		return nil
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

// ListFavorites returns the recipes userID has favorited, oldest favorite first
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	recipes := make([]models.Recipe, 0)
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return recipes, nil
}

// CountFavorites returns how many users currently favorite recipeID.
// An unknown recipe simply has zero favorites.
func (s *FavoriteService) CountFavorites(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeFavorite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}
