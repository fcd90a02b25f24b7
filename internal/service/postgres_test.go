package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testhelpers"
	"github.com/pageza/recipe-share/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the same flows against postgres via lib/pq, where unique violations
// surface as *pq.Error rather than gorm's translated error.
func TestServicesOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	ctx := context.Background()

	auth := service.NewAuthService(db, testSecret, 0)
	recipes := service.NewRecipeService(db)
	favorites := service.NewFavoriteService(db)

	owner, err := auth.Register(ctx, &types.RegisterRequest{Username: "owner", Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)
	fan, err := auth.Register(ctx, &types.RegisterRequest{Username: "fan", Email: "fan@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = auth.Register(ctx, &types.RegisterRequest{Username: "owner2", Email: "owner@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	recipe, err := recipes.CreateRecipe(ctx, owner.ID, models.RecipeFields{Title: "Paella", CookingTime: 60})
	require.NoError(t, err)

	state, err := favorites.ToggleFavorite(ctx, recipe.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, service.Liked, state)

	// a raw duplicate insert must be rejected by the unique index
	err = db.Create(&models.RecipeFavorite{UserID: fan.ID, RecipeID: recipe.ID}).Error
	assert.Error(t, err)

	count, err := favorites.CountFavorites(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = recipes.UpdateRecipe(ctx, recipe.ID, models.RecipeFields{Title: "Stolen"}, fan.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	deleted, err := recipes.DeleteRecipe(ctx, recipe.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paella", deleted.Title)

	count, err = favorites.CountFavorites(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// Concurrent toggles really interleave on postgres: losers of the unique-index
// race report a conflict and the edge count always matches the successes.
func TestToggleFavoriteConcurrentOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(16)

	owner := testhelpers.CreateTestUser(t, db, "owner")
	svc := service.NewFavoriteService(db)

	const workers = 16
	for round := 0; round < 5; round++ {
		fan := testhelpers.CreateTestUser(t, db, fmt.Sprintf("fan%d", round))
		recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, fmt.Sprintf("Stew %d", round))

		liked, unliked, conflicts := toggleConcurrently(t, svc, recipe.ID, fan.ID, workers)
		assert.Equal(t, workers, liked+unliked+conflicts, "round %d", round)

		edges := countEdges(t, db, fan.ID, recipe.ID)
		assert.LessOrEqual(t, edges, int64(1), "round %d", round)
		assert.Equal(t, int64(liked-unliked), edges, "round %d", round)
	}
}
