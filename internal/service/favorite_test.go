package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleFavoriteIsInvolution(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	fan := testhelpers.CreateTestUser(t, db, "fan")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Ramen")
	ctx := context.Background()

	want := []service.FavoriteState{service.Liked, service.Unliked, service.Liked, service.Unliked}
	for i, expected := range want {
		state, err := svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, state, "toggle %d", i+1)
	}

	count, err := svc.CountFavorites(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleFavoriteMissingRecipe(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	fan := testhelpers.CreateTestUser(t, db, "fan")

	_, err := svc.ToggleFavorite(context.Background(), uuid.New(), fan.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	_, err = svc.ToggleFavorite(context.Background(), uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestCountFavoritesCountsDistinctUsers(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Tacos")
	ctx := context.Background()

	fans := []*models.User{
		testhelpers.CreateTestUser(t, db, "fan1"),
		testhelpers.CreateTestUser(t, db, "fan2"),
		testhelpers.CreateTestUser(t, db, "fan3"),
	}
	for _, fan := range fans {
		_, err := svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
		require.NoError(t, err)
	}
	// fan1 toggles twice more: liked -> unliked -> liked
	for i := 0; i < 2; i++ {
		_, err := svc.ToggleFavorite(ctx, recipe.ID, fans[0].ID)
		require.NoError(t, err)
	}
	// fan2 unlikes
	_, err := svc.ToggleFavorite(ctx, recipe.ID, fans[1].ID)
	require.NoError(t, err)

	count, err := svc.CountFavorites(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	unknown, err := svc.CountFavorites(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, unknown)
}

func TestListFavorites(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	fan := testhelpers.CreateTestUser(t, db, "fan")
	soup := testhelpers.CreateTestRecipe(t, db, owner.ID, "Soup")
	salad := testhelpers.CreateTestRecipe(t, db, owner.ID, "Salad")
	testhelpers.CreateTestRecipe(t, db, owner.ID, "Stew")
	ctx := context.Background()

	empty, err := svc.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, id := range []uuid.UUID{soup.ID, salad.ID} {
		_, err := svc.ToggleFavorite(ctx, id, fan.ID)
		require.NoError(t, err)
	}

	favorites, err := svc.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(favorites))
	for _, r := range favorites {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"Soup", "Salad"}, titles)

	ownerFavorites, err := svc.ListFavorites(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, ownerFavorites)
}

func TestToggleFavoriteConcurrentNeverDuplicates(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	fan := testhelpers.CreateTestUser(t, db, "fan")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Pho")

	liked, unliked, conflicts := toggleConcurrently(t, svc, recipe.ID, fan.ID, 8)
	assert.Equal(t, 8, liked+unliked+conflicts)
	assert.Equal(t, int64(liked-unliked), countEdges(t, db, fan.ID, recipe.ID))
}

// Another request inserts the edge after the lookup found none.
func TestToggleFavoriteLosesInsertRace(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	fan := testhelpers.CreateTestUser(t, db, "fan")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Bibimbap")
	ctx := context.Background()

	fired := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:racing_like", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "recipe_favorites" {
			return
		}
		fired = true
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO recipe_favorites (id, created_at, user_id, recipe_id) VALUES (?, ?, ?, ?)",
			uuid.New(), time.Now(), fan.ID, recipe.ID,
		).Error)
	}))
	t.Cleanup(func() { _ = db.Callback().Create().Remove("test:racing_like") })

	_, err := svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
	require.True(t, fired)
	assert.ErrorIs(t, err, service.ErrFavoriteConflict)
	assert.Zero(t, countEdges(t, db, fan.ID, recipe.ID))

	// the next toggle goes through normally
	state, err := svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, service.Liked, state)
	assert.Equal(t, int64(1), countEdges(t, db, fan.ID, recipe.ID))
}

// Another request removes the edge after the lookup found it.
func TestToggleFavoriteLosesDeleteRace(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := testhelpers.CreateTestUser(t, db, "owner")
	fan := testhelpers.CreateTestUser(t, db, "fan")
	recipe := testhelpers.CreateTestRecipe(t, db, owner.ID, "Tagine")
	ctx := context.Background()

	state, err := svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
	require.NoError(t, err)
	require.Equal(t, service.Liked, state)

	fired := false
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:racing_unlike", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "recipe_favorites" {
			return
		}
		fired = true
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Exec(
			"DELETE FROM recipe_favorites WHERE user_id = ? AND recipe_id = ?", fan.ID, recipe.ID,
		).Error)
	}))
	t.Cleanup(func() { _ = db.Callback().Delete().Remove("test:racing_unlike") })

	_, err = svc.ToggleFavorite(ctx, recipe.ID, fan.ID)
	require.True(t, fired)
	assert.ErrorIs(t, err, service.ErrFavoriteConflict)
	// rolled back together with the racing delete
	assert.Equal(t, int64(1), countEdges(t, db, fan.ID, recipe.ID))
}

func toggleConcurrently(t *testing.T, svc *service.FavoriteService, recipeID, userID uuid.UUID, workers int) (liked, unliked, conflicts int) {
	t.Helper()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		start = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			state, err := svc.ToggleFavorite(context.Background(), recipeID, userID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, service.ErrFavoriteConflict):
				conflicts++
			case err != nil:
				t.Errorf("unexpected error: %v", err)
			case state == service.Liked:
				liked++
			case state == service.Unliked:
				unliked++
			}
		}()
	}
	close(start)
	wg.Wait()
	return liked, unliked, conflicts
}

func countEdges(t *testing.T, db *gorm.DB, userID, recipeID uuid.UUID) int64 {
	t.Helper()
	var edges int64
	require.NoError(t, db.Model(&models.RecipeFavorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&edges).Error)
	return edges
}
