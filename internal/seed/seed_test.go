package seed

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testhelpers"
)

func TestRun(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(42))

	res, err := Run(context.Background(), db, opts)
	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Len(t, res.Recipes, 10)
	assert.Equal(t, 6, res.Favorites)

	var favorites int64
	require.NoError(t, db.Model(&models.RecipeFavorite{}).Count(&favorites).Error)
	assert.Equal(t, int64(6), favorites)

	for _, r := range res.Recipes {
		assert.Contains(t, []string{"Italian", "Mexican", "Chinese", "Japanese", "Indian"}, r.CuisineType)
		assert.GreaterOrEqual(t, r.CookingTime, 10)
		assert.LessOrEqual(t, r.CookingTime, 120)
	}

	_, _, err = service.NewAuthService(db, "secret", 0).Login(context.Background(), "user2@example.com", "password2")
	assert.NoError(t, err)
}

func TestRunReset(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))

	_, err := Run(context.Background(), db, opts)
	require.NoError(t, err)

	// a second run without reset collides with the existing users
	_, err = Run(context.Background(), db, opts)
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	opts.Reset = true
	_, err = Run(context.Background(), db, opts)
	require.NoError(t, err)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(2), users)
}
