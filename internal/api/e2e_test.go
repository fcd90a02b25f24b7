package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	_, token := env.signup("alice")

	recipe := env.createRecipe(token, "Lemon Pasta")
	path := fmt.Sprintf("/api/recipes/%s", recipe["id"])

	w := env.do(http.MethodPut, path, map[string]interface{}{
		"title":        "Lemon Garlic Pasta",
		"cuisine_type": "Italian",
		"cooking_time": 20,
		"ingredients":  "pasta, lemon, garlic",
		"instructions": "boil, toss",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)
	_, aliceToken := env.signup("alice")
	_, bobToken := env.signup("bob")

	recipe := env.createRecipe(aliceToken, "Shakshuka")
	togglePath := fmt.Sprintf("/api/recipes/%s/favorite", recipe["id"])

	w := env.do(http.MethodPost, togglePath, nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, favoriteCount(t, env, recipe["id"]))

	w = env.do(http.MethodPost, togglePath, nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, favoriteCount(t, env, recipe["id"]))
}
