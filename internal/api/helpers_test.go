package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/api"
	"github.com/pageza/recipe-share/backend/internal/router"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testhelpers"
)

const testSecret = "test-secret"

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	auth   *service.AuthService
	router *gin.Engine
}

// newTestEnv builds the full router over real services on sqlite.
// store may be nil to exercise the uploads-disabled path.
func newTestEnv(t *testing.T, store service.ObjectStore) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, testSecret, 0)

	engine := router.SetupRouter(db, []string{"http://localhost:5173"}, &router.Handlers{
		Auth:     api.NewAuthHandler(auth),
		Recipe:   api.NewRecipeHandler(service.NewRecipeService(db), auth, nil),
		Favorite: api.NewFavoriteHandler(service.NewFavoriteService(db), auth, nil),
		Image:    api.NewImageHandler(service.NewImageService(db, store), auth),
	})

	return &testEnv{t: t, db: db, auth: auth, router: engine}
}

func (e *testEnv) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	e.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signup registers a user and logs in, returning the user id and access token
func (e *testEnv) signup(username string) (string, string) {
	e.t.Helper()

	email := username + "@example.com"
	w := e.do(http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())

	w = e.postForm("/api/login", url.Values{"email": {email}, "password": {"secret123"}})
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(e.t, w, &resp)
	return resp.User.ID, resp.AccessToken
}

func (e *testEnv) createRecipe(token, title string) map[string]interface{} {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/recipes/", map[string]interface{}{
		"title":        title,
		"cuisine_type": "Italian",
		"cooking_time": 30,
		"ingredients":  "tomatoes, basil",
		"instructions": "simmer",
	}, token)
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())

	var recipe map[string]interface{}
	decode(e.t, w, &recipe)
	return recipe
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
