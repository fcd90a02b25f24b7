package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

var toggleMessages = map[service.FavoriteState]string{
	service.Liked:   "Recipe liked successfully",
	service.Unliked: "Recipe unliked successfully",
}

type FavoriteHandler struct {
	favoriteService service.IFavoriteService
	auth            middleware.TokenValidator
	toggleLimiter   *middleware.RateLimiter
}

func NewFavoriteHandler(favoriteService service.IFavoriteService, auth middleware.TokenValidator, toggleLimiter *middleware.RateLimiter) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		auth:            auth,
		toggleLimiter:   toggleLimiter,
	}
}

// RegisterRoutes mounts the favorite endpoints. The count is public while the
// caller's own list requires a token.
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	requireAuth := middleware.AuthMiddleware(h.auth)

	router.POST("/recipes/:id/favorite", requireAuth, h.toggleLimiter.RateLimitMiddleware(), h.ToggleFavorite)
	router.GET("/recipes/:id/favorite-count", h.CountFavorites)
	router.GET("/users/favorites", requireAuth, h.ListFavorites)
}

func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	state, err := h.favoriteService.ToggleFavorite(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: toggleMessages[state]})
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	recipes, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *FavoriteHandler) CountFavorites(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	count, err := h.favoriteService.CountFavorites(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CountResponse{Count: count})
}
