package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	auth          middleware.TokenValidator
	createLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipeService service.IRecipeService, auth middleware.TokenValidator, createLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		auth:          auth,
		createLimiter: createLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	requireAuth := middleware.AuthMiddleware(h.auth)

	recipes := router.Group("/recipes")
	{
		recipes.GET("/", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/", requireAuth, h.createLimiter.RateLimitMiddleware(), h.CreateRecipe)
		recipes.PUT("/:id", requireAuth, h.UpdateRecipe)
		recipes.DELETE("/:id", requireAuth, h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var q types.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	offset := 0
	switch {
	case q.Offset != nil:
		offset = *q.Offset
	case q.Skip != nil:
		offset = *q.Skip
	}
	limit := service.DefaultListLimit
	if q.Limit != nil {
		limit = *q.Limit
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, recipeFields(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, recipeFields(&req), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe responds with the recipe as it was before deletion
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.DeleteRecipe(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// recipeID parses the :id path parameter. An id that cannot name any recipe
// is answered with 404 rather than a validation error.
func recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrRecipeNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func recipeFields(req *types.RecipeRequest) models.RecipeFields {
	return models.RecipeFields{
		Title:        req.Title,
		CuisineType:  req.CuisineType,
		CookingTime:  req.CookingTime,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}
}
