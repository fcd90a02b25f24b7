package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/recipe-share/backend/internal/api"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"gorm.io/gorm"
)

// Handlers groups everything mounted under /api
type Handlers struct {
	Auth     *api.AuthHandler
	Recipe   *api.RecipeHandler
	Favorite *api.FavoriteHandler
	Image    *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, corsOrigins []string, h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.Prometheus(),
		middleware.CORS(corsOrigins),
	)

	health := api.NewHealthHandler(db)
	health.RegisterRoutes(router)
	router.GET("/metrics", middleware.MetricsHandler())

	v := router.Group("/api")
	health.RegisterRoutes(v)
	h.Auth.RegisterRoutes(v)
	h.Recipe.RegisterRoutes(v)
	h.Favorite.RegisterRoutes(v)
	h.Image.RegisterRoutes(v)

	return router
}
