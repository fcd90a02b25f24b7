package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

type ImageHandler struct {
	imageService service.IImageService
	auth         middleware.TokenValidator
}

func NewImageHandler(imageService service.IImageService, auth middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{imageService: imageService, auth: auth}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", middleware.AuthMiddleware(h.auth), h.CreateUploadURL)
}

// CreateUploadURL returns a presigned URL the recipe owner can PUT an image to
func (h *ImageHandler) CreateUploadURL(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
		return
	}
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req types.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.imageService.CreateUploadURL(c.Request.Context(), id, userID, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
