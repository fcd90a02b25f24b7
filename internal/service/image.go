package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/types"
	"gorm.io/gorm"
)

// DefaultUploadExpiry bounds how long a presigned upload URL stays valid
const DefaultUploadExpiry = 15 * time.Minute

// ObjectStore presigns uploads into the image bucket
type ObjectStore interface {
	PresignPutObject(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	ObjectURL(objectKey string) string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageService hands out presigned upload URLs for recipe images
type ImageService struct {
	db     *gorm.DB
	store  ObjectStore
	expiry time.Duration
}

// NewImageService creates a new ImageService instance. A nil store disables uploads.
func NewImageService(db *gorm.DB, store ObjectStore) *ImageService {
	return &ImageService{
		db:     db,
		store:  store,
		expiry: DefaultUploadExpiry,
	}
}

// CreateUploadURL presigns a PUT for a new image of a recipe owned by callerID and
// records the resulting object URL on the recipe.
func (s *ImageService) CreateUploadURL(ctx context.Context, recipeID, callerID uuid.UUID, contentType string) (*types.ImageUploadResponse, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	var resp *types.ImageUploadResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := findOwnedRecipe(tx, recipeID, callerID)
		if err != nil {
			return err
		}

		key := fmt.Sprintf("recipes/%s/%s%s", recipe.ID, uuid.New(), ext)
		uploadURL, err := s.store.PresignPutObject(ctx, key, contentType, s.expiry)
		if err != nil {
			return fmt.Errorf("presign upload: %w", err)
		}

		imageURL := s.store.ObjectURL(key)
		if err := tx.Model(recipe).Update("image_url", imageURL).Error; err != nil {
			return fmt.Errorf("record image url: %w", err)
		}

		resp = &types.ImageUploadResponse{
			UploadURL: uploadURL,
			ImageURL:  imageURL,
			ExpiresIn: int(s.expiry.Seconds()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
