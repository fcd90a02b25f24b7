package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is owned by exactly one user for its whole lifetime
type Recipe struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	CuisineType  string    `gorm:"size:100" json:"cuisine_type"`
	CookingTime  int       `gorm:"not null;default:0" json:"cooking_time"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Owner        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a time-ordered id so listings sharing a created_at
// timestamp still come back in insertion order.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// RecipeFields are the mutable attributes of a recipe. Updates overwrite all of them.
type RecipeFields struct {
	Title        string
	CuisineType  string
	CookingTime  int
	Ingredients  string
	Instructions string
}

// Apply overwrites the recipe's mutable fields
func (r *Recipe) Apply(f RecipeFields) {
	r.Title = f.Title
	r.CuisineType = f.CuisineType
	r.CookingTime = f.CookingTime
	r.Ingredients = f.Ingredients
	r.Instructions = f.Instructions
}
