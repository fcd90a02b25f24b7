package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/recipe-share/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of users created by CreateTestUser
const TestPassword = "password123"

// CreateTestUser inserts a user whose password is TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	// MinCost keeps test setup fast
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecipe inserts a recipe owned by ownerID
func CreateTestRecipe(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		Title:        title,
		CuisineType:  "Italian",
		CookingTime:  30,
		Ingredients:  "flour, water, salt",
		Instructions: "mix and bake",
		UserID:       ownerID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
