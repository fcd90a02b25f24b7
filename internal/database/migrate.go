package database

import (
	"fmt"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeFavorite{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.L.Info("schema migrated", zap.String("dialect", db.Dialector.Name()))
	return nil
}
