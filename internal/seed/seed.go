package seed

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/types"
)

var cuisines = []string{"italian", "mexican", "chinese", "japanese", "indian"}

// Options controls how much demo data is generated
type Options struct {
	Users            int
	Recipes          int
	FavoritesPerUser int
	// Reset drops and recreates every table first
	Reset bool
	Rand  *rand.Rand
}

// DefaultOptions mirrors a small demo dataset: two users, ten recipes, three favorites each
func DefaultOptions() Options {
	return Options{
		Users:            2,
		Recipes:          10,
		FavoritesPerUser: 3,
	}
}

// Result summarises what was created
type Result struct {
	Users     []*models.User
	Recipes   []*models.Recipe
	Favorites int
}

// Run fills the database with demo users, recipes and favorites through the
// regular services. User N logs in with userN@example.com / passwordN.
func Run(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	if opts.Users < 1 {
		return nil, fmt.Errorf("at least one user is required")
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	if opts.Reset {
		if err := db.Migrator().DropTable(&models.RecipeFavorite{}, &models.Recipe{}, &models.User{}); err != nil {
			return nil, fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	auth := service.NewAuthService(db, "", 0)
	recipes := service.NewRecipeService(db)
	favorites := service.NewFavoriteService(db)
	title := cases.Title(language.English)

	res := &Result{}
	for i := 1; i <= opts.Users; i++ {
		user, err := auth.Register(ctx, &types.RegisterRequest{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: fmt.Sprintf("password%d", i),
		})
		if err != nil {
			return nil, fmt.Errorf("seed user %d: %w", i, err)
		}
		res.Users = append(res.Users, user)
	}

	for i := 0; i < opts.Recipes; i++ {
		owner := res.Users[r.Intn(len(res.Users))]
		recipe, err := recipes.CreateRecipe(ctx, owner.ID, models.RecipeFields{
			Title:        fmt.Sprintf("Recipe %d", i),
			CuisineType:  title.String(cuisines[r.Intn(len(cuisines))]),
			CookingTime:  10 + r.Intn(111),
			Ingredients:  "ingredient1, ingredient2, ingredient3",
			Instructions: "Cook it!",
		})
		if err != nil {
			return nil, fmt.Errorf("seed recipe %d: %w", i, err)
		}
		res.Recipes = append(res.Recipes, recipe)
	}

	perUser := opts.FavoritesPerUser
	if perUser > len(res.Recipes) {
		perUser = len(res.Recipes)
	}
	for _, user := range res.Users {
		for _, idx := range r.Perm(len(res.Recipes))[:perUser] {
			if _, err := favorites.ToggleFavorite(ctx, res.Recipes[idx].ID, user.ID); err != nil {
				return nil, fmt.Errorf("seed favorite: %w", err)
			}
			res.Favorites++
		}
	}

	logger.L.Info("database seeded",
		zap.Int("users", len(res.Users)),
		zap.Int("recipes", len(res.Recipes)),
		zap.Int("favorites", res.Favorites),
	)
	return res, nil
}
