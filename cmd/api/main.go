package main

import (
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/seed"
	"github.com/pageza/recipe-share/backend/internal/server"
	"github.com/pageza/recipe-share/backend/internal/service"
)

func main() {
	app := &cli.App{
		Name:  "recipe-share",
		Usage: "recipe sharing API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load demo users, recipes and favorites",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reset", Usage: "drop all tables before seeding"},
					&cli.IntFlag{Name: "recipes", Value: seed.DefaultOptions().Recipes, Usage: "number of recipes to create"},
				},
				Action: runSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.L.Fatal("command failed", zap.Error(err))
	}
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel)

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func serve(c *cli.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	var redisClient *redis.Client
	if client, err := database.NewRedisClient(cfg); err != nil {
		logger.L.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		redisClient = client
		defer redisClient.Close()
	}

	// a nil interface keeps image uploads disabled
	var store service.ObjectStore
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(c.Context, cfg)
		if err != nil {
			logger.L.Warn("s3 unavailable, image uploads disabled", zap.Error(err))
		} else {
			store = s3cfg
		}
	}

	return server.New(cfg, db, redisClient, store).Run(c.Context)
}

func migrate(c *cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.L.Info("migrations applied")
	return nil
}

func runSeed(c *cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	opts := seed.DefaultOptions()
	opts.Reset = c.Bool("reset")
	opts.Recipes = c.Int("recipes")

	_, err = seed.Run(c.Context, db, opts)
	return err
}
