package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/api"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/router"
	"github.com/pageza/recipe-share/backend/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

// New wires services and handlers into a router. redisClient and store may be
// nil, which disables rate limiting and image uploads respectively.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store service.ObjectStore) *Server {
	if !cfg.Env.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipes := service.NewRecipeService(db)
	favorites := service.NewFavoriteService(db)
	images := service.NewImageService(db, store)

	var createLimiter, toggleLimiter *middleware.RateLimiter
	if redisClient != nil {
		createLimiter = middleware.NewRecipeCreationRateLimiter(redisClient, cfg.RecipeCreateLimit)
		toggleLimiter = middleware.NewFavoriteToggleRateLimiter(redisClient, cfg.FavoriteToggleLimit)
	}

	engine := router.SetupRouter(db, cfg.CORSOrigins, &router.Handlers{
		Auth:     api.NewAuthHandler(auth),
		Recipe:   api.NewRecipeHandler(recipes, auth, createLimiter),
		Favorite: api.NewFavoriteHandler(favorites, auth, toggleLimiter),
		Image:    api.NewImageHandler(images, auth),
	})

	return &Server{cfg: cfg, router: engine}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled or the process
// receives SIGINT, SIGTERM or SIGQUIT, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is done
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, groupCtx := errgroup.WithContext(ctx)

	logger.L.Info("server starting",
		zap.String("addr", ln.Addr().String()),
		zap.String("env", string(s.cfg.Env)),
	)

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-groupCtx.Done()
		logger.L.Info("server stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.L.Info("server stopped")
	return nil
}
