package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/database"
	"github.com/izumi-ne/portfolio-core/internal/middleware"
	pkgredis "github.com/izumi-ne/portfolio-core/internal/pkg/redis"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	store  *sanity.Client
	rc     *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: DB → Redis → content store → routes.
// Redis is optional; without it the rate limiter and response cache are
// simply not installed.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	} else {
		logger.Warn("redis url not set, rate limiting and response caching disabled")
	}

	store := sanity.New(cfg.Sanity, logger)
	if !store.Configured() {
		logger.Warn("content store not configured, content endpoints serve empty results")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Turnstile-Token"},
		ExposeHeaders:    []string{"Content-Length", "x-folio-cache"},
		AllowCredentials: true,
		AllowOriginFunc:  allowOrigin(cfg.AllowedOrigins),
	}
	if cfg.IsDev() || len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{cfg: cfg, router: router, db: db, store: store, rc: rc, logger: logger}
	app.registerRoutes()

	return app, nil
}

// allowOrigin builds the browser-origin check from the configured pattern
// list. Patterns compare against the host[:port] portion of the Origin
// header; "*.example.com" matches any subdomain and "localhost:*" any port.
func allowOrigin(patterns []string) func(string) bool {
	return func(origin string) bool {
		host := origin
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			host = u.Host
		}
		for _, p := range patterns {
			switch {
			case p == host:
				return true
			case strings.HasPrefix(p, "*.") && strings.HasSuffix(host, p[1:]):
				return true
			case strings.HasSuffix(p, ":*") && strings.HasPrefix(host, p[:len(p)-1]):
				return true
			}
		}
		return false
	}
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
