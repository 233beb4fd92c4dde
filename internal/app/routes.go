package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/middleware"
	"github.com/izumi-ne/portfolio-core/internal/modules/comment"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/about"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/blog"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/product"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/project"
	"github.com/izumi-ne/portfolio-core/internal/modules/feed"
	"github.com/izumi-ne/portfolio-core/internal/modules/syndication/sitemap"
	"github.com/izumi-ne/portfolio-core/internal/pkg/response"
	"github.com/izumi-ne/portfolio-core/internal/pkg/turnstile"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "portfolio-core",
		"version": "1.0.0",
	}

	// Content services share the one store client and its caches.
	projectSvc := project.NewService(a.store, a.logger)
	blogSvc := blog.NewService(a.store, a.logger)
	aboutSvc := about.NewService(a.store, a.logger)
	productSvc := product.NewService(a.store, a.logger)
	feedSvc := feed.NewService(projectSvc, blogSvc)
	commentSvc := comment.NewService(a.db, a.logger)
	sitemapSvc := sitemap.NewService(a.cfg, projectSvc, blogSvc)
	verifier := turnstile.New(a.cfg.Turnstile.Secret)

	// Root-level files live outside the API prefix.
	sitemap.NewHandler(sitemapSvc).RegisterRoutes(r)

	api := r.Group(apiPrefix)
	if a.rc != nil {
		api.Use(middleware.RateLimit(a.rc.Raw()))
		api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
			TTL:       15 * time.Second,
			Disable:   a.cfg.IsDev(),
			SkipPaths: httpCacheSkipPaths(apiPrefix),
		}))
	}

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	project.NewHandler(projectSvc, a.cfg.Sanity).RegisterRoutes(api)
	blog.NewHandler(blogSvc, a.cfg.Sanity).RegisterRoutes(api)
	about.NewHandler(aboutSvc).RegisterRoutes(api)
	product.NewHandler(productSvc).RegisterRoutes(api)
	feed.NewHandler(feedSvc).RegisterRoutes(api)
	comment.NewHandler(commentSvc, verifier, a.logger).RegisterRoutes(api)

	// Draft-inclusive mirror of the content routes, available only when the
	// operator configures the server-held API token. Draft payloads are never
	// cached; the preview client bypasses the revalidation cache and the
	// response cache skips the whole group.
	if preview := a.store.Preview(); preview != a.store {
		pg := api.Group("/preview")
		project.NewHandler(project.NewService(preview, a.logger), a.cfg.Sanity).RegisterRoutes(pg)
		blog.NewHandler(blog.NewService(preview, a.logger), a.cfg.Sanity).RegisterRoutes(pg)
	}
}

// httpCacheSkipPaths lists routes the response cache must never serve: the
// comment surface (writes, and reads that must reflect writes immediately).
func httpCacheSkipPaths(prefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	return []string{
		p + "/comments",
		p + "/comments/*",
		p + "/preview/*",
		p + "/ping",
	}
}
