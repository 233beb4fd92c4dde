package project

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/pkg/portabletext"
	"github.com/izumi-ne/portfolio-core/internal/pkg/response"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
)

type Handler struct {
	svc *Service
	cfg config.SanityConfig
}

func NewHandler(svc *Service, cfg config.SanityConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/projects")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/:slug", h.get)
}

// GET /projects?type=UI|Art
func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if t := c.Query("type"); t != "" {
		pt, ok := parseProjectType(t)
		if !ok {
			response.BadRequest(c, "unknown project type")
			return
		}
		response.OK(c, h.svc.ByType(ctx, pt))
		return
	}
	response.OK(c, h.svc.All(ctx))
}

// GET /projects/featured
func (h *Handler) featured(c *gin.Context) {
	response.OK(c, h.svc.Featured(c.Request.Context()))
}

// GET /projects/:slug
func (h *Handler) get(c *gin.Context) {
	p := h.svc.BySlug(c.Request.Context(), c.Param("slug"))
	if p == nil {
		response.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":           p,
		"reading_time":   portabletext.ReadingTime(p.Description),
		"featured_image": sanity.ResolveAsset(h.cfg, p.FeaturedImage),
	})
}

func parseProjectType(s string) (models.ProjectType, bool) {
	switch s {
	case string(models.ProjectTypeTech), "ui", "tech":
		return models.ProjectTypeTech, true
	case string(models.ProjectTypeArt), "art":
		return models.ProjectTypeArt, true
	default:
		return "", false
	}
}
