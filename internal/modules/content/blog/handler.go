package blog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/config"
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
	g := rg.Group("/posts")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/:slug", h.get)
}

// GET /posts?limit=N. Limited requests serve the "recent posts" strip.
func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(c, "invalid limit")
			return
		}
		response.OK(c, h.svc.Recent(ctx, limit))
		return
	}
	response.OK(c, h.svc.All(ctx))
}

// GET /posts/featured
func (h *Handler) featured(c *gin.Context) {
	response.OK(c, h.svc.Featured(c.Request.Context()))
}

// GET /posts/:slug
func (h *Handler) get(c *gin.Context) {
	p := h.svc.BySlug(c.Request.Context(), c.Param("slug"))
	if p == nil {
		response.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":         p,
		"reading_time": portabletext.ReadingTime(p.Content),
		"cover_image":  sanity.ResolveAsset(h.cfg, p.CoverImage),
	})
}
