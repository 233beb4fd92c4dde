package feed

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/pkg/response"
)

const defaultRelatedLimit = 3

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/feed")
	g.GET("", h.homepage)
	g.GET("/adjacent", h.adjacent)
	g.GET("/related", h.related)
}

// GET /feed
func (h *Handler) homepage(c *gin.Context) {
	response.OK(c, h.svc.Homepage(c.Request.Context()))
}

// GET /feed/adjacent?type=project|blog&slug=...
func (h *Handler) adjacent(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		response.BadRequest(c, "slug is required")
		return
	}
	var (
		items AdjacentItems
		found bool
	)
	switch c.DefaultQuery("type", "project") {
	case "project":
		items, found = h.svc.AdjacentProject(c.Request.Context(), slug)
	case "blog":
		items, found = h.svc.AdjacentBlogPost(c.Request.Context(), slug)
	default:
		response.BadRequest(c, "unknown content type")
		return
	}
	if !found {
		response.NotFound(c)
		return
	}
	response.OK(c, items)
}

// GET /feed/related?type=project|blog&slug=...&limit=N
func (h *Handler) related(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		response.BadRequest(c, "slug is required")
		return
	}
	limit := defaultRelatedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}
	var (
		items []models.FeedItem
		found bool
	)
	switch c.DefaultQuery("type", "project") {
	case "project":
		items, found = h.svc.RelatedProjects(c.Request.Context(), slug, limit)
	case "blog":
		items, found = h.svc.RelatedBlogPosts(c.Request.Context(), slug, limit)
	default:
		response.BadRequest(c, "unknown content type")
		return
	}
	if !found {
		response.NotFound(c)
		return
	}
	if items == nil {
		items = []models.FeedItem{}
	}
	response.OK(c, items)
}
