// Package product serves product cards, each optionally carrying a weak
// reference to the project or blog post it came out of.
package product

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/pkg/response"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
	"go.uber.org/zap"
)

type Service struct {
	store  sanity.Querier
	logger *zap.Logger
}

func NewService(store sanity.Querier, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// All returns every product, newest created first. Dangling article
// references dereference to null in the store and stay nil here; the card
// just loses its link.
func (s *Service) All(ctx context.Context) []models.Product {
	return s.list(ctx, sanity.AllProducts())
}

// Featured returns the newest products up to limit.
func (s *Service) Featured(ctx context.Context, limit int) []models.Product {
	return s.list(ctx, sanity.FeaturedProducts(limit))
}

func (s *Service) list(ctx context.Context, query string) []models.Product {
	if !s.store.Configured() {
		return []models.Product{}
	}
	var products []models.Product
	if err := s.store.Fetch(ctx, query, sanity.RevalidateList, &products); err != nil {
		s.logger.Warn("fetch products failed", zap.Error(err))
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", func(c *gin.Context) {
		ctx := c.Request.Context()
		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				response.BadRequest(c, "invalid limit")
				return
			}
			response.OK(c, h.svc.Featured(ctx, limit))
			return
		}
		response.OK(c, h.svc.All(ctx))
	})
}
