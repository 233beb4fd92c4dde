// Package about serves the singleton about-page document.
package about

import (
	"context"

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

// Get returns the about singleton, or nil when the store is unconfigured,
// the fetch fails, or no document exists yet. Cached for an hour; the bio
// changes rarely.
func (s *Service) Get(ctx context.Context) *models.About {
	if !s.store.Configured() {
		return nil
	}
	var a *models.About
	if err := s.store.Fetch(ctx, sanity.About(), sanity.RevalidateSingleton, &a); err != nil {
		s.logger.Warn("fetch about failed", zap.Error(err))
		return nil
	}
	return a
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/about", func(c *gin.Context) {
		a := h.svc.Get(c.Request.Context())
		if a == nil {
			response.NotFound(c)
			return
		}
		response.OK(c, a)
	})
}
