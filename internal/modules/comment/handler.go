package comment

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/pkg/response"
	"github.com/izumi-ne/portfolio-core/internal/pkg/turnstile"
	"go.uber.org/zap"
)

type Handler struct {
	svc      *Service
	verifier *turnstile.Verifier
	logger   *zap.Logger
}

func NewHandler(svc *Service, verifier *turnstile.Verifier, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, verifier: verifier, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/comments", h.create)
	rg.GET("/comments/:slug", h.list)
}

// POST /comments
func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	in.RemoteIP = clientIP(c)
	in.UserAgent = c.Request.UserAgent()
	if in.UserAgent == "" {
		in.UserAgent = "unknown"
	}

	if h.verifier.Enabled() {
		token := c.GetHeader("X-Turnstile-Token")
		if token == "" {
			response.ForbiddenReason(c, "verification-required", "challenge token required")
			return
		}
		ok, err := h.verifier.Verify(c.Request.Context(), token, in.RemoteIP)
		if err != nil {
			// An unreachable or garbled challenge service rejects the write;
			// it never downgrades to a silent pass or a server error.
			h.logger.Error("challenge verification errored", zap.Error(err))
			response.ForbiddenReason(c, "verification-failed", "challenge token could not be verified")
			return
		}
		if !ok {
			response.ForbiddenReason(c, "verification-failed", "challenge token rejected")
			return
		}
	}

	m, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			response.BadRequestReason(c, "missing-field", "name and project slug are required")
		case errors.Is(err, ErrInvalidEmail):
			response.BadRequestReason(c, "invalid-email", "email address is not valid")
		case errors.Is(err, ErrInvalidLength):
			response.BadRequestReason(c, "invalid-length", err.Error())
		default:
			response.InternalErrorReason(c, "persistence-error", "failed to save comment")
		}
		return
	}
	response.Created(c, gin.H{
		"message": "comment posted",
		"comment": m.Public(),
	})
}

// GET /comments/:slug
func (h *Handler) list(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	comments, err := h.svc.BySlug(c.Request.Context(), slug)
	if err != nil {
		response.InternalErrorReason(c, "persistence-error", "failed to load comments")
		return
	}
	response.OK(c, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

// clientIP prefers proxy headers and falls back to "unknown" rather than the
// socket address, matching what gets stored alongside the comment.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
