// Package comment implements the moderated comment store: validated writes,
// approved-only reads.
package comment

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/izumi-ne/portfolio-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// emailPattern matches "something@something.tld" without consecutive
// whitespace. Deliverability is not checked; this only rejects obvious typos.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create validates and stores a comment. Comments are approved on write; the
// status column exists so moderation can demote them later without a schema
// change.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.CommentModel, error) {
	slug := strings.TrimSpace(in.ProjectSlug)
	name := strings.TrimSpace(in.AuthorName)
	content := strings.TrimSpace(in.Content)
	email := strings.ToLower(strings.TrimSpace(in.AuthorEmail))

	if slug == "" || name == "" {
		return nil, ErrMissingField
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if n := len([]rune(content)); n < MinContentLength || n > MaxContentLength {
		return nil, fmt.Errorf("%w: got %d characters, want %d-%d",
			ErrInvalidLength, n, MinContentLength, MaxContentLength)
	}

	m := &models.CommentModel{
		ProjectSlug: slug,
		AuthorName:  name,
		AuthorEmail: email,
		Content:     content,
		Status:      models.CommentApproved,
		IP:          in.RemoteIP,
		Agent:       in.UserAgent,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		s.logger.Error("create comment failed", zap.String("slug", slug), zap.Error(err))
		return nil, ErrPersistence
	}
	return m, nil
}

// BySlug returns the approved comments for one slug, newest first. Pending
// and rejected rows never leave this method.
func (s *Service) BySlug(ctx context.Context, slug string) ([]models.PublicComment, error) {
	var rows []models.CommentModel
	err := s.db.WithContext(ctx).
		Where("project_slug = ? AND status = ?", slug, models.CommentApproved).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		s.logger.Error("list comments failed", zap.String("slug", slug), zap.Error(err))
		return nil, ErrPersistence
	}
	out := make([]models.PublicComment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Public())
	}
	return out, nil
}
