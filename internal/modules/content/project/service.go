package project

import (
	"context"

	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
	"go.uber.org/zap"
)

// Service owns the project slice of the query catalog. Every method
// degrades to an empty result when the store is unconfigured or the fetch
// fails; a missing content store renders as "no content yet", not a crash.
type Service struct {
	store  sanity.Querier
	logger *zap.Logger
}

func NewService(store sanity.Querier, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// All returns every project, newest first.
func (s *Service) All(ctx context.Context) []models.Project {
	return s.list(ctx, sanity.AllProjects())
}

// Featured returns projects flagged as featured, newest first.
func (s *Service) Featured(ctx context.Context) []models.Project {
	return s.list(ctx, sanity.FeaturedProjects())
}

// ByType returns one project-type partition, newest first.
func (s *Service) ByType(ctx context.Context, t models.ProjectType) []models.Project {
	return s.list(ctx, sanity.ProjectsByType(t))
}

// BySlug returns a single project, or nil when absent.
func (s *Service) BySlug(ctx context.Context, slug string) *models.Project {
	if !s.store.Configured() {
		return nil
	}
	var p *models.Project
	if err := s.store.Fetch(ctx, sanity.ProjectBySlug(slug), sanity.RevalidateList, &p); err != nil {
		s.logger.Warn("fetch project failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return p
}

// Related returns up to limit projects in the same type partition sharing a
// tag with the given set, newest first, excluding excludeID. An empty tag
// set returns the newest projects in the partition instead of nothing.
func (s *Service) Related(ctx context.Context, excludeID string, tags []string, t models.ProjectType, limit int) []models.Project {
	query := sanity.TaggedInPartition("project", excludeID, tags, sanity.ProjectTypeFilter(t), limit)
	return s.list(ctx, query)
}

// Slugs enumerates slug + last-modified for every project.
func (s *Service) Slugs(ctx context.Context) []models.SlugEntry {
	if !s.store.Configured() {
		return []models.SlugEntry{}
	}
	var entries []models.SlugEntry
	if err := s.store.Fetch(ctx, sanity.AllSlugs("project"), sanity.RevalidateSingleton, &entries); err != nil {
		s.logger.Warn("fetch project slugs failed", zap.Error(err))
		return []models.SlugEntry{}
	}
	return entries
}

func (s *Service) list(ctx context.Context, query string) []models.Project {
	if !s.store.Configured() {
		return []models.Project{}
	}
	var projects []models.Project
	if err := s.store.Fetch(ctx, query, sanity.RevalidateList, &projects); err != nil {
		s.logger.Warn("fetch projects failed", zap.Error(err))
		return []models.Project{}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects
}
