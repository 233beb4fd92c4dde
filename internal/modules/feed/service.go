// Package feed composes query results into derived views: the unified
// homepage feed, prev/next navigation within a type partition, and related
// content by tag overlap.
package feed

import (
	"context"

	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/blog"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/project"
)

type Service struct {
	projects *project.Service
	posts    *blog.Service
}

func NewService(projects *project.Service, posts *blog.Service) *Service {
	return &Service{projects: projects, posts: posts}
}

// Homepage builds the feed over the union of projects and blog posts. Both
// sources already degrade to empty on fetch failure, so a broken store
// yields an empty feed rather than an error.
func (s *Service) Homepage(ctx context.Context) HomepageFeed {
	return compose(s.projects.All(ctx), s.posts.All(ctx))
}

// AdjacentProject returns prev/next navigation for a project within its
// project-type partition. The second return is false when the slug resolves
// to nothing.
func (s *Service) AdjacentProject(ctx context.Context, slug string) (AdjacentItems, bool) {
	p := s.projects.BySlug(ctx, slug)
	if p == nil {
		return AdjacentItems{}, false
	}
	partition := make([]models.FeedItem, 0)
	for _, item := range s.projects.ByType(ctx, p.ProjectType) {
		partition = append(partition, models.FeedItemFromProject(item))
	}
	return adjacentIn(partition, p.ID), true
}

// AdjacentBlogPost returns prev/next navigation for a blog post. Blog posts
// form a single partition.
func (s *Service) AdjacentBlogPost(ctx context.Context, slug string) (AdjacentItems, bool) {
	b := s.posts.BySlug(ctx, slug)
	if b == nil {
		return AdjacentItems{}, false
	}
	partition := make([]models.FeedItem, 0)
	for _, item := range s.posts.All(ctx) {
		partition = append(partition, models.FeedItemFromBlogPost(item))
	}
	return adjacentIn(partition, b.ID), true
}

// RelatedProjects returns tag-overlapping projects around the given slug.
func (s *Service) RelatedProjects(ctx context.Context, slug string, limit int) ([]models.FeedItem, bool) {
	p := s.projects.BySlug(ctx, slug)
	if p == nil {
		return nil, false
	}
	related := s.projects.Related(ctx, p.ID, p.Tags, p.ProjectType, limit)
	items := make([]models.FeedItem, 0, len(related))
	for _, item := range related {
		items = append(items, models.FeedItemFromProject(item))
	}
	return items, true
}

// RelatedBlogPosts returns tag-overlapping posts around the given slug.
func (s *Service) RelatedBlogPosts(ctx context.Context, slug string, limit int) ([]models.FeedItem, bool) {
	b := s.posts.BySlug(ctx, slug)
	if b == nil {
		return nil, false
	}
	related := s.posts.Related(ctx, b.ID, b.Tags, limit)
	items := make([]models.FeedItem, 0, len(related))
	for _, item := range related {
		items = append(items, models.FeedItemFromBlogPost(item))
	}
	return items, true
}
