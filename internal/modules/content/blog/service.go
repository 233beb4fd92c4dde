package blog

import (
	"context"

	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
	"go.uber.org/zap"
)

// Service owns the blog post slice of the query catalog, with the same
// degrade-to-empty failure policy as the project service.
type Service struct {
	store  sanity.Querier
	logger *zap.Logger
}

func NewService(store sanity.Querier, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// All returns every blog post, newest first.
func (s *Service) All(ctx context.Context) []models.BlogPost {
	return s.list(ctx, sanity.AllBlogPosts())
}

// Featured returns featured blog posts, newest first.
func (s *Service) Featured(ctx context.Context) []models.BlogPost {
	return s.list(ctx, sanity.FeaturedBlogPosts())
}

// Recent returns the newest posts up to limit.
func (s *Service) Recent(ctx context.Context, limit int) []models.BlogPost {
	return s.list(ctx, sanity.RecentBlogPosts(limit))
}

// BySlug returns a single post, or nil when absent.
func (s *Service) BySlug(ctx context.Context, slug string) *models.BlogPost {
	if !s.store.Configured() {
		return nil
	}
	var p *models.BlogPost
	if err := s.store.Fetch(ctx, sanity.BlogPostBySlug(slug), sanity.RevalidateList, &p); err != nil {
		s.logger.Warn("fetch blog post failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return p
}

// Related returns up to limit posts sharing a tag with the given set,
// newest first, excluding excludeID. Blog posts form a single partition.
func (s *Service) Related(ctx context.Context, excludeID string, tags []string, limit int) []models.BlogPost {
	return s.list(ctx, sanity.TaggedInPartition("blogPost", excludeID, tags, "", limit))
}

// Slugs enumerates slug + last-modified for every blog post.
func (s *Service) Slugs(ctx context.Context) []models.SlugEntry {
	if !s.store.Configured() {
		return []models.SlugEntry{}
	}
	var entries []models.SlugEntry
	if err := s.store.Fetch(ctx, sanity.AllSlugs("blogPost"), sanity.RevalidateSingleton, &entries); err != nil {
		s.logger.Warn("fetch blog post slugs failed", zap.Error(err))
		return []models.SlugEntry{}
	}
	return entries
}

func (s *Service) list(ctx context.Context, query string) []models.BlogPost {
	if !s.store.Configured() {
		return []models.BlogPost{}
	}
	var posts []models.BlogPost
	if err := s.store.Fetch(ctx, query, sanity.RevalidateList, &posts); err != nil {
		s.logger.Warn("fetch blog posts failed", zap.Error(err))
		return []models.BlogPost{}
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return posts
}
