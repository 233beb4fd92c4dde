// Package sitemap renders the sitemap and robots file from the slug
// enumeration of each content type.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/blog"
	"github.com/izumi-ne/portfolio-core/internal/modules/content/project"
)

type Service struct {
	baseURL  string
	projects *project.Service
	posts    *blog.Service
}

func NewService(cfg *config.AppConfig, projects *project.Service, posts *blog.Service) *Service {
	return &Service{
		baseURL:  strings.TrimRight(cfg.Site.BaseURL, "/"),
		projects: projects,
		posts:    posts,
	}
}

// Render produces the sitemap XML. Static pages first, then every project and
// post slug with its last-modified timestamp when the store provides one.
func (s *Service) Render(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	for _, path := range []string{"", "/about", "/projects", "/blog", "/products"} {
		s.writeURL(&b, path, "")
	}
	for _, entry := range s.projects.Slugs(ctx) {
		s.writeEntry(&b, "/projects/", entry)
	}
	for _, entry := range s.posts.Slugs(ctx) {
		s.writeEntry(&b, "/blog/", entry)
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

// Robots produces the robots file pointing at the sitemap.
func (s *Service) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
}

func (s *Service) writeEntry(b *strings.Builder, prefix string, entry models.SlugEntry) {
	if entry.Slug == "" {
		return
	}
	s.writeURL(b, prefix+entry.Slug, entry.Updated)
}

func (s *Service) writeURL(b *strings.Builder, path, lastmod string) {
	b.WriteString("  <url><loc>")
	xml.EscapeText(b, []byte(s.baseURL+path))
	b.WriteString("</loc>")
	if lastmod != "" {
		b.WriteString("<lastmod>")
		xml.EscapeText(b, []byte(lastmod))
		b.WriteString("</lastmod>")
	}
	b.WriteString("</url>\n")
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts at the engine root: these files live at the site
// root, not under the API prefix.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/sitemap.xml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(h.svc.Render(c.Request.Context())))
	})
	r.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, h.svc.Robots())
	})
}
