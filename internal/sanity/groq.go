package sanity

import (
	"encoding/json"
	"fmt"

	"github.com/izumi-ne/portfolio-core/internal/models"
)

// Query catalog. Every entry is a pure function of its parameters producing
// a fully-specified GROQ projection. String parameters are embedded as
// JSON-encoded literals, never concatenated raw, so a slug like
// `"] | delete(*) ["` stays an inert string inside the query.
//
// All list queries order by publishedDate desc with _id asc as the
// deterministic tie-break for documents sharing a publish date.

const imageFragment = `asset->{_id,url,metadata{dimensions{width,height}}},alt`

var projectFields = fmt.Sprintf(`_id,_type,title,slug,type,summary,author,keywords,description,`+
	`"featuredImage":featuredImage{%s},"images":images[]{%s},`+
	`tags,technologies,publishedDate,featured,externalLink,githubLink`,
	imageFragment, imageFragment)

var blogPostFields = fmt.Sprintf(`_id,_type,title,slug,excerpt,author,keywords,content,`+
	`"coverImage":coverImage{%s},publishedDate,tags,featured`, imageFragment)

var productFields = fmt.Sprintf(`_id,_type,title,summary,"image":image{%s},url_link,`+
	`"article_link":article_link->{_type,_id,title,slug}`, imageFragment)

const defaultOrder = `order(publishedDate desc, _id asc)`

// quoteString encodes s as a GROQ string literal. GROQ string syntax is a
// superset of JSON strings, so json.Marshal is the safe encoder.
func quoteString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// quoteStringSlice encodes a GROQ array-of-strings literal.
func quoteStringSlice(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// AllProjects lists every project, newest first.
func AllProjects() string {
	return fmt.Sprintf(`*[_type == "project"] | %s {%s}`, defaultOrder, projectFields)
}

// FeaturedProjects lists projects flagged as featured, newest first.
func FeaturedProjects() string {
	return fmt.Sprintf(`*[_type == "project" && featured == true] | %s {%s}`, defaultOrder, projectFields)
}

// ProjectsByType lists one project-type partition, newest first.
func ProjectsByType(t models.ProjectType) string {
	return fmt.Sprintf(`*[_type == "project" && type == %s] | %s {%s}`,
		quoteString(string(t)), defaultOrder, projectFields)
}

// ProjectBySlug fetches a single project.
func ProjectBySlug(slug string) string {
	return fmt.Sprintf(`*[_type == "project" && slug.current == %s][0] {%s}`,
		quoteString(slug), projectFields)
}

// AllBlogPosts lists every blog post, newest first.
func AllBlogPosts() string {
	return fmt.Sprintf(`*[_type == "blogPost"] | %s {%s}`, defaultOrder, blogPostFields)
}

// FeaturedBlogPosts lists featured blog posts, newest first.
func FeaturedBlogPosts() string {
	return fmt.Sprintf(`*[_type == "blogPost" && featured == true] | %s {%s}`, defaultOrder, blogPostFields)
}

// BlogPostBySlug fetches a single blog post.
func BlogPostBySlug(slug string) string {
	return fmt.Sprintf(`*[_type == "blogPost" && slug.current == %s][0] {%s}`,
		quoteString(slug), blogPostFields)
}

// RecentBlogPosts lists the newest posts up to limit.
func RecentBlogPosts(limit int) string {
	if limit <= 0 {
		limit = 3
	}
	return fmt.Sprintf(`*[_type == "blogPost"] | %s [0...%d] {%s}`, defaultOrder, limit, blogPostFields)
}

// About fetches the about singleton; the most recently updated document wins
// if the studio ever holds more than one.
func About() string {
	return fmt.Sprintf(`*[_type == "about"] | order(_updatedAt desc) [0] `+
		`{_id,_type,bio,"profileImage":profileImage{%s},skills,socialLinks[]{platform,url}}`,
		imageFragment)
}

// AllProducts lists products, newest created first, with the weak article
// reference dereferenced (dangling references come back null).
func AllProducts() string {
	return fmt.Sprintf(`*[_type == "product"] | order(_createdAt desc, _id asc) {%s}`, productFields)
}

// FeaturedProducts lists the newest products up to limit.
func FeaturedProducts(limit int) string {
	if limit <= 0 {
		limit = 3
	}
	return fmt.Sprintf(`*[_type == "product"] | order(_createdAt desc, _id asc) [0...%d] {%s}`,
		limit, productFields)
}

// AllSlugs enumerates slug + last-modified for one addressable document
// type. Feeds the sitemap and static path generation.
func AllSlugs(docType string) string {
	return fmt.Sprintf(`*[_type == %s] {"slug": slug.current, "updated": _updatedAt}`,
		quoteString(docType))
}

// TaggedInPartition lists documents of docType carrying at least one of the
// given tags, newest first, excluding one document id. An empty tag set
// drops the overlap clause rather than matching nothing. Projects may
// additionally be restricted to one type partition via extraFilter
// (e.g. `&& type == "UI"` built with ProjectTypeFilter).
func TaggedInPartition(docType, excludeID string, tags []string, extraFilter string, limit int) string {
	if limit <= 0 {
		limit = 3
	}
	tagFilter := ""
	if len(tags) > 0 {
		tagFilter = fmt.Sprintf(` && count((tags[])[@ in %s]) > 0`, quoteStringSlice(tags))
	}
	fields := blogPostFields
	if docType == "project" {
		fields = projectFields
	}
	return fmt.Sprintf(`*[_type == %s && _id != %s%s%s] | %s [0...%d] {%s}`,
		quoteString(docType), quoteString(excludeID), extraFilter, tagFilter,
		defaultOrder, limit, fields)
}

// ProjectTypeFilter renders the project partition clause for TaggedInPartition.
func ProjectTypeFilter(t models.ProjectType) string {
	return fmt.Sprintf(` && type == %s`, quoteString(string(t)))
}
