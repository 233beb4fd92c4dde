package models

import "github.com/izumi-ne/portfolio-core/internal/pkg/portabletext"

// Content documents mirror the schemas of the external content store. They
// are read-only here: authoring happens in the CMS studio.

// ProjectType partitions projects. Wire values match the studio schema.
type ProjectType string

const (
	ProjectTypeTech ProjectType = "UI"  // technology projects
	ProjectTypeArt  ProjectType = "Art" // traditional art
)

// Slug is the store's wrapped slug value.
type Slug struct {
	Current string `json:"current"`
}

// ImageDimensions are the natural dimensions of an uploaded asset.
type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ImageMetadata carries the asset properties the store extracts at upload.
type ImageMetadata struct {
	Dimensions ImageDimensions `json:"dimensions"`
}

// ImageAssetDoc is the dereferenced asset document embedded by queries.
type ImageAssetDoc struct {
	ID       string        `json:"_id"`
	URL      string        `json:"url"`
	Metadata ImageMetadata `json:"metadata"`
}

// Image is an image field: an optional asset reference plus alt text. Many
// documents have no imagery, so Asset is frequently nil.
type Image struct {
	Asset *ImageAssetDoc `json:"asset"`
	Alt   string         `json:"alt,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	ID            string              `json:"_id"`
	DocType       string              `json:"_type"`
	Title         string              `json:"title"`
	Slug          Slug                `json:"slug"`
	ProjectType   ProjectType         `json:"type"`
	Summary       string              `json:"summary"`
	Author        string              `json:"author,omitempty"`
	Keywords      string              `json:"keywords,omitempty"`
	Description   portabletext.Blocks `json:"description,omitempty"`
	FeaturedImage *Image              `json:"featuredImage,omitempty"`
	Images        []Image             `json:"images,omitempty"`
	Tags          []string            `json:"tags,omitempty"`
	Technologies  []string            `json:"technologies,omitempty"` // UI projects only
	PublishedDate string              `json:"publishedDate"`
	Featured      bool                `json:"featured"`
	ExternalLink  string              `json:"externalLink,omitempty"`
	GithubLink    string              `json:"githubLink,omitempty"`
}

// BlogPost is a long-form article.
type BlogPost struct {
	ID            string              `json:"_id"`
	DocType       string              `json:"_type"`
	Title         string              `json:"title"`
	Slug          Slug                `json:"slug"`
	Excerpt       string              `json:"excerpt"`
	Author        string              `json:"author,omitempty"`
	Keywords      string              `json:"keywords,omitempty"`
	Content       portabletext.Blocks `json:"content,omitempty"`
	CoverImage    *Image              `json:"coverImage,omitempty"`
	PublishedDate string              `json:"publishedDate"`
	Tags          []string            `json:"tags,omitempty"`
	Featured      bool                `json:"featured"`
}

// SocialLink is a platform/url pair on the about page.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// About is the singleton about-page document.
type About struct {
	ID           string              `json:"_id"`
	Bio          portabletext.Blocks `json:"bio,omitempty"`
	ProfileImage *Image              `json:"profileImage,omitempty"`
	Skills       []string            `json:"skills,omitempty"`
	SocialLinks  []SocialLink        `json:"socialLinks,omitempty"`
}

// ArticleRef is the weak reference a product may carry to a project or blog
// post. A dangling reference dereferences to null in the store and decodes
// to a nil pointer here.
type ArticleRef struct {
	DocType string `json:"_type"`
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Slug    Slug   `json:"slug"`
}

// Product is a shop/product card.
type Product struct {
	ID      string      `json:"_id"`
	Title   string      `json:"title"`
	Summary string      `json:"summary"`
	Image   *Image      `json:"image,omitempty"`
	URL     string      `json:"url_link,omitempty"`
	Article *ArticleRef `json:"article_link,omitempty"`
}

// SlugEntry is one row of the slug enumeration used for sitemaps and static
// path generation.
type SlugEntry struct {
	Slug    string `json:"slug"`
	Updated string `json:"updated,omitempty"`
}

// FeedItemType discriminates homepage feed entries.
type FeedItemType string

const (
	FeedItemProject FeedItemType = "project"
	FeedItemBlog    FeedItemType = "blog"
)

// FeedItem is the tagged union the homepage feed is built from. Renderers
// branch on ItemType to pick the right summary/image semantics instead of
// probing fields dynamically.
type FeedItem struct {
	ItemType      FeedItemType `json:"item_type"`
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Summary       string       `json:"summary"` // project summary or post excerpt
	Image         *Image       `json:"image,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	ProjectType   ProjectType  `json:"project_type,omitempty"` // projects only
	PublishedDate string       `json:"published_date"`
	Featured      bool         `json:"featured"`
}

// FeedItemFromProject tags a project for the unified feed.
func FeedItemFromProject(p Project) FeedItem {
	return FeedItem{
		ItemType:      FeedItemProject,
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug.Current,
		Summary:       p.Summary,
		Image:         p.FeaturedImage,
		Tags:          p.Tags,
		ProjectType:   p.ProjectType,
		PublishedDate: p.PublishedDate,
		Featured:      p.Featured,
	}
}

// FeedItemFromBlogPost tags a blog post for the unified feed.
func FeedItemFromBlogPost(b BlogPost) FeedItem {
	return FeedItem{
		ItemType:      FeedItemBlog,
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug.Current,
		Summary:       b.Excerpt,
		Image:         b.CoverImage,
		Tags:          b.Tags,
		PublishedDate: b.PublishedDate,
		Featured:      b.Featured,
	}
}
