package sanity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/models"
)

// ImageTransform holds the optional transform parameters appended to a CDN
// image URL. Zero values are omitted.
type ImageTransform struct {
	Width   int
	Height  int
	Quality int
	Format  string // "webp", "png", ... empty lets auto=format pick
}

// ImageURL resolves an image field to a concrete CDN URL with the given
// transforms. A nil image or missing asset resolves to ""; optional imagery
// must never take a page down.
func ImageURL(cfg config.SanityConfig, img *models.Image, t ImageTransform) string {
	if img == nil || img.Asset == nil {
		return ""
	}

	base := img.Asset.URL
	if base == "" {
		base = urlFromAssetID(cfg, img.Asset.ID)
	}
	if base == "" {
		return ""
	}

	params := make([]string, 0, 5)
	if t.Width > 0 {
		params = append(params, "w="+strconv.Itoa(t.Width))
	}
	if t.Height > 0 {
		params = append(params, "h="+strconv.Itoa(t.Height))
	}
	if t.Quality > 0 {
		params = append(params, "q="+strconv.Itoa(t.Quality))
	}
	if t.Format != "" {
		params = append(params, "fm="+t.Format)
	} else {
		params = append(params, "auto=format")
	}
	if len(params) == 0 {
		return base
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(params, "&")
}

// urlFromAssetID rebuilds the CDN URL from an asset document ID of the form
// image-<hash>-<width>x<height>-<format>.
func urlFromAssetID(cfg config.SanityConfig, assetID string) string {
	parts := strings.Split(assetID, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	hash, dims, format := parts[1], parts[2], parts[3]
	if hash == "" || format == "" || !strings.Contains(dims, "x") {
		return ""
	}
	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		cfg.ProjectID, cfg.Dataset, hash, dims, format)
}

// ResolveAsset converts an image field into the flat asset shape handed to
// renderers: URL, alt text and natural dimensions. Nil in, nil out.
func ResolveAsset(cfg config.SanityConfig, img *models.Image) *ResolvedImage {
	if img == nil || img.Asset == nil {
		return nil
	}
	url := ImageURL(cfg, img, ImageTransform{Quality: 90})
	if url == "" {
		return nil
	}
	return &ResolvedImage{
		URL:    url,
		Alt:    img.Alt,
		Width:  img.Asset.Metadata.Dimensions.Width,
		Height: img.Asset.Metadata.Dimensions.Height,
	}
}

// ResolvedImage is a materialized image ready for a renderer.
type ResolvedImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
