package sanity

import (
	"testing"

	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/models"
)

var imgCfg = config.SanityConfig{ProjectID: "p1", Dataset: "production"}

func TestImageURLNilSafety(t *testing.T) {
	if got := ImageURL(imgCfg, nil, ImageTransform{}); got != "" {
		t.Errorf("nil image: got %q, want empty", got)
	}
	if got := ImageURL(imgCfg, &models.Image{}, ImageTransform{}); got != "" {
		t.Errorf("missing asset: got %q, want empty", got)
	}
}

func TestImageURLTransformParams(t *testing.T) {
	img := &models.Image{Asset: &models.ImageAssetDoc{URL: "https://cdn.sanity.io/images/p1/production/x-800x600.jpg"}}

	got := ImageURL(imgCfg, img, ImageTransform{Width: 400, Height: 300, Quality: 80, Format: "webp"})
	want := "https://cdn.sanity.io/images/p1/production/x-800x600.jpg?w=400&h=300&q=80&fm=webp"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageURLDefaultsToAutoFormat(t *testing.T) {
	img := &models.Image{Asset: &models.ImageAssetDoc{URL: "https://cdn.example/x.jpg"}}
	got := ImageURL(imgCfg, img, ImageTransform{Width: 100})
	if got != "https://cdn.example/x.jpg?w=100&auto=format" {
		t.Errorf("got %q", got)
	}
}

func TestImageURLRebuildsFromAssetID(t *testing.T) {
	img := &models.Image{Asset: &models.ImageAssetDoc{ID: "image-abc123-1200x800-png"}}
	got := ImageURL(imgCfg, img, ImageTransform{Format: "webp"})
	want := "https://cdn.sanity.io/images/p1/production/abc123-1200x800.png?fm=webp"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImageURLMalformedAssetID(t *testing.T) {
	for _, id := range []string{"", "image-abc", "file-abc-1x1-png", "image-abc-noformat-"} {
		img := &models.Image{Asset: &models.ImageAssetDoc{ID: id}}
		if got := ImageURL(imgCfg, img, ImageTransform{}); got != "" {
			t.Errorf("id %q: got %q, want empty", id, got)
		}
	}
}

func TestResolveAsset(t *testing.T) {
	img := &models.Image{
		Asset: &models.ImageAssetDoc{
			URL: "https://cdn.example/x.jpg",
			Metadata: models.ImageMetadata{
				Dimensions: models.ImageDimensions{Width: 800, Height: 600},
			},
		},
		Alt: "sunset",
	}
	r := ResolveAsset(imgCfg, img)
	if r == nil {
		t.Fatal("expected a resolved image")
	}
	if r.Alt != "sunset" || r.Width != 800 || r.Height != 600 {
		t.Errorf("unexpected resolution: %+v", r)
	}

	if ResolveAsset(imgCfg, nil) != nil {
		t.Error("nil image must resolve to nil")
	}
}
