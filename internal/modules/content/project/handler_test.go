package project

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izumi-ne/portfolio-core/internal/config"
	"github.com/izumi-ne/portfolio-core/internal/models"
	"github.com/izumi-ne/portfolio-core/internal/sanity"
	"go.uber.org/zap"
)

type fakeStore struct {
	configured bool
	results    map[string]interface{}
}

func (f *fakeStore) Configured() bool { return f.configured }

func (f *fakeStore) Fetch(ctx context.Context, query string, ttl time.Duration, out interface{}) error {
	v, ok := f.results[query]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func testRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.SanityConfig{ProjectID: "p1", Dataset: "production"}
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService(store, zap.NewNop()), cfg).RegisterRoutes(api)
	return r
}

func TestGetProjectDetailResolvesImage(t *testing.T) {
	p := models.Project{
		ID:   "p1",
		Slug: models.Slug{Current: "my-app"},
		FeaturedImage: &models.Image{
			Asset: &models.ImageAssetDoc{
				URL:      "https://cdn.sanity.io/images/p1/production/x-800x600.jpg",
				Metadata: models.ImageMetadata{Dimensions: models.ImageDimensions{Width: 800, Height: 600}},
			},
			Alt: "screenshot",
		},
		PublishedDate: "2024-01-01",
	}
	store := &fakeStore{
		configured: true,
		results:    map[string]interface{}{sanity.ProjectBySlug("my-app"): p},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/my-app", nil)
	w := httptest.NewRecorder()
	testRouter(store).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		ReadingTime   int `json:"reading_time"`
		FeaturedImage *struct {
			URL   string `json:"url"`
			Alt   string `json:"alt"`
			Width int    `json:"width"`
		} `json:"featured_image"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FeaturedImage == nil || resp.FeaturedImage.URL == "" {
		t.Fatalf("featured image not resolved: %s", w.Body.String())
	}
	if resp.FeaturedImage.Alt != "screenshot" || resp.FeaturedImage.Width != 800 {
		t.Errorf("resolved image = %+v", resp.FeaturedImage)
	}
	if resp.ReadingTime < 1 {
		t.Errorf("reading_time = %d, want at least 1", resp.ReadingTime)
	}
}

func TestGetProjectDetailWithoutImage(t *testing.T) {
	p := models.Project{ID: "p1", Slug: models.Slug{Current: "bare"}, PublishedDate: "2024-01-01"}
	store := &fakeStore{
		configured: true,
		results:    map[string]interface{}{sanity.ProjectBySlug("bare"): p},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/bare", nil)
	w := httptest.NewRecorder()
	testRouter(store).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		FeaturedImage json.RawMessage `json:"featured_image"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp.FeaturedImage) != "null" {
		t.Errorf("featured_image = %s, want null", resp.FeaturedImage)
	}
}

func TestGetProjectUnknownSlug404(t *testing.T) {
	store := &fakeStore{configured: true, results: map[string]interface{}{}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/ghost", nil)
	w := httptest.NewRecorder()
	testRouter(store).ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListProjectsRejectsUnknownType(t *testing.T) {
	store := &fakeStore{configured: true, results: map[string]interface{}{}}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects?type=sculpture", nil)
	w := httptest.NewRecorder()
	testRouter(store).ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
