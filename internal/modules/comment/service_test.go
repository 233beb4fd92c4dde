package comment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/izumi-ne/portfolio-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.CommentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, zap.NewNop())
}

func validInput() CreateInput {
	return CreateInput{
		ProjectSlug: "my-project",
		AuthorName:  "Ada",
		AuthorEmail: "ada@example.com",
		Content:     "this is a perfectly reasonable comment",
		RemoteIP:    "203.0.113.9",
		UserAgent:   "test-agent",
	}
}

func TestCreateStoresApprovedComment(t *testing.T) {
	svc := testService(t)

	m, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Error("comment id not assigned")
	}
	if m.Status != models.CommentApproved {
		t.Errorf("status = %s, want approved", m.Status)
	}
	if m.IP != "203.0.113.9" || m.Agent != "test-agent" {
		t.Errorf("request metadata not stored: ip=%q agent=%q", m.IP, m.Agent)
	}
}

func TestCreateTrimsAndLowercases(t *testing.T) {
	svc := testService(t)

	in := validInput()
	in.AuthorName = "  Ada  "
	in.AuthorEmail = "  Ada@Example.COM "
	in.Content = "   padded but long enough content   "

	m, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.AuthorName != "Ada" {
		t.Errorf("name = %q", m.AuthorName)
	}
	if m.AuthorEmail != "ada@example.com" {
		t.Errorf("email = %q", m.AuthorEmail)
	}
	if strings.HasPrefix(m.Content, " ") || strings.HasSuffix(m.Content, " ") {
		t.Errorf("content not trimmed: %q", m.Content)
	}
}

func TestCreateMissingFields(t *testing.T) {
	svc := testService(t)

	for _, mutate := range []func(*CreateInput){
		func(in *CreateInput) { in.ProjectSlug = "" },
		func(in *CreateInput) { in.ProjectSlug = "   " },
		func(in *CreateInput) { in.AuthorName = "" },
		func(in *CreateInput) { in.AuthorName = "\t " },
	} {
		in := validInput()
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrMissingField) {
			t.Errorf("input %+v: got %v, want ErrMissingField", in, err)
		}
	}
}

func TestCreateEmailValidation(t *testing.T) {
	svc := testService(t)

	in := validInput()
	in.AuthorEmail = "not-an-email"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("got %v, want ErrInvalidEmail", err)
	}

	// Email is optional.
	in = validInput()
	in.AuthorEmail = ""
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("omitted email must be accepted: %v", err)
	}
}

func TestCreateContentLengthBounds(t *testing.T) {
	svc := testService(t)

	cases := []struct {
		length int
		ok     bool
	}{
		{9, false},
		{10, true},
		{2000, true},
		{2001, false},
	}
	for _, tc := range cases {
		in := validInput()
		in.Content = strings.Repeat("x", tc.length)
		_, err := svc.Create(context.Background(), in)
		if tc.ok && err != nil {
			t.Errorf("length %d: unexpected error %v", tc.length, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidLength) {
			t.Errorf("length %d: got %v, want ErrInvalidLength", tc.length, err)
		}
	}
}

func TestCreateCountsRunesNotBytes(t *testing.T) {
	svc := testService(t)

	in := validInput()
	in.Content = strings.Repeat("日", 10) // 30 bytes, 10 runes
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("10 runes must satisfy the minimum: %v", err)
	}
}

func TestBySlugReturnsOnlyApprovedNewestFirst(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	older, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Force distinct timestamps; sqlite stores what gorm hands it.
	svc.db.Model(older).Update("created_at", time.Now().Add(-time.Hour))

	newer, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A pending row inserted out-of-band must never surface.
	pending := &models.CommentModel{
		ProjectSlug: "my-project",
		AuthorName:  "Mallory",
		Content:     "awaiting moderation, should stay hidden",
		Status:      models.CommentPending,
	}
	if err := svc.db.Create(pending).Error; err != nil {
		t.Fatalf("insert pending: %v", err)
	}

	got, err := svc.BySlug(ctx, "my-project")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2 (pending must not leak)", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("wrong order: %s then %s", got[0].ID, got[1].ID)
	}
}

func TestBySlugProjectionOmitsPrivateFields(t *testing.T) {
	svc := testService(t)
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.BySlug(context.Background(), "my-project")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	// PublicComment carries no email/IP/status fields at all; assert the
	// visible ones round-trip.
	if got[0].AuthorName != "Ada" || got[0].ProjectSlug != "my-project" {
		t.Errorf("projection wrong: %+v", got[0])
	}
}

func TestBySlugUnknownSlugIsEmptyNotError(t *testing.T) {
	svc := testService(t)
	got, err := svc.BySlug(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("by slug: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d comments, want 0", len(got))
	}
	if got == nil {
		t.Fatal("want empty slice, not nil")
	}
}
