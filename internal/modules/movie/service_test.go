package movie

import (
	"errors"
	"testing"
	"time"

	"github.com/vegamovies/core/internal/models"
)

func flexNum(v float64) *models.FlexNumber {
	n := models.FlexNumber(v)
	return &n
}

func strPtr(s string) *string { return &s }

func TestBuildCreateDocument(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full payload", func(t *testing.T) {
		dto := &CreateMovieDTO{
			Title:       "  Inception  ",
			Slug:        "inception",
			Description: "A heist inside dreams.",
			ReleaseYear: flexNum(2010),
			Duration:    flexNum(148),
			Language:    models.StringSet{"English", "Hindi"},
			Poster:      "https://cdn.example.com/inception.jpg",
			Quality:     models.StringSet{"1080p", "4K"},
			RedirectURL: "https://example.com/dl/inception",
			Rating:      flexNum(8.8),
			Status:      "published",
			IsTrending:  models.FlexBool(true),
		}

		doc, err := buildCreateDocument(dto, "inception", now)
		if err != nil {
			t.Fatalf("buildCreateDocument() error = %v", err)
		}
		if doc.Title != "Inception" {
			t.Errorf("Title = %q, want trimmed", doc.Title)
		}
		if doc.Status != "published" || !doc.IsTrending {
			t.Errorf("Status/IsTrending = %q/%v", doc.Status, doc.IsTrending)
		}
		if doc.Rating != 8.8 {
			t.Errorf("Rating = %v, want 8.8", doc.Rating)
		}
		if doc.ReleaseYear == nil || *doc.ReleaseYear != 2010 {
			t.Errorf("ReleaseYear = %v, want 2010", doc.ReleaseYear)
		}
		if doc.ReleaseDate != nil {
			t.Errorf("ReleaseDate = %v, want unset", doc.ReleaseDate)
		}
		if !doc.CreatedAt.Equal(now) || !doc.UpdatedAt.Equal(now) {
			t.Errorf("timestamps = %v/%v, want %v", doc.CreatedAt, doc.UpdatedAt, now)
		}
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		dto := &CreateMovieDTO{
			Title:       "Dune",
			Slug:        "dune",
			Description: "Spice.",
			Poster:      "p",
			RedirectURL: "r",
		}
		doc, err := buildCreateDocument(dto, "dune", now)
		if err != nil {
			t.Fatalf("buildCreateDocument() error = %v", err)
		}
		if doc.Status != models.StatusDraft {
			t.Errorf("Status = %q, want draft", doc.Status)
		}
		if doc.Language == nil || doc.Quality == nil {
			t.Error("nil sets should normalize to empty")
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		dto := &CreateMovieDTO{
			Title: "x", Slug: "x", Description: "x", Poster: "x", RedirectURL: "x",
			Status: "archived",
		}
		if _, err := buildCreateDocument(dto, "x", now); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("invalid quality rejected", func(t *testing.T) {
		dto := &CreateMovieDTO{
			Title: "x", Slug: "x", Description: "x", Poster: "x", RedirectURL: "x",
			Quality: models.StringSet{"8K"},
		}
		if _, err := buildCreateDocument(dto, "x", now); !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("error = %v, want ErrInvalidQuality", err)
		}
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		dto := &CreateMovieDTO{
			Title: "x", Slug: "x", Description: "x", Poster: "x", RedirectURL: "x",
			Rating: flexNum(11),
		}
		if _, err := buildCreateDocument(dto, "x", now); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("error = %v, want ErrInvalidRating", err)
		}
	})
}

func TestBuildUpdatePatch(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty dto still stamps updatedAt", func(t *testing.T) {
		patch, err := buildUpdatePatch(&UpdateMovieDTO{}, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if len(patch) != 1 {
			t.Errorf("patch = %v, want only updatedAt", patch)
		}
		if patch["updatedAt"] != now {
			t.Errorf("updatedAt = %v, want %v", patch["updatedAt"], now)
		}
	})

	t.Run("empty strings skipped, zero numerics land", func(t *testing.T) {
		trending := models.FlexBool(false)
		dto := &UpdateMovieDTO{
			Title:      strPtr("   "),
			Poster:     strPtr(""),
			Rating:     flexNum(0),
			Duration:   flexNum(0),
			IsTrending: &trending,
		}
		patch, err := buildUpdatePatch(dto, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if _, ok := patch["title"]; ok {
			t.Error("blank title should be skipped")
		}
		if _, ok := patch["poster"]; ok {
			t.Error("empty poster should be skipped")
		}
		if patch["rating"] != 0.0 {
			t.Errorf("rating = %v, want explicit zero", patch["rating"])
		}
		if patch["duration"] != 0.0 {
			t.Errorf("duration = %v, want explicit zero", patch["duration"])
		}
		if patch["isTrending"] != false {
			t.Errorf("isTrending = %v, want false", patch["isTrending"])
		}
	})

	t.Run("strings trimmed", func(t *testing.T) {
		dto := &UpdateMovieDTO{
			Title:       strPtr("  New Title  "),
			Description: strPtr(" plot "),
		}
		patch, err := buildUpdatePatch(dto, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if patch["title"] != "New Title" || patch["description"] != "plot" {
			t.Errorf("patch = %v, want trimmed strings", patch)
		}
	})

	t.Run("slug validated and normalized", func(t *testing.T) {
		patch, err := buildUpdatePatch(&UpdateMovieDTO{Slug: strPtr("new-slug-2")}, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if patch["slug"] != "new-slug-2" {
			t.Errorf("slug = %v", patch["slug"])
		}

		if _, err := buildUpdatePatch(&UpdateMovieDTO{Slug: strPtr("Bad Slug!")}, now); !errors.Is(err, ErrInvalidSlug) {
			t.Errorf("error = %v, want ErrInvalidSlug", err)
		}

		// empty slug is a no-op, not an error
		patch, err = buildUpdatePatch(&UpdateMovieDTO{Slug: strPtr("")}, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if _, ok := patch["slug"]; ok {
			t.Error("empty slug should be skipped")
		}
	})

	t.Run("status validated, empty skipped", func(t *testing.T) {
		if _, err := buildUpdatePatch(&UpdateMovieDTO{Status: strPtr("archived")}, now); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
		patch, err := buildUpdatePatch(&UpdateMovieDTO{Status: strPtr("")}, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if _, ok := patch["status"]; ok {
			t.Error("empty status should be skipped")
		}
	})

	t.Run("quality replacement validated", func(t *testing.T) {
		good := models.StringSet{"720p"}
		patch, err := buildUpdatePatch(&UpdateMovieDTO{Quality: &good}, now)
		if err != nil {
			t.Fatalf("buildUpdatePatch() error = %v", err)
		}
		if _, ok := patch["quality"]; !ok {
			t.Error("quality should be set")
		}

		bad := models.StringSet{"144p"}
		if _, err := buildUpdatePatch(&UpdateMovieDTO{Quality: &bad}, now); !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("error = %v, want ErrInvalidQuality", err)
		}
	})

	t.Run("rating range enforced", func(t *testing.T) {
		if _, err := buildUpdatePatch(&UpdateMovieDTO{Rating: flexNum(-1)}, now); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("error = %v, want ErrInvalidRating", err)
		}
	})
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"inception", "dune-part-2", "123", "a-b-c"}
	for _, s := range valid {
		if !slugPattern.MatchString(s) {
			t.Errorf("slug %q should be valid", s)
		}
	}
	invalid := []string{"", "Inception", "has space", "under_score", "tr/ailing", "café"}
	for _, s := range invalid {
		if slugPattern.MatchString(s) {
			t.Errorf("slug %q should be invalid", s)
		}
	}
}

func TestNormalizeDashboard(t *testing.T) {
	t.Run("empty facet", func(t *testing.T) {
		stats, recent := normalizeDashboard(dashboardFacet{})
		if stats != (DashboardStats{}) {
			t.Errorf("stats = %+v, want zeroes", stats)
		}
		if recent == nil || len(recent) != 0 {
			t.Errorf("recent = %v, want empty slice", recent)
		}
	})

	t.Run("counts mapped by status", func(t *testing.T) {
		facet := dashboardFacet{
			StatusCounts: []statusCount{
				{Status: "published", Count: 7},
				{Status: "draft", Count: 2},
				{Status: "blocked", Count: 1},
			},
			TotalMovies: []struct {
				Total int `bson:"total"`
			}{{Total: 10}},
		}
		stats, _ := normalizeDashboard(facet)
		want := DashboardStats{TotalMovies: 10, PublishedMovies: 7, DraftMovies: 2, BlockedMovies: 1}
		if stats != want {
			t.Errorf("stats = %+v, want %+v", stats, want)
		}
	})
}
