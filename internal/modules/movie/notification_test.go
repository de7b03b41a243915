package movie

import (
	"testing"
	"time"

	"github.com/vegamovies/core/internal/models"
)

func TestBuildNotification(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		m := &models.MovieModel{
			Title:       "Jawan",
			Language:    models.StringSet{"Hindi", "Tamil"},
			Quality:     models.StringSet{"720p", "1080p"},
			RedirectURL: "https://example.com/dl/jawan",
			IsTrending:  true,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
		}

		item := buildNotification(m, now)
		if item.Title != "Jawan (2026) Hindi + Tamil" {
			t.Errorf("Title = %q", item.Title)
		}
		if item.Subtitle != "Download now available in 720p / 1080p" {
			t.Errorf("Subtitle = %q", item.Subtitle)
		}
		if item.Type != "trending" {
			t.Errorf("Type = %q, want trending", item.Type)
		}
		if item.Time != "2 days ago" {
			t.Errorf("Time = %q, want 2 days ago", item.Time)
		}
		if item.Link != m.RedirectURL {
			t.Errorf("Link = %q", item.Link)
		}
		if item.IsSeen {
			t.Error("IsSeen must always be false")
		}
	})

	t.Run("sparse record", func(t *testing.T) {
		m := &models.MovieModel{
			Title:     "Mystery",
			CreatedAt: now.Add(-30 * time.Second),
		}

		item := buildNotification(m, now)
		// no languages leaves a trailing space after the year
		if item.Title != "Mystery (2026) " {
			t.Errorf("Title = %q", item.Title)
		}
		if item.Subtitle != "Now available for download" {
			t.Errorf("Subtitle = %q", item.Subtitle)
		}
		if item.Type != "movie" {
			t.Errorf("Type = %q, want movie", item.Type)
		}
		if item.Time != "Just now" {
			t.Errorf("Time = %q, want Just now", item.Time)
		}
	})
}
