package setting

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdatePatch(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("empty dto still stamps meta", func(t *testing.T) {
		patch := buildUpdatePatch(&UpdateSettingDTO{}, "admin@example.com", now)
		if len(patch) != 2 {
			t.Errorf("patch = %v, want only lastUpdatedBy and updatedAt", patch)
		}
		if patch["lastUpdatedBy"] != "admin@example.com" {
			t.Errorf("lastUpdatedBy = %v", patch["lastUpdatedBy"])
		}
		if patch["updatedAt"] != now {
			t.Errorf("updatedAt = %v, want %v", patch["updatedAt"], now)
		}
	})

	t.Run("present keys land, including empty strings", func(t *testing.T) {
		dto := &UpdateSettingDTO{
			SiteTitle:    strPtr("VegaMovies"),
			SiteSubtitle: strPtr(""),
		}
		patch := buildUpdatePatch(dto, "admin@example.com", now)
		if patch["siteTitle"] != "VegaMovies" {
			t.Errorf("siteTitle = %v", patch["siteTitle"])
		}
		if v, ok := patch["siteSubtitle"]; !ok || v != "" {
			t.Errorf("siteSubtitle = %v, want present empty string", v)
		}
		if _, ok := patch["siteHeading"]; ok {
			t.Error("absent siteHeading should not be patched")
		}
	})

	t.Run("isActive never patched", func(t *testing.T) {
		dto := &UpdateSettingDTO{
			SiteTitle:           strPtr("t"),
			SiteSubtitle:        strPtr("s"),
			SiteHeading:         strPtr("h"),
			AvatarURL:           strPtr("a"),
			RememberWebsiteName: strPtr("r"),
			CurrentDomain:       strPtr("d"),
		}
		patch := buildUpdatePatch(dto, "admin@example.com", now)
		if _, ok := patch["isActive"]; ok {
			t.Error("update patch must never touch isActive")
		}
	})
}

func TestFallbackEmail(t *testing.T) {
	if got := fallbackEmail(""); got != "admin" {
		t.Errorf("fallbackEmail(\"\") = %q, want admin", got)
	}
	if got := fallbackEmail("a@b.c"); got != "a@b.c" {
		t.Errorf("fallbackEmail passthrough = %q", got)
	}
}
