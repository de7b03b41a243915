package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie status lifecycle values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusBlocked   = "blocked"
)

// AllowedStatuses are the only accepted movie status values.
var AllowedStatuses = []string{StatusDraft, StatusPublished, StatusBlocked}

// AllowedQualities are the only accepted video quality labels.
var AllowedQualities = []string{"480p", "720p", "1080p", "4K"}

// MovieModel is a movie listing record.
// ReleaseDate is an opaque number carried through as-is; the UI owns its meaning.
type MovieModel struct {
	ID          primitive.ObjectID `json:"_id"                   bson:"_id,omitempty"`
	Title       string             `json:"title"                 bson:"title"`
	Slug        string             `json:"slug"                  bson:"slug"`
	Description string             `json:"description"           bson:"description"`
	ReleaseDate *float64           `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	ReleaseYear *int               `json:"releaseYear,omitempty" bson:"releaseYear,omitempty"`
	Duration    *float64           `json:"duration,omitempty"    bson:"duration,omitempty"`
	Language    StringSet          `json:"language"              bson:"language"`
	Poster      string             `json:"poster"                bson:"poster"`
	Quality     StringSet          `json:"quality"               bson:"quality"`
	RedirectURL string             `json:"redirectUrl"           bson:"redirectUrl"`
	Rating      float64            `json:"rating"                bson:"rating"`
	Status      string             `json:"status"                bson:"status"`
	IsTrending  bool               `json:"isTrending"            bson:"isTrending"`
	CreatedAt   time.Time          `json:"createdAt"             bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"             bson:"updatedAt"`
}

// MovieCollection is the store collection holding movies.
const MovieCollection = "movies"

// IsAllowedStatus reports whether s is a recognized movie status.
func IsAllowedStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}
