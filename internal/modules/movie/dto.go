package movie

import (
	"github.com/vegamovies/core/internal/models"
)

// CreateMovieDTO is the request body for creating a movie.
// Loose field types mirror what the public admin panel actually sends:
// numbers may arrive as strings, language/quality as string or array.
type CreateMovieDTO struct {
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	ReleaseDate *models.FlexNumber `json:"releaseDate"`
	ReleaseYear *models.FlexNumber `json:"releaseYear"`
	Duration    *models.FlexNumber `json:"duration"`
	Language    models.StringSet   `json:"language"`
	Poster      string             `json:"poster"`
	Quality     models.StringSet   `json:"quality"`
	RedirectURL string             `json:"redirectUrl"`
	Rating      *models.FlexNumber `json:"rating"`
	Status      string             `json:"status"`
	IsTrending  models.FlexBool    `json:"isTrending"`
}

// UpdateMovieDTO is the partial-patch body. Only keys present in the payload
// are applied; pointer fields distinguish absent from zero-valued.
type UpdateMovieDTO struct {
	Title       *string            `json:"title"`
	Slug        *string            `json:"slug"`
	Description *string            `json:"description"`
	ReleaseDate *models.FlexNumber `json:"releaseDate"`
	ReleaseYear *models.FlexNumber `json:"releaseYear"`
	Duration    *models.FlexNumber `json:"duration"`
	Language    *models.StringSet  `json:"language"`
	Poster      *string            `json:"poster"`
	Quality     *models.StringSet  `json:"quality"`
	RedirectURL *string            `json:"redirectUrl"`
	Rating      *models.FlexNumber `json:"rating"`
	Status      *string            `json:"status"`
	IsTrending  *models.FlexBool   `json:"isTrending"`
}

// DeleteMovieDTO carries the target id in the request body.
type DeleteMovieDTO struct {
	ID string `json:"id"`
}

// ListQuery holds the raw movie listing query params. Parsing is lenient:
// absent or invalid values drop the corresponding filter instead of erroring.
type ListQuery struct {
	Page       string `form:"page"`
	Limit      string `form:"limit"`
	IsTrending string `form:"isTrending"`
	Status     string `form:"status"`
	Language   string `form:"language"`
	Quality    string `form:"quality"`
	MinRating  string `form:"minRating"`
	Search     string `form:"search"`
	Year       string `form:"year"`
}
