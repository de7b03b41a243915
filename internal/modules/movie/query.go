package movie

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vegamovies/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// Pagination returns the effective page (>= 1) and limit (clamped to [1,50]).
func (q ListQuery) Pagination() (page, limit int) {
	page = parseIntOr(q.Page, defaultPage)
	if page < 1 {
		page = 1
	}
	limit = parseIntOr(q.Limit, defaultLimit)
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// Match builds the conjunction filter. Each clause is added only when its
// query param is present and valid; an empty query matches everything.
func (q ListQuery) Match() bson.M {
	match := bson.M{}

	if models.IsAllowedStatus(q.Status) {
		match["status"] = q.Status
	}

	switch q.IsTrending {
	case "true":
		match["isTrending"] = true
	case "false":
		match["isTrending"] = false
	}

	if q.Language != "" {
		match["language"] = bson.M{"$in": []string{q.Language}}
	}
	if q.Quality != "" {
		match["quality"] = bson.M{"$in": []string{q.Quality}}
	}

	if q.MinRating != "" {
		if min, err := strconv.ParseFloat(strings.TrimSpace(q.MinRating), 64); err == nil {
			match["rating"] = bson.M{"$gte": min}
		}
	}
	if q.Year != "" {
		if year, err := strconv.Atoi(strings.TrimSpace(q.Year)); err == nil {
			match["releaseYear"] = year
		}
	}

	if q.Search != "" {
		match["title"] = bson.M{
			"$regex":   regexp.QuoteMeta(q.Search),
			"$options": "i",
		}
	}

	return match
}

// Sort returns the pipeline sort stage: newest first, trending records
// floated to the top when the trending filter is on.
func (q ListQuery) Sort() bson.D {
	if q.IsTrending == "true" {
		return bson.D{
			{Key: "isTrending", Value: -1},
			{Key: "createdAt", Value: -1},
		}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
