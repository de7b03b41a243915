package movie

import (
	"context"
	"time"

	"github.com/vegamovies/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const recentMovieCount = 5

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalMovies     int `json:"totalMovies"`
	PublishedMovies int `json:"publishedMovies"`
	DraftMovies     int `json:"draftMovies"`
	BlockedMovies   int `json:"blockedMovies"`
}

// RecentMovie is the display projection of a recently created movie.
type RecentMovie struct {
	ID         primitive.ObjectID `json:"_id"        bson:"_id"`
	Title      string             `json:"title"      bson:"title"`
	Slug       string             `json:"slug"       bson:"slug"`
	Poster     string             `json:"poster"     bson:"poster"`
	Status     string             `json:"status"     bson:"status"`
	Rating     float64            `json:"rating"     bson:"rating"`
	IsTrending bool               `json:"isTrending" bson:"isTrending"`
	CreatedAt  time.Time          `json:"createdAt"  bson:"createdAt"`
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int    `bson:"count"`
}

type dashboardFacet struct {
	StatusCounts []statusCount `bson:"statusCounts"`
	TotalMovies  []struct {
		Total int `bson:"total"`
	} `bson:"totalMovies"`
	RecentMovies []RecentMovie `bson:"recentMovies"`
}

// Dashboard computes per-status counts, the grand total, and the five most
// recently created movies in a single $facet pass over the collection.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, []RecentMovie, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"statusCounts": mongo.Pipeline{
				{{Key: "$group", Value: bson.M{
					"_id":   "$status",
					"count": bson.M{"$sum": 1},
				}}},
			},
			"totalMovies": mongo.Pipeline{
				{{Key: "$count", Value: "total"}},
			},
			"recentMovies": mongo.Pipeline{
				{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
				{{Key: "$limit", Value: recentMovieCount}},
				{{Key: "$project", Value: bson.M{
					"title":      1,
					"slug":       1,
					"poster":     1,
					"status":     1,
					"rating":     1,
					"isTrending": 1,
					"createdAt":  1,
				}}},
			},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return DashboardStats{}, nil, err
	}
	defer cursor.Close(ctx)

	var results []dashboardFacet
	if err := cursor.All(ctx, &results); err != nil {
		return DashboardStats{}, nil, err
	}
	if len(results) == 0 {
		return DashboardStats{}, []RecentMovie{}, nil
	}

	stats, recent := normalizeDashboard(results[0])
	return stats, recent, nil
}

// normalizeDashboard flattens the facet output; statuses without records
// stay at zero.
func normalizeDashboard(facet dashboardFacet) (DashboardStats, []RecentMovie) {
	stats := DashboardStats{}
	if len(facet.TotalMovies) > 0 {
		stats.TotalMovies = facet.TotalMovies[0].Total
	}
	for _, sc := range facet.StatusCounts {
		switch sc.Status {
		case models.StatusPublished:
			stats.PublishedMovies = sc.Count
		case models.StatusDraft:
			stats.DraftMovies = sc.Count
		case models.StatusBlocked:
			stats.BlockedMovies = sc.Count
		}
	}

	recent := facet.RecentMovies
	if recent == nil {
		recent = []RecentMovie{}
	}
	return stats, recent
}
