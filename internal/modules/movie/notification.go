package movie

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vegamovies/core/internal/models"
	"github.com/vegamovies/core/internal/pkg/timeago"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationFeedSize = 10

// NotificationItem is a derived feed entry for a recently published movie.
// IsSeen is always false: there is no per-user read state.
type NotificationItem struct {
	ID        primitive.ObjectID `json:"id"`
	Title     string             `json:"title"`
	Subtitle  string             `json:"subtitle"`
	Link      string             `json:"link"`
	Time      string             `json:"time"`
	IsSeen    bool               `json:"isSeen"`
	Type      string             `json:"type"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Notifications derives the feed from the ten most recently published movies.
func (s *Service) Notifications(ctx context.Context) ([]NotificationItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(notificationFeedSize).
		SetProjection(bson.M{
			"title":       1,
			"slug":        1,
			"quality":     1,
			"language":    1,
			"createdAt":   1,
			"isTrending":  1,
			"redirectUrl": 1,
		})

	cursor, err := s.coll.Find(ctx, bson.M{"status": models.StatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.MovieModel
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	now := time.Now()
	feed := make([]NotificationItem, len(movies))
	for i, m := range movies {
		feed[i] = buildNotification(&m, now)
	}
	return feed, nil
}

// buildNotification maps one movie to its feed entry. The title year comes
// from the record's creation time, not releaseYear.
func buildNotification(m *models.MovieModel, now time.Time) NotificationItem {
	languages := strings.Join(m.Language, " + ")
	qualities := strings.Join(m.Quality, " / ")

	subtitle := "Now available for download"
	if qualities != "" {
		subtitle = "Download now available in " + qualities
	}

	feedType := "movie"
	if m.IsTrending {
		feedType = "trending"
	}

	return NotificationItem{
		ID:        m.ID,
		Title:     fmt.Sprintf("%s (%d) %s", m.Title, m.CreatedAt.Year(), languages),
		Subtitle:  subtitle,
		Link:      m.RedirectURL,
		Time:      timeago.Format(m.CreatedAt, now),
		IsSeen:    false,
		Type:      feedType,
		CreatedAt: m.CreatedAt,
	}
}
