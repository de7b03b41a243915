package movie

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vegamovies/core/internal/database"
	"github.com/vegamovies/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("movie not found")
	ErrInvalidID      = errors.New("invalid movie id")
	ErrMissingFields  = errors.New("required fields missing")
	ErrInvalidSlug    = errors.New("invalid slug format")
	ErrSlugTaken      = errors.New("slug already exists")
	ErrInvalidStatus  = errors.New("invalid status value")
	ErrInvalidQuality = errors.New("invalid quality value")
	ErrInvalidRating  = errors.New("rating must be between 0 and 10")
)

// RequiredCreateFields is echoed in the validation error payload.
var RequiredCreateFields = []string{"title", "slug", "description", "poster", "redirectUrl"}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Service handles movie persistence and querying.
type Service struct {
	coll *mongo.Collection
}

func NewService(store *database.Store) *Service {
	return &Service{coll: store.Collection(models.MovieCollection)}
}

// List runs the filtered, paginated aggregation. hasMore uses the full-page
// heuristic: true iff the returned page is exactly full, which reports a
// false negative when the total count is an exact multiple of the limit.
func (s *Service) List(ctx context.Context, q ListQuery) ([]models.MovieModel, int, int, error) {
	page, limit := q.Pagination()
	skip := (page - 1) * limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Match()}},
		{{Key: "$sort", Value: q.Sort()}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, page, limit, err
	}
	defer cursor.Close(ctx)

	movies := []models.MovieModel{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, page, limit, err
	}
	return movies, page, limit, nil
}

// Create validates and inserts a new movie.
func (s *Service) Create(ctx context.Context, dto *CreateMovieDTO) (*models.MovieModel, error) {
	if dto.Title == "" || dto.Slug == "" || dto.Description == "" || dto.Poster == "" || dto.RedirectURL == "" {
		return nil, ErrMissingFields
	}
	if !slugPattern.MatchString(dto.Slug) {
		return nil, ErrInvalidSlug
	}

	slug := normalizeSlug(dto.Slug)
	count, err := s.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	doc, err := buildCreateDocument(dto, slug, time.Now())
	if err != nil {
		return nil, err
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

// Update applies a partial patch and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateMovieDTO) (*models.MovieModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	patch, err := buildUpdatePatch(dto, time.Now())
	if err != nil {
		return nil, err
	}

	if slug, ok := patch["slug"].(string); ok {
		count, err := s.coll.CountDocuments(ctx, bson.M{
			"slug": slug,
			"_id":  bson.M{"$ne": oid},
		})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
	}

	var updated models.MovieModel
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a movie by id, returning the deleted record for the
// response summary.
func (s *Service) Delete(ctx context.Context, id string) (*models.MovieModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var deleted models.MovieModel
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetByID fetches a single movie regardless of status.
func (s *Service) GetByID(ctx context.Context, id string) (*models.MovieModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var m models.MovieModel
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// buildCreateDocument assembles the stored record from a validated create
// request. Numeric fields are set only when present in the payload.
func buildCreateDocument(dto *CreateMovieDTO, slug string, now time.Time) (*models.MovieModel, error) {
	status := dto.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.IsAllowedStatus(status) {
		return nil, ErrInvalidStatus
	}

	quality := emptyIfNil(dto.Quality)
	if err := validateQuality(quality); err != nil {
		return nil, err
	}

	rating := 0.0
	if dto.Rating != nil {
		rating = dto.Rating.Float()
	}
	if rating < 0 || rating > 10 {
		return nil, ErrInvalidRating
	}

	doc := &models.MovieModel{
		Title:       strings.TrimSpace(dto.Title),
		Slug:        slug,
		Description: strings.TrimSpace(dto.Description),
		Language:    emptyIfNil(dto.Language),
		Poster:      strings.TrimSpace(dto.Poster),
		Quality:     quality,
		RedirectURL: strings.TrimSpace(dto.RedirectURL),
		Rating:      rating,
		Status:      status,
		IsTrending:  dto.IsTrending.Bool(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if dto.ReleaseDate != nil {
		v := dto.ReleaseDate.Float()
		doc.ReleaseDate = &v
	}
	if dto.ReleaseYear != nil {
		v := dto.ReleaseYear.Int()
		doc.ReleaseYear = &v
	}
	if dto.Duration != nil {
		v := dto.Duration.Float()
		doc.Duration = &v
	}
	return doc, nil
}

// buildUpdatePatch converts the partial DTO into a $set document. String
// identity fields keep the source's truthy gate (empty strings are skipped);
// numeric and boolean fields apply whenever the key is present, so an
// explicit zero still lands.
func buildUpdatePatch(dto *UpdateMovieDTO, now time.Time) (bson.M, error) {
	patch := bson.M{}

	setTrimmedIfTruthy(patch, "title", dto.Title)
	setTrimmedIfTruthy(patch, "description", dto.Description)
	setTrimmedIfTruthy(patch, "poster", dto.Poster)
	setTrimmedIfTruthy(patch, "redirectUrl", dto.RedirectURL)

	if dto.ReleaseDate != nil {
		patch["releaseDate"] = dto.ReleaseDate.Float()
	}
	if dto.ReleaseYear != nil {
		patch["releaseYear"] = dto.ReleaseYear.Int()
	}
	if dto.Duration != nil {
		patch["duration"] = dto.Duration.Float()
	}

	if dto.Language != nil {
		patch["language"] = emptyIfNil(*dto.Language)
	}
	if dto.Quality != nil {
		quality := emptyIfNil(*dto.Quality)
		if err := validateQuality(quality); err != nil {
			return nil, err
		}
		patch["quality"] = quality
	}

	if dto.Rating != nil {
		rating := dto.Rating.Float()
		if rating < 0 || rating > 10 {
			return nil, ErrInvalidRating
		}
		patch["rating"] = rating
	}

	if dto.Status != nil && *dto.Status != "" {
		if !models.IsAllowedStatus(*dto.Status) {
			return nil, ErrInvalidStatus
		}
		patch["status"] = *dto.Status
	}

	if dto.IsTrending != nil {
		patch["isTrending"] = dto.IsTrending.Bool()
	}

	if dto.Slug != nil && *dto.Slug != "" {
		if !slugPattern.MatchString(*dto.Slug) {
			return nil, ErrInvalidSlug
		}
		patch["slug"] = normalizeSlug(*dto.Slug)
	}

	patch["updatedAt"] = now
	return patch, nil
}

func setTrimmedIfTruthy(patch bson.M, key string, val *string) {
	if val == nil {
		return
	}
	if trimmed := strings.TrimSpace(*val); trimmed != "" {
		patch[key] = trimmed
	}
}

func validateQuality(set models.StringSet) error {
	for _, q := range set {
		found := false
		for _, allowed := range models.AllowedQualities {
			if q == allowed {
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidQuality
		}
	}
	return nil
}

func emptyIfNil(s models.StringSet) models.StringSet {
	if s == nil {
		return models.StringSet{}
	}
	return s
}
