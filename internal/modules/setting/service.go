package setting

import (
	"context"
	"errors"
	"time"

	"github.com/vegamovies/core/internal/database"
	"github.com/vegamovies/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound      = errors.New("site setting not found")
	ErrNoActive      = errors.New("no active site setting")
	ErrInvalidID     = errors.New("invalid setting id")
	ErrMissingTitle  = errors.New("siteTitle is required")
	ErrActiveSetting = errors.New("active site setting cannot be deleted")
)

// Service owns the single-active-record invariant over site settings.
type Service struct {
	coll *mongo.Collection
}

func NewService(store *database.Store) *Service {
	return &Service{coll: store.Collection(models.SiteSettingCollection)}
}

// Create inserts a new setting. New records are always inactive; activation
// is a separate, explicit step.
func (s *Service) Create(ctx context.Context, dto *CreateSettingDTO, adminEmail string) (*models.SiteSettingModel, error) {
	if dto.SiteTitle == "" {
		return nil, ErrMissingTitle
	}

	now := time.Now()
	doc := &models.SiteSettingModel{
		SiteTitle:           dto.SiteTitle,
		SiteSubtitle:        dto.SiteSubtitle,
		SiteHeading:         dto.SiteHeading,
		AvatarURL:           dto.AvatarURL,
		RememberWebsiteName: dto.RememberWebsiteName,
		CurrentDomain:       dto.CurrentDomain,
		IsActive:            false,
		LastUpdatedBy:       fallbackEmail(adminEmail),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

// Activate flips the active flag to the target record and off everywhere
// else in one UpdateMany with a pipeline update, so no interleaving can
// observe zero or two active records.
func (s *Service) Activate(ctx context.Context, id string) (*models.SiteSettingModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	count, err := s.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	_, err = s.coll.UpdateMany(ctx, bson.M{}, mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"isActive":  bson.M{"$eq": bson.A{"$_id", oid}},
			"updatedAt": time.Now(),
		}}},
	})
	if err != nil {
		return nil, err
	}

	var activated models.SiteSettingModel
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&activated); err != nil {
		return nil, err
	}
	return &activated, nil
}

// Update applies only the fields present in the patch and stamps
// lastUpdatedBy. The active flag is out of reach here.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateSettingDTO, adminEmail string) (*models.SiteSettingModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	patch := buildUpdatePatch(dto, fallbackEmail(adminEmail), time.Now())

	var updated models.SiteSettingModel
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

// Delete removes an inactive setting. The active record must be deactivated
// (by activating another) before it can go.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	var existing models.SiteSettingModel
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if existing.IsActive {
		return ErrActiveSetting
	}

	_, err = s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// GetActive returns the single active setting.
func (s *Service) GetActive(ctx context.Context) (*models.SiteSettingModel, error) {
	var active models.SiteSettingModel
	err := s.coll.FindOne(ctx, bson.M{"isActive": true}).Decode(&active)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoActive
	}
	if err != nil {
		return nil, err
	}
	return &active, nil
}

// ListAll returns every setting, newest first.
func (s *Service) ListAll(ctx context.Context) ([]models.SiteSettingModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	settings := []models.SiteSettingModel{}
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// buildUpdatePatch converts the partial DTO into a $set document. Present
// keys land even when empty, matching overwrite-with-empty semantics.
func buildUpdatePatch(dto *UpdateSettingDTO, adminEmail string, now time.Time) bson.M {
	patch := bson.M{}

	setIfPresent(patch, "siteTitle", dto.SiteTitle)
	setIfPresent(patch, "siteSubtitle", dto.SiteSubtitle)
	setIfPresent(patch, "siteHeading", dto.SiteHeading)
	setIfPresent(patch, "avatarUrl", dto.AvatarURL)
	setIfPresent(patch, "rememberWebsiteName", dto.RememberWebsiteName)
	setIfPresent(patch, "currentDomain", dto.CurrentDomain)

	patch["lastUpdatedBy"] = adminEmail
	patch["updatedAt"] = now
	return patch
}

func setIfPresent(patch bson.M, key string, val *string) {
	if val != nil {
		patch[key] = *val
	}
}

func fallbackEmail(email string) string {
	if email == "" {
		return "admin"
	}
	return email
}
