package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettingModel is a site display configuration record.
// At most one record carries IsActive=true; the setting service owns that invariant.
type SiteSettingModel struct {
	ID                  primitive.ObjectID `json:"_id"                 bson:"_id,omitempty"`
	SiteTitle           string             `json:"siteTitle"           bson:"siteTitle"`
	SiteSubtitle        string             `json:"siteSubtitle"        bson:"siteSubtitle"`
	SiteHeading         string             `json:"siteHeading"         bson:"siteHeading"`
	AvatarURL           string             `json:"avatarUrl"           bson:"avatarUrl"`
	RememberWebsiteName string             `json:"rememberWebsiteName" bson:"rememberWebsiteName"`
	CurrentDomain       string             `json:"currentDomain"       bson:"currentDomain"`
	IsActive            bool               `json:"isActive"            bson:"isActive"`
	LastUpdatedBy       string             `json:"lastUpdatedBy"       bson:"lastUpdatedBy"`
	CreatedAt           time.Time          `json:"createdAt"           bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"           bson:"updatedAt"`
}

// SiteSettingCollection is the store collection holding site settings.
const SiteSettingCollection = "site_settings"
