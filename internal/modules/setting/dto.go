package setting

// CreateSettingDTO is the request body for creating a site setting.
// isActive is deliberately absent: new settings always start inactive.
type CreateSettingDTO struct {
	SiteTitle           string `json:"siteTitle"`
	SiteSubtitle        string `json:"siteSubtitle"`
	SiteHeading         string `json:"siteHeading"`
	AvatarURL           string `json:"avatarUrl"`
	RememberWebsiteName string `json:"rememberWebsiteName"`
	CurrentDomain       string `json:"currentDomain"`
}

// UpdateSettingDTO is the partial-patch body. Pointer fields distinguish
// absent keys from explicit empty strings; isActive cannot be patched here,
// activation has its own endpoint.
type UpdateSettingDTO struct {
	SiteTitle           *string `json:"siteTitle"`
	SiteSubtitle        *string `json:"siteSubtitle"`
	SiteHeading         *string `json:"siteHeading"`
	AvatarURL           *string `json:"avatarUrl"`
	RememberWebsiteName *string `json:"rememberWebsiteName"`
	CurrentDomain       *string `json:"currentDomain"`
}
