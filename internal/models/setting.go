package models

import "time"

const (
	SettingSiteTitle    = "site_title"
	SettingAnnouncement = "announcement"
	SettingContact      = "contact"
)

// PublicSettingKeys are the only keys admins may write and the storefront may read.
var PublicSettingKeys = []string{SettingSiteTitle, SettingAnnouncement, SettingContact}

type SystemSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BaseConfigResponse struct {
	SiteTitle string `json:"site_title"`
}
