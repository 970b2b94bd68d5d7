package models

import (
	"strings"
	"time"
)

const (
	SettingCompanyName           = "company_name"
	SettingCompanySubtitle       = "company_subtitle"
	SettingCompanyLogo           = "company_logo"
	SettingContactPhone1         = "contact_phone1"
	SettingContactPhone2         = "contact_phone2"
	SettingContactEmail          = "contact_email"
	SettingContactEmail1         = "contact_email1"
	SettingContactEmail2         = "contact_email2"
	SettingCompanyAddress        = "company_address"
	SettingBusinessHoursWeekdays = "business_hours_weekdays"
	SettingBusinessHoursSaturday = "business_hours_saturday"
	SettingStatsTitle            = "stats_title"
	SettingStatsDescription      = "stats_description"
	SettingSiteLogoURL           = "site_logo_url"
	SettingFooterLogoURL         = "footer_logo_url"
	SettingShowProjectsSection   = "show_projects_section"
)

type Setting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       *string   `json:"value,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertSettingRequest struct {
	Key         string  `json:"key" validate:"required,max=100"`
	Value       *string `json:"value"`
	Description *string `json:"description,omitempty"`
}

type BulkUpsertSettingsRequest struct {
	Settings []UpsertSettingRequest `json:"settings" validate:"required,min=1,dive"`
}

// Settings is the key to value view used by the public site.
type Settings map[string]string

// Get returns the value for key, or def when the key is missing or blank.
func (s Settings) Get(key, def string) string {
	if v, ok := s[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// Enabled reads a boolean flag. Missing keys are treated as enabled; only
// "false", "0" and "off" disable.
func (s Settings) Enabled(key string) bool {
	v, ok := s[key]
	if !ok {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "off":
		return false
	}
	return true
}

func SettingsFromList(list []Setting) Settings {
	out := make(Settings, len(list))
	for _, st := range list {
		if st.Value != nil {
			out[st.Key] = *st.Value
		} else {
			out[st.Key] = ""
		}
	}
	return out
}
