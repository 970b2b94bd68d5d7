package models

type LogoTarget string

const (
	LogoTargetSite   LogoTarget = "site"
	LogoTargetFooter LogoTarget = "footer"
)

// SettingKey returns the setting that stores the logo URL for t along with
// its description.
func (t LogoTarget) SettingKey() (key, description string, ok bool) {
	switch t {
	case LogoTargetSite:
		return SettingSiteLogoURL, "URL do logo principal do site", true
	case LogoTargetFooter:
		return SettingFooterLogoURL, "URL do logo do rodapé", true
	}
	return "", "", false
}

// SelectLogoRequest picks a logo either from an existing gallery item or
// from a freshly uploaded image URL. Exactly one of the two is expected.
type SelectLogoRequest struct {
	GalleryID string `json:"gallery_id,omitempty" validate:"omitempty,uuid"`
	ImageURL  string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type LogoOverview struct {
	SiteLogoURL   string        `json:"site_logo_url"`
	FooterLogoURL string        `json:"footer_logo_url"`
	Categories    []string      `json:"categories"`
	Images        []GalleryItem `json:"images"`
}
