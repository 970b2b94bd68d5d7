package models

// CookiePreferences is stored as JSON in the gdpr-consent cookie.
type CookiePreferences struct {
	Necessary bool `json:"necessary"`
	Analytics bool `json:"analytics"`
	Marketing bool `json:"marketing"`
}

type ConsentChoice string

const (
	ConsentAll       ConsentChoice = "all"
	ConsentNecessary ConsentChoice = "necessary"
	ConsentCustom    ConsentChoice = "custom"
)

type ConsentForm struct {
	Choice    ConsentChoice `schema:"choice" validate:"required,oneof=all necessary custom"`
	Analytics bool          `schema:"analytics"`
	Marketing bool          `schema:"marketing"`
	Redirect  string        `schema:"redirect"`
}

// Preferences resolves the submitted choice. Necessary cookies are always on.
func (f ConsentForm) Preferences() CookiePreferences {
	switch f.Choice {
	case ConsentAll:
		return CookiePreferences{Necessary: true, Analytics: true, Marketing: true}
	case ConsentCustom:
		return CookiePreferences{Necessary: true, Analytics: f.Analytics, Marketing: f.Marketing}
	default:
		return CookiePreferences{Necessary: true}
	}
}
