package site

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"cwdp/internal/models"
)

const (
	ConsentCookieName = "gdpr-consent"
	consentMaxAge     = 365 * 24 * time.Hour
)

// ReadConsent returns the stored cookie preferences. ok is false when the
// visitor has not chosen yet or the cookie cannot be read, in which case the
// banner is shown again.
func ReadConsent(r *http.Request) (prefs models.CookiePreferences, ok bool) {
	c, err := r.Cookie(ConsentCookieName)
	if err != nil {
		return prefs, false
	}
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return prefs, false
	}
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return models.CookiePreferences{}, false
	}
	prefs.Necessary = true
	return prefs, true
}

func WriteConsent(w http.ResponseWriter, prefs models.CookiePreferences, secure bool) error {
	prefs.Necessary = true
	b, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ConsentCookieName,
		Value:    url.QueryEscape(string(b)),
		Path:     "/",
		MaxAge:   int(consentMaxAge.Seconds()),
		Expires:  time.Now().Add(consentMaxAge),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
