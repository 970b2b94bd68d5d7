package middleware

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"cwdp/internal/interfaces"
)

// RequireAdmin must run after JWTAuth. The role is read from the stored
// profile, not the token, so demoting an admin takes effect immediately.
func RequireAdmin(profiles interfaces.ProfileRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := UserID(r.Context())
			if id == "" {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}

			profile, err := profiles.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeAuthError(w, http.StatusForbidden, "forbidden", "Admin access required")
					return
				}
				log.Printf("Error loading profile %s: %v", id, err)
				writeAuthError(w, http.StatusInternalServerError, "profile_lookup_failed", "Failed to verify access")
				return
			}
			if !profile.IsAdmin() {
				writeAuthError(w, http.StatusForbidden, "forbidden", "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
