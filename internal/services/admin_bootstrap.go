package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

var ErrAdminCredentials = errors.New("admin email and password must both be set")

// EnsureAdmin makes sure an admin profile exists for email, resetting its
// password hash. Nothing happens when neither value is configured.
func EnsureAdmin(ctx context.Context, profiles interfaces.ProfileRepository, email, password string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" && password == "" {
		return nil, nil
	}
	if email == "" || password == "" {
		return nil, ErrAdminCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	profile := &models.Profile{Email: email, PasswordHash: string(hash)}
	if err := profiles.UpsertAdmin(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
