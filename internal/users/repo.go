package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrInvalid  = errors.New("invalid user profile")
)

// Repo persists signed-in profiles. Upsert merges into an existing row and
// returns the stored result.
type Repo interface {
	Upsert(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}

// merge folds a fresh sign-in into the stored profile. Empty display fields
// from the provider never erase what is already known.
func merge(stored, incoming User, now time.Time) User {
	out := stored
	out.Email = incoming.Email
	if incoming.Name != "" {
		out.Name = incoming.Name
	}
	if incoming.PictureURL != "" {
		out.PictureURL = incoming.PictureURL
	}
	out.UpdatedAt = now
	return out
}
