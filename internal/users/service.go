package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const guestPrefix = "guest:"

// Service owns profile normalization for accounts created by OAuth sign-in.
type Service struct {
	Repo     Repo
	validate *validator.Validate
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, validate: validator.New()}
}

type profileRules struct {
	ID         string `validate:"required,max=255"`
	Email      string `validate:"required,email,max=320"`
	Name       string `validate:"max=200"`
	PictureURL string `validate:"omitempty,url"`
}

// UpsertFromAuth stores the profile returned by the identity provider.
// Emails are compared case-insensitively so they are stored lower-cased.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	user.ID = strings.TrimSpace(user.ID)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Name = strings.TrimSpace(user.Name)
	user.PictureURL = strings.TrimSpace(user.PictureURL)

	if strings.HasPrefix(user.ID, guestPrefix) {
		return User{}, fmt.Errorf("%w: guest identities are not stored", ErrInvalid)
	}
	v := s.validate
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(profileRules{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: user.PictureURL,
	}); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.HasPrefix(userID, guestPrefix) {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}
