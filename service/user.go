package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/data/repository"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/structs"
)

const (
	userNotFound = "User not found"
	emailTaken   = "Email already in use"
)

// UserService handles profile reads and updates.
type UserService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(d *data.Data, l *logger.Logger) *UserService {
	return &UserService{data: d, logger: l}
}

// UpdateProfileRequest lists the profile fields a user may change. Empty
// values keep the stored value.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
}

// Exists reports whether the user id resolves to a stored user.
func (s *UserService) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.data.UserRepo.FindByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	}
	return false, err
}

// GetMe returns the caller's public profile.
func (s *UserService) GetMe(ctx context.Context, id string) (*structs.Profile, error) {
	user, err := s.data.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, userNotFound, "")
	}
	return user.Profile(), nil
}

// UpdateMe changes the caller's name and email.
func (s *UserService) UpdateMe(ctx context.Context, id string, req *UpdateProfileRequest) (*structs.Profile, error) {
	user, err := s.data.UserRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, userNotFound, "")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(req.Email); email != "" {
		if !validEmail(email) {
			return nil, ValidationError("email is invalid")
		}
		user.Email = email
	}

	updated, err := s.data.UserRepo.Update(ctx, user)
	if err != nil {
		return nil, translate(err, userNotFound, emailTaken)
	}
	return updated.Profile(), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
