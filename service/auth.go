package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/data/repository"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/security/jwt"
	"github.com/ncobase/studyverse/structs"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

const invalidCredentials = "invalid credentials"

// AuthService registers users and issues access tokens.
type AuthService struct {
	data         *data.Data
	tokenManager *jwt.TokenManager
	logger       *logger.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(d *data.Data, tm *jwt.TokenManager, l *logger.Logger) *AuthService {
	return &AuthService{data: d, tokenManager: tm, logger: l}
}

// RegisterRequest represents a sign-up.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents a sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*structs.AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	switch {
	case name == "":
		return nil, ValidationError("name is required")
	case !validEmail(email):
		return nil, ValidationError("email is invalid")
	case len(req.Password) < MinPasswordLength:
		return nil, ValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.data.UserRepo.Create(ctx, &structs.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		return nil, translate(err, "", emailTaken)
	}

	s.logger.Info(ctx, "User registered", "user_id", user.ID.Hex())
	return s.issue(user)
}

// Login checks the credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*structs.AuthResult, error) {
	user, err := s.data.UserRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, UnauthorizedError(invalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, UnauthorizedError(invalidCredentials)
	}

	s.logger.Info(ctx, "User logged in", "user_id", user.ID.Hex())
	return s.issue(user)
}

func (s *AuthService) issue(user *structs.User) (*structs.AuthResult, error) {
	token, err := s.tokenManager.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &structs.AuthResult{Token: token, User: user.Profile()}, nil
}
