package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/searchproxy/internal/domain"
)

// AuthService validates credentials against the user store and handles
// registration. It holds no state of its own beyond its collaborators.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
	}
}

// Authenticate verifies a username/password pair and returns the full
// user record, including the password hash; callers must not expose it.
// An unknown username and a wrong password both fail with
// domain.ErrUnauthorized so the two cases are indistinguishable to the
// caller. The disabled flag is not checked here; guards enforce it.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// Register creates a new enabled user account.
//
// The existence check and the upsert are not one transaction: two
// concurrent registrations of the same username can both pass the check
// and the second write wins. The normal contract stands — a duplicate
// registration fails with domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, password, email, fullName string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		FullName:       fullName,
		HashedPassword: hash,
		Disabled:       false,
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	return user, nil
}
