package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/searchproxy/internal/domain"
	"github.com/msomdec/searchproxy/internal/repository/sqlite"
	"github.com/msomdec/searchproxy/internal/service"
)

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath, time.Second)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), service.NewPasswordHasher(4))
	return auth, db
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "asdf", "secret", "a@b.de", "A. Sdf")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.Username != "asdf" {
		t.Fatalf("expected username asdf, got %s", user.Username)
	}
	if user.Disabled {
		t.Fatal("expected new user to be enabled")
	}
	if user.HashedPassword == "secret" || user.HashedPassword == "" {
		t.Fatal("expected password to be stored hashed")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "asdf", "pw1", "", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := auth.Register(ctx, "asdf", "pw2", "", "")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The stored record must still carry the original password's hash.
	if _, err := auth.Authenticate(ctx, "asdf", "pw1"); err != nil {
		t.Fatalf("Authenticate with original password: %v", err)
	}
	if _, err := auth.Authenticate(ctx, "asdf", "pw2"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for rejected password, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "asdf", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tc.username, tc.password, "", "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "bob", "correct-horse", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := auth.Authenticate(ctx, "bob", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("expected username bob, got %s", user.Username)
	}
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "bob", "correct-horse", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// A wrong password and an unknown user collapse to the same error.
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "bob", "wrong"},
		{"unknown user", "ghost", "anything"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Authenticate(ctx, tc.username, tc.password)
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_DisabledUserStillAuthenticates(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "asdf", "secret", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user.Disabled = true
	if err := db.Users().Upsert(ctx, user); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// The disabled flag is enforced by the guards, not here.
	got, err := auth.Authenticate(ctx, "asdf", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !got.Disabled {
		t.Fatal("expected returned record to carry the disabled flag")
	}
}
