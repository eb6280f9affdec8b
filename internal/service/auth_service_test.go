package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"learnhub/internal/database"
	"learnhub/internal/repository"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.RunMigrations(context.Background(), "../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	auth := NewAuthService(repository.NewUserRepository(db), time.Hour, nil)

	user, err := auth.Register(ctx, "parent@example.com", "correct-horse", "Parent")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := auth.Register(ctx, "parent@example.com", "correct-horse", "Again"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register() error = %v, want ErrEmailTaken", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "parent@example.com", password: "correct-horse"},
		{name: "wrong password", email: "parent@example.com", password: "nope-nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "correct-horse", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, got, err := auth.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error: %v", err)
			}
			if got.ID != user.ID || session.UserID != user.ID {
				t.Errorf("Login() user = %d, session user = %d, want %d", got.ID, session.UserID, user.ID)
			}

			validated, err := auth.ValidateSession(ctx, session.ID)
			if err != nil || validated.ID != user.ID {
				t.Errorf("ValidateSession() = %+v, %v", validated, err)
			}
			if err := auth.Logout(ctx, session.ID); err != nil {
				t.Fatalf("Logout() error: %v", err)
			}
			if _, err := auth.ValidateSession(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("ValidateSession() after logout = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := NewAuthService(repository.NewUserRepository(setupTestDB(t)), time.Hour, nil)
	tests := []struct {
		name, email, password, user string
	}{
		{name: "bad email", email: "not-an-email", password: "password123", user: "A"},
		{name: "short password", email: "a@example.com", password: "short", user: "A"},
		{name: "empty name", email: "a@example.com", password: "password123", user: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := auth.Register(context.Background(), tt.email, tt.password, tt.user); err == nil {
				t.Error("Register() should fail")
			}
		})
	}
}

func TestExpiredSession(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := repository.NewUserRepository(db)
	auth := NewAuthService(users, -time.Minute, nil)

	if _, err := auth.Register(ctx, "kid@example.com", "password123", "Kid"); err != nil {
		t.Fatal(err)
	}
	session, _, err := auth.Login(ctx, "kid@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ValidateSession(ctx, session.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("ValidateSession() = %v, want ErrSessionExpired", err)
	}
	if s, _ := users.GetSession(ctx, session.ID); s != nil {
		t.Error("expired session should be deleted on validation")
	}
}

func TestOAuthLogin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	auth := NewAuthService(repository.NewUserRepository(db), time.Hour, nil)

	existing, err := auth.Register(ctx, "parent@example.com", "password123", "Parent")
	if err != nil {
		t.Fatal(err)
	}

	_, linked, err := auth.OAuthLogin(ctx, "google", "sub-1", "parent@example.com", "Parent G")
	if err != nil {
		t.Fatalf("OAuthLogin() error: %v", err)
	}
	if linked.ID != existing.ID {
		t.Errorf("existing account should be linked, got user %d", linked.ID)
	}

	_, again, err := auth.OAuthLogin(ctx, "google", "sub-1", "parent@example.com", "")
	if err != nil || again.ID != existing.ID {
		t.Errorf("second OAuthLogin() = %+v, %v", again, err)
	}

	_, created, err := auth.OAuthLogin(ctx, "google", "sub-2", "newkid@example.com", "")
	if err != nil {
		t.Fatalf("OAuthLogin() new user error: %v", err)
	}
	if created.Name != "newkid" {
		t.Errorf("name = %q, want the email local part", created.Name)
	}

	if _, _, err := auth.OAuthLogin(ctx, "", "x", "a@example.com", ""); err == nil {
		t.Error("missing provider should fail")
	}
}
