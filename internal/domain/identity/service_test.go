package identity

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewUserRepoFile(filepath.Join(t.TempDir(), "users.json"), zerolog.Nop())
}

func registerTestUser(t *testing.T, svc *Service, email, password string) *User {
	t.Helper()
	u := &User{Name: "Ana Perez", BadgeNumber: 1001, Email: email, Password: password, Role: "receptionist"}
	if err := svc.Register(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}

func TestRegister(t *testing.T) {
	svc := NewService(newTestRepo(t))
	u := registerTestUser(t, svc, "ana@clinic.test", "secret")
	if u.ID != 1 {
		t.Errorf("expected id 1, got %d", u.ID)
	}
	if !u.Enabled {
		t.Error("expected new user to be enabled")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	dup := &User{Name: "Other", Email: "ana@clinic.test", Password: "other"}
	err := svc.Register(context.Background(), dup)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected collection unchanged at 1 user, got %d", len(users))
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(newTestRepo(t))
	if err := svc.Register(context.Background(), &User{Email: "x@y", Password: "p"}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.Register(context.Background(), &User{Name: "n", Password: "p"}); err == nil {
		t.Error("expected error for missing email")
	}
	if err := svc.Register(context.Background(), &User{Name: "n", Email: "x@y"}); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestEditUser(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	u, err := svc.EditUser(context.Background(), "ana@clinic.test", "secret", FieldName, "Ana Maria Perez")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Ana Maria Perez" {
		t.Errorf("expected updated name, got %q", u.Name)
	}

	u, err = svc.EditUser(context.Background(), "ana@clinic.test", "secret", FieldBadgeNumber, "2002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.BadgeNumber != 2002 {
		t.Errorf("expected badge 2002, got %d", u.BadgeNumber)
	}
}

func TestEditUser_WrongPassword(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	_, err := svc.EditUser(context.Background(), "ana@clinic.test", "wrong", FieldName, "X")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEditUser_UnknownField(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	_, err := svc.EditUser(context.Background(), "ana@clinic.test", "secret", "role", "admin")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestEditUser_BadgeMustBeInteger(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	_, err := svc.EditUser(context.Background(), "ana@clinic.test", "secret", FieldBadgeNumber, "abc")
	if err == nil {
		t.Error("expected error for non-integer badge number")
	}
}

func TestDisable(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	u, err := svc.Disable(context.Background(), "ana@clinic.test", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Enabled {
		t.Error("expected user disabled")
	}

	stored, err := repo.GetByEmail(context.Background(), "ana@clinic.test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Enabled {
		t.Error("expected disabled flag persisted")
	}
}

func TestDisable_WrongCredentials(t *testing.T) {
	svc := NewService(newTestRepo(t))
	registerTestUser(t, svc, "ana@clinic.test", "secret")

	_, err := svc.Disable(context.Background(), "ana@clinic.test", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
