package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmailTaken is returned when registration finds another user with
	// the same email. Uniqueness is enforced at registration only; EditUser
	// does not re-check it.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrUnknownField is returned for an EditUser field outside the
	// editable set.
	ErrUnknownField = errors.New("unknown editable field")
)

// Editable user fields accepted by EditUser.
const (
	FieldName        = "name"
	FieldBadgeNumber = "badge_number"
	FieldEmail       = "email"
	FieldPassword    = "password"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Register persists a new user with the next surrogate id. The email must
// not match an existing user's, compared exactly; on rejection the
// collection is left untouched.
func (s *Service) Register(ctx context.Context, u *User) error {
	if u.Name == "" {
		return fmt.Errorf("name is required")
	}
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.Password == "" {
		return fmt.Errorf("password is required")
	}
	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return ErrEmailTaken
	}
	u.Enabled = true
	return s.users.Create(ctx, u)
}

// EditUser re-validates the caller's credentials, applies the single field
// change and persists it. Changing the email does not check for collision
// with another user. The interactive yes/no confirmation belongs to the
// caller; once invoked, this persists unconditionally.
func (s *Service) EditUser(ctx context.Context, email, password, field, value string) (*User, error) {
	u, err := s.users.GetByCredentials(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	switch field {
	case FieldName:
		u.Name = value
	case FieldBadgeNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("badge_number must be an integer: %w", err)
		}
		u.BadgeNumber = n
	case FieldEmail:
		u.Email = value
	case FieldPassword:
		u.Password = value
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Disable re-validates the caller's credentials and clears the enabled
// flag. It never touches session state: a live session for this user stays
// logged in, pointing at a now-disabled record.
func (s *Service) Disable(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.GetByCredentials(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u.Enabled = false
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.users.List(ctx)
}
