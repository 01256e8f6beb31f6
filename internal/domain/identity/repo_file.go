package identity

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type userRepoFile struct {
	store *jsonstore.Store[*User]
}

// NewUserRepoFile returns a UserRepository backed by a single JSON array
// file at path.
func NewUserRepoFile(path string, logger zerolog.Logger) UserRepository {
	return &userRepoFile{store: jsonstore.New[*User](path, logger)}
}

func (r *userRepoFile) Create(_ context.Context, u *User) error {
	_, err := r.store.Append(u)
	return err
}

func (r *userRepoFile) GetByEmail(_ context.Context, email string) (*User, error) {
	return r.store.FindOne(func(u *User) bool { return u.Email == email })
}

func (r *userRepoFile) GetByCredentials(_ context.Context, email, password string) (*User, error) {
	return r.store.FindOne(func(u *User) bool {
		return u.Email == email && u.Password == password
	})
}

func (r *userRepoFile) Update(_ context.Context, u *User) error {
	_, err := r.store.Update(u.ID, func(stored *User) { *stored = *u })
	return err
}

func (r *userRepoFile) List(_ context.Context) ([]*User, error) {
	return r.store.LoadAll()
}
