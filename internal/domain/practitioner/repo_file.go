package practitioner

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type practitionerRepoFile struct {
	store *jsonstore.Store[*Practitioner]
}

// NewPractitionerRepoFile returns a PractitionerRepository backed by a
// single JSON array file at path.
func NewPractitionerRepoFile(path string, logger zerolog.Logger) PractitionerRepository {
	return &practitionerRepoFile{store: jsonstore.New[*Practitioner](path, logger)}
}

func (r *practitionerRepoFile) Create(_ context.Context, p *Practitioner) error {
	_, err := r.store.Append(p)
	return err
}

func (r *practitionerRepoFile) GetByID(_ context.Context, id int) (*Practitioner, error) {
	return r.store.FindOne(func(p *Practitioner) bool { return p.ID == id })
}

func (r *practitionerRepoFile) List(_ context.Context) ([]*Practitioner, error) {
	return r.store.LoadAll()
}
