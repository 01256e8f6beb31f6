package patient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type patientRepoFile struct {
	store *jsonstore.Store[*Patient]
}

// NewPatientRepoFile returns a PatientRepository backed by a single JSON
// array file at path.
func NewPatientRepoFile(path string, logger zerolog.Logger) PatientRepository {
	return &patientRepoFile{store: jsonstore.New[*Patient](path, logger)}
}

func (r *patientRepoFile) Create(_ context.Context, p *Patient) error {
	_, err := r.store.Append(p)
	return err
}

func (r *patientRepoFile) GetByID(_ context.Context, id int) (*Patient, error) {
	return r.store.FindOne(func(p *Patient) bool { return p.ID == id })
}

func (r *patientRepoFile) List(_ context.Context) ([]*Patient, error) {
	return r.store.LoadAll()
}
