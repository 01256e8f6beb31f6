package medication

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type historyRepoFile struct {
	store *jsonstore.Store[*History]
}

// NewHistoryRepoFile returns a HistoryRepository backed by a single JSON
// array file at path.
func NewHistoryRepoFile(path string, logger zerolog.Logger) HistoryRepository {
	return &historyRepoFile{store: jsonstore.New[*History](path, logger)}
}

func (r *historyRepoFile) GetByPatient(_ context.Context, patientID int) (*History, error) {
	return r.store.FindOne(func(h *History) bool { return h.PatientID == patientID })
}

func (r *historyRepoFile) Save(_ context.Context, h *History) error {
	// Upsert, not Append: the history is keyed by patient id and must
	// never receive a surrogate of its own.
	return r.store.Upsert(h)
}

func (r *historyRepoFile) List(_ context.Context) ([]*History, error) {
	return r.store.LoadAll()
}
