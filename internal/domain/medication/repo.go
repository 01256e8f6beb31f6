package medication

import "context"

type HistoryRepository interface {
	GetByPatient(ctx context.Context, patientID int) (*History, error)
	// Save inserts or replaces the history keyed by its patient id.
	Save(ctx context.Context, h *History) error
	List(ctx context.Context) ([]*History, error)
}
