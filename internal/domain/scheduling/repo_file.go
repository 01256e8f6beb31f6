package scheduling

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type scheduleRepoFile struct {
	store *jsonstore.Store[*Schedule]
}

// NewScheduleRepoFile returns a ScheduleRepository backed by a single JSON
// array file at path.
func NewScheduleRepoFile(path string, logger zerolog.Logger) ScheduleRepository {
	return &scheduleRepoFile{store: jsonstore.New[*Schedule](path, logger)}
}

func (r *scheduleRepoFile) Create(_ context.Context, s *Schedule) error {
	_, err := r.store.Append(s)
	return err
}

func (r *scheduleRepoFile) GetByID(_ context.Context, id int) (*Schedule, error) {
	return r.store.FindOne(func(s *Schedule) bool { return s.ID == id })
}

func (r *scheduleRepoFile) ListByPractitioner(_ context.Context, practitionerID int) ([]*Schedule, error) {
	return r.store.FindAll(func(s *Schedule) bool { return s.PractitionerID == practitionerID })
}

func (r *scheduleRepoFile) List(_ context.Context) ([]*Schedule, error) {
	return r.store.LoadAll()
}

type appointmentRepoFile struct {
	store *jsonstore.Store[*Appointment]
}

// NewAppointmentRepoFile returns an AppointmentRepository backed by a
// single JSON array file at path.
func NewAppointmentRepoFile(path string, logger zerolog.Logger) AppointmentRepository {
	return &appointmentRepoFile{store: jsonstore.New[*Appointment](path, logger)}
}

func (r *appointmentRepoFile) Create(_ context.Context, a *Appointment) error {
	_, err := r.store.Append(a)
	return err
}

func (r *appointmentRepoFile) GetByID(_ context.Context, id int) (*Appointment, error) {
	return r.store.FindOne(func(a *Appointment) bool { return a.ID == id })
}

func (r *appointmentRepoFile) ListByPatient(_ context.Context, patientID int) ([]*Appointment, error) {
	return r.store.FindAll(func(a *Appointment) bool { return a.PatientID == patientID })
}

func (r *appointmentRepoFile) List(_ context.Context) ([]*Appointment, error) {
	return r.store.LoadAll()
}
