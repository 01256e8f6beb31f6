package scheduling

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id int) (*Schedule, error)
	ListByPractitioner(ctx context.Context, practitionerID int) ([]*Schedule, error)
	List(ctx context.Context) ([]*Schedule, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID int) ([]*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
}
