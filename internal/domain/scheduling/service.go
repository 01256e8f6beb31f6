package scheduling

import (
	"context"
	"fmt"

	"github.com/dentcare/dentcare/internal/domain/patient"
	"github.com/dentcare/dentcare/internal/domain/practitioner"
)

type Service struct {
	schedules     ScheduleRepository
	appointments  AppointmentRepository
	patients      patient.PatientRepository
	practitioners practitioner.PractitionerRepository
}

func NewService(schedules ScheduleRepository, appointments AppointmentRepository,
	patients patient.PatientRepository, practitioners practitioner.PractitionerRepository) *Service {
	return &Service{
		schedules:     schedules,
		appointments:  appointments,
		patients:      patients,
		practitioners: practitioners,
	}
}

// -- Schedule --

// CreateSchedule persists an availability window. The practitioner id is
// accepted as given, without checking that the practitioner exists.
func (s *Service) CreateSchedule(ctx context.Context, sched *Schedule) error {
	if sched.PractitionerID == 0 {
		return fmt.Errorf("practitioner_id is required")
	}
	if sched.DayOfWeek == "" {
		return fmt.Errorf("day_of_week is required")
	}
	if sched.StartTime == "" || sched.EndTime == "" {
		return fmt.Errorf("start_time and end_time are required")
	}
	return s.schedules.Create(ctx, sched)
}

func (s *Service) ListSchedulesByPractitioner(ctx context.Context, practitionerID int) ([]*Schedule, error) {
	return s.schedules.ListByPractitioner(ctx, practitionerID)
}

func (s *Service) ListSchedules(ctx context.Context) ([]*Schedule, error) {
	return s.schedules.List(ctx)
}

// -- Appointment --

// CreateAppointment persists an appointment. Patient and practitioner ids
// are accepted as given; callers wanting referential integrity run
// VerifyAppointmentRefs first.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if a.PractitionerID == 0 {
		return fmt.Errorf("practitioner_id is required")
	}
	if a.Date == "" || a.Time == "" {
		return fmt.Errorf("date and time are required")
	}
	if a.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id int) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointmentsByPatient(ctx context.Context, patientID int) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

// -- Relational lookups --

// ResolveAppointment joins an appointment with its patient and
// practitioner. Each collection is loaded independently; a dangling
// reference surfaces as the underlying not-found error.
func (s *Service) ResolveAppointment(ctx context.Context, id int) (*AppointmentDetail, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %d: %w", id, err)
	}
	p, err := s.patients.GetByID(ctx, a.PatientID)
	if err != nil {
		return nil, fmt.Errorf("appointment %d: patient %d: %w", id, a.PatientID, err)
	}
	d, err := s.practitioners.GetByID(ctx, a.PractitionerID)
	if err != nil {
		return nil, fmt.Errorf("appointment %d: practitioner %d: %w", id, a.PractitionerID, err)
	}
	return &AppointmentDetail{Appointment: a, Patient: p, Practitioner: d}, nil
}

// VerifyAppointmentRefs checks that the referenced patient and
// practitioner exist. Opt-in: CreateAppointment never calls it.
func (s *Service) VerifyAppointmentRefs(ctx context.Context, a *Appointment) error {
	if _, err := s.patients.GetByID(ctx, a.PatientID); err != nil {
		return fmt.Errorf("patient %d: %w", a.PatientID, err)
	}
	if _, err := s.practitioners.GetByID(ctx, a.PractitionerID); err != nil {
		return fmt.Errorf("practitioner %d: %w", a.PractitionerID, err)
	}
	return nil
}

// VerifyScheduleRefs checks that the referenced practitioner exists.
// Opt-in: CreateSchedule never calls it.
func (s *Service) VerifyScheduleRefs(ctx context.Context, sched *Schedule) error {
	if _, err := s.practitioners.GetByID(ctx, sched.PractitionerID); err != nil {
		return fmt.Errorf("practitioner %d: %w", sched.PractitionerID, err)
	}
	return nil
}
