package scheduling

import (
	"github.com/dentcare/dentcare/internal/domain/patient"
	"github.com/dentcare/dentcare/internal/domain/practitioner"
)

// Schedule maps to one entry of the schedules collection: a weekly
// availability window for one practitioner. The practitioner reference is
// not validated on write.
type Schedule struct {
	ID             int    `json:"id"`
	PractitionerID int    `json:"practitioner_id"`
	DayOfWeek      string `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

// GetID returns the surrogate id.
func (s *Schedule) GetID() int { return s.ID }

// SetID sets the surrogate id.
func (s *Schedule) SetID(v int) { s.ID = v }

// Appointment maps to one entry of the appointments collection. Patient
// and practitioner references are not validated on write; callers that
// want referential integrity use VerifyAppointmentRefs first.
type Appointment struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"patient_id"`
	PractitionerID int    `json:"practitioner_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ServiceName    string `json:"service_name"`
}

// GetID returns the surrogate id.
func (a *Appointment) GetID() int { return a.ID }

// SetID sets the surrogate id.
func (a *Appointment) SetID(v int) { a.ID = v }

// AppointmentDetail is the read-side join of an appointment with the
// records it references.
type AppointmentDetail struct {
	Appointment  *Appointment
	Patient      *patient.Patient
	Practitioner *practitioner.Practitioner
}
