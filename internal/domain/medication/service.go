package medication

import (
	"context"
	"fmt"
)

type Service struct {
	histories HistoryRepository
	// legacyIDs selects the historical prescription id rule: the grouping
	// key plus one, which gives every prescription in the same history the
	// same id. When false, prescriptions are numbered by their position in
	// the history instead.
	legacyIDs bool
}

func NewService(histories HistoryRepository, legacyIDs bool) *Service {
	return &Service{histories: histories, legacyIDs: legacyIDs}
}

// Prescribe appends a prescription to the patient's history, creating the
// history lazily on the first prescription.
func (s *Service) Prescribe(ctx context.Context, p *Prescription) (*Prescription, error) {
	if p.PatientID == 0 {
		return nil, fmt.Errorf("patient_id is required")
	}
	if p.PractitionerID == 0 {
		return nil, fmt.Errorf("practitioner_id is required")
	}
	if p.Medication == "" {
		return nil, fmt.Errorf("medication is required")
	}
	if p.Dosage == "" {
		return nil, fmt.Errorf("dosage is required")
	}

	h, err := s.histories.GetByPatient(ctx, p.PatientID)
	if err != nil {
		h = &History{PatientID: p.PatientID}
	}

	if s.legacyIDs {
		p.ID = h.PatientID + 1
	} else {
		p.ID = len(h.Prescriptions) + 1
	}

	h.Prescriptions = append(h.Prescriptions, p)
	if err := s.histories.Save(ctx, h); err != nil {
		return nil, err
	}
	return p, nil
}

// HistoryFor returns the patient's history. A patient with no
// prescriptions has no history record; the lookup misses.
func (s *Service) HistoryFor(ctx context.Context, patientID int) (*History, error) {
	return s.histories.GetByPatient(ctx, patientID)
}

func (s *Service) ListHistories(ctx context.Context) ([]*History, error) {
	return s.histories.List(ctx)
}
