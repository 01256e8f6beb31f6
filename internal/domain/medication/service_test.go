package medication

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

func newTestService(t *testing.T, legacyIDs bool) *Service {
	t.Helper()
	repo := NewHistoryRepoFile(filepath.Join(t.TempDir(), "history.json"), zerolog.Nop())
	return NewService(repo, legacyIDs)
}

func testPrescription(patientID int) *Prescription {
	return &Prescription{
		PatientID:      patientID,
		PractitionerID: 1,
		Medication:     "amoxicillin",
		Dosage:         "500mg",
		Frequency:      "every 8 hours",
		Duration:       "7 days",
		IssuedOn:       "2026-08-31",
	}
}

func TestPrescribe_CreatesHistoryLazily(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	if _, err := svc.HistoryFor(ctx, 3); !errors.Is(err, jsonstore.ErrNotFound) {
		t.Fatalf("expected no history before first prescription, got %v", err)
	}

	if _, err := svc.Prescribe(ctx, testPrescription(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h, err := svc.HistoryFor(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.PatientID != 3 {
		t.Errorf("expected history keyed by patient 3, got %d", h.PatientID)
	}
	if len(h.Prescriptions) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(h.Prescriptions))
	}
}

func TestPrescribe_LegacyIDRule(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	first, err := svc.Prescribe(ctx, testPrescription(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Prescribe(ctx, testPrescription(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The legacy rule derives the id from the grouping key, so every
	// prescription in the history carries patient_id+1.
	if first.ID != 4 || second.ID != 4 {
		t.Errorf("expected both ids to be 4, got %d and %d", first.ID, second.ID)
	}
}

func TestPrescribe_CountedIDRule(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	first, err := svc.Prescribe(ctx, testPrescription(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Prescribe(ctx, testPrescription(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestPrescribe_SeparateHistoriesPerPatient(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	svc.Prescribe(ctx, testPrescription(1))
	svc.Prescribe(ctx, testPrescription(2))
	svc.Prescribe(ctx, testPrescription(1))

	histories, err := svc.ListHistories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(histories) != 2 {
		t.Fatalf("expected 2 histories, got %d", len(histories))
	}

	h1, err := svc.HistoryFor(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h1.Prescriptions) != 2 {
		t.Errorf("expected 2 prescriptions for patient 1, got %d", len(h1.Prescriptions))
	}
}

func TestPrescribe_RequiredFields(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	p := testPrescription(1)
	p.PatientID = 0
	if _, err := svc.Prescribe(ctx, p); err == nil {
		t.Error("expected error for missing patient_id")
	}

	p = testPrescription(1)
	p.Medication = ""
	if _, err := svc.Prescribe(ctx, p); err == nil {
		t.Error("expected error for missing medication")
	}
}
