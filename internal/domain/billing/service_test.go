package billing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/domain/scheduling"
	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type testEnv struct {
	svc          *Service
	appointments scheduling.AppointmentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	appointments := scheduling.NewAppointmentRepoFile(filepath.Join(dir, "appointments.json"), zerolog.Nop())
	svc := NewService(
		NewCatalogRepoFile(filepath.Join(dir, "products_services.json"), zerolog.Nop()),
		NewInvoiceRepoFile(filepath.Join(dir, "invoices.json"), zerolog.Nop()),
		appointments,
	)
	return &testEnv{svc: svc, appointments: appointments}
}

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	items := []*ProductOrService{
		{Name: "cleaning", Kind: KindService, Price: 150},
		{Name: "fluoride gel", Kind: KindProduct, Price: 50},
	}
	for _, item := range items {
		if err := env.svc.RegisterItem(ctx, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestRegisterItem_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.svc.RegisterItem(ctx, &ProductOrService{Kind: KindService, Price: 10}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := env.svc.RegisterItem(ctx, &ProductOrService{Name: "x", Kind: "bundle", Price: 10}); err == nil {
		t.Error("expected error for invalid kind")
	}
	if err := env.svc.RegisterItem(ctx, &ProductOrService{Name: "x", Kind: KindProduct, Price: -1}); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestGenerateInvoice_TotalsMatchedItems(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	inv, err := env.svc.GenerateInvoice(context.Background(), 1,
		[]string{"cleaning"}, []string{"fluoride gel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Total != 200 {
		t.Errorf("expected total 200, got %v", inv.Total)
	}
	if inv.ID != 1 {
		t.Errorf("expected invoice id 1, got %d", inv.ID)
	}
}

func TestGenerateInvoice_UnmatchedNameContributesZero(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	inv, err := env.svc.GenerateInvoice(context.Background(), 1,
		[]string{"cleaning", "whitening"}, []string{"fluoride gel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "whitening" has no catalog entry and silently prices at zero.
	if inv.Total != 200 {
		t.Errorf("expected total 200, got %v", inv.Total)
	}
}

func TestGenerateInvoice_KindMismatchContributesZero(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	// "cleaning" exists only as a service; consuming it as a product
	// misses the catalog.
	inv, err := env.svc.GenerateInvoice(context.Background(), 1,
		nil, []string{"cleaning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Total != 0 {
		t.Errorf("expected total 0, got %v", inv.Total)
	}
}

func TestGenerateForAppointment(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	a := &scheduling.Appointment{PatientID: 1, PractitionerID: 1, Date: "2026-09-01", Time: "10:00", ServiceName: "cleaning"}
	if err := env.appointments.Create(ctx, a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv, err := env.svc.GenerateForAppointment(ctx, a.ID, []string{"fluoride gel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Total != 200 {
		t.Errorf("expected total 200, got %v", inv.Total)
	}
	if inv.AppointmentID != a.ID {
		t.Errorf("expected appointment id %d, got %d", a.ID, inv.AppointmentID)
	}
}

func TestGenerateForAppointment_UnknownAppointment(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	_, err := env.svc.GenerateForAppointment(context.Background(), 99, nil)
	if !errors.Is(err, jsonstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPriceFor(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)
	ctx := context.Background()

	if got := env.svc.PriceFor(ctx, "cleaning", KindService); got != 150 {
		t.Errorf("expected 150, got %v", got)
	}
	if got := env.svc.PriceFor(ctx, "nothing", KindService); got != 0 {
		t.Errorf("expected 0 for unmatched name, got %v", got)
	}
}
