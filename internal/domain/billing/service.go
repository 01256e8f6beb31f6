package billing

import (
	"context"
	"fmt"

	"github.com/dentcare/dentcare/internal/domain/scheduling"
)

type Service struct {
	catalog      CatalogRepository
	invoices     InvoiceRepository
	appointments scheduling.AppointmentRepository
}

func NewService(catalog CatalogRepository, invoices InvoiceRepository,
	appointments scheduling.AppointmentRepository) *Service {
	return &Service{catalog: catalog, invoices: invoices, appointments: appointments}
}

// -- Catalog --

func (s *Service) RegisterItem(ctx context.Context, item *ProductOrService) error {
	if item.Name == "" {
		return fmt.Errorf("name is required")
	}
	if item.Kind != KindProduct && item.Kind != KindService {
		return fmt.Errorf("kind must be %q or %q, got %q", KindProduct, KindService, item.Kind)
	}
	if item.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return s.catalog.Create(ctx, item)
}

func (s *Service) ListCatalog(ctx context.Context) ([]*ProductOrService, error) {
	return s.catalog.List(ctx)
}

// PriceFor resolves a consumed name against the catalog by exact name and
// kind. An unmatched name prices at zero; the miss is silent.
func (s *Service) PriceFor(ctx context.Context, name string, kind Kind) float64 {
	item, err := s.catalog.GetByNameAndKind(ctx, name, kind)
	if err != nil {
		return 0
	}
	return item.Price
}

// -- Invoice --

// GenerateInvoice totals the consumed service and product names against
// the catalog and persists the invoice. The appointment id is accepted as
// given, without checking that the appointment exists.
func (s *Service) GenerateInvoice(ctx context.Context, appointmentID int, services, products []string) (*Invoice, error) {
	if appointmentID == 0 {
		return nil, fmt.Errorf("appointment_id is required")
	}
	total := 0.0
	for _, name := range services {
		total += s.PriceFor(ctx, name, KindService)
	}
	for _, name := range products {
		total += s.PriceFor(ctx, name, KindProduct)
	}
	if services == nil {
		services = []string{}
	}
	if products == nil {
		products = []string{}
	}
	inv := &Invoice{
		AppointmentID: appointmentID,
		Services:      services,
		Products:      products,
		Total:         total,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GenerateForAppointment reads the appointment and bills its own service
// name plus the consumed products. This is the one path that does resolve
// the appointment reference before writing.
func (s *Service) GenerateForAppointment(ctx context.Context, appointmentID int, products []string) (*Invoice, error) {
	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment %d: %w", appointmentID, err)
	}
	return s.GenerateInvoice(ctx, appointmentID, []string{a.ServiceName}, products)
}

func (s *Service) GetInvoice(ctx context.Context, id int) (*Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.invoices.List(ctx)
}
