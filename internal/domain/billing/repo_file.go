package billing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/platform/jsonstore"
)

type catalogRepoFile struct {
	store *jsonstore.Store[*ProductOrService]
}

// NewCatalogRepoFile returns a CatalogRepository backed by a single JSON
// array file at path.
func NewCatalogRepoFile(path string, logger zerolog.Logger) CatalogRepository {
	return &catalogRepoFile{store: jsonstore.New[*ProductOrService](path, logger)}
}

func (r *catalogRepoFile) Create(_ context.Context, item *ProductOrService) error {
	_, err := r.store.Append(item)
	return err
}

func (r *catalogRepoFile) GetByNameAndKind(_ context.Context, name string, kind Kind) (*ProductOrService, error) {
	return r.store.FindOne(func(p *ProductOrService) bool {
		return p.Name == name && p.Kind == kind
	})
}

func (r *catalogRepoFile) List(_ context.Context) ([]*ProductOrService, error) {
	return r.store.LoadAll()
}

type invoiceRepoFile struct {
	store *jsonstore.Store[*Invoice]
}

// NewInvoiceRepoFile returns an InvoiceRepository backed by a single JSON
// array file at path.
func NewInvoiceRepoFile(path string, logger zerolog.Logger) InvoiceRepository {
	return &invoiceRepoFile{store: jsonstore.New[*Invoice](path, logger)}
}

func (r *invoiceRepoFile) Create(_ context.Context, inv *Invoice) error {
	_, err := r.store.Append(inv)
	return err
}

func (r *invoiceRepoFile) GetByID(_ context.Context, id int) (*Invoice, error) {
	return r.store.FindOne(func(i *Invoice) bool { return i.ID == id })
}

func (r *invoiceRepoFile) List(_ context.Context) ([]*Invoice, error) {
	return r.store.LoadAll()
}
