package billing

import "context"

type CatalogRepository interface {
	Create(ctx context.Context, item *ProductOrService) error
	GetByNameAndKind(ctx context.Context, name string, kind Kind) (*ProductOrService, error)
	List(ctx context.Context) ([]*ProductOrService, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id int) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
}
