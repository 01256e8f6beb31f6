package practitioner

import "context"

type PractitionerRepository interface {
	Create(ctx context.Context, p *Practitioner) error
	GetByID(ctx context.Context, id int) (*Practitioner, error)
	List(ctx context.Context) ([]*Practitioner, error)
}
