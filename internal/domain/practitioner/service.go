package practitioner

import (
	"context"
	"fmt"
)

type Service struct {
	practitioners PractitionerRepository
}

func NewService(practitioners PractitionerRepository) *Service {
	return &Service{practitioners: practitioners}
}

func (s *Service) Register(ctx context.Context, p *Practitioner) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	return s.practitioners.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int) (*Practitioner, error) {
	return s.practitioners.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Practitioner, error) {
	return s.practitioners.List(ctx)
}
