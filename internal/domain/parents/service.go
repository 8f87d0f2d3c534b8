package parents

import (
	"context"
	"fmt"

	"bordoodles-api/internal/domain/catalog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Parent, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Parent{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Parent, error) {
	if err := catalog.ValidID(id); err != nil {
		return Parent{}, err
	}
	return s.repo.FetchByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Patch) (Parent, error) {
	rec, err := NewParent(in)
	if err != nil {
		return Parent{}, err
	}
	return s.repo.Insert(ctx, rec)
}

func (s *Service) Update(ctx context.Context, id int64, in Patch) (Parent, error) {
	if err := catalog.ValidID(id); err != nil {
		return Parent{}, err
	}
	if err := in.Validate(); err != nil {
		return Parent{}, err
	}

	n, err := s.repo.UpdateByID(ctx, id, in)
	if err != nil {
		return Parent{}, err
	}
	if n == 0 {
		return Parent{}, fmt.Errorf("parent %d: %w", id, catalog.ErrNotFound)
	}
	return s.repo.FetchByID(ctx, id)
}

// Delete es permanente; no se chequean cachorros relacionados.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := catalog.ValidID(id); err != nil {
		return err
	}
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("parent %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}
