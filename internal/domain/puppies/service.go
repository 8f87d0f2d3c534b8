package puppies

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

func (s *Service) List(ctx context.Context) ([]Puppy, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Puppy{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Puppy, error) {
	if err := catalog.ValidID(id); err != nil {
		return Puppy{}, err
	}
	return s.repo.FetchByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Patch) (Puppy, error) {
	rec, err := NewPuppy(in)
	if err != nil {
		return Puppy{}, err
	}
	return s.repo.Insert(ctx, rec)
}

// Update es un merge: sólo cambian los campos presentes en el patch.
// Concurrentemente, la última escritura gana.
func (s *Service) Update(ctx context.Context, id int64, in Patch) (Puppy, error) {
	if err := catalog.ValidID(id); err != nil {
		return Puppy{}, err
	}
	if err := in.Validate(); err != nil {
		return Puppy{}, err
	}

	n, err := s.repo.UpdateByID(ctx, id, in)
	if err != nil {
		return Puppy{}, err
	}
	if n == 0 {
		return Puppy{}, fmt.Errorf("puppy %d: %w", id, catalog.ErrNotFound)
	}

	// Si lo borraron entre el update y la relectura, FetchByID devuelve ErrNotFound.
	return s.repo.FetchByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := catalog.ValidID(id); err != nil {
		return err
	}
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("puppy %d: %w", id, catalog.ErrNotFound)
	}
	return nil
}
