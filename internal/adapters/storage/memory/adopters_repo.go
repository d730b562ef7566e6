package memory

import (
	"context"
	"errors"
	"slices"
	"strings"

	"animal-shelter-api/internal/domain/adopters"
	"animal-shelter-api/internal/domain/inspections"
	"animal-shelter-api/internal/platform/apperr"
)

type adopterRepo struct{ s *Store }

func (r adopterRepo) Create(ctx context.Context, a adopters.Adopter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adopter id required")
	}
	if _, exists := r.s.adopters[a.ID]; exists {
		return apperr.Conflict("adopter")
	}
	if _, ok := r.s.users[a.UserID]; !ok {
		return apperr.ErrNotFound
	}
	if a.AnimalID != "" {
		if _, ok := r.s.animals[a.AnimalID]; !ok {
			return apperr.ErrNotFound
		}
	}
	r.s.adopters[a.ID] = a
	return nil
}

func (r adopterRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.adopters[id]
	if !ok {
		return adopters.Adopter{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r adopterRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.adopters[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.adopters, id)
	delete(r.s.inspections, id)
	return nil
}

type inspectionRepo struct{ s *Store }

func (r inspectionRepo) Create(ctx context.Context, in inspections.Inspection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.adopters[in.AdopterID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.inspections[in.AdopterID] = append(r.s.inspections[in.AdopterID], in)
	return nil
}

func (r inspectionRepo) ListByAdopter(ctx context.Context, adopterID string) ([]inspections.Inspection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := slices.Clone(r.s.inspections[adopterID])
	if out == nil {
		out = []inspections.Inspection{}
	}
	return out, nil
}
