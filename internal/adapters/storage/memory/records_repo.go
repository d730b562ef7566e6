package memory

import (
	"context"
	"slices"

	"animal-shelter-api/internal/domain/assessments"
	"animal-shelter-api/internal/domain/health"
	"animal-shelter-api/internal/domain/outcomes"
	"animal-shelter-api/internal/domain/owners"
	"animal-shelter-api/internal/platform/apperr"
)

// Fichas dependientes de un animal, indexadas por animals.Animal.ID en orden de alta.

// appendChild exige que el animal exista (equivalente a la FK).
func appendChild[T any](s *Store, m map[string][]T, animalID string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.animals[animalID]; !ok {
		return apperr.ErrNotFound
	}
	m[animalID] = append(m[animalID], v)
	return nil
}

func listChildren[T any](s *Store, m map[string][]T, animalID string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(m[animalID])
	if out == nil {
		out = []T{}
	}
	return out
}

type healthRepo struct{ s *Store }

func (r healthRepo) Create(ctx context.Context, rec health.Record) error {
	return appendChild(r.s, r.s.health, rec.AnimalID, rec)
}

func (r healthRepo) ListByAnimal(ctx context.Context, animalID string) ([]health.Record, error) {
	return listChildren(r.s, r.s.health, animalID), nil
}

type ownerRepo struct{ s *Store }

func (r ownerRepo) Create(ctx context.Context, p owners.PreviousOwner) error {
	return appendChild(r.s, r.s.owners, p.AnimalID, p)
}

func (r ownerRepo) ListByAnimal(ctx context.Context, animalID string) ([]owners.PreviousOwner, error) {
	return listChildren(r.s, r.s.owners, animalID), nil
}

type assessmentRepo struct{ s *Store }

func (r assessmentRepo) Create(ctx context.Context, a assessments.Assessment) error {
	return appendChild(r.s, r.s.assessments, a.AnimalID, a)
}

func (r assessmentRepo) ListByAnimal(ctx context.Context, animalID string) ([]assessments.Assessment, error) {
	return listChildren(r.s, r.s.assessments, animalID), nil
}

type outcomeRepo struct{ s *Store }

func (r outcomeRepo) Create(ctx context.Context, p outcomes.Prediction) error {
	return appendChild(r.s, r.s.outcomes, p.AnimalID, p)
}

func (r outcomeRepo) ListByAnimal(ctx context.Context, animalID string) ([]outcomes.Prediction, error) {
	return listChildren(r.s, r.s.outcomes, animalID), nil
}
