package memory

import (
	"context"
	"errors"
	"slices"
	"strings"

	"animal-shelter-api/internal/domain/animals"
	"animal-shelter-api/internal/platform/apperr"
)

type animalRepo struct{ s *Store }

func (r animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.AnimalID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.s.animalByCode[a.AnimalID]; exists {
		return apperr.Conflict("animal_id")
	}
	if _, exists := r.s.animals[a.ID]; exists {
		return apperr.Conflict("animal")
	}
	r.s.animals[a.ID] = a
	r.s.animalByCode[a.AnimalID] = a.ID
	r.s.animalOrder = append(r.s.animalOrder, a.ID)
	return nil
}

func (r animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.animals[id]
	if !ok {
		return animals.Animal{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r animalRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.animalByCode[animalID]
	if !ok {
		return animals.Animal{}, apperr.ErrNotFound
	}
	return r.s.animals[id], nil
}

func (r animalRepo) List(ctx context.Context, offset, limit int) ([]animals.Animal, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := len(r.s.animalOrder)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return []animals.Animal{}, total, nil
	}
	end := min(offset+limit, total)

	out := make([]animals.Animal, 0, end-offset)
	for _, id := range r.s.animalOrder[offset:end] {
		out = append(out, r.s.animals[id])
	}
	return out, total, nil
}

// Delete replica el ON DELETE CASCADE / SET NULL del esquema de Postgres.
func (r animalRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.animals[id]
	if !ok {
		return apperr.ErrNotFound
	}

	delete(r.s.animals, id)
	delete(r.s.animalByCode, a.AnimalID)
	r.s.animalOrder = slices.DeleteFunc(r.s.animalOrder, func(v string) bool { return v == id })

	delete(r.s.health, id)
	delete(r.s.owners, id)
	delete(r.s.assessments, id)
	delete(r.s.outcomes, id)

	for k, ad := range r.s.adopters {
		if ad.AnimalID == id {
			ad.AnimalID = ""
			r.s.adopters[k] = ad
		}
	}
	return nil
}
