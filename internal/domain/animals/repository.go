package animals

import "context"

// Repository: Create devuelve apperr.ErrConflict si AnimalID ya existe.
// Delete borra en cascada health/owners/assessments/outcomes.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	GetByAnimalID(ctx context.Context, animalID string) (Animal, error)
	// List devuelve en orden de inserción.
	List(ctx context.Context, offset, limit int) ([]Animal, int, error)
	Delete(ctx context.Context, id string) error
}
