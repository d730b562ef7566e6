package health

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByAnimal(ctx context.Context, animalID string) ([]Record, error)
}
