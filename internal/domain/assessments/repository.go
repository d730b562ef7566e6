package assessments

import "context"

type Repository interface {
	Create(ctx context.Context, a Assessment) error
	ListByAnimal(ctx context.Context, animalID string) ([]Assessment, error)
}
