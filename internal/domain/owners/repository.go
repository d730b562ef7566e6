package owners

import "context"

type Repository interface {
	Create(ctx context.Context, p PreviousOwner) error
	ListByAnimal(ctx context.Context, animalID string) ([]PreviousOwner, error)
}
