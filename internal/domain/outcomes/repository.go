package outcomes

import "context"

type Repository interface {
	Create(ctx context.Context, p Prediction) error
	ListByAnimal(ctx context.Context, animalID string) ([]Prediction, error)
}
