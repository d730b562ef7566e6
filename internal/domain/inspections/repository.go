package inspections

import "context"

type Repository interface {
	Create(ctx context.Context, in Inspection) error
	ListByAdopter(ctx context.Context, adopterID string) ([]Inspection, error)
}
