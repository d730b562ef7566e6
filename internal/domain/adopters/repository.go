package adopters

import "context"

type Repository interface {
	Create(ctx context.Context, a Adopter) error
	GetByID(ctx context.Context, id string) (Adopter, error)
	// Delete borra el perfil y sus inspecciones.
	Delete(ctx context.Context, id string) error
}
