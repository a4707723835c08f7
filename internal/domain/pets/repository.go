package pets

import "context"

// Repository guarda sesiones vivas. GetByID devuelve ErrNotFound si no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
