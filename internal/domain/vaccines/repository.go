package vaccines

import "context"

type Repository interface {
	// List devuelve el inventario ordenado por especie y luego nombre.
	List(ctx context.Context) ([]Vaccine, error)
	GetByID(ctx context.Context, id string) (Vaccine, error)
	Create(ctx context.Context, v Vaccine) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}
