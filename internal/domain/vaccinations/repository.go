package vaccinations

import "context"

type Repository interface {
	List(ctx context.Context) ([]View, error)

	// Create inserta el registro y descuenta una unidad del stock de la
	// vacuna referenciada (clamp en cero). En Postgres el descuento lo hace
	// el trigger de la tabla; el adaptador en memoria lo reproduce como
	// paso explícito.
	Create(ctx context.Context, rec Record) error
}
