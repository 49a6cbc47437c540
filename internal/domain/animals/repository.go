package animals

import "context"

// Filter: species/status son match exacto cuando vienen; vacío = sin filtro.
// ShelterNameContains es substring case-insensitive sobre el nombre del
// shelter joineado. Todos los filtros presentes se combinan con AND.
type Filter struct {
	Species             string
	Status              string
	ShelterNameContains string
}

type Repository interface {
	// List devuelve las filas joineadas con su shelter,
	// ordenadas por nombre de shelter y luego nombre de animal, asc.
	List(ctx context.Context, f Filter) ([]View, error)
	GetByID(ctx context.Context, id string) (Animal, error)
	Create(ctx context.Context, a Animal) error
	UpdateStatus(ctx context.Context, id string, st Status) error
	Delete(ctx context.Context, id string) error
}
