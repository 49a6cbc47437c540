package shelters

import "context"

type Repository interface {
	List(ctx context.Context) ([]Shelter, error)
	GetByID(ctx context.Context, id string) (Shelter, error)
}
