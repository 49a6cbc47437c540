package staff

import "context"

type Repository interface {
	GetByEmployerID(ctx context.Context, employerID string) (Employee, error)
}
