package memory

import (
	"context"
	"sync"

	"shelter-dashboard/internal/domain/staff"
)

type EmployeeRepo struct {
	mu   sync.RWMutex
	byID map[string]staff.Employee
}

func NewEmployeeRepo(seed []staff.Employee) *EmployeeRepo {
	r := &EmployeeRepo{}
	r.Reseed(seed)
	return r
}

func (r *EmployeeRepo) Reseed(seed []staff.Employee) {
	byID := make(map[string]staff.Employee, len(seed))
	for _, e := range seed {
		byID[e.EmployerID] = e
	}

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}

// GetByEmployerID es case-sensitive, igual que el match del dataset original.
func (r *EmployeeRepo) GetByEmployerID(ctx context.Context, employerID string) (staff.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[employerID]
	if !ok {
		return staff.Employee{}, staff.ErrNotFound
	}
	return e, nil
}

var _ staff.Repository = (*EmployeeRepo)(nil)
