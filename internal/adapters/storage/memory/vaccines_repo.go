package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"shelter-dashboard/internal/domain/vaccines"
)

type VaccineRepo struct {
	mu   sync.RWMutex
	byID map[string]vaccines.Vaccine
}

func NewVaccineRepo(seed []vaccines.Vaccine) *VaccineRepo {
	r := &VaccineRepo{}
	r.Reseed(seed)
	return r
}

func (r *VaccineRepo) Reseed(seed []vaccines.Vaccine) {
	byID := make(map[string]vaccines.Vaccine, len(seed))
	for _, v := range seed {
		byID[v.ID] = v
	}

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}

func (r *VaccineRepo) List(ctx context.Context) ([]vaccines.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccines.Vaccine, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Species != out[j].Species {
			return out[i].Species < out[j].Species
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *VaccineRepo) GetByID(ctx context.Context, id string) (vaccines.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccines.Vaccine{}, vaccines.ErrNotFound
	}
	return v, nil
}

func (r *VaccineRepo) Create(ctx context.Context, v vaccines.Vaccine) error {
	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccine id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vaccine already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VaccineRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccines.ErrNotFound
	}
	v.Quantity = quantity
	r.byID[id] = v
	return nil
}

// decrementOne reproduce el trigger de stock del esquema relacional:
// una unidad menos por inserción en el ledger, con clamp en cero.
func (r *VaccineRepo) decrementOne(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccines.ErrNotFound
	}
	if v.Quantity > 0 {
		v.Quantity--
	}
	r.byID[id] = v
	return nil
}

var _ vaccines.Repository = (*VaccineRepo)(nil)
