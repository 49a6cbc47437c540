// Package memory implementa los repos sobre el snapshot en memoria.
// Es el modo demo: las escrituras mutan solo la copia en memoria y se
// pierden al reiniciar el proceso (comportamiento documentado, no bug).
// Reseed vuelve a sembrar desde un snapshot recargado.
package memory

import (
	"context"
	"sort"
	"sync"

	"shelter-dashboard/internal/domain/shelters"
)

type ShelterRepo struct {
	mu   sync.RWMutex
	byID map[string]shelters.Shelter
}

func NewShelterRepo(seed []shelters.Shelter) *ShelterRepo {
	r := &ShelterRepo{}
	r.Reseed(seed)
	return r
}

func (r *ShelterRepo) Reseed(seed []shelters.Shelter) {
	byID := make(map[string]shelters.Shelter, len(seed))
	for _, s := range seed {
		byID[s.ID] = s
	}

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}

func (r *ShelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shelters.Shelter, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ShelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return s, nil
}
