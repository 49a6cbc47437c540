package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/shelters"
)

type AnimalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal

	shelters *ShelterRepo
}

func NewAnimalRepo(seed []animals.Animal, sheltersRepo *ShelterRepo) *AnimalRepo {
	r := &AnimalRepo{shelters: sheltersRepo}
	r.Reseed(seed)
	return r
}

func (r *AnimalRepo) Reseed(seed []animals.Animal) {
	byID := make(map[string]animals.Animal, len(seed))
	for _, a := range seed {
		byID[a.ID] = a
	}

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}

func (r *AnimalRepo) List(ctx context.Context, f animals.Filter) ([]animals.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contains := strings.ToLower(f.ShelterNameContains)

	out := make([]animals.View, 0)
	for _, a := range r.byID {
		if f.Species != "" && string(a.Species) != f.Species {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}

		v := animals.View{Animal: a}
		if sh, err := r.shelters.GetByID(ctx, a.ShelterID); err == nil {
			v.ShelterName = sh.Name
			v.City = sh.City
		}

		if contains != "" && !strings.Contains(strings.ToLower(v.ShelterName), contains) {
			continue
		}

		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ShelterName != out[j].ShelterName {
			return out[i].ShelterName < out[j].ShelterName
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}

	// La referencia al shelter se chequea también acá, como haría la FK.
	if _, err := r.shelters.GetByID(ctx, a.ShelterID); err != nil {
		return storage.ErrIntegrity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AnimalRepo) UpdateStatus(ctx context.Context, id string, st animals.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.ErrNotFound
	}
	a.Status = st
	r.byID[id] = a
	return nil
}

func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

var _ shelters.Repository = (*ShelterRepo)(nil)
var _ animals.Repository = (*AnimalRepo)(nil)
