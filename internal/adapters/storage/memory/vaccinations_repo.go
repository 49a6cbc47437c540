package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/domain/vaccinations"
)

type VaccinationRepo struct {
	mu   sync.RWMutex
	byID map[string]vaccinations.Record

	animals  *AnimalRepo
	vaccines *VaccineRepo
}

func NewVaccinationRepo(seed []vaccinations.Record, animalsRepo *AnimalRepo, vaccinesRepo *VaccineRepo) *VaccinationRepo {
	r := &VaccinationRepo{animals: animalsRepo, vaccines: vaccinesRepo}
	r.Reseed(seed)
	return r
}

func (r *VaccinationRepo) Reseed(seed []vaccinations.Record) {
	byID := make(map[string]vaccinations.Record, len(seed))
	for _, rec := range seed {
		byID[rec.ID] = rec
	}

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}

func (r *VaccinationRepo) List(ctx context.Context) ([]vaccinations.View, error) {
	r.mu.RLock()
	recs := make([]vaccinations.Record, 0, len(r.byID))
	for _, rec := range r.byID {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	out := make([]vaccinations.View, 0, len(recs))
	for _, rec := range recs {
		v := vaccinations.View{Record: rec}

		// Un borrado duro de animal puede dejar registros huérfanos en este
		// modo (no hay FK); se muestran con los campos de display vacíos.
		if a, err := r.animals.GetByID(ctx, rec.AnimalID); err == nil {
			v.AnimalName = a.Name
			v.AnimalSpecies = string(a.Species)
			v.AnimalStatus = string(a.Status)
		}
		if vac, err := r.vaccines.GetByID(ctx, rec.VaccineID); err == nil {
			v.VaccineName = vac.Name
		}

		out = append(out, v)
	}

	// orden estable por id para salida reproducible
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *VaccinationRepo) Create(ctx context.Context, rec vaccinations.Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("vaccination id required")
	}

	// Ambas referencias tienen que resolver, como las FK del esquema.
	if _, err := r.animals.GetByID(ctx, rec.AnimalID); err != nil {
		return storage.ErrIntegrity
	}
	if _, err := r.vaccines.GetByID(ctx, rec.VaccineID); err != nil {
		return storage.ErrIntegrity
	}

	r.mu.Lock()
	if _, exists := r.byID[rec.ID]; exists {
		r.mu.Unlock()
		return errors.New("vaccination already exists")
	}
	r.byID[rec.ID] = rec
	r.mu.Unlock()

	// Paso explícito que reemplaza al trigger de Postgres.
	return r.vaccines.decrementOne(rec.VaccineID)
}

var _ vaccinations.Repository = (*VaccinationRepo)(nil)
