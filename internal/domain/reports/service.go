package reports

import (
	"context"
	"sort"

	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/vaccinations"
)

// Service agrega catálogo y ledger en resúmenes simples.
// Solo lecturas; no muta nada.
type Service struct {
	animals      animals.Repository
	vaccinations vaccinations.Repository
}

func NewService(animalsRepo animals.Repository, vaccinationsRepo vaccinations.Repository) *Service {
	return &Service{
		animals:      animalsRepo,
		vaccinations: vaccinationsRepo,
	}
}

func (s *Service) CountBySpecies(ctx context.Context) (map[string]int, error) {
	items, err := s.animals.List(ctx, animals.Filter{})
	if err != nil {
		return nil, err
	}

	out := make(map[string]int)
	for _, v := range items {
		out[string(v.Species)]++
	}
	return out, nil
}

type ShelterCount struct {
	ShelterName string `json:"shelter_name"`
	Count       int    `json:"count"`
}

// CountByShelter devuelve slice ordenado en vez de map porque el contrato
// pide orden descendente por cantidad y un map no lo puede llevar.
// Empates se desempatan por nombre asc para salida estable.
func (s *Service) CountByShelter(ctx context.Context) ([]ShelterCount, error) {
	items, err := s.animals.List(ctx, animals.Filter{})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	for _, v := range items {
		byName[v.ShelterName]++
	}

	out := make([]ShelterCount, 0, len(byName))
	for name, n := range byName {
		out = append(out, ShelterCount{ShelterName: name, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ShelterName < out[j].ShelterName
	})

	return out, nil
}

// VaccinationsBySpecies junta el ledger con el catálogo y cuenta por especie.
func (s *Service) VaccinationsBySpecies(ctx context.Context) (map[string]int, error) {
	items, err := s.vaccinations.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int)
	for _, v := range items {
		if v.AnimalSpecies == "" {
			continue
		}
		out[v.AnimalSpecies]++
	}
	return out, nil
}
