package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"shelter-dashboard/internal/domain/shelters"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")

	// ErrConfirmRequired: el borrado es duro e irreversible, así que
	// exige confirmación explícita antes de tocar el storage.
	ErrConfirmRequired = errors.New("delete requires confirmation")
)

// FilterAll es el sentinel que manda la UI cuando un selector queda en "All".
const FilterAll = "All"

type Service struct {
	repo     Repository
	shelters shelters.Repository
	now      func() time.Time
}

func NewService(repo Repository, sheltersRepo shelters.Repository) *Service {
	return &Service{
		repo:     repo,
		shelters: sheltersRepo,
		now:      time.Now,
	}
}

// ListFiltered normaliza el sentinel "All" y delega el filtrado al repo.
// Sin filtros devuelve el catálogo completo.
func (s *Service) ListFiltered(ctx context.Context, f Filter) ([]View, error) {
	if strings.TrimSpace(f.Species) == FilterAll {
		f.Species = ""
	}
	if strings.TrimSpace(f.Status) == FilterAll {
		f.Status = ""
	}
	f.Species = strings.TrimSpace(f.Species)
	f.Status = strings.TrimSpace(f.Status)
	f.ShelterNameContains = strings.TrimSpace(f.ShelterNameContains)

	return s.repo.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name           string
	Species        Species
	Breed          string
	Size           Size
	Sex            string
	Hypoallergenic bool
	DateOfBirth    *time.Time
	Status         Status
	ShelterID      string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Animal{}, ErrInvalidInput
	}
	if !ValidSpecies(in.Species) {
		return Animal{}, ErrInvalidInput
	}
	if !ValidSize(in.Size) {
		return Animal{}, ErrInvalidInput
	}

	st := in.Status
	if st == "" {
		st = StatusAvailable
	}
	if !ValidStatus(st) {
		return Animal{}, ErrInvalidInput
	}

	// La referencia al shelter tiene que resolver antes de escribir.
	shelterID := strings.TrimSpace(in.ShelterID)
	if shelterID == "" {
		return Animal{}, ErrInvalidInput
	}
	if _, err := s.shelters.GetByID(ctx, shelterID); err != nil {
		if errors.Is(err, shelters.ErrNotFound) {
			return Animal{}, ErrInvalidInput
		}
		return Animal{}, err
	}

	a := Animal{
		ID:             uuid.NewString(),
		Name:           name,
		Species:        in.Species,
		Breed:          strings.TrimSpace(in.Breed),
		Size:           in.Size,
		Sex:            strings.TrimSpace(in.Sex),
		Hypoallergenic: in.Hypoallergenic,
		DateOfBirth:    in.DateOfBirth,
		IntakeDate:     s.now(),
		Status:         st,
		ShelterID:      shelterID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, st Status) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	if !ValidStatus(st) {
		return Animal{}, ErrInvalidInput
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return Animal{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete es borrado duro, sin soft-delete ni auditoría.
// confirmed=false corta antes de llegar al storage (gate de dos pasos).
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	if !confirmed {
		return ErrConfirmRequired
	}
	return s.repo.Delete(ctx, id)
}
