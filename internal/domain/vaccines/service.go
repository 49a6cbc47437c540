package vaccines

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("vaccine not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Vaccine, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Vaccine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccine{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name            string
	Species         Species
	InitialQuantity int
	Notes           string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Vaccine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Vaccine{}, ErrInvalidInput
	}
	if !ValidSpecies(in.Species) {
		return Vaccine{}, ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return Vaccine{}, ErrInvalidInput
	}

	v := Vaccine{
		ID:       uuid.NewString(),
		Name:     name,
		Species:  in.Species,
		Quantity: in.InitialQuantity,
		Notes:    strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccine{}, err
	}
	return v, nil
}

// AdjustQuantity aplica el delta con clamp en cero. Si la cantidad
// resultante es igual a la actual (delta 0, o un delta negativo absorbido
// por el piso), es no-op: se devuelve el estado actual sin persistir nada
// (changed=false). Lectura corta + escritura separada, sin transacción;
// entre dos sesiones staff concurrentes gana la última escritura.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (Vaccine, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccine{}, false, ErrNotFound
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccine{}, false, err
	}

	q := v.Quantity + delta
	if q < 0 {
		q = 0
	}
	if q == v.Quantity {
		return v, false, nil
	}

	if err := s.repo.UpdateQuantity(ctx, id, q); err != nil {
		return Vaccine{}, false, err
	}

	v.Quantity = q
	return v, true, nil
}
