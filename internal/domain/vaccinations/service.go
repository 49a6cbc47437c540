package vaccinations

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) ListAll(ctx context.Context) ([]View, error) {
	return s.repo.List(ctx)
}

// DueWithin devuelve los registros con hoy <= due <= hoy+days (inclusive),
// ordenados por fecha de vencimiento asc y luego nombre de animal.
// Filas con due date no parseable quedan afuera (se muestran como
// "unavailable" solo en el listado completo).
func (s *Service) DueWithin(ctx context.Context, days int) ([]View, error) {
	if days < 0 {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())
	limit := today.AddDate(0, 0, days)

	out := make([]View, 0)
	for _, v := range items {
		if v.DueDate == nil {
			continue
		}
		d := dateOnly(*v.DueDate)
		if d.Before(today) || d.After(limit) {
			continue
		}
		out = append(out, v)
	}

	sortByDue(out)
	return out, nil
}

// Overdue devuelve los registros con due estrictamente anterior a hoy.
// Política uniforme: se reportan todos los animales con fecha vencida,
// sin importar su status actual (también los adoptados).
func (s *Service) Overdue(ctx context.Context) ([]View, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())

	out := make([]View, 0)
	for _, v := range items {
		if v.DueDate == nil {
			continue
		}
		if dateOnly(*v.DueDate).Before(today) {
			out = append(out, v)
		}
	}

	sortByDue(out)
	return out, nil
}

type RecordInput struct {
	AnimalID        string
	VaccineID       string
	VaccinationDate time.Time
	DueDate         *time.Time
}

// Record crea una entrada del ledger. El descuento de stock lo hace el
// storage (trigger en Postgres, paso explícito en memoria).
func (s *Service) Record(ctx context.Context, in RecordInput) (Record, error) {
	animalID := strings.TrimSpace(in.AnimalID)
	vaccineID := strings.TrimSpace(in.VaccineID)
	if animalID == "" || vaccineID == "" {
		return Record{}, ErrInvalidInput
	}
	if in.VaccinationDate.IsZero() {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:              uuid.NewString(),
		AnimalID:        animalID,
		VaccineID:       vaccineID,
		VaccinationDate: in.VaccinationDate,
		DueDate:         in.DueDate,
	}
	if in.DueDate != nil {
		rec.DueDateRaw = in.DueDate.Format("2006-01-02")
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func sortByDue(items []View) {
	sort.Slice(items, func(i, j int) bool {
		di, dj := *items[i].DueDate, *items[j].DueDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return items[i].AnimalName < items[j].AnimalName
	})
}

// dateOnly trunca a fecha calendario en UTC; las fechas del dataset
// vienen como medianoche UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
