package vaccinations

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelter-dashboard/internal/adapters/storage"
)

type testRepo struct {
	views   []View
	created []Record
}

func (r *testRepo) List(ctx context.Context) ([]View, error) {
	return r.views, nil
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	if rec.AnimalID == "ghost" {
		return storage.ErrIntegrity
	}
	r.created = append(r.created, rec)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func view(id, animal string, due *time.Time) View {
	return View{
		Record: Record{
			ID:              id,
			AnimalID:        "a-" + id,
			VaccineID:       "v-1",
			VaccinationDate: date(2025, 1, 1),
			DueDate:         due,
		},
		AnimalName:  animal,
		VaccineName: "Rabies",
	}
}

func ptr(t time.Time) *time.Time { return &t }

var today = date(2026, 8, 28)

func newFixture(views []View) (*Service, *testRepo) {
	repo := &testRepo{views: views}
	svc := NewService(repo)
	svc.now = func() time.Time { return today.Add(15 * time.Hour) } // media tarde
	return svc, repo
}

func TestDueWithin_InclusiveBounds(t *testing.T) {
	svc, _ := newFixture([]View{
		view("1", "Bella", ptr(today)),                   // hoy: entra
		view("2", "Max", ptr(today.AddDate(0, 0, 30))),   // límite exacto: entra
		view("3", "Luna", ptr(today.AddDate(0, 0, 31))),  // fuera por un día
		view("4", "Rocky", ptr(today.AddDate(0, 0, -1))), // vencida: no es "due"
		view("5", "Milo", nil),                           // fecha inválida: fuera
	})

	got, err := svc.DueWithin(context.Background(), 30)
	if err != nil {
		t.Fatalf("DueWithin returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records in [today, today+30], got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected order by due date asc, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestDueWithin_NegativeDaysRejected(t *testing.T) {
	svc, _ := newFixture(nil)
	if _, err := svc.DueWithin(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOverdue_StrictlyBeforeToday(t *testing.T) {
	svc, _ := newFixture([]View{
		view("1", "Bella", ptr(today)),                  // hoy no está vencida
		view("2", "Max", ptr(today.AddDate(0, 0, -1))),  // ayer: vencida
		view("3", "Luna", ptr(today.AddDate(0, 0, -5))), // vencida
		view("4", "Milo", nil),                          // sin fecha: fuera
	})

	got, err := svc.Overdue(context.Background())
	if err != nil {
		t.Fatalf("Overdue returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 overdue records, got %d", len(got))
	}
	if got[0].ID != "3" || got[1].ID != "2" {
		t.Fatalf("expected order by due date asc, got %s then %s", got[0].ID, got[1].ID)
	}
}

// Política uniforme: los adoptados con fecha vencida también se reportan.
func TestOverdue_IncludesAdoptedAnimals(t *testing.T) {
	v := view("1", "Nala", ptr(today.AddDate(0, 0, -1)))
	v.AnimalStatus = "Adopted"

	svc, _ := newFixture([]View{v})

	got, err := svc.Overdue(context.Background())
	if err != nil {
		t.Fatalf("Overdue returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected adopted animal reported under uniform policy, got %d rows", len(got))
	}
}

func TestOverdue_TiesOrderedByAnimalName(t *testing.T) {
	due := ptr(today.AddDate(0, 0, -2))
	svc, _ := newFixture([]View{
		view("1", "Rocky", due),
		view("2", "Bella", due),
	})

	got, err := svc.Overdue(context.Background())
	if err != nil {
		t.Fatalf("Overdue returned error: %v", err)
	}
	if got[0].AnimalName != "Bella" || got[1].AnimalName != "Rocky" {
		t.Fatalf("expected tie broken by animal name asc")
	}
}

func TestRecord_ValidatesAndPersists(t *testing.T) {
	svc, repo := newFixture(nil)

	if _, err := svc.Record(context.Background(), RecordInput{VaccineID: "v-1", VaccinationDate: date(2026, 8, 1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing animal id, got %v", err)
	}
	if _, err := svc.Record(context.Background(), RecordInput{AnimalID: "a-1", VaccineID: "v-1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero vaccination date, got %v", err)
	}

	due := date(2027, 8, 1)
	rec, err := svc.Record(context.Background(), RecordInput{
		AnimalID:        "a-1",
		VaccineID:       "v-1",
		VaccinationDate: date(2026, 8, 1),
		DueDate:         &due,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.ID == "" || len(repo.created) != 1 {
		t.Fatalf("expected record persisted with generated id")
	}
	if rec.DueDateRaw != "2027-08-01" {
		t.Fatalf("expected raw due date kept, got %q", rec.DueDateRaw)
	}
}

func TestRecord_IntegrityErrorPassesThrough(t *testing.T) {
	svc, _ := newFixture(nil)

	_, err := svc.Record(context.Background(), RecordInput{
		AnimalID:        "ghost",
		VaccineID:       "v-1",
		VaccinationDate: date(2026, 8, 1),
	})
	if !errors.Is(err, storage.ErrIntegrity) {
		t.Fatalf("expected storage.ErrIntegrity, got %v", err)
	}
}
