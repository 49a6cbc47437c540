package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/shelters"
	"shelter-dashboard/internal/domain/vaccinations"
	"shelter-dashboard/internal/domain/vaccines"
)

func newLedgerFixture() (*AnimalRepo, *VaccineRepo, *VaccinationRepo) {
	shelterRepo := NewShelterRepo([]shelters.Shelter{
		{ID: "s1", Name: "Happy Tails", City: "Springfield"},
	})
	animalRepo := NewAnimalRepo([]animals.Animal{
		{ID: "a1", Name: "Bella", Species: animals.SpeciesDog, Size: animals.SizeLarge,
			Status: animals.StatusAvailable, ShelterID: "s1",
			IntakeDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, shelterRepo)
	vaccineRepo := NewVaccineRepo([]vaccines.Vaccine{
		{ID: "v1", Name: "Rabies", Species: vaccines.SpeciesDog, Quantity: 3},
	})
	vaccinationRepo := NewVaccinationRepo([]vaccinations.Record{
		{ID: "r1", AnimalID: "a1", VaccineID: "v1",
			VaccinationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}, animalRepo, vaccineRepo)

	return animalRepo, vaccineRepo, vaccinationRepo
}

// En este modo no hay FK: borrar un animal con registros en el ledger
// funciona y deja los registros huérfanos, con los campos de display vacíos.
func TestDeleteAnimal_WithLedgerRows_LeavesOrphans(t *testing.T) {
	ctx := context.Background()
	animalRepo, _, vaccinationRepo := newLedgerFixture()

	if err := animalRepo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	views, err := vaccinationRepo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected the orphaned record to stay listed, got %d rows", len(views))
	}
	if views[0].AnimalName != "" || views[0].AnimalStatus != "" {
		t.Fatalf("expected blank display fields for orphaned record, got %#v", views[0])
	}
	if views[0].VaccineName != "Rabies" {
		t.Fatalf("expected vaccine display fields intact, got %#v", views[0])
	}
}

func TestCreateRecord_AgainstDeletedAnimal_IsIntegrityViolation(t *testing.T) {
	ctx := context.Background()
	animalRepo, _, vaccinationRepo := newLedgerFixture()

	if err := animalRepo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	err := vaccinationRepo.Create(ctx, vaccinations.Record{
		ID: "r2", AnimalID: "a1", VaccineID: "v1",
		VaccinationDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, storage.ErrIntegrity) {
		t.Fatalf("expected storage.ErrIntegrity, got %v", err)
	}
}
