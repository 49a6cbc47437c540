package reports_test

import (
	"context"
	"testing"
	"time"

	mem "shelter-dashboard/internal/adapters/storage/memory"
	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/reports"
	"shelter-dashboard/internal/domain/shelters"
	"shelter-dashboard/internal/domain/vaccinations"
	"shelter-dashboard/internal/domain/vaccines"
)

func newFixture() *reports.Service {
	shelterRepo := mem.NewShelterRepo([]shelters.Shelter{
		{ID: "s1", Name: "Happy Tails", City: "Springfield"},
		{ID: "s2", Name: "Sunny Paws", City: "Riverside"},
	})

	intake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	animalRepo := mem.NewAnimalRepo([]animals.Animal{
		{ID: "1", Name: "Bella", Species: animals.SpeciesDog, Size: animals.SizeLarge, Status: animals.StatusAvailable, ShelterID: "s1", IntakeDate: intake},
		{ID: "2", Name: "Max", Species: animals.SpeciesDog, Size: animals.SizeMedium, Status: animals.StatusFoster, ShelterID: "s1", IntakeDate: intake},
		{ID: "3", Name: "Nala", Species: animals.SpeciesCat, Size: animals.SizeSmall, Status: animals.StatusAdopted, ShelterID: "s2", IntakeDate: intake},
	}, shelterRepo)

	vaccineRepo := mem.NewVaccineRepo([]vaccines.Vaccine{
		{ID: "v1", Name: "Rabies", Species: vaccines.SpeciesDog, Quantity: 10},
		{ID: "v2", Name: "Feline Leukemia", Species: vaccines.SpeciesCat, Quantity: 10},
	})

	vd := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	vaccinationRepo := mem.NewVaccinationRepo([]vaccinations.Record{
		{ID: "r1", AnimalID: "1", VaccineID: "v1", VaccinationDate: vd},
		{ID: "r2", AnimalID: "2", VaccineID: "v1", VaccinationDate: vd},
		{ID: "r3", AnimalID: "3", VaccineID: "v2", VaccinationDate: vd},
	}, animalRepo, vaccineRepo)

	return reports.NewService(animalRepo, vaccinationRepo)
}

func TestCountBySpecies(t *testing.T) {
	svc := newFixture()

	got, err := svc.CountBySpecies(context.Background())
	if err != nil {
		t.Fatalf("CountBySpecies returned error: %v", err)
	}
	if got["DOG"] != 2 || got["CAT"] != 1 {
		t.Fatalf("unexpected counts: %#v", got)
	}
}

func TestCountByShelter_DescendingByCount(t *testing.T) {
	svc := newFixture()

	got, err := svc.CountByShelter(context.Background())
	if err != nil {
		t.Fatalf("CountByShelter returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 shelters, got %d", len(got))
	}
	if got[0].ShelterName != "Happy Tails" || got[0].Count != 2 {
		t.Fatalf("expected Happy Tails first with 2, got %#v", got[0])
	}
	if got[1].ShelterName != "Sunny Paws" || got[1].Count != 1 {
		t.Fatalf("expected Sunny Paws second with 1, got %#v", got[1])
	}
}

func TestVaccinationsBySpecies(t *testing.T) {
	svc := newFixture()

	got, err := svc.VaccinationsBySpecies(context.Background())
	if err != nil {
		t.Fatalf("VaccinationsBySpecies returned error: %v", err)
	}
	if got["DOG"] != 2 || got["CAT"] != 1 {
		t.Fatalf("unexpected counts: %#v", got)
	}
}
