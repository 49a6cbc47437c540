package csvfile

import (
	"errors"
	"path/filepath"
	"testing"

	"shelter-dashboard/internal/adapters/storage"
)

func TestLoad_TypedRowsFromSemicolonFiles(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "valid"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(snap.Shelters) != 2 || len(snap.Animals) != 2 || len(snap.Vaccines) != 2 {
		t.Fatalf("unexpected row counts: %d shelters, %d animals, %d vaccines",
			len(snap.Shelters), len(snap.Animals), len(snap.Vaccines))
	}

	bella := snap.Animals[0]
	if bella.Name != "Bella" || string(bella.Species) != "DOG" || bella.ShelterID != "1" {
		t.Fatalf("unexpected first animal: %#v", bella)
	}
	if bella.DateOfBirth == nil {
		t.Fatalf("expected parsed date_of_birth for Bella")
	}

	nala := snap.Animals[1]
	if !nala.Hypoallergenic {
		t.Fatalf("expected hypoallergenic=true for Nala")
	}
	if nala.DateOfBirth != nil {
		t.Fatalf("empty date_of_birth must stay nil")
	}
}

func TestLoad_BadDueDateDegradesGracefully(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "valid"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(snap.Records) != 2 {
		t.Fatalf("expected both ledger rows loaded, got %d", len(snap.Records))
	}

	good, bad := snap.Records[0], snap.Records[1]
	if good.DueDate == nil {
		t.Fatalf("expected parsed due date for first record")
	}
	if bad.DueDate != nil {
		t.Fatalf("unparseable due date must load as nil, not fail")
	}
	if bad.DueDateRaw != "not-a-date" {
		t.Fatalf("expected raw due date text kept, got %q", bad.DueDateRaw)
	}
}

func TestLoad_MissingDirIsUnavailable(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope"))
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected storage.ErrUnavailable, got %v", err)
	}
}

func TestLoad_DanglingReferenceIsIntegrityViolation(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "badref"))
	if !errors.Is(err, storage.ErrIntegrity) {
		t.Fatalf("expected storage.ErrIntegrity, got %v", err)
	}
}
