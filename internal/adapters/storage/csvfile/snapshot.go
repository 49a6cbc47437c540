// Package csvfile carga el snapshot de los cinco datasets tabulares
// (delimitador ';', fila de encabezado obligatoria). Se carga una vez por
// proceso y se sirve desde memoria; la invalidación es explícita
// (recargar y volver a sembrar los repos), nunca por tiempo.
//
// Las filas se tipan y validan acá, en el borde del storage; ninguna fila
// genérica sale de este paquete.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shelter-dashboard/internal/adapters/storage"
	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/shelters"
	"shelter-dashboard/internal/domain/staff"
	"shelter-dashboard/internal/domain/vaccinations"
	"shelter-dashboard/internal/domain/vaccines"
)

const delimiter = ';'

// Snapshot es la copia en memoria, tipada, de los datasets.
type Snapshot struct {
	Shelters  []shelters.Shelter
	Animals   []animals.Animal
	Vaccines  []vaccines.Vaccine
	Records   []vaccinations.Record
	Employees []staff.Employee
}

// Load lee los cinco archivos de dir y valida integridad referencial.
// Archivo ausente o ilegible => storage.ErrUnavailable.
// Referencia que no resuelve => storage.ErrIntegrity.
func Load(dir string) (*Snapshot, error) {
	snap := &Snapshot{}

	var err error
	if snap.Shelters, err = loadShelters(filepath.Join(dir, "shelters.csv")); err != nil {
		return nil, err
	}
	if snap.Animals, err = loadAnimals(filepath.Join(dir, "animals.csv")); err != nil {
		return nil, err
	}
	if snap.Vaccines, err = loadVaccines(filepath.Join(dir, "vaccines.csv")); err != nil {
		return nil, err
	}
	if snap.Records, err = loadRecords(filepath.Join(dir, "vaccination_record.csv")); err != nil {
		return nil, err
	}
	if snap.Employees, err = loadEmployees(filepath.Join(dir, "employees.csv")); err != nil {
		return nil, err
	}

	if err := snap.checkIntegrity(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Snapshot) checkIntegrity() error {
	shelterIDs := make(map[string]struct{}, len(s.Shelters))
	for _, sh := range s.Shelters {
		shelterIDs[sh.ID] = struct{}{}
	}
	animalIDs := make(map[string]struct{}, len(s.Animals))
	for _, a := range s.Animals {
		if _, ok := shelterIDs[a.ShelterID]; !ok {
			return fmt.Errorf("animal %s references unknown shelter %s: %w", a.ID, a.ShelterID, storage.ErrIntegrity)
		}
		animalIDs[a.ID] = struct{}{}
	}
	vaccineIDs := make(map[string]struct{}, len(s.Vaccines))
	for _, v := range s.Vaccines {
		vaccineIDs[v.ID] = struct{}{}
	}
	for _, r := range s.Records {
		if _, ok := animalIDs[r.AnimalID]; !ok {
			return fmt.Errorf("vaccination %s references unknown animal %s: %w", r.ID, r.AnimalID, storage.ErrIntegrity)
		}
		if _, ok := vaccineIDs[r.VaccineID]; !ok {
			return fmt.Errorf("vaccination %s references unknown vaccine %s: %w", r.ID, r.VaccineID, storage.ErrIntegrity)
		}
	}
	return nil
}

// table indexa las filas por nombre de columna del encabezado.
type table struct {
	path string
	cols map[string]int
	rows [][]string
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, storage.ErrUnavailable)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.TrimLeadingSpace = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, storage.ErrUnavailable)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s: missing header row: %w", path, storage.ErrUnavailable)
	}

	cols := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q: %w", path, name, storage.ErrUnavailable)
		}
	}

	return &table{path: path, cols: cols, rows: all[1:]}, nil
}

func (t *table) get(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func loadShelters(path string) ([]shelters.Shelter, error) {
	t, err := readTable(path, "shelter_id", "shelter_name", "city")
	if err != nil {
		return nil, err
	}

	out := make([]shelters.Shelter, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, shelters.Shelter{
			ID:   t.get(row, "shelter_id"),
			Name: t.get(row, "shelter_name"),
			City: t.get(row, "city"),
		})
	}
	return out, nil
}

func loadAnimals(path string) ([]animals.Animal, error) {
	t, err := readTable(path, "animal_id", "name", "species", "status", "shelter_id", "intake_date")
	if err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(t.rows))
	for i, row := range t.rows {
		a := animals.Animal{
			ID:             t.get(row, "animal_id"),
			Name:           t.get(row, "name"),
			Species:        animals.Species(t.get(row, "species")),
			Breed:          t.get(row, "breed"),
			Size:           animals.Size(t.get(row, "size")),
			Sex:            t.get(row, "sex"),
			Hypoallergenic: parseBool(t.get(row, "hypoallergenic")),
			Status:         animals.Status(t.get(row, "status")),
			ShelterID:      t.get(row, "shelter_id"),
		}

		intake, err := time.Parse("2006-01-02", t.get(row, "intake_date"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad intake_date: %w", path, i+2, storage.ErrUnavailable)
		}
		a.IntakeDate = intake

		// date_of_birth es opcional; si no parsea queda nil.
		if raw := t.get(row, "date_of_birth"); raw != "" {
			if dob, err := time.Parse("2006-01-02", raw); err == nil {
				a.DateOfBirth = &dob
			}
		}

		out = append(out, a)
	}
	return out, nil
}

func loadVaccines(path string) ([]vaccines.Vaccine, error) {
	t, err := readTable(path, "vaccine_id", "vaccine_name", "species", "quantity")
	if err != nil {
		return nil, err
	}

	out := make([]vaccines.Vaccine, 0, len(t.rows))
	for i, row := range t.rows {
		qty, err := strconv.Atoi(t.get(row, "quantity"))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("%s row %d: quantity must be a non-negative integer: %w", path, i+2, storage.ErrUnavailable)
		}

		out = append(out, vaccines.Vaccine{
			ID:       t.get(row, "vaccine_id"),
			Name:     t.get(row, "vaccine_name"),
			Species:  vaccines.Species(t.get(row, "species")),
			Quantity: qty,
			Notes:    t.get(row, "notes"),
		})
	}
	return out, nil
}

func loadRecords(path string) ([]vaccinations.Record, error) {
	t, err := readTable(path, "vaccination_id", "animal_id", "vaccine_id", "vaccination_date", "due_date")
	if err != nil {
		return nil, err
	}

	out := make([]vaccinations.Record, 0, len(t.rows))
	for i, row := range t.rows {
		rec := vaccinations.Record{
			ID:        t.get(row, "vaccination_id"),
			AnimalID:  t.get(row, "animal_id"),
			VaccineID: t.get(row, "vaccine_id"),
		}

		vd, err := time.Parse("2006-01-02", t.get(row, "vaccination_date"))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad vaccination_date: %w", path, i+2, storage.ErrUnavailable)
		}
		rec.VaccinationDate = vd

		// due_date degrada con gracia: si no parsea, la fila viaja con
		// DueDate nil y el texto original, y los reportes la marcan
		// "unavailable" en vez de fallar.
		rec.DueDateRaw = t.get(row, "due_date")
		if due, err := time.Parse("2006-01-02", rec.DueDateRaw); err == nil {
			rec.DueDate = &due
		}

		out = append(out, rec)
	}
	return out, nil
}

func loadEmployees(path string) ([]staff.Employee, error) {
	t, err := readTable(path, "employer_id", "name", "password")
	if err != nil {
		return nil, err
	}

	out := make([]staff.Employee, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, staff.Employee{
			EmployerID: t.get(row, "employer_id"),
			Name:       t.get(row, "name"),
			Secret:     t.get(row, "password"),
		})
	}
	return out, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
