package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter-dashboard/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.Filter) ([]animals.View, error) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.Species != "" {
		args = append(args, f.Species)
		conds = append(conds, fmt.Sprintf("a.species = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if f.ShelterNameContains != "" {
		args = append(args, "%"+f.ShelterNameContains+"%")
		conds = append(conds, fmt.Sprintf("s.shelter_name ILIKE $%d", len(args)))
	}

	query := `
		SELECT
			a.animal_id, a.name, a.species, a.breed, a.size, a.sex,
			a.hypoallergenic, a.date_of_birth, a.intake_date,
			a.status, a.shelter_id,
			s.shelter_name, s.city
		FROM animals a
		JOIN shelters s ON s.shelter_id = a.shelter_id
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY s.shelter_name ASC, a.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]animals.View, 0)
	for rows.Next() {
		v, err := scanAnimalView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, wrapErr(rows.Err())
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			animal_id, name, species, breed, size, sex,
			hypoallergenic, date_of_birth, intake_date,
			status, shelter_id
		FROM animals
		WHERE animal_id = $1
	`, id)

	var a animals.Animal
	var breed, sex sql.NullString
	var dob sql.NullTime
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&breed,
		&a.Size,
		&sex,
		&a.Hypoallergenic,
		&dob,
		&a.IntakeDate,
		&a.Status,
		&a.ShelterID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, wrapErr(err)
	}

	a.Breed = breed.String
	a.Sex = sex.String
	if dob.Valid {
		t := dob.Time
		a.DateOfBirth = &t
	}
	return a, nil
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			animal_id, name, species, breed, size, sex,
			hypoallergenic, date_of_birth, intake_date,
			status, shelter_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.Name,
		string(a.Species),
		a.Breed,
		string(a.Size),
		a.Sex,
		a.Hypoallergenic,
		toNullDate(a.DateOfBirth),
		a.IntakeDate,
		string(a.Status),
		a.ShelterID,
	)
	return wrapErr(err)
}

func (r *AnimalsRepo) UpdateStatus(ctx context.Context, id string, st animals.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET status = $2 WHERE animal_id = $1
	`, id, string(st))
	if err != nil {
		return wrapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animals WHERE animal_id = $1
	`, id)
	if err != nil {
		return wrapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func scanAnimalView(rows *sql.Rows) (animals.View, error) {
	var v animals.View
	var breed, sex sql.NullString
	var dob sql.NullTime
	if err := rows.Scan(
		&v.ID,
		&v.Name,
		&v.Species,
		&breed,
		&v.Size,
		&sex,
		&v.Hypoallergenic,
		&dob,
		&v.IntakeDate,
		&v.Status,
		&v.ShelterID,
		&v.ShelterName,
		&v.City,
	); err != nil {
		return animals.View{}, err
	}

	v.Breed = breed.String
	v.Sex = sex.String
	if dob.Valid {
		t := dob.Time
		v.DateOfBirth = &t
	}
	return v, nil
}

// date_of_birth es DATE nullable, lo pasamos como NullTime
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ animals.Repository = (*AnimalsRepo)(nil)
