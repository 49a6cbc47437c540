package postgres

import (
	"context"
	"database/sql"

	"shelter-dashboard/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) List(ctx context.Context) ([]vaccinations.View, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			vr.vaccination_id, vr.animal_id, vr.vaccine_id,
			vr.vaccination_date, vr.due_date,
			a.name, a.species, a.status,
			v.vaccine_name
		FROM vaccination_record vr
		JOIN animals a ON a.animal_id = vr.animal_id
		JOIN vaccines v ON v.vaccine_id = vr.vaccine_id
		ORDER BY vr.vaccination_id ASC
	`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]vaccinations.View, 0)
	for rows.Next() {
		var v vaccinations.View
		var due sql.NullTime
		if err := rows.Scan(
			&v.ID,
			&v.AnimalID,
			&v.VaccineID,
			&v.VaccinationDate,
			&due,
			&v.AnimalName,
			&v.AnimalSpecies,
			&v.AnimalStatus,
			&v.VaccineName,
		); err != nil {
			return nil, err
		}

		if due.Valid {
			t := due.Time
			v.DueDate = &t
			v.DueDateRaw = t.Format("2006-01-02")
		}

		out = append(out, v)
	}
	return out, wrapErr(rows.Err())
}

// Create solo inserta: el descuento de stock lo hace el trigger
// vaccination_stock_decrement del esquema (ver migrations/schema.sql).
func (r *VaccinationsRepo) Create(ctx context.Context, rec vaccinations.Record) error {
	var due sql.NullTime
	if rec.DueDate != nil {
		due = sql.NullTime{Time: *rec.DueDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccination_record (
			vaccination_id, animal_id, vaccine_id, vaccination_date, due_date
		) VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID,
		rec.AnimalID,
		rec.VaccineID,
		rec.VaccinationDate,
		due,
	)
	return wrapErr(err)
}

var _ vaccinations.Repository = (*VaccinationsRepo)(nil)
