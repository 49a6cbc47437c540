package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shelter-dashboard/internal/domain/vaccines"
)

type VaccinesRepo struct {
	db *sql.DB
}

func NewVaccinesRepo(db *sql.DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

func (r *VaccinesRepo) List(ctx context.Context) ([]vaccines.Vaccine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vaccine_id, vaccine_name, species, quantity, COALESCE(notes, '')
		FROM vaccines
		ORDER BY species ASC, vaccine_name ASC
	`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]vaccines.Vaccine, 0)
	for rows.Next() {
		var v vaccines.Vaccine
		if err := rows.Scan(&v.ID, &v.Name, &v.Species, &v.Quantity, &v.Notes); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, wrapErr(rows.Err())
}

func (r *VaccinesRepo) GetByID(ctx context.Context, id string) (vaccines.Vaccine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccines.Vaccine{}, vaccines.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT vaccine_id, vaccine_name, species, quantity, COALESCE(notes, '')
		FROM vaccines
		WHERE vaccine_id = $1
	`, id)

	var v vaccines.Vaccine
	if err := row.Scan(&v.ID, &v.Name, &v.Species, &v.Quantity, &v.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccines.Vaccine{}, vaccines.ErrNotFound
		}
		return vaccines.Vaccine{}, wrapErr(err)
	}
	return v, nil
}

func (r *VaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccines (vaccine_id, vaccine_name, species, quantity, notes)
		VALUES ($1,$2,$3,$4,$5)
	`,
		v.ID,
		v.Name,
		string(v.Species),
		v.Quantity,
		v.Notes,
	)
	return wrapErr(err)
}

func (r *VaccinesRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	// GREATEST mantiene el invariante de stock no negativo también acá.
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccines SET quantity = GREATEST(0, $2) WHERE vaccine_id = $1
	`, id, quantity)
	if err != nil {
		return wrapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vaccines.ErrNotFound
	}
	return nil
}

var _ vaccines.Repository = (*VaccinesRepo)(nil)
