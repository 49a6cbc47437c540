package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shelter-dashboard/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT shelter_id, shelter_name, city
		FROM shelters
		ORDER BY shelter_name ASC
	`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		var s shelters.Shelter
		if err := rows.Scan(&s.ID, &s.Name, &s.City); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, wrapErr(rows.Err())
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return shelters.Shelter{}, shelters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT shelter_id, shelter_name, city
		FROM shelters
		WHERE shelter_id = $1
	`, id)

	var s shelters.Shelter
	if err := row.Scan(&s.ID, &s.Name, &s.City); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, wrapErr(err)
	}
	return s, nil
}

var _ shelters.Repository = (*SheltersRepo)(nil)
