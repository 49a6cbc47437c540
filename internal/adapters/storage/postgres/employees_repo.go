package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shelter-dashboard/internal/domain/staff"
)

type EmployeesRepo struct {
	db *sql.DB
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

// GetByEmployerID: match exacto y case-sensitive, como el login original.
func (r *EmployeesRepo) GetByEmployerID(ctx context.Context, employerID string) (staff.Employee, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return staff.Employee{}, staff.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT employer_id, name, password
		FROM employees
		WHERE employer_id = $1
	`, employerID)

	var e staff.Employee
	if err := row.Scan(&e.EmployerID, &e.Name, &e.Secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return staff.Employee{}, staff.ErrNotFound
		}
		return staff.Employee{}, wrapErr(err)
	}
	return e, nil
}

var _ staff.Repository = (*EmployeesRepo)(nil)
