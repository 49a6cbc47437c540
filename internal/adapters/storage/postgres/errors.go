package postgres

import (
	"context"
	"errors"
	"fmt"

	"shelter-dashboard/internal/adapters/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapErr traduce errores del driver a la taxonomía del storage:
// violaciones de constraint => ErrIntegrity, fallas de conexión =>
// ErrUnavailable. Los errores de contexto pasan tal cual.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503", "23505", "23514": // fk, unique, check
			return fmt.Errorf("%s: %w", pgErr.Message, storage.ErrIntegrity)
		}
		return err
	}

	return fmt.Errorf("%v: %w", err, storage.ErrUnavailable)
}
