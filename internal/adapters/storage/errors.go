// Package storage define los errores comunes a todos los adaptadores
// (snapshot CSV, memoria, Postgres). Los dominios definen sus propios
// ErrNotFound/ErrInvalidInput; acá van solo los de infraestructura.
package storage

import "errors"

var (
	// ErrUnavailable: el backing store no responde (conexión caída,
	// archivo ausente). Se reporta y la operación se aborta; nunca es fatal.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrIntegrity: una escritura rompería una referencia
	// (shelter_id inexistente, animal_id inexistente en el ledger).
	ErrIntegrity = errors.New("integrity violation")
)
