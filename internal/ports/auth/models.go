package auth

import "time"

// Session representa la autorización de un actor staff.
// Se pasa explícita a toda operación de mutación; no hay estado global.
type Session struct {
	Token string

	// Identidad del empleado en modo credentials.
	// En modo shared_secret queda vacía (autorización sin identidad).
	EmployerID string
	StaffName  string

	Authorized bool
	CreatedAt  time.Time
}
