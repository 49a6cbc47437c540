package staff

// Employee es la credencial de un miembro del staff.
// Secret es un hash argon2id en formato PHC; los datasets legados
// pueden traer texto plano y se siguen aceptando (ver auth.VerifySecret).
// Fuera del Access Guard no forma parte del dominio.
type Employee struct {
	EmployerID string
	Name       string
	Secret     string
}
