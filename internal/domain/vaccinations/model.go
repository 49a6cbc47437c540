package vaccinations

import "time"

// Record es una entrada del ledger de vacunación.
// AnimalID y VaccineID deben resolver a entidades existentes.
//
// DueDate queda nil cuando la fecha almacenada no parsea como fecha
// calendario; el texto original se conserva en DueDateRaw y los reportes
// dependientes de fecha marcan la fila como "unavailable" en vez de fallar.
type Record struct {
	ID        string
	AnimalID  string
	VaccineID string

	VaccinationDate time.Time
	DueDate         *time.Time
	DueDateRaw      string
}

// View es el registro joineado con los campos de display
// del animal y la vacuna.
type View struct {
	Record

	AnimalName    string
	AnimalSpecies string
	AnimalStatus  string
	VaccineName   string
}
