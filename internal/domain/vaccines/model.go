package vaccines

// Species es la especie destino de la vacuna.
// Mismos valores que el catálogo de animales; se duplica el tipo
// para no acoplar el inventario al paquete animals.
type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

func ValidSpecies(s Species) bool {
	return s == SpeciesDog || s == SpeciesCat
}

// Vaccine lleva el stock disponible. Quantity nunca baja de cero:
// todo decremento se clampea.
type Vaccine struct {
	ID       string
	Name     string
	Species  Species
	Quantity int
	Notes    string
}
