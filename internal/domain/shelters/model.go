package shelters

// Shelter es de solo lectura en este sistema: se referencia desde
// el catálogo de animales, nunca se muta.
type Shelter struct {
	ID   string
	Name string
	City string
}
