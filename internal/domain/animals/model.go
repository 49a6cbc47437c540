package animals

import "time"

// Species define las especies soportadas por el refugio.
// @Enum DOG, CAT
type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	}
	return false
}

// Size define el porte del animal.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

func ValidSize(s Size) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Status define el estado operativo del animal dentro del refugio.
// @Enum Available, Foster, Adopted
type Status string

const (
	StatusAvailable Status = "Available"
	StatusFoster    Status = "Foster"
	StatusAdopted   Status = "Adopted"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusFoster, StatusAdopted:
		return true
	}
	return false
}

// Animal representa un registro del catálogo.
// ShelterID debe resolver a un Shelter existente.
type Animal struct {
	ID string

	Name    string
	Species Species
	Breed   string
	Size    Size
	Sex     string

	Hypoallergenic bool

	DateOfBirth *time.Time
	IntakeDate  time.Time

	Status    Status
	ShelterID string
}

// View es el animal más el join con su shelter, listo para mostrar.
type View struct {
	Animal

	ShelterName string
	City        string
}
