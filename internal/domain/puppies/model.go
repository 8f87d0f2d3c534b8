package puppies

import "bordoodles-api/internal/domain/catalog"

// Status es el estado comercial del cachorro.
// No se valida: el front puede mandar otros valores.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
	StatusSold      Status = "Sold"
)

// Puppy representa un cachorro publicado en el catálogo.
type Puppy struct {
	ID int64

	Name   string
	Breed  string
	Color  string
	Gender string

	Price  *int
	Status string
	DOB    *catalog.Date

	Description string
	Images      catalog.StringList // referencias a imágenes subidas, sin validar
}

// Clone devuelve una copia que no comparte images, price ni dob con p.
func (p Puppy) Clone() Puppy {
	if p.Images != nil {
		p.Images = append(catalog.StringList{}, p.Images...)
	}
	if p.Price != nil {
		v := *p.Price
		p.Price = &v
	}
	if p.DOB != nil {
		d := *p.DOB
		p.DOB = &d
	}
	return p
}
