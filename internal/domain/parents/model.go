package parents

// Role indica si el ejemplar es padre o madre.
// Valores conocidos; no se valida (campo libre en la base).
type Role string

const (
	RoleSire Role = "Sire"
	RoleDam  Role = "Dam"
)

// Parent representa un ejemplar reproductor.
// No hay FK hacia puppies: borrar un Parent no afecta a ningún cachorro.
type Parent struct {
	ID int64

	Name string
	Role string

	Breed  string
	Color  string
	Weight string // texto libre, ej. "45 lbs"

	Description string
	Image       string
}
