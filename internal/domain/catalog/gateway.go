package catalog

import "context"

// Column es una asignación columna=valor de un update parcial.
// Value siempre es un tipo básico (string, int64 o nil) para que cualquier driver lo acepte.
type Column struct {
	Name  string
	Value any
}

// Patch es un update parcial sobre T: sólo los campos presentes se escriben.
type Patch[T any] interface {
	Apply(rec *T)
	Columns() []Column
}

// Gateway es el contrato de persistencia por tipo de entidad.
// Cada operación es atómica respecto de un único registro; no hay transacciones entre llamadas.
type Gateway[T any, P Patch[T]] interface {
	// Insert asigna el id y devuelve el registro almacenado.
	Insert(ctx context.Context, rec T) (T, error)
	// ListAll devuelve todos los registros; puede ser vacío.
	ListAll(ctx context.Context) ([]T, error)
	// FetchByID devuelve ErrNotFound si no existe.
	FetchByID(ctx context.Context, id int64) (T, error)
	// UpdateByID devuelve la cantidad de filas afectadas (0 o 1).
	UpdateByID(ctx context.Context, id int64, patch P) (int64, error)
	// DeleteByID devuelve la cantidad de filas afectadas (0 o 1).
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// ValidID rechaza ids no positivos antes de llegar al store.
func ValidID(id int64) error {
	if id <= 0 {
		return Invalid("", "invalid id")
	}
	return nil
}
