package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bordoodles-api/internal/domain/catalog"
)

// Table es un gateway in-memory genérico para una colección.
// Los ids son monótonos y nunca se reutilizan, igual que una secuencia SQL.
// Lo que entra y sale pasa por clone: ningún caller comparte slices con lo almacenado.
type Table[T any, P catalog.Patch[T]] struct {
	mu     sync.RWMutex
	byID   map[int64]T
	lastID int64
	name   string
	withID func(rec T, id int64) T
	clone  func(rec T) T
}

// NewTable crea una tabla vacía. clone nil equivale a copiar por valor (alcanza si T no tiene slices ni maps).
func NewTable[T any, P catalog.Patch[T]](name string, withID func(rec T, id int64) T, clone func(rec T) T) *Table[T, P] {
	if clone == nil {
		clone = func(rec T) T { return rec }
	}
	return &Table[T, P]{
		byID:   make(map[int64]T),
		name:   name,
		withID: withID,
		clone:  clone,
	}
}

func (t *Table[T, P]) Insert(ctx context.Context, rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	rec = t.withID(t.clone(rec), t.lastID)
	t.byID[t.lastID] = rec
	return t.clone(rec), nil
}

func (t *Table[T, P]) ListAll(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	// Orden por id asc (el store SQL hace lo mismo)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.byID[id]))
	}
	return out, nil
}

func (t *Table[T, P]) FetchByID(ctx context.Context, id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", t.name, id, catalog.ErrNotFound)
	}
	return t.clone(rec), nil
}

func (t *Table[T, P]) UpdateByID(ctx context.Context, id int64, patch P) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.byID[id]
	if !ok {
		return 0, nil
	}
	patch.Apply(&rec)
	t.byID[id] = t.clone(rec)
	return 1, nil
}

func (t *Table[T, P]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return 0, nil
	}
	delete(t.byID, id)
	return 1, nil
}

// Len es útil en tests.
func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
