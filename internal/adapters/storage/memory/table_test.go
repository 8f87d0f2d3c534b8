package memory

import (
	"context"
	"sync"
	"testing"

	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/parents"
	"bordoodles-api/internal/domain/puppies"

	"github.com/stretchr/testify/require"
)

func TestTable_ConcurrentInsertsGetUniqueIDs(t *testing.T) {
	repo := NewParentRepo()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Insert(ctx, parents.Parent{Name: "x", Role: "Dam"})
			require.NoError(t, err)
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	for i := 1; i < len(list); i++ {
		require.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestTable_UpdateDeleteCounts(t *testing.T) {
	repo := NewParentRepo()
	ctx := context.Background()

	p, err := repo.Insert(ctx, parents.Parent{Name: "Duke", Role: "Sire"})
	require.NoError(t, err)

	color := "Merle"
	n, err := repo.UpdateByID(ctx, p.ID, parents.Patch{Color: &color})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = repo.UpdateByID(ctx, 99, parents.Patch{Color: &color})
	require.NoError(t, err)
	require.Zero(t, n)

	got, err := repo.FetchByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Merle", got.Color)

	n, err = repo.DeleteByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = repo.DeleteByID(ctx, p.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = repo.FetchByID(ctx, p.ID)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestTable_RecordsDoNotShareStorage(t *testing.T) {
	repo := NewPuppyRepo()
	ctx := context.Background()

	price := 1200
	in := puppies.Puppy{Name: "Rex", Breed: "Bordoodle", Price: &price, Images: catalog.StringList{"/a.png", "/b.png"}}
	created, err := repo.Insert(ctx, in)
	require.NoError(t, err)

	// mutar la entrada y lo devuelto no toca lo almacenado
	in.Images[0] = "/in.png"
	price = 1
	created.Images[1] = "/created.png"
	*created.Price = 2

	got, err := repo.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, catalog.StringList{"/a.png", "/b.png"}, got.Images)
	require.Equal(t, 1200, *got.Price)

	got.Images[0] = "/fetched.png"
	*got.Price = 3

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, catalog.StringList{"/a.png", "/b.png"}, list[0].Images)
	require.Equal(t, 1200, *list[0].Price)

	list[0].Images[0] = "/listed.png"

	again, err := repo.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, catalog.StringList{"/a.png", "/b.png"}, again.Images)
	require.Equal(t, 1200, *again.Price)
}

func TestTable_UpdateDoesNotAliasPatch(t *testing.T) {
	repo := NewPuppyRepo()
	ctx := context.Background()

	p, err := repo.Insert(ctx, puppies.Puppy{Name: "Rex", Breed: "Bordoodle"})
	require.NoError(t, err)

	imgs := []string{"/x.png"}
	n, err := repo.UpdateByID(ctx, p.ID, puppies.Patch{Images: &imgs})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	imgs[0] = "/changed.png"

	got, err := repo.FetchByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, catalog.StringList{"/x.png"}, got.Images)
}
