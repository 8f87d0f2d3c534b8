package puppies_test

import (
	"context"
	"testing"
	"time"

	mem "bordoodles-api/internal/adapters/storage/memory"
	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/puppies"

	"github.com/stretchr/testify/require"
)

func newService() *puppies.Service {
	return puppies.NewService(mem.NewPuppyRepo())
}

func patchFrom(t *testing.T, body string) puppies.Patch {
	t.Helper()
	f, err := catalog.ParseFields([]byte(body))
	require.NoError(t, err)
	require.NoError(t, f.Allow(puppies.Fields))
	p, err := puppies.PatchFromFields(f)
	require.NoError(t, err)
	return p
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"name":"Rex","breed":"Bordoodle"}`))
	require.NoError(t, err)
	require.Positive(t, p.ID)
	require.Equal(t, "Rex", p.Name)
	require.Equal(t, string(puppies.StatusAvailable), p.Status)
	require.NotNil(t, p.Images)
	require.Empty(t, p.Images)
	require.Nil(t, p.Price)
	require.Nil(t, p.DOB)
}

func TestService_CreateRequiresNameAndBreed(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	for _, body := range []string{`{}`, `{"name":"Rex"}`, `{"breed":"Bordoodle"}`, `{"name":"","breed":"Bordoodle"}`} {
		_, err := svc.Create(ctx, patchFrom(t, body))
		require.ErrorIs(t, err, catalog.ErrValidation, body)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestService_CreateIgnoresClientID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"id":42,"name":"Rex","breed":"Bordoodle"}`))
	require.NoError(t, err)
	require.Equal(t, int64(1), p.ID)
}

func TestService_UpdateMergesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	orig, err := svc.Create(ctx, patchFrom(t, `{
		"name":"Rex","breed":"Bordoodle","color":"Black","price":1200,
		"dob":"2025-03-01","images":["/a.png"]
	}`))
	require.NoError(t, err)

	upd, err := svc.Update(ctx, orig.ID, patchFrom(t, `{"price":1500,"status":"Reserved"}`))
	require.NoError(t, err)
	require.Equal(t, 1500, *upd.Price)
	require.Equal(t, string(puppies.StatusReserved), upd.Status)
	require.Equal(t, "Black", upd.Color)
	require.Equal(t, catalog.NewDate(2025, time.March, 1), *upd.DOB)
	require.Equal(t, catalog.StringList{"/a.png"}, upd.Images)

	// null limpia price/dob; images null => []
	upd, err = svc.Update(ctx, orig.ID, patchFrom(t, `{"price":null,"dob":null,"images":null}`))
	require.NoError(t, err)
	require.Nil(t, upd.Price)
	require.Nil(t, upd.DOB)
	require.Empty(t, upd.Images)
	require.Equal(t, "Rex", upd.Name)
}

func TestService_StringsStoredAsSent(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"name":" Rex ","breed":"Bordoodle ","color":" Black"}`))
	require.NoError(t, err)
	require.Equal(t, " Rex ", p.Name)
	require.Equal(t, "Bordoodle ", p.Breed)
	require.Equal(t, " Black", p.Color)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, " Rex ", got.Name)
	require.Equal(t, "Bordoodle ", got.Breed)

	upd, err := svc.Update(ctx, p.ID, patchFrom(t, `{"name":"  Max"}`))
	require.NoError(t, err)
	require.Equal(t, "  Max", upd.Name)
}

func TestService_StatusDefaultOnlyWhenAbsent(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"name":"Rex","breed":"Bordoodle","status":""}`))
	require.NoError(t, err)
	require.Equal(t, "", p.Status)

	p, err = svc.Update(ctx, p.ID, patchFrom(t, `{"status":"Sold"}`))
	require.NoError(t, err)
	require.Equal(t, "Sold", p.Status)

	p, err = svc.Update(ctx, p.ID, patchFrom(t, `{"status":""}`))
	require.NoError(t, err)
	require.Equal(t, "", p.Status)

	// sin status en el body se conserva el actual
	p, err = svc.Update(ctx, p.ID, patchFrom(t, `{"status":"Reserved"}`))
	require.NoError(t, err)
	p, err = svc.Update(ctx, p.ID, patchFrom(t, `{"color":"Red"}`))
	require.NoError(t, err)
	require.Equal(t, string(puppies.StatusReserved), p.Status)
}

func TestService_UpdateIsIdempotentAndEmptyPatchKeepsRecord(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"name":"Rex","breed":"Bordoodle"}`))
	require.NoError(t, err)

	patch := patchFrom(t, `{"color":"Merle"}`)
	first, err := svc.Update(ctx, p.ID, patch)
	require.NoError(t, err)
	second, err := svc.Update(ctx, p.ID, patch)
	require.NoError(t, err)
	require.Equal(t, first, second)

	same, err := svc.Update(ctx, p.ID, patchFrom(t, `{}`))
	require.NoError(t, err)
	require.Equal(t, first, same)
}

func TestService_UpdateRejectsBlankRequired(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p, err := svc.Create(ctx, patchFrom(t, `{"name":"Rex","breed":"Bordoodle"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, patchFrom(t, `{"name":"  "}`))
	require.ErrorIs(t, err, catalog.ErrValidation)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Rex", got.Name)
}

func TestService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Get(ctx, 999)
	require.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.Update(ctx, 999, patchFrom(t, `{"price":1}`))
	require.ErrorIs(t, err, catalog.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, 999), catalog.ErrNotFound)

	_, err = svc.Get(ctx, 0)
	require.ErrorIs(t, err, catalog.ErrValidation)
}

func TestService_DeleteThenIDsNotReused(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	a, err := svc.Create(ctx, patchFrom(t, `{"name":"A","breed":"B"}`))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, a.ID))
	require.ErrorIs(t, svc.Delete(ctx, a.ID), catalog.ErrNotFound)

	b, err := svc.Create(ctx, patchFrom(t, `{"name":"C","breed":"D"}`))
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, b.ID, list[0].ID)
}
