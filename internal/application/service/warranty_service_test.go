package service

import (
	"context"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarrantyService_PutGetList(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewWarrantyService(store)
	ctx := context.Background()

	_, err := svc.Put(ctx, entity.NewWarrantyRecord(" SN-2 ", "Saw", fixedNow, 24))
	require.NoError(t, err)
	_, err = svc.Put(ctx, entity.NewWarrantyRecord("SN-1", "Drill", fixedNow, 12))
	require.NoError(t, err)

	rec, err := svc.Get("SN-2")
	require.NoError(t, err)
	assert.Equal(t, "Saw", rec.ProductName)
	assert.Equal(t, 14, rec.ReturnDays)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "SN-1", list[0].SerialNumber)
	assert.Equal(t, "SN-2", list[1].SerialNumber)

	replacement := entity.NewWarrantyRecord("SN-1", "Drill Pro", fixedNow, 36)
	_, err = svc.Put(ctx, replacement)
	require.NoError(t, err)
	rec, err = svc.Get("SN-1")
	require.NoError(t, err)
	assert.Equal(t, 36, rec.WarrantyMonths)
}

func TestWarrantyService_Validation(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewWarrantyService(store)

	_, err := svc.Put(context.Background(), &entity.WarrantyRecord{SerialNumber: "  ", PurchaseDate: "2024-01-01"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Put(context.Background(), &entity.WarrantyRecord{SerialNumber: "X", PurchaseDate: "2024-01-01", WarrantyMonths: -1})
	assert.True(t, apperror.IsValidation(err))
}

func TestWarrantyService_MalformedDateIsStoredButInvalid(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewWarrantyService(store)

	_, err := svc.Put(context.Background(), &entity.WarrantyRecord{SerialNumber: "BAD", PurchaseDate: "yesterday", WarrantyMonths: 12, ReturnDays: 14})
	require.NoError(t, err)

	rec, ok := svc.Lookup("BAD")
	require.True(t, ok)
	assert.False(t, rec.IsWarrantyValid(fixedNow))
	assert.False(t, rec.IsReturnValid(fixedNow))
}

func TestWarrantyService_LookupAndRemove(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewWarrantyService(store)

	_, ok := svc.Lookup("nope")
	assert.False(t, ok)
	_, err := svc.Get("nope")
	assert.Error(t, err)

	_, err = svc.Put(context.Background(), entity.NewWarrantyRecord("SN", "Item", fixedNow, 6))
	require.NoError(t, err)

	rec, ok := svc.Lookup("SN")
	require.True(t, ok)
	rec.Notes = "local change"
	again, _ := svc.Lookup("SN")
	assert.Empty(t, again.Notes)

	require.NoError(t, svc.Remove(context.Background(), "SN"))
	assert.Error(t, svc.Remove(context.Background(), "SN"))
	assert.Empty(t, svc.List())
}
