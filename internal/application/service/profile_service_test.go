package service

import (
	"context"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpsertAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewProfileService(store)
	ctx := context.Background()

	p := shopProfile()
	p.Slogan = "Hyvä\x1b[1m"
	saved, err := svc.Upsert(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Hyvä[1m", saved.Slogan)

	got, err := svc.Get("shop")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	got.CompanyName = "mutated copy"
	again, err := svc.Get("shop")
	require.NoError(t, err)
	assert.Equal(t, "Shop Oy", again.CompanyName)

	p2 := shopProfile()
	p2.CompanyName = "Shop Two Oy"
	_, err = svc.Upsert(ctx, p2)
	require.NoError(t, err)
	got, err = svc.Get("shop")
	require.NoError(t, err)
	assert.Equal(t, "Shop Two Oy", got.CompanyName)
	assert.Len(t, svc.List(), 1)
}

func TestProfileService_UpsertRejectsInvalid(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewProfileService(store)

	p := shopProfile()
	p.VATRate = 1
	_, err := svc.Upsert(context.Background(), p)
	assert.True(t, apperror.IsValidation(err))

	p = shopProfile()
	p.PromoRules = append(p.PromoRules, p.PromoRules[0])
	_, err = svc.Upsert(context.Background(), p)
	assert.True(t, apperror.IsValidation(err))

	assert.Empty(t, svc.List())
}

func TestProfileService_GetUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := NewProfileService(store).Get("nope")
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestProfileService_ListSorted(t *testing.T) {
	store, _ := newTestStore(t,
		entity.NewMerchantProfile("c", "C", enum.TemplateCorporate),
		entity.NewMerchantProfile("a", "A", enum.TemplateCorporate),
		entity.NewMerchantProfile("b", "B", enum.TemplateCorporate),
	)
	var ids []string
	for _, p := range NewProfileService(store).List() {
		ids = append(ids, p.PresetID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestProfileService_ActiveSelection(t *testing.T) {
	store, _ := newTestStore(t,
		entity.NewMerchantProfile("a", "A", enum.TemplateCorporate),
		entity.NewMerchantProfile("b", "B", enum.TemplateMinimal),
	)
	svc := NewProfileService(store)

	active, err := svc.Active()
	require.NoError(t, err)
	assert.Equal(t, "a", active.PresetID)

	assert.True(t, svc.SetActive("b"))
	assert.False(t, svc.SetActive("unknown"))
	active, err = svc.Active()
	require.NoError(t, err)
	assert.Equal(t, "b", active.PresetID)

	require.NoError(t, svc.Remove(context.Background(), "b"))
	_, err = svc.Active()
	assert.ErrorIs(t, err, apperror.ErrNoActiveProfile)

	assert.Error(t, svc.Remove(context.Background(), "b"))
}

func TestProfileService_Resolve(t *testing.T) {
	store, _ := newTestStore(t, shopProfile())
	svc := NewProfileService(store)

	p, err := svc.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "shop", p.PresetID)

	p, err = svc.Resolve("shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", p.PresetID)

	_, err = svc.Resolve("ghost")
	assert.ErrorIs(t, err, apperror.ErrNoActiveProfile)
}

func TestProfileService_EmptyStoreHasNoActive(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := NewProfileService(store).Active()
	assert.ErrorIs(t, err, apperror.ErrNoActiveProfile)
}
