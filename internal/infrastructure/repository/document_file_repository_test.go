package repository

import (
	"context"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFileRepository_LoadMissing(t *testing.T) {
	repo := NewDocumentFileRepository(afero.NewMemMapFs(), "data/kuittikone_config.json")

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocumentFileRepository_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewDocumentFileRepository(fs, "data/kuittikone_config.json")
	ctx := context.Background()

	doc := entity.NewDocument()
	doc.Presets["shop"] = entity.NewMerchantProfile("shop", "Kauppa Oy", enum.TemplateVATBreakdown)
	doc.WarrantyDatabase["SN-1"] = &entity.WarrantyRecord{SerialNumber: "SN-1", PurchaseDate: "2024-05-01T09:30:00", WarrantyMonths: 24, ReturnDays: 14}

	require.NoError(t, repo.Save(ctx, doc))

	exists, err := afero.Exists(fs, "data/kuittikone_config.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)

	raw, err := afero.ReadFile(fs, "data/kuittikone_config.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"template_type": "vat_breakdown"`)
	assert.Contains(t, string(raw), `"warranty_database"`)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestDocumentFileRepository_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "store.json", []byte("{not json"), 0o644))

	_, err := NewDocumentFileRepository(fs, "store.json").Load(context.Background())
	assert.Error(t, err)
}

func TestDocumentFileRepository_ReadOnlyFs(t *testing.T) {
	repo := NewDocumentFileRepository(afero.NewReadOnlyFs(afero.NewMemMapFs()), "store.json")
	assert.Error(t, repo.Save(context.Background(), entity.NewDocument()))
}
