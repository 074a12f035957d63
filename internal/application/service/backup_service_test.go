package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupService(store *DocumentStore, fs afero.Fs, dir string) *BackupService {
	svc := NewBackupService(store, fs, dir)
	svc.now = fixedClock
	return svc
}

func TestBackupService_Export(t *testing.T) {
	store, fs := newTestStore(t, shopProfile())
	svc := newBackupService(store, fs, "")

	path, err := svc.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "backups/kuittikone_backup_20240315_103000.json", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	var doc entity.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, store.Snapshot(), &doc)
}

func TestBackupService_ExportToDir(t *testing.T) {
	store, fs := newTestStore(t)
	svc := newBackupService(store, fs, "/default")

	path, err := svc.Export(context.Background(), "/media/usb")
	require.NoError(t, err)
	assert.Equal(t, "/media/usb/kuittikone_backup_20240315_103000.json", path)

	path, err = svc.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/default/kuittikone_backup_20240315_103000.json", path)
}

func TestBackupService_ExportFailure(t *testing.T) {
	store, fs := newTestStore(t)
	svc := newBackupService(store, afero.NewReadOnlyFs(fs), "/ro")

	_, err := svc.Export(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
}

func TestBackupService_RestoreReplacesEverything(t *testing.T) {
	store, fs := newTestStore(t, shopProfile())
	svc := newBackupService(store, fs, "/b")
	ctx := context.Background()

	path, err := svc.Export(ctx, "")
	require.NoError(t, err)

	profiles := NewProfileService(store)
	require.NoError(t, profiles.Remove(ctx, "shop"))
	_, err = profiles.Upsert(ctx, entity.NewMerchantProfile("other", "Other", enum.TemplateMinimal))
	require.NoError(t, err)

	require.NoError(t, svc.Restore(ctx, path))
	list := profiles.List()
	require.Len(t, list, 1)
	assert.Equal(t, "shop", list[0].PresetID)

	active, err := profiles.Active()
	require.NoError(t, err)
	assert.Equal(t, "shop", active.PresetID)
}

func TestBackupService_RestoreErrors(t *testing.T) {
	store, fs := newTestStore(t, shopProfile())
	svc := newBackupService(store, fs, "/b")
	ctx := context.Background()

	err := svc.Restore(ctx, "/b/missing.json")
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	require.NoError(t, afero.WriteFile(fs, "/b/garbage.json", []byte("{not json"), 0o644))
	err = svc.Restore(ctx, "/b/garbage.json")
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	require.NoError(t, afero.WriteFile(fs, "/b/invalid.json", []byte(`{"presets":{"x":{"company_name":""}}}`), 0o644))
	err = svc.Restore(ctx, "/b/invalid.json")
	assert.True(t, apperror.IsValidation(err))

	_, err = NewProfileService(store).Get("shop")
	assert.NoError(t, err)
}

func TestBackupService_List(t *testing.T) {
	store, fs := newTestStore(t)
	svc := newBackupService(store, fs, "/b")

	backups, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, backups)

	_, err = svc.Export(context.Background(), "")
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	_, err = svc.Export(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/b/notes.txt", []byte("x"), 0o644))

	backups, err = svc.List("")
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "kuittikone_backup_20240315_113000.json", backups[0].Name)
	assert.True(t, fixedNow.Add(time.Hour).Equal(backups[0].CreatedAt))
	assert.Positive(t, backups[0].Size)
}
