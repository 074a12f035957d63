package service

import (
	"context"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewSettingsService(store)

	assert.Equal(t, entity.DefaultSettings(), svc.GetSettings())

	width, logging := 32, false
	updated, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		DefaultReceiptWidth:  &width,
		EnableOfflineLogging: &logging,
	})
	require.NoError(t, err)
	assert.Equal(t, 32, updated.DefaultReceiptWidth)
	assert.False(t, updated.EnableOfflineLogging)
	assert.Equal(t, "./backups", updated.BackupDirectory)
	assert.Equal(t, updated, svc.GetSettings())
}
