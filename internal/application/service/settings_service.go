package service

import (
	"context"

	"github.com/sangkips/kuittikone/internal/domain/entity"
)

// SettingsService handles the store-wide receipt settings
type SettingsService struct {
	store *DocumentStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(store *DocumentStore) *SettingsService {
	return &SettingsService{store: store}
}

// GetSettings returns the current settings
func (s *SettingsService) GetSettings() entity.Settings {
	var settings entity.Settings
	s.store.View(func(doc *entity.Document) {
		settings = doc.Settings
	})
	return settings
}

// UpdateSettingsInput represents the input for updating settings. Nil
// fields keep their current value.
type UpdateSettingsInput struct {
	DefaultReceiptWidth  *int
	EnableOfflineLogging *bool
	BackupDirectory      *string
}

// UpdateSettings applies the set fields and persists the document
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (entity.Settings, error) {
	var settings entity.Settings
	err := s.store.Update(ctx, func(doc *entity.Document) error {
		if input.DefaultReceiptWidth != nil {
			doc.Settings.DefaultReceiptWidth = *input.DefaultReceiptWidth
		}
		if input.EnableOfflineLogging != nil {
			doc.Settings.EnableOfflineLogging = *input.EnableOfflineLogging
		}
		if input.BackupDirectory != nil {
			doc.Settings.BackupDirectory = *input.BackupDirectory
		}
		settings = doc.Settings
		return nil
	})
	if err != nil {
		return entity.Settings{}, err
	}
	return settings, nil
}
