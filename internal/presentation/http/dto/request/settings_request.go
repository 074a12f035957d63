package request

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	DefaultReceiptWidth  *int    `json:"default_receipt_width" binding:"omitempty,gte=20,lte=120"`
	EnableOfflineLogging *bool   `json:"enable_offline_logging"`
	BackupDirectory      *string `json:"backup_directory" binding:"omitempty,min=1"`
}
