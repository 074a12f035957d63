package request

// RestoreBackupRequest names a snapshot file in the backup directory
type RestoreBackupRequest struct {
	File string `json:"file" binding:"required"`
}
