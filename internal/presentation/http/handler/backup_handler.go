package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/request"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
)

// BackupHandler handles backup and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// CreateBackup writes a snapshot of the whole store to the backup
// directory. The request body is ignored.
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	path, err := h.backupService.Export(c.Request.Context(), "")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Backup created successfully", gin.H{"path": path})
}

// ListBackups returns the snapshots in the backup directory
func (h *BackupHandler) ListBackups(c *gin.Context) {
	backups, err := h.backupService.List("")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backups retrieved successfully", backups)
}

// RestoreBackup replaces the store with a snapshot from the backup directory
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	var req request.RestoreBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	path := filepath.Join(h.backupService.Dir(), filepath.Base(req.File))
	if err := h.backupService.Restore(c.Request.Context(), path); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backup restored successfully", gin.H{"path": path})
}
