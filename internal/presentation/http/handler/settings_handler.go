package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/request"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the store settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	response.OK(c, "Settings retrieved successfully", h.settingsService.GetSettings())
}

// UpdateSettings updates the store settings. Omitted fields are unchanged.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		DefaultReceiptWidth:  req.DefaultReceiptWidth,
		EnableOfflineLogging: req.EnableOfflineLogging,
		BackupDirectory:      req.BackupDirectory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
