package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
	"github.com/sangkips/kuittikone/pkg/apperror"
)

// ProfileHandler handles merchant profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles returns every profile and the active profile id
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	activeID := ""
	if active, err := h.profileService.Active(); err == nil {
		activeID = active.PresetID
	}
	response.OK(c, "Profiles retrieved successfully", gin.H{
		"profiles":  h.profileService.List(),
		"active_id": activeID,
	})
}

// GetProfile returns one profile
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", profile)
}

// GetActiveProfile returns the selected profile
func (h *ProfileHandler) GetActiveProfile(c *gin.Context) {
	profile, err := h.profileService.Active()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active profile retrieved successfully", profile)
}

// PutProfile creates or fully replaces a profile. Missing keys take their
// defaults; there is no partial update.
// @Summary Create or replace profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /profiles/{id} [put]
func (h *ProfileHandler) PutProfile(c *gin.Context) {
	id := c.Param("id")

	var profile entity.MerchantProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if profile.PresetID == "" {
		profile.PresetID = id
	}
	if profile.PresetID != id {
		response.Error(c, apperror.NewFieldError("preset_id", "must match the profile id in the path"))
		return
	}

	saved, err := h.profileService.Upsert(c.Request.Context(), &profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile saved successfully", saved)
}

// DeleteProfile removes a profile
// @Summary Delete profile
// @Tags profiles
// @Param id path string true "Profile ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile deleted successfully", nil)
}

// ActivateProfile selects the profile receipts use by default
func (h *ProfileHandler) ActivateProfile(c *gin.Context) {
	id := c.Param("id")
	if !h.profileService.SetActive(id) {
		response.Error(c, apperror.NewNotFoundError("Profile"))
		return
	}
	response.OK(c, "Profile activated", gin.H{"active_id": id})
}
