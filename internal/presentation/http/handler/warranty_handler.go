package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/request"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
)

// WarrantyHandler handles warranty ledger HTTP requests
type WarrantyHandler struct {
	warrantyService *service.WarrantyService
}

// NewWarrantyHandler creates a new warranty handler
func NewWarrantyHandler(warrantyService *service.WarrantyService) *WarrantyHandler {
	return &WarrantyHandler{warrantyService: warrantyService}
}

// warrantyView adds the validity checks as of now
func warrantyView(rec *entity.WarrantyRecord, now time.Time) gin.H {
	return gin.H{
		"warranty":       rec,
		"warranty_valid": rec.IsWarrantyValid(now),
		"return_valid":   rec.IsReturnValid(now),
	}
}

// ListWarranties returns every registered serial number
func (h *WarrantyHandler) ListWarranties(c *gin.Context) {
	response.OK(c, "Warranties retrieved successfully", h.warrantyService.List())
}

// GetWarranty returns one record with its validity
// @Summary Get warranty
// @Tags warranties
// @Produce json
// @Param serial path string true "Serial number"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /warranties/{serial} [get]
func (h *WarrantyHandler) GetWarranty(c *gin.Context) {
	rec, err := h.warrantyService.Get(c.Param("serial"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Warranty retrieved successfully", warrantyView(rec, time.Now()))
}

// PutWarranty registers or replaces the record of a serial number
func (h *WarrantyHandler) PutWarranty(c *gin.Context) {
	var req request.PutWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	now := time.Now()
	rec, err := h.warrantyService.Put(c.Request.Context(), req.Record(c.Param("serial"), now))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Warranty saved successfully", warrantyView(rec, now))
}

// DeleteWarranty removes the record of a serial number
func (h *WarrantyHandler) DeleteWarranty(c *gin.Context) {
	if err := h.warrantyService.Remove(c.Request.Context(), c.Param("serial")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Warranty deleted successfully", nil)
}
