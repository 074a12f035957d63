package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/request"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// IssueReceipt composes a receipt and optionally prints it
// @Summary Compose receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body request.IssueReceiptRequest true "Cart and payment"
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) IssueReceipt(c *gin.Context) {
	var req request.IssueReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := req.PaymentContext()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.receiptService.Issue(c.Request.Context(), &service.IssueInput{
		PresetID: req.PresetID,
		Items:    req.LineItems(),
		Payment:  payment,
		Print:    req.Print,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"receipt": output.Receipt,
		"printed": output.Printed,
	}
	if output.PrintError != "" {
		// Return the receipt anyway; the sale happened
		data["warning"] = output.PrintError
		response.Created(c, "Receipt composed but printing failed", data)
		return
	}
	response.Created(c, "Receipt composed successfully", data)
}

// ListJournal returns issued receipts, newest first
func (h *ReceiptHandler) ListJournal(c *gin.Context) {
	result := h.receiptService.Journal(bindPagination(c))
	response.SuccessWithPagination(c, 200, "Receipt journal retrieved successfully", result)
}
