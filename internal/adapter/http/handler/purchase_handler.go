package handler

import (
	"ticket-store-ledger/internal/adapter/http/dto"
	"ticket-store-ledger/internal/adapter/http/middleware"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
	"ticket-store-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase endpoints.
type PurchaseHandler struct {
	ledger ports.TicketLedger
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ledger ports.TicketLedger) *PurchaseHandler {
	return &PurchaseHandler{ledger: ledger}
}

// Purchase handles POST /api/v1/events/:id/purchases.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	id, err := h.ledger.PurchaseTickets(c.Request.Context(), caller, ports.PurchaseTicketsParams{
		EventID:       eventID,
		Quantity:      req.Quantity,
		ExternalID:    req.ExternalID,
		Timestamp:     req.Timestamp,
		CustomerID:    req.CustomerID,
		AttachedValue: req.AttachedValue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedResponse{ID: id})
}

// Cancel handles POST /api/v1/purchases/:id/cancel.
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CancelPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	err := h.ledger.CancelPurchase(c.Request.Context(), caller, ports.CancelPurchaseParams{
		PurchaseID: purchaseID,
		ExternalID: req.ExternalID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"id": purchaseID, "status": "CANCELLED"})
}

// Refund handles POST /api/v1/events/:id/purchases/:purchase_id/refund.
func (h *PurchaseHandler) Refund(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	purchaseID, ok := parseIDParam(c, "purchase_id")
	if !ok {
		return
	}

	if err := h.ledger.RefundPurchase(c.Request.Context(), caller, eventID, purchaseID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"id": purchaseID, "status": "REFUNDED"})
}

// CheckIn handles POST /api/v1/purchases/:id/checkin.
func (h *PurchaseHandler) CheckIn(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ledger.CheckIn(c.Request.Context(), caller, purchaseID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"id": purchaseID, "status": "CHECKED_IN"})
}

// Info handles GET /api/v1/purchases/:id.
func (h *PurchaseHandler) Info(c *gin.Context) {
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	info, err := h.ledger.PurchaseInfo(c.Request.Context(), purchaseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}
