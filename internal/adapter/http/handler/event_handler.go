package handler

import (
	"context"
	"strconv"

	"ticket-store-ledger/internal/adapter/http/dto"
	"ticket-store-ledger/internal/adapter/http/middleware"
	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
	"ticket-store-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler handles event lifecycle endpoints.
type EventHandler struct {
	ledger ports.TicketLedger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(ledger ports.TicketLedger) *EventHandler {
	return &EventHandler{ledger: ledger}
}

// Create handles POST /api/v1/events.
func (h *EventHandler) Create(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	id, err := h.ledger.CreateEvent(c.Request.Context(), caller, ports.CreateEventParams{
		ExternalID:        req.ExternalID,
		Organizer:         domain.Address(req.Organizer),
		Name:              req.Name,
		StoreIncentiveBps: req.StoreIncentiveBps,
		TicketPrice:       req.TicketPrice,
		TicketsOnSale:     req.TicketsOnSale,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedResponse{ID: id})
}

// StartSales handles POST /api/v1/events/:id/start-sales.
func (h *EventHandler) StartSales(c *gin.Context) {
	h.transition(c, h.ledger.StartTicketSales)
}

// SuspendSales handles POST /api/v1/events/:id/suspend-sales.
func (h *EventHandler) SuspendSales(c *gin.Context) {
	h.transition(c, h.ledger.SuspendTicketSales)
}

// EndSales handles POST /api/v1/events/:id/end-sales.
func (h *EventHandler) EndSales(c *gin.Context) {
	h.transition(c, h.ledger.EndTicketSales)
}

// Complete handles POST /api/v1/events/:id/complete.
func (h *EventHandler) Complete(c *gin.Context) {
	h.transition(c, h.ledger.CompleteEvent)
}

// Settle handles POST /api/v1/events/:id/settle.
func (h *EventHandler) Settle(c *gin.Context) {
	h.transition(c, h.ledger.SettleEvent)
}

// Cancel handles POST /api/v1/events/:id/cancel.
func (h *EventHandler) Cancel(c *gin.Context) {
	h.transition(c, h.ledger.CancelEvent)
}

func (h *EventHandler) transition(c *gin.Context, op func(context.Context, domain.Address, uint64) error) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := op(c.Request.Context(), caller, id); err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.ledger.EventInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "status": string(info.Status)})
}

// Info handles GET /api/v1/events/:id.
func (h *EventHandler) Info(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	info, err := h.ledger.EventInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// SalesInfo handles GET /api/v1/events/:id/sales.
func (h *EventHandler) SalesInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	info, err := h.ledger.EventSalesInfo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// parseIDParam parses a numeric URL parameter, writing a validation error on
// failure.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
