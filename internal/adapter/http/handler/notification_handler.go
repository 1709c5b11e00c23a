package handler

import (
	"strconv"

	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
	"ticket-store-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxNotificationPage = 500

// NotificationHandler serves the transition record feed.
type NotificationHandler struct {
	ledger ports.TicketLedger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ledger ports.TicketLedger) *NotificationHandler {
	return &NotificationHandler{ledger: ledger}
}

// List handles GET /api/v1/notifications?after=N&limit=M. Consumers poll with
// their last seen sequence as the cursor.
func (h *NotificationHandler) List(c *gin.Context) {
	var after uint64
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("after must be a non-negative integer"))
			return
		}
		after = parsed
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	if limit > maxNotificationPage {
		limit = maxNotificationPage
	}

	list, err := h.ledger.Notifications(c.Request.Context(), after, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"items": list, "count": len(list)})
}
