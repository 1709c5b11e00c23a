package handler

import (
	"net/http"

	"ticket-store-ledger/internal/adapter/http/middleware"
	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/pkg/apperror"
	"ticket-store-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles store lifecycle endpoints.
type StoreHandler struct {
	ledger ports.TicketLedger
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(ledger ports.TicketLedger) *StoreHandler {
	return &StoreHandler{ledger: ledger}
}

// Open handles POST /api/v1/store/open.
func (h *StoreHandler) Open(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if err := h.ledger.OpenStore(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": string(domain.StoreStatusOpen)})
}

// Suspend handles POST /api/v1/store/suspend.
func (h *StoreHandler) Suspend(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if err := h.ledger.SuspendStore(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": string(domain.StoreStatusSuspended)})
}

// Close handles POST /api/v1/store/close.
func (h *StoreHandler) Close(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if err := h.ledger.CloseStore(c.Request.Context(), caller); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": string(domain.StoreStatusClosed)})
}

// Info handles GET /api/v1/store.
func (h *StoreHandler) Info(c *gin.Context) {
	info, err := h.ledger.StoreInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// HealthCheck handles GET /health, a deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
