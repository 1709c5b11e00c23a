// Package response renders the JSON envelopes the collaborator layer
// consumes. Success bodies wrap command results and query snapshots; error
// bodies carry a stable machine-readable code so the collaborator can react
// to the specific precondition that failed.
package response

import (
	"errors"
	"net/http"
	"time"

	"ticket-store-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse wraps a command result or query snapshot. Every body
// carries a request id so collaborator logs line up with ledger logs.
type SuccessResponse struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse reports a rejected command or failed query. ErrorCode is
// stable (AUTH_*, ST_*, VAL_*, NF_*, RATE_*, SYS_*); Message is for humans
// and may change between releases.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 with data in the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope(c, data))
}

// Created sends a 201 with data in the success envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope(c, data))
}

// Error maps an *apperror.AppError onto its HTTP status and stable code.
// Anything else renders as an opaque 500: internal failure details never
// reach the collaborator.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: requestID(c),
		Timestamp: timestamp(),
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		body.ErrorCode = appErr.Code
		body.Message = appErr.Message
	}
	c.JSON(status, body)
}

func envelope(c *gin.Context, data any) SuccessResponse {
	return SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// requestID reads the id minted by the request logger, or generates one for
// responses rendered before the middleware ran.
func requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
