package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authorization (AUTH) ----

func ErrNotOwner() *AppError {
	return New("AUTH_001", "Caller is not the store owner", http.StatusForbidden)
}

func ErrNotOrganizer() *AppError {
	return New("AUTH_002", "Caller is not the event organizer", http.StatusForbidden)
}

func ErrNotCustomer() *AppError {
	return New("AUTH_003", "Caller is not the purchase customer", http.StatusForbidden)
}

func ErrIdentityMismatch() *AppError {
	return New("AUTH_004", "Supplied identifiers do not match the purchase record", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_005", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- State transitions (ST) ----

func ErrStoreNotOpen() *AppError {
	return New("ST_001", "Store is not open", http.StatusConflict)
}

func ErrInvalidStoreTransition(from string) *AppError {
	return New("ST_002", fmt.Sprintf("Store status %s does not permit this operation", from), http.StatusConflict)
}

func ErrInvalidEventTransition(from string) *AppError {
	return New("ST_003", fmt.Sprintf("Event status %s does not permit this operation", from), http.StatusConflict)
}

func ErrInvalidPurchaseTransition(from string) *AppError {
	return New("ST_004", fmt.Sprintf("Purchase status %s does not permit this operation", from), http.StatusConflict)
}

func ErrSalesNotOpen() *AppError {
	return New("ST_005", "Ticket sales are not open for this event", http.StatusConflict)
}

func ErrAlreadySettled() *AppError {
	return New("ST_006", "Event has already been settled", http.StatusConflict)
}

// ---- Validation (VAL) ----

func ErrMissingExternalID() *AppError {
	return New("VAL_001", "External ID must not be empty", http.StatusBadRequest)
}

func ErrMissingName() *AppError {
	return New("VAL_002", "Name must not be empty", http.StatusBadRequest)
}

func ErrIncentiveOutOfRange() *AppError {
	return New("VAL_003", "Store incentive must not exceed 10000 basis points", http.StatusBadRequest)
}

func ErrNoTicketsAvailable() *AppError {
	return New("VAL_004", "Tickets on sale must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidQuantity() *AppError {
	return New("VAL_005", "Quantity must be greater than zero", http.StatusBadRequest)
}

func ErrInsufficientTickets() *AppError {
	return New("VAL_006", "Not enough tickets left for this quantity", http.StatusConflict)
}

func ErrMissingTimestamp() *AppError {
	return New("VAL_007", "Timestamp must not be zero", http.StatusBadRequest)
}

func ErrMissingCustomerID() *AppError {
	return New("VAL_008", "Customer ID must not be empty", http.StatusBadRequest)
}

func ErrIncorrectPayment(expected uint64) *AppError {
	return New("VAL_009", fmt.Sprintf("Attached value must equal the order total of %d", expected), http.StatusBadRequest)
}

func ErrOrganizerMustBeExternal() *AppError {
	return New("VAL_010", "Organizer must be an external identity", http.StatusBadRequest)
}

// Validation returns a generic VAL_000 validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Not found (NF) ----

func ErrEventNotFound() *AppError {
	return New("NF_001", "Event not found", http.StatusNotFound)
}

func ErrPurchaseNotFound() *AppError {
	return New("NF_002", "Purchase not found", http.StatusNotFound)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & invariants (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrArithmeticFault reports an accounting invariant breach. It should never
// occur in correct operation: every balance subtraction is preceded by an
// explicit sufficiency check.
func ErrArithmeticFault(detail string) *AppError {
	return New("SYS_002", fmt.Sprintf("Accounting invariant breach: %s", detail), http.StatusInternalServerError)
}
