package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"code"`
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

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Generic (GEN) ----

func ErrNotFound(entity string) *AppError {
	return New("GEN_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrForbidden(message string) *AppError {
	return New("GEN_403", message, http.StatusForbidden)
}

func ErrInvalidState(message string) *AppError {
	return New("GEN_409", message, http.StatusConflict)
}

// Validation returns an InvalidArgument error.
func Validation(message string) *AppError {
	return New("GEN_400", message, http.StatusBadRequest)
}

// ---- Voucher stock (VCH) ----

func ErrInvalidDenomination() *AppError {
	return New("VCH_001", "Denomination is not offered for this voucher", http.StatusBadRequest)
}

func ErrVoucherUnavailable() *AppError {
	return New("VCH_002", "Voucher is not available", http.StatusConflict)
}

func ErrInsufficientStock() *AppError {
	return New("VCH_003", "Insufficient voucher stock", http.StatusConflict)
}

// ---- Payment settlement (PAY) ----

func ErrAmountMismatch() *AppError {
	return New("PAY_001", "Payment amount does not match order total", http.StatusBadRequest)
}

// ErrReservationFailed wraps the cause of a failed stock reservation. The
// cause's message is only surfaced when it is itself an AppError.
func ErrReservationFailed(cause error) *AppError {
	msg := "Voucher reservation failed"
	var appErr *AppError
	if errors.As(cause, &appErr) {
		msg = msg + ": " + appErr.Message
	}
	return Wrap("PAY_002", msg, http.StatusConflict, cause)
}

func ErrPaymentInProgress() *AppError {
	return New("PAY_003", "Payment for this order is already in progress", http.StatusConflict)
}

// ---- Security (SEC) ----

func ErrUnauthorized() *AppError {
	return New("SEC_001", "Missing or invalid internal credentials", http.StatusUnauthorized)
}

func ErrMissingIdentity() *AppError {
	return New("SEC_002", "Missing user identity", http.StatusUnauthorized)
}

func ErrMissingMerchantIdentity() *AppError {
	return New("SEC_002", "Missing merchant identity", http.StatusUnauthorized)
}

func ErrInvalidQRPayload() *AppError {
	return New("SEC_003", "Invalid QR payload", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrDownstreamUnavailable(service string, err error) *AppError {
	return Wrap("SYS_003", fmt.Sprintf("%s is unavailable", service), http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
