package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	RequestID  string      `json:"request_id"`
	Timestamp  string      `json:"timestamp"`
}

// ErrorBody carries the stable error code.
type ErrorBody struct {
	Code string `json:"code"`
}

// Pagination describes one page of a list result. Page is zero-based.
type Pagination struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPagination computes total pages for the given page, size and total.
func NewPagination(page, size int, total int64) *Pagination {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return &Pagination{Page: page, Size: size, TotalElements: total, TotalPages: pages}
}

// OK sends a 200 response with data.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, success(c, message, data, nil))
}

// Created sends a 201 response with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, success(c, message, data, nil))
}

// Paginated sends a 200 response with a page of data.
func Paginated(c *gin.Context, data interface{}, page, size int, total int64) {
	c.JSON(http.StatusOK, success(c, "", data, NewPagination(page, size, total)))
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, failure(c, appErr.Code, appErr.Message))
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, failure(c, "SYS_000", "Internal server error"))
}

func success(c *gin.Context, message string, data interface{}, p *Pagination) Envelope {
	return Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
		RequestID:  getRequestID(c),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func failure(c *gin.Context, code, message string) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Error:     &ErrorBody{Code: code},
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
