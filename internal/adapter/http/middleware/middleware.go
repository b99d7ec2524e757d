package middleware

import (
	"crypto/hmac"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderInternalSecret = "X-Internal-Secret"
	HeaderUserID         = "X-User-Id"
	HeaderMerchantID     = "X-Merchant-Id"
	HeaderRequestID      = "X-Request-ID"

	// Context keys
	CtxUserID     = "user_id"
	CtxMerchantID = "merchant_id"
	CtxInternal   = "internal_caller"
)

// RequestID assigns every request an id, reusing an incoming X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// InternalAuth guards service-to-service routes with a shared secret. With
// no secret configured requests are rejected unless failOpen is set.
func InternalAuth(secret string, failOpen bool, log zerolog.Logger) gin.HandlerFunc {
	if secret == "" {
		if failOpen {
			log.Warn().Msg("internal secret not configured, internal routes are open")
		} else {
			log.Warn().Msg("internal secret not configured, internal routes will reject every call")
		}
	}

	return func(c *gin.Context) {
		if secret == "" {
			if failOpen {
				c.Set(CtxInternal, true)
				c.Next()
				return
			}
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}

		given := c.GetHeader(HeaderInternalSecret)
		if given == "" || !hmac.Equal([]byte(given), []byte(secret)) {
			log.Warn().Str("path", c.Request.URL.Path).Str("client_ip", c.ClientIP()).Msg("rejected internal call")
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}

		c.Set(CtxInternal, true)
		c.Next()
	}
}

// UserIdentity reads the caller's user id, set by the gateway in X-User-Id.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader(HeaderUserID), 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, apperror.ErrMissingIdentity())
			c.Abort()
			return
		}
		c.Set(CtxUserID, id)
		c.Next()
	}
}

// UserID returns the id stored by UserIdentity.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// MerchantIdentity reads the merchant the caller acts for, set by the
// gateway in X-Merchant-Id after it has checked the user's membership.
func MerchantIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader(HeaderMerchantID), 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, apperror.ErrMissingMerchantIdentity())
			c.Abort()
			return
		}
		c.Set(CtxMerchantID, id)
		c.Next()
	}
}

// MerchantID returns the id stored by MerchantIdentity.
func MerchantID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxMerchantID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past maxBytes fail and the
// binding error is reported as a bad request.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
