package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func internalRouter(secret string, failOpen bool) *gin.Engine {
	r := gin.New()
	r.POST("/internal", InternalAuth(secret, failOpen, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"internal": c.GetBool(CtxInternal)})
	})
	return r
}

func TestInternalAuth(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		failOpen bool
		header   string
		want     int
	}{
		{"matching secret", "s3cret", false, "s3cret", http.StatusOK},
		{"wrong secret", "s3cret", false, "nope", http.StatusUnauthorized},
		{"missing header", "s3cret", false, "", http.StatusUnauthorized},
		{"prefix of secret", "s3cret", false, "s3c", http.StatusUnauthorized},
		{"unconfigured fails closed", "", false, "anything", http.StatusUnauthorized},
		{"unconfigured fail open", "", true, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal", nil)
			if tt.header != "" {
				req.Header.Set(HeaderInternalSecret, tt.header)
			}
			w := httptest.NewRecorder()
			internalRouter(tt.secret, tt.failOpen).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				env := decodeEnvelope(t, w)
				require.NotNil(t, env.Error)
				assert.Equal(t, "SEC_001", env.Error.Code)
			}
		})
	}
}

func TestUserIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/me", UserIdentity(), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	for _, header := range []string{"", "abc", "0", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(HeaderUserID, header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "SEC_002", decodeEnvelope(t, w).Error.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderUserID, "42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
}

func TestMerchantIdentity(t *testing.T) {
	r := gin.New()
	r.POST("/scan", MerchantIdentity(), func(c *gin.Context) {
		id, ok := MerchantID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"merchant_id": id})
	})

	for _, header := range []string{"", "shop", "0", "-11"} {
		req := httptest.NewRequest(http.MethodPost, "/scan", nil)
		req.Header.Set(HeaderMerchantID, header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "SEC_002", decodeEnvelope(t, w).Error.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/scan", nil)
	req.Header.Set(HeaderMerchantID, "11")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"merchant_id":11}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { response.OK(c, "", nil) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, decodeEnvelope(t, w).RequestID)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-123", decodeEnvelope(t, w).RequestID)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "SYS_001", env.Error.Code)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(8))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString("small")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString("this body is too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
