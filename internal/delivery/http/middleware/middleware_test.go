package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-contact-backend/pkg/apperror"
	"portfolio-contact-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(nil).Middleware(ContactRateLimitConfig(2)))
	r.POST("/contact", okHandler)

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPost, "/contact", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// A different client is counted separately
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRateLimiterStop(t *testing.T) {
	limiter := NewRateLimiter(nil)
	limiter.Middleware(DefaultRateLimitConfig(10))

	limiter.Stop()
	limiter.Stop()

	select {
	case <-limiter.done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not exit")
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://www.example.dev", false))
	r.POST("/contact", okHandler)

	t.Run("Should allow configured origin and its apex", func(t *testing.T) {
		for _, origin := range []string{"https://www.example.dev", "https://example.dev"} {
			req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
			req.Header.Set("Origin", origin)
			w := serve(r, req)
			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("Should reject unknown origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should reject localhost outside development", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", incoming)
	assert.Equal(t, incoming, serve(r, req).Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid\r\n")
	assert.NotEqual(t, "not-a-uuid\r\n", serve(r, req).Header().Get("X-Request-ID"))
}

func TestAdminAuth(t *testing.T) {
	issuer := auth.NewIssuer("secret")
	r := gin.New()
	r.Use(AdminAuth(issuer))
	r.GET("/admin", okHandler)

	t.Run("Should require a token", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should accept a valid token", func(t *testing.T) {
		token, err := issuer.Issue("owner", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("Should reject a forged token", func(t *testing.T) {
		token, err := auth.NewIssuer("other").Issue("owner", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})

	t.Run("Should be disabled without secret", func(t *testing.T) {
		disabled := gin.New()
		disabled.Use(AdminAuth(auth.NewIssuer("")))
		disabled.GET("/admin", okHandler)
		assert.Equal(t, http.StatusServiceUnavailable, serve(disabled, httptest.NewRequest(http.MethodGet, "/admin", nil)).Code)
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		c.Error(apperror.BadGateway("Error: Account not found"))
	})
	r.GET("/raw", func(c *gin.Context) {
		c.Error(errors.New("pq: password authentication failed"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Error: Account not found")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
