//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"dakar-rentals/internal/handler/httperr"
	"dakar-rentals/internal/handler/middleware"
	"dakar-rentals/internal/pkg/config"
	"dakar-rentals/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []observed
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, observed{method: method, route: route, status: status})
}

func testLogConfig() config.LogConfig {
	return config.LogConfig{
		Level:          "error",
		TimeZone:       "UTC",
		TimeZoneOffset: 0,
		TimeFormat:     time.RFC3339,
	}
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		method   string
		path     string
		expected observed
	}{
		{
			name:     "route template instead of raw path",
			method:   http.MethodGet,
			path:     "/api/bookings/5b0c6a52-8a51-4e0f-9c39-0a4a3f1c2d11",
			expected: observed{method: http.MethodGet, route: "/api/bookings/:id", status: http.StatusOK},
		},
		{
			name:     "handler status is recorded",
			method:   http.MethodDelete,
			path:     "/api/bookings/abc",
			expected: observed{method: http.MethodDelete, route: "/api/bookings/:id", status: http.StatusNoContent},
		},
		{
			name:     "unmatched route has empty template",
			method:   http.MethodGet,
			path:     "/nowhere",
			expected: observed{method: http.MethodGet, route: "", status: http.StatusNotFound},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obs := &fakeObserver{}
			router := gin.New()
			router.Use(middleware.MetricsMiddleware(obs))
			router.GET("/api/bookings/:id", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
			router.DELETE("/api/bookings/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			require.Len(t, obs.calls, 1)
			assert.Equal(t, tc.expected, obs.calls[0])
		})
	}
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(nil, testLogConfig()))

	var seen string
	router.GET("/api/bookings/:id", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/42", nil))

	header := w.Header().Get("X-Request-ID")
	assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), header)
	assert.Equal(t, header, seen)
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aborted public error is rendered once", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/x", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errors.New("lost race"), "Booking is no longer pending", nil)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Booking is no longer pending"}}`, w.Body.String())
	})

	t.Run("recorded usecase errors are mapped by kind", func(t *testing.T) {
		testCases := []struct {
			name     string
			err      error
			status   int
			expected string
		}{
			{
				name:     "validation lists fields",
				err:      errs.Wrap(errs.NewValidationError("invalid booking", "user_email", "end_date"), "create booking"),
				status:   http.StatusBadRequest,
				expected: `{"error":{"message":"Validation failed"},"detail":{"fields":["user_email","end_date"]}}`,
			},
			{
				name:     "not found",
				err:      errs.Mark(errors.New("no rows"), errs.ErrNotFound),
				status:   http.StatusNotFound,
				expected: `{"error":{"message":"Resource not found"}}`,
			},
			{
				name:     "store unavailable",
				err:      errs.Mark(errors.New("dial tcp: connection refused"), errs.ErrStoreUnavailable),
				status:   http.StatusServiceUnavailable,
				expected: `{"error":{"message":"Storage temporarily unavailable"}}`,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				router := gin.New()
				router.Use(middleware.ErrorHandler())
				router.GET("/x", func(c *gin.Context) {
					_ = c.Error(tc.err)
					c.Abort()
				})

				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

				assert.Equal(t, tc.status, w.Code)
				assert.JSONEq(t, tc.expected, w.Body.String())
			})
		}
	})

	t.Run("status-only response passes through", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.DELETE("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
		router.GET("/x", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}

func TestCORSMiddleware_ExposesBookingHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	router.POST("/api/bookings", func(c *gin.Context) {
		c.Header("Location", "/api/bookings/1")
		c.Status(http.StatusCreated)
	})

	testCases := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{name: "dashboard origin", origin: "http://localhost:5173", allowed: true},
		{name: "unknown origin", origin: "http://evil.example", allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if !tc.allowed {
				assert.Equal(t, http.StatusForbidden, w.Code)
				return
			}
			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, tc.origin, w.Header().Get("Access-Control-Allow-Origin"))
			exposed := strings.Split(w.Header().Get("Access-Control-Expose-Headers"), ",")
			for _, h := range []string{"Content-Length", "Location", middleware.RequestIDHeader} {
				assert.Contains(t, exposed, http.CanonicalHeaderKey(h))
			}
		})
	}
}
