//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	respond := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, body) }
	}
	addRoutes(engine.Group("/api/bookings"), []route{
		{Method: http.MethodGet, Path: "", Handler: respond("list")},
		{Method: http.MethodPost, Path: "/:id/confirm", Handler: respond("confirm")},
		{Method: http.MethodPatch, Path: "/:id/status", Handler: respond("status")},
		{Method: http.MethodDelete, Path: "/:id", Handler: respond("delete")},
	})

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /api/bookings",
		"POST /api/bookings/:id/confirm",
		"PATCH /api/bookings/:id/status",
		"DELETE /api/bookings/:id",
	} {
		assert.True(t, registered[want], want)
	}

	testCases := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodGet, path: "/api/bookings", body: "list"},
		{method: http.MethodPost, path: "/api/bookings/42/confirm", body: "confirm"},
		{method: http.MethodPatch, path: "/api/bookings/42/status", body: "status"},
		{method: http.MethodDelete, path: "/api/bookings/42", body: "delete"},
	}
	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req, err := http.NewRequest(tc.method, tc.path, nil)
			require.NoError(t, err)

			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
