//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouteContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		route string
		path  string
		want  map[string]string
	}{
		{
			name:  "wizard session",
			route: "/api/wizard/:id/next",
			path:  "/api/wizard/6f1c2a9e-0000-4000-8000-000000000001/next",
			want:  map[string]string{"session_id": "6f1c2a9e-0000-4000-8000-000000000001"},
		},
		{
			name:  "creator order",
			route: "/api/creators/:username/orders/:orderId/status",
			path:  "/api/creators/alice/orders/42/status",
			want:  map[string]string{"creator": "alice", "order_id": "42"},
		},
		{
			name:  "notification id is not a session",
			route: "/api/creators/:username/notifications/:id/read",
			path:  "/api/creators/alice/notifications/7/read",
			want:  map[string]string{"creator": "alice"},
		},
		{
			name:  "health",
			route: "/health",
			path:  "/health",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string]string{}
			router := gin.New()
			router.Any(tt.route, func(c *gin.Context) {
				for _, a := range routeContext(c) {
					got[a.Key] = a.Value.String()
				}
				c.Status(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}
