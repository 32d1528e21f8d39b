//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-calendar/internal/handler/api"
	resdto "venue-calendar/internal/handler/dto/response"
	"venue-calendar/internal/pkg/clock"
	"venue-calendar/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fixedSnapshot time.Time

func (f fixedSnapshot) LoadedAt() time.Time { return time.Time(f) }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, 7, 11, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		source   string
		snapshot api.SnapshotSource
		want     resdto.HealthResponse
	}{
		{
			name:   "postgres source",
			source: "postgres",
			want:   resdto.HealthResponse{Status: "ok", Source: "postgres"},
		},
		{
			name:     "ics snapshot loaded",
			source:   "ics",
			snapshot: fixedSnapshot(now.Add(-90 * time.Second)),
			want:     resdto.HealthResponse{Status: "ok", Source: "ics", SnapshotAgeSeconds: 90},
		},
		{
			name:     "ics never loaded",
			source:   "ics",
			snapshot: fixedSnapshot(time.Time{}),
			want:     resdto.HealthResponse{Status: "degraded", Source: "ics"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := api.NewHealthHandler(api.HealthParams{Source: tt.source, Snapshot: tt.snapshot, Clock: clock.NewMockClock(now)})
			router := gin.New()
			router.GET("/health", h.Health)

			var got resdto.HealthResponse
			httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, router, http.MethodGet, "/health", nil), http.StatusOK, &got)

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.Source, got.Source)
			assert.Equal(t, tt.want.SnapshotAgeSeconds, got.SnapshotAgeSeconds)
			assert.Equal(t, tt.want.Status == "ok" && tt.snapshot != nil, got.SnapshotLoadedAt != nil)
		})
	}
}
