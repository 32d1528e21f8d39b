package api

import (
	"net/http"
	"time"

	resdto "venue-calendar/internal/handler/dto/response"
	"venue-calendar/internal/pkg/clock"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// SnapshotSource is implemented by event sources that serve a periodically
// loaded copy of the data.
type SnapshotSource interface {
	LoadedAt() time.Time
}

type HealthParams struct {
	fx.In

	Source   string         `name:"event_source"`
	Snapshot SnapshotSource `optional:"true"`
	Clock    clock.Clock
}

type HealthHandler struct {
	source   string
	snapshot SnapshotSource
	clock    clock.Clock
}

func NewHealthHandler(p HealthParams) *HealthHandler {
	return &HealthHandler{source: p.Source, snapshot: p.Snapshot, clock: p.Clock}
}

// @Summary Health check
// @Description Liveness plus the state of the event source
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := resdto.HealthResponse{Status: "ok", Source: h.source}
	if h.snapshot != nil {
		loadedAt := h.snapshot.LoadedAt()
		if loadedAt.IsZero() {
			resp.Status = "degraded"
		} else {
			resp.SnapshotLoadedAt = &loadedAt
			resp.SnapshotAgeSeconds = int64(h.clock.Now().Sub(loadedAt) / time.Second)
		}
	}
	c.JSON(http.StatusOK, resp)
}
