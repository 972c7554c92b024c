package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var started = time.Now()

type HealthCtrl struct{ db *gorm.DB }

func New(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db} }

// Health answers liveness probes. Degraded means the process is up but
// the database is not answering.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":     "degraded",
			"error":      err.Error(),
			"uptime_sec": int(time.Since(started).Seconds()),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "ok",
		"uptime_sec": int(time.Since(started).Seconds()),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
