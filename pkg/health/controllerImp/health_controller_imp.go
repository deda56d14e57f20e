package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"lawncare/entities"
)

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db, started: time.Now()} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports whether the profile row is seeded.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	seeded := check{OK: db.OK}
	if db.OK {
		var n int64
		if err := h.db.WithContext(ctx).Model(&entities.LawnProfile{}).Count(&n).Error; err != nil {
			seeded = check{Err: "count profile: " + err.Error()}
		} else if n == 0 {
			seeded = check{Err: "profile not seeded"}
		}
	}

	status := http.StatusOK
	if !db.OK || !seeded.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"ok":         status == http.StatusOK,
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     echo.Map{"database": db, "seed": seeded},
		"time":       time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
