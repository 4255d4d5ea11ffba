package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/educross/educross/internal/common/database"
	"github.com/educross/educross/internal/session"
)

// HealthHandler reports whether the two local stores are reachable.
type HealthHandler struct {
	db      *gorm.DB
	mirror  *session.Mirror
	version string
}

func NewHealthHandler(db *gorm.DB, mirror *session.Mirror, version string) *HealthHandler {
	return &HealthHandler{db: db, mirror: mirror, version: version}
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	code := 200
	checks := gin.H{}

	if err := database.Ping(h.db); err != nil {
		status = "unhealthy"
		code = 503
		checks["database"] = err.Error()
	} else {
		checks["database"] = "ok"
	}

	if h.mirror != nil {
		if err := h.mirror.Ping(); err != nil {
			status = "unhealthy"
			code = 503
			checks["session_mirror"] = err.Error()
		} else {
			checks["session_mirror"] = "ok"
		}
	}

	c.JSON(code, gin.H{
		"status":  status,
		"version": h.version,
		"checks":  checks,
	})
}
