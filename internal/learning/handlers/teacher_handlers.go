package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/common/metrics"
	"github.com/educross/educross/internal/common/middleware"
	"github.com/educross/educross/internal/common/validation"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/services"
	"github.com/educross/educross/pkg/logger"
)

// TeacherHandler serves the teacher dashboard: overview stats, the
// student roster with per-student progress, and catalog mutation.
type TeacherHandler struct {
	catalog  *catalog.Catalog
	accounts *services.AccountService
	progress *services.ProgressService
}

func NewTeacherHandler(cat *catalog.Catalog, accounts *services.AccountService, progress *services.ProgressService) *TeacherHandler {
	return &TeacherHandler{catalog: cat, accounts: accounts, progress: progress}
}

// Overview returns the dashboard headline stats.
func (h *TeacherHandler) Overview(c *gin.Context) {
	overview, err := h.progress.Overview()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, overview)
}

// Students returns the roster.
func (h *TeacherHandler) Students(c *gin.Context) {
	students, err := h.accounts.Students()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, students)
}

// StudentProgress returns one student's per-activity breakdown.
func (h *TeacherHandler) StudentProgress(c *gin.Context) {
	username := c.Param("username")
	if _, err := h.accounts.Fetch(username); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	report, err := h.progress.Report(username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, report)
}

// ActivityDetail returns the full definition, answers included. Teacher
// view only; students get the stripped shape from the activities routes.
func (h *TeacherHandler) ActivityDetail(c *gin.Context) {
	activity, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		middleware.JSONErrorResponse(c, errors.NotFound("activity"))
		return
	}
	c.JSON(200, activity)
}

// CreateActivity validates and appends a teacher-authored definition.
// The catalog is in-memory only; the new activity is gone after restart.
func (h *TeacherHandler) CreateActivity(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid activity payload", err.Error()))
		return
	}
	if err := validation.ValidateActivity(req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid activity definition", err.Error()))
		return
	}

	created := h.catalog.Create(req.Definition())
	metrics.CatalogMutations.WithLabelValues("create").Inc()
	logger.L().Info("activity created",
		zap.String("id", created.ID),
		zap.String("kind", string(created.Kind)))

	c.JSON(201, created)
}

// DeleteActivity removes an activity. The confirm query flag stands in
// for the original's confirmation dialog; without it nothing is deleted.
func (h *TeacherHandler) DeleteActivity(c *gin.Context) {
	if c.Query("confirm") != "true" {
		middleware.JSONErrorResponse(c, errors.BadRequest("deletion requires confirm=true"))
		return
	}

	id := c.Param("id")
	if !h.catalog.Delete(id) {
		middleware.JSONErrorResponse(c, errors.NotFound("activity"))
		return
	}
	metrics.CatalogMutations.WithLabelValues("delete").Inc()
	logger.L().Info("activity deleted", zap.String("id", id))

	c.JSON(200, gin.H{"success": true})
}
