package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/common/middleware"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/services"
)

// ActivityHandler serves the student dashboard: activity listing,
// submission grading, and the progress tab.
type ActivityHandler struct {
	catalog  *catalog.Catalog
	grading  *services.GradingService
	progress *services.ProgressService
}

func NewActivityHandler(cat *catalog.Catalog, grading *services.GradingService, progress *services.ProgressService) *ActivityHandler {
	return &ActivityHandler{catalog: cat, grading: grading, progress: progress}
}

// List returns every activity in student view (answers stripped) with a
// completed flag for the current user.
func (h *ActivityHandler) List(c *gin.Context) {
	s := middleware.CurrentSession(c)

	completed, err := h.progress.CompletedIDs(s.Account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	activities := h.catalog.List()
	views := make([]models.ActivityView, 0, len(activities))
	for _, a := range activities {
		v := a.View()
		v.Completed = completed[a.ID]
		views = append(views, v)
	}

	c.JSON(200, views)
}

// Get returns a single activity in student view.
func (h *ActivityHandler) Get(c *gin.Context) {
	activity, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		middleware.JSONErrorResponse(c, errors.NotFound("activity"))
		return
	}

	s := middleware.CurrentSession(c)
	completed, err := h.progress.CompletedIDs(s.Account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	view := activity.View()
	view.Completed = completed[activity.ID]
	c.JSON(200, view)
}

// Submit grades a submission for the current user. A correct answer
// records the completion with the activity's fixed point value.
func (h *ActivityHandler) Submit(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid submission payload", err.Error()))
		return
	}

	s := middleware.CurrentSession(c)
	result, err := h.grading.Grade(s.Account.Username, c.Param("id"), req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, result)
}

// Progress returns the current user's progress report.
func (h *ActivityHandler) Progress(c *gin.Context) {
	s := middleware.CurrentSession(c)
	report, err := h.progress.Report(s.Account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, report)
}
