package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/common/middleware"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/services"
	"github.com/educross/educross/internal/session"
)

// ProfileHandler serves the profile tab. Reads re-fetch the account from
// the store rather than trusting the session's cached copy.
type ProfileHandler struct {
	accounts *services.AccountService
	progress *services.ProgressService
	sessions *session.Manager
}

func NewProfileHandler(accounts *services.AccountService, progress *services.ProgressService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{accounts: accounts, progress: progress, sessions: sessions}
}

// Get returns the fresh account record plus derived stats.
func (h *ProfileHandler) Get(c *gin.Context) {
	s := middleware.CurrentSession(c)

	account, err := h.accounts.Fetch(s.Account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	if _, err := h.sessions.Refresh(s.Token, *account); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	report, err := h.progress.Report(account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"account": account,
		"stats": gin.H{
			"total_activities": report.TotalActivities,
			"completed":        report.Completed,
			"total_points":     report.TotalPoints,
		},
	})
}

// Save applies profile edits with last-writer-wins semantics and updates
// the session's cached copy.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid profile payload", err.Error()))
		return
	}

	s := middleware.CurrentSession(c)
	account, err := h.accounts.SaveProfile(s.Account.Username, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if _, err := h.sessions.Refresh(s.Token, *account); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "account": account})
}
