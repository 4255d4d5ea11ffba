package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/common/metrics"
	"github.com/educross/educross/internal/common/middleware"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/services"
	"github.com/educross/educross/internal/session"
)

// AuthHandler serves the auth screen's operations plus session resume and
// view navigation.
type AuthHandler struct {
	accounts *services.AccountService
	sessions *session.Manager
}

func NewAuthHandler(accounts *services.AccountService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// Signup creates an account. The user still has to log in afterwards,
// matching the original flow.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid signup payload", err.Error()))
		return
	}

	account, err := h.accounts.Signup(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success":  true,
		"username": account.Username,
		"role":     account.Role,
	})
}

// Login authenticates and starts a session on the role-appropriate
// dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid login payload", err.Error()))
		return
	}

	account, err := h.accounts.Authenticate(req.Username, req.Password, req.Role)
	if err != nil {
		metrics.Logins.WithLabelValues("failure").Inc()
		middleware.JSONErrorResponse(c, err)
		return
	}

	s, err := h.sessions.Start(*account)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	metrics.Logins.WithLabelValues("success").Inc()

	c.JSON(200, gin.H{
		"token":   s.Token,
		"account": s.Account,
		"view":    s.View,
	})
}

// Logout ends the session and clears the mirrored copy; the client falls
// back to the auth screen.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if err := h.sessions.End(s.Token); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "view": session.ViewAuth})
}

// Resume returns the mirrored session, if any, with the account re-read
// from the store so a profile edit from a previous run is not lost to the
// stale cached copy.
func (h *AuthHandler) Resume(c *gin.Context) {
	s, err := h.sessions.Resume()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	if s == nil {
		c.JSON(200, gin.H{"view": session.ViewAuth})
		return
	}

	account, err := h.accounts.Fetch(s.Account.Username)
	if err == nil {
		if refreshed, rerr := h.sessions.Refresh(s.Token, *account); rerr == nil {
			s = refreshed
		}
	}

	c.JSON(200, gin.H{
		"token":   s.Token,
		"account": s.Account,
		"view":    s.View,
	})
}

// Navigate switches the session to another tab or pane. The account is
// re-fetched at this boundary to reconcile edits made earlier in the
// session.
func (h *AuthHandler) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid navigation payload", err.Error()))
		return
	}

	s := middleware.CurrentSession(c)
	s, err := h.sessions.Navigate(s.Token, session.View(req.View))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	account, err := h.accounts.Fetch(s.Account.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	s, err = h.sessions.Refresh(s.Token, *account)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"account": s.Account,
		"view":    s.View,
	})
}
