package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/educross/educross/internal/common/middleware"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
	"github.com/educross/educross/internal/learning/services"
	"github.com/educross/educross/internal/session"
)

// NewRouter wires repositories, services and handlers over the injected
// store handle, catalog and session manager, and returns the ready engine.
func NewRouter(db *gorm.DB, cat *catalog.Catalog, sessions *session.Manager, mirror *session.Mirror) *gin.Engine {
	accountRepo := repository.NewAccountRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	accountSvc := services.NewAccountService(accountRepo)
	gradingSvc := services.NewGradingService(cat, completionRepo)
	progressSvc := services.NewProgressService(accountRepo, completionRepo, cat)

	auth := NewAuthHandler(accountSvc, sessions)
	activities := NewActivityHandler(cat, gradingSvc, progressSvc)
	profile := NewProfileHandler(accountSvc, progressSvc, sessions)
	teacher := NewTeacherHandler(cat, accountSvc, progressSvc)
	health := NewHealthHandler(db, mirror, "1.0.0")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/signup", auth.Signup)
		v1.POST("/auth/login", auth.Login)
		v1.GET("/session", auth.Resume)

		authed := v1.Group("", middleware.AuthRequired(sessions))
		{
			authed.POST("/auth/logout", auth.Logout)
			authed.POST("/session/navigate", auth.Navigate)

			authed.GET("/activities", activities.List)
			authed.GET("/activities/:id", activities.Get)
			authed.POST("/activities/:id/submissions", middleware.RequireRole(models.RoleStudent), activities.Submit)
			authed.GET("/progress", activities.Progress)

			authed.GET("/profile", profile.Get)
			authed.PUT("/profile", profile.Save)

			teacherGroup := authed.Group("/teacher", middleware.RequireRole(models.RoleTeacher))
			{
				teacherGroup.GET("/overview", teacher.Overview)
				teacherGroup.GET("/students", teacher.Students)
				teacherGroup.GET("/students/:username/progress", teacher.StudentProgress)
				teacherGroup.GET("/activities/:id", teacher.ActivityDetail)
				teacherGroup.POST("/activities", teacher.CreateActivity)
				teacherGroup.DELETE("/activities/:id", teacher.DeleteActivity)
			}
		}
	}

	return router
}
