package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/educross/educross/internal/common/database"
	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/handlers"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
	"github.com/educross/educross/internal/session"
	"github.com/educross/educross/pkg/config"
	"github.com/educross/educross/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	if err := seedDemoAccounts(db); err != nil {
		log.Fatalf("Failed to seed demo accounts: %v", err)
	}

	// The catalog resets to the built-in seed on every start; teacher
	// edits are deliberately not persisted.
	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("Failed to load activity catalog: %v", err)
	}

	mirror, err := session.OpenMirror(cfg.Session.Path)
	if err != nil {
		log.Fatalf("Failed to open session mirror: %v", err)
	}
	defer mirror.Close()

	sessions := session.NewManager(mirror)
	if resumed, err := sessions.Resume(); err != nil {
		logger.L().Warn("could not resume mirrored session", zap.Error(err))
	} else if resumed != nil {
		logger.L().Info("resumed session",
			zap.String("username", resumed.Account.Username),
			zap.String("view", string(resumed.View)))
	}

	router := handlers.NewRouter(db, cat, sessions, mirror)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.L().Info("starting educross",
		zap.String("addr", addr),
		zap.String("db_type", cfg.Database.Type),
		zap.Int("activities", cat.Len()))

	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// seedDemoAccounts creates the demo teacher and student on first run,
// matching the original bootstrap. Accounts that already exist are left
// alone.
func seedDemoAccounts(db *gorm.DB) error {
	accounts := repository.NewAccountRepository(db)
	for _, demo := range []models.Account{
		{Username: "teacher1", Password: "pass123", Role: models.RoleTeacher},
		{Username: "student1", Password: "pass123", Role: models.RoleStudent},
	} {
		demo := demo
		err := accounts.Create(&demo)
		if err == nil {
			continue
		}
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.CodeConflict {
			continue
		}
		return err
	}
	return nil
}
