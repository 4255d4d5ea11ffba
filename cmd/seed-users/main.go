// Command seed-users populates the local store with the demo accounts
// (teacher1/student1, password pass123) without starting the server.
package main

import (
	"fmt"
	"log"

	"github.com/educross/educross/internal/common/database"
	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
	"github.com/educross/educross/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	accounts := repository.NewAccountRepository(db)
	for _, demo := range []models.Account{
		{Username: "teacher1", Password: "pass123", Role: models.RoleTeacher},
		{Username: "student1", Password: "pass123", Role: models.RoleStudent},
	} {
		demo := demo
		err := accounts.Create(&demo)
		switch {
		case err == nil:
			fmt.Printf("created %s (%s)\n", demo.Username, demo.Role)
		default:
			if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.CodeConflict {
				fmt.Printf("skipped %s: already exists\n", demo.Username)
				continue
			}
			log.Fatalf("Failed to create %s: %v", demo.Username, err)
		}
	}
}
