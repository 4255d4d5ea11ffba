package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
)

// CompletionRepository is the completion ledger: one row per
// (username, activity) pair, upserted on every correct submission.
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Record upserts the completion for (username, activityID). Resubmitting a
// correct answer overwrites the existing row rather than adding a second
// one, so derived point totals never double-count.
func (r *CompletionRepository) Record(username, activityID string, points int) (*models.Completion, error) {
	completion := &models.Completion{
		Username:    username,
		ActivityID:  activityID,
		Points:      points,
		CompletedAt: time.Now(),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "activity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"points", "completed_at"}),
	}).Create(completion).Error
	if err != nil {
		return nil, errors.Store("record completion", err)
	}
	return completion, nil
}

// ListFor returns every completion recorded for a user.
func (r *CompletionRepository) ListFor(username string) ([]models.Completion, error) {
	var completions []models.Completion
	err := r.db.Where("username = ?", username).
		Order("completed_at ASC").
		Find(&completions).Error
	if err != nil {
		return nil, errors.Store("scan completions", err)
	}
	return completions, nil
}

// TotalPoints derives a user's score by summing ledger rows. The account's
// stored total_score column is never consulted.
func (r *CompletionRepository) TotalPoints(username string) (int, error) {
	var total int64
	err := r.db.Model(&models.Completion{}).
		Where("username = ?", username).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Store("sum completions", err)
	}
	return int(total), nil
}
