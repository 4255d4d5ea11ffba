package services

import (
	"maps"
	"strings"

	"go.uber.org/zap"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/common/metrics"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
	"github.com/educross/educross/pkg/logger"
)

// GradingService grades submissions against the catalog and records
// successful completions in the ledger. Scoring is all-or-nothing: a
// correct submission earns the activity's fixed point value, anything
// else earns nothing.
type GradingService struct {
	catalog     *catalog.Catalog
	completions *repository.CompletionRepository
}

func NewGradingService(cat *catalog.Catalog, completions *repository.CompletionRepository) *GradingService {
	return &GradingService{catalog: cat, completions: completions}
}

// Grade evaluates one submission. On success the completion is upserted,
// so a repeated correct answer never double-counts.
func (s *GradingService) Grade(username, activityID string, sub models.SubmissionRequest) (*models.GradeResult, error) {
	activity, ok := s.catalog.Get(activityID)
	if !ok {
		return nil, errors.NotFound("activity")
	}

	result := gradeSubmission(activity, sub)

	outcome := "incorrect"
	if result.Correct {
		outcome = "correct"
		if _, err := s.completions.Record(username, activity.ID, activity.Points); err != nil {
			return nil, err
		}
		result.PointsAwarded = activity.Points
	}
	metrics.Submissions.WithLabelValues(string(activity.Kind), outcome).Inc()

	logger.L().Info("submission graded",
		zap.String("username", username),
		zap.String("activity", activity.ID),
		zap.String("kind", string(activity.Kind)),
		zap.Bool("correct", result.Correct))
	return result, nil
}

func gradeSubmission(activity models.Activity, sub models.SubmissionRequest) *models.GradeResult {
	switch activity.Kind {
	case models.KindChoiceQuiz:
		return gradeChoice(activity, sub.Choice)
	case models.KindMatching:
		return gradeMatching(activity, sub.Pairs)
	case models.KindCrossword:
		return gradeCrossword(activity, sub.Words)
	default:
		return &models.GradeResult{}
	}
}

// gradeChoice: exact string match against the stored correct choice. A
// wrong answer reveals the correct one, as the original quiz did.
func gradeChoice(activity models.Activity, choice string) *models.GradeResult {
	if choice == activity.Answer {
		return &models.GradeResult{Correct: true}
	}
	return &models.GradeResult{CorrectAnswer: activity.Answer}
}

// gradeMatching: the submitted item->category mapping must equal the
// stored one exactly. No partial credit.
func gradeMatching(activity models.Activity, pairs map[string]string) *models.GradeResult {
	return &models.GradeResult{Correct: maps.Equal(pairs, activity.Pairs)}
}

// gradeCrossword: every clue must be answered, compared case-insensitively
// after trimming surrounding whitespace. No partial credit.
func gradeCrossword(activity models.Activity, words map[string]string) *models.GradeResult {
	for clue, answer := range activity.Words {
		submitted, ok := words[clue]
		if !ok {
			return &models.GradeResult{}
		}
		if !strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(answer)) {
			return &models.GradeResult{}
		}
	}
	return &models.GradeResult{Correct: true}
}
