package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/educross/educross/internal/common/database"
	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func testActivities() []models.Activity {
	return []models.Activity{
		{
			ID: "mc1", Kind: models.KindChoiceQuiz, Title: "STEM", Points: 20,
			Choices: []string{"A", "B", "C"}, Answer: "B",
		},
		{
			ID: "dd1", Kind: models.KindMatching, Title: "Biology", Points: 50,
			Categories: []string{"cat1", "cat2"},
			Pairs:      map[string]string{"A": "cat1", "B": "cat2"},
		},
		{
			ID: "cw1", Kind: models.KindCrossword, Title: "Solar", Points: 30,
			Words: map[string]string{"The red planet": "MARS", "Earth's satellite": "MOON"},
		},
	}
}

func setupGrading(t *testing.T) (*GradingService, *repository.CompletionRepository) {
	t.Helper()
	db := setupTestDB(t)
	completions := repository.NewCompletionRepository(db)
	return NewGradingService(catalog.NewWith(testActivities()), completions), completions
}

func TestGrade_ChoiceQuiz_ExactMatch(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "mc1", models.SubmissionRequest{Choice: "B"})
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, 20, result.PointsAwarded)
}

func TestGrade_ChoiceQuiz_WrongRevealsAnswer(t *testing.T) {
	svc, completions := setupGrading(t)

	result, err := svc.Grade("mara", "mc1", models.SubmissionRequest{Choice: "A"})
	require.NoError(t, err)

	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.PointsAwarded)
	assert.Equal(t, "B", result.CorrectAnswer)

	// Nothing recorded for a wrong answer.
	rows, err := completions.ListFor("mara")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGrade_Matching_AllOrNothing(t *testing.T) {
	svc, _ := setupGrading(t)

	correct, err := svc.Grade("mara", "dd1", models.SubmissionRequest{
		Pairs: map[string]string{"A": "cat1", "B": "cat2"},
	})
	require.NoError(t, err)
	assert.True(t, correct.Correct)

	swapped, err := svc.Grade("mara", "dd1", models.SubmissionRequest{
		Pairs: map[string]string{"A": "cat2", "B": "cat1"},
	})
	require.NoError(t, err)
	assert.False(t, swapped.Correct)
}

func TestGrade_Matching_MissingItem(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "dd1", models.SubmissionRequest{
		Pairs: map[string]string{"A": "cat1"},
	})
	require.NoError(t, err)
	assert.False(t, result.Correct)
}

func TestGrade_Crossword_CaseInsensitiveAndTrimmed(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "cw1", models.SubmissionRequest{
		Words: map[string]string{"The red planet": "mars", "Earth's satellite": " MOON "},
	})
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, 30, result.PointsAwarded)
}

func TestGrade_Crossword_OneWrongAnswerFailsAll(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "cw1", models.SubmissionRequest{
		Words: map[string]string{"The red planet": "MARS", "Earth's satellite": "SUN"},
	})
	require.NoError(t, err)
	assert.False(t, result.Correct)
}

func TestGrade_Crossword_UnansweredClueFails(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "cw1", models.SubmissionRequest{
		Words: map[string]string{"The red planet": "MARS"},
	})
	require.NoError(t, err)
	assert.False(t, result.Correct)
}

func TestGrade_RepeatCorrectSubmissionDoesNotDoubleCount(t *testing.T) {
	svc, completions := setupGrading(t)

	for i := 0; i < 3; i++ {
		result, err := svc.Grade("mara", "mc1", models.SubmissionRequest{Choice: "B"})
		require.NoError(t, err)
		assert.True(t, result.Correct)
	}

	rows, err := completions.ListFor("mara")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	total, err := completions.TotalPoints("mara")
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}

func TestGrade_UnknownActivity(t *testing.T) {
	svc, _ := setupGrading(t)

	result, err := svc.Grade("mara", "missing", models.SubmissionRequest{Choice: "B"})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}
