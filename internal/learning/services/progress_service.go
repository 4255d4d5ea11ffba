package services

import (
	"github.com/educross/educross/internal/learning/catalog"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
)

// ProgressService derives per-user and roster-wide statistics from the
// completion ledger and the live catalog. Nothing is cached: totals are
// recomputed from ledger rows on every call, which keeps them consistent
// with the upsert-only ledger.
type ProgressService struct {
	accounts    *repository.AccountRepository
	completions *repository.CompletionRepository
	catalog     *catalog.Catalog
}

func NewProgressService(accounts *repository.AccountRepository, completions *repository.CompletionRepository, cat *catalog.Catalog) *ProgressService {
	return &ProgressService{accounts: accounts, completions: completions, catalog: cat}
}

// Report builds the per-activity breakdown for one user.
func (s *ProgressService) Report(username string) (*models.ProgressReport, error) {
	completions, err := s.completions.ListFor(username)
	if err != nil {
		return nil, err
	}

	byActivity := make(map[string]models.Completion, len(completions))
	for _, c := range completions {
		byActivity[c.ActivityID] = c
	}

	activities := s.catalog.List()
	report := &models.ProgressReport{
		Username:        username,
		TotalActivities: len(activities),
		Items:           make([]models.ProgressItem, 0, len(activities)),
	}

	for _, a := range activities {
		item := models.ProgressItem{
			ActivityID: a.ID,
			Title:      a.Title,
			Kind:       a.Kind,
			Points:     a.Points,
		}
		if c, ok := byActivity[a.ID]; ok {
			completedAt := c.CompletedAt
			item.Completed = true
			item.PointsAwarded = c.Points
			item.CompletedAt = &completedAt
			report.Completed++
			report.TotalPoints += c.Points
		}
		report.Items = append(report.Items, item)
	}

	if report.TotalActivities > 0 {
		report.CompletionPct = report.Completed * 100 / report.TotalActivities
	}
	return report, nil
}

// CompletedIDs returns the set of activity ids a user has completed; used
// to flag activity listings.
func (s *ProgressService) CompletedIDs(username string) (map[string]bool, error) {
	completions, err := s.completions.ListFor(username)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(completions))
	for _, c := range completions {
		ids[c.ActivityID] = true
	}
	return ids, nil
}

// Overview computes the teacher dashboard's headline numbers: roster size,
// catalog size, and the average completion rate across all students.
func (s *ProgressService) Overview() (*models.TeacherOverview, error) {
	students, err := s.accounts.ListByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}

	overview := &models.TeacherOverview{
		TotalStudents:   len(students),
		TotalActivities: s.catalog.Len(),
	}

	if len(students) == 0 || overview.TotalActivities == 0 {
		return overview, nil
	}

	totalCompleted := 0
	for _, student := range students {
		completions, err := s.completions.ListFor(student.Username)
		if err != nil {
			return nil, err
		}
		totalCompleted += len(completions)
	}
	overview.CompletionRate = totalCompleted * 100 / (len(students) * overview.TotalActivities)
	return overview, nil
}
