package session

import (
	"github.com/educross/educross/internal/learning/models"
)

// View identifies one screen of the application. A session is always on
// exactly one view; tabs within a dashboard are mutually exclusive.
type View string

const (
	ViewAuth View = "auth"

	// Student dashboard tabs
	ViewStudentActivities View = "student/activities"
	ViewStudentProgress   View = "student/progress"
	ViewStudentProfile    View = "student/profile"

	// Teacher dashboard panes
	ViewTeacherOverview       View = "teacher/overview"
	ViewTeacherStudentDetail  View = "teacher/student"
	ViewTeacherActivityDetail View = "teacher/activity"
	ViewTeacherCreateActivity View = "teacher/create"
)

var studentViews = map[View]bool{
	ViewStudentActivities: true,
	ViewStudentProgress:   true,
	ViewStudentProfile:    true,
}

var teacherViews = map[View]bool{
	ViewTeacherOverview:       true,
	ViewTeacherStudentDetail:  true,
	ViewTeacherActivityDetail: true,
	ViewTeacherCreateActivity: true,
}

// DashboardFor returns the landing view after a successful login.
func DashboardFor(role models.Role) View {
	if role == models.RoleTeacher {
		return ViewTeacherOverview
	}
	return ViewStudentActivities
}

// AllowedFor reports whether a role may navigate to the view. The auth
// screen is never a navigation target; it is only reached via logout.
func (v View) AllowedFor(role models.Role) bool {
	switch role {
	case models.RoleStudent:
		return studentViews[v]
	case models.RoleTeacher:
		return teacherViews[v]
	default:
		return false
	}
}
