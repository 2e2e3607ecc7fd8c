package services

import (
	"context"
	"fmt"
	"time"

	"timetableportal/internal/domain"
)

type viewerService struct {
	api            domain.CampusAPI
	contextTimeout time.Duration
}

// NewViewerService builds the role-shaped day views on top of the upstream
// API client. Views never cache: every call re-fetches the day.
func NewViewerService(api domain.CampusAPI, timeout time.Duration) domain.ViewerService {
	return &viewerService{
		api:            api,
		contextTimeout: timeout,
	}
}

func (s *viewerService) lookup(ctx context.Context, sess *domain.Session, role domain.Role, day string, f Filters) ([]domain.FlatSlot, error) {
	params, err := BuildDayQuery(role, f)
	if err != nil {
		return nil, err
	}
	if !domain.IsWeekday(day) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown day %q", day))
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	res, err := s.api.LookupDay(ctx, sess.Token, day, params)
	if err != nil {
		return nil, err
	}
	return Flatten(res), nil
}

// AdminDay is the admin overview: the full grid of the chosen target role for
// one day. Flat slots keep the owning document id so the coarse delete path
// can address whole documents.
func (s *viewerService) AdminDay(ctx context.Context, sess *domain.Session, targetRole domain.Role, day, date string) ([]domain.FlatSlot, error) {
	return s.lookup(ctx, sess, domain.RoleAdmin, day, Filters{TargetRole: targetRole, Date: date})
}

// FacultyDay is the faculty member's personal schedule: the department grid
// filtered, strictly after flattening, down to the session user's faculty id.
func (s *viewerService) FacultyDay(ctx context.Context, sess *domain.Session, day, date string) ([]domain.FlatSlot, error) {
	slots, err := s.lookup(ctx, sess, domain.RoleFaculty, day, Filters{
		Department: sess.User.Department,
		FacultyID:  sess.User.FacultyID,
		Date:       date,
	})
	if err != nil {
		return nil, err
	}
	return FilterByFaculty(slots, sess.User.FacultyID), nil
}

// HODDay is the department-wide view: fallback-filled so no slot renders with
// a missing faculty id, section, or semester, then time-sorted. facultyID
// optionally narrows the slots; the faculty option list always reflects the
// whole department.
func (s *viewerService) HODDay(ctx context.Context, sess *domain.Session, day, date, facultyID string) (*domain.HODDayView, error) {
	slots, err := s.lookup(ctx, sess, domain.RoleHOD, day, Filters{
		Department: sess.User.Department,
		Date:       date,
	})
	if err != nil {
		return nil, err
	}
	slots = SortByTime(FillDefaults(slots))
	view := &domain.HODDayView{
		Slots:   slots,
		Faculty: UniqueFaculty(slots),
	}
	if facultyID != "" {
		view.Slots = FilterByFaculty(view.Slots, facultyID)
	}
	return view, nil
}

// StudentDay is the student's section schedule. Department, section and
// semester come from the session user unless overridden, and all three must
// be present before any network call is made.
func (s *viewerService) StudentDay(ctx context.Context, sess *domain.Session, day, date string, overrides domain.StudentFilters) ([]domain.FlatSlot, error) {
	f := Filters{
		Department: overrides.Department,
		Section:    overrides.Section,
		Semester:   overrides.Semester,
		Date:       date,
	}
	if f.Department == "" {
		f.Department = sess.User.Department
	}
	if f.Section == "" {
		f.Section = sess.User.Section
	}
	if f.Semester == "" {
		f.Semester = sess.User.Semester
	}
	return s.lookup(ctx, sess, domain.RoleStudent, day, f)
}
