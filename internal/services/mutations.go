package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timetableportal/internal/domain"
)

// WholeDocumentRemovedPhrase marks an upstream delete response that removed
// the entire daily timetable, not just the requested slot. The upstream sends
// it when the last slot of a document is deleted.
const WholeDocumentRemovedPhrase = "daily timetable deleted"

type entryService struct {
	api            domain.CampusAPI
	viewer         domain.ViewerService
	contextTimeout time.Duration
}

// NewEntryService performs timetable mutations against the upstream API.
func NewEntryService(api domain.CampusAPI, viewer domain.ViewerService, timeout time.Duration) domain.EntryService {
	return &entryService{
		api:            api,
		viewer:         viewer,
		contextTimeout: timeout,
	}
}

// validateDaily mirrors the manual-entry form: role, day, department, and the
// term fields are always required; student entries need section and semester
// and faculty/hod entries need a faculty id.
func validateDaily(t domain.DailyTimetable) error {
	var errs []string
	if _, err := domain.ParseRole(string(t.Role)); err != nil || t.Role == domain.RoleAdmin {
		errs = append(errs, "role must be hod, faculty, or student")
	}
	if !domain.IsWeekday(t.Day) {
		errs = append(errs, "day must be a weekday name")
	}
	if t.Department == "" {
		errs = append(errs, "department is required")
	}
	if t.Duration == "" {
		errs = append(errs, "term duration is required")
	}
	if t.OddEvenTerm != "odd" && t.OddEvenTerm != "even" {
		errs = append(errs, "term must be odd or even")
	}
	switch t.Role {
	case domain.RoleStudent:
		if t.Section == "" {
			errs = append(errs, "section is required for student timetables")
		}
		if t.Semester == "" {
			errs = append(errs, "semester is required for student timetables")
		}
	case domain.RoleFaculty, domain.RoleHOD:
		if t.FacultyID == "" {
			errs = append(errs, "faculty id is required for faculty and hod timetables")
		}
	}
	if len(t.TimetableSlots) == 0 {
		errs = append(errs, "at least one slot is required")
	}
	for i, slot := range t.TimetableSlots {
		if slot.Time == "" || slot.CourseCode == "" || slot.CourseName == "" {
			errs = append(errs, fmt.Sprintf("slot %d needs time, course code, and course name", i+1))
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

func (s *entryService) CreateDaily(ctx context.Context, sess *domain.Session, t domain.DailyTimetable) (string, error) {
	if err := validateDaily(t); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.api.CreateDaily(ctx, sess.Token, t)
}

// UpdateSlot submits the edit, then re-fetches the referenced day and returns
// the refreshed list. Local state is never patched in place.
func (s *entryService) UpdateSlot(ctx context.Context, sess *domain.Session, dailyID, slotID string, edit domain.SlotEdit, ref domain.DayRef) ([]domain.FlatSlot, error) {
	if dailyID == "" || slotID == "" {
		return nil, domain.NewValidationError("daily timetable id and slot id are required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if _, err := s.api.UpdateSlot(ctx, sess.Token, dailyID, slotID, edit); err != nil {
		return nil, err
	}
	return s.viewer.AdminDay(ctx, sess, ref.Role, ref.Day, ref.Date)
}

// ApplyDelete prunes a held slot list after a per-slot delete. When the
// upstream message says the whole document was removed, every slot sharing
// the document id goes; otherwise only the one matching slot id.
func ApplyDelete(current []domain.FlatSlot, dailyID, slotID, message string) []domain.FlatSlot {
	wholeDocument := strings.Contains(strings.ToLower(message), WholeDocumentRemovedPhrase)
	out := make([]domain.FlatSlot, 0, len(current))
	for _, slot := range current {
		if wholeDocument {
			if slot.DailyTimetableID == dailyID {
				continue
			}
		} else if slot.DailyTimetableID == dailyID && slot.SlotID == slotID {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func (s *entryService) DeleteSlot(ctx context.Context, sess *domain.Session, dailyID, slotID string, current []domain.FlatSlot) ([]domain.FlatSlot, string, error) {
	if dailyID == "" || slotID == "" {
		return current, "", domain.NewValidationError("daily timetable id and slot id are required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	message, err := s.api.DeleteSlot(ctx, sess.Token, dailyID, slotID)
	if err != nil {
		return current, "", err
	}
	return ApplyDelete(current, dailyID, slotID, message), message, nil
}

// DeleteDaily is the coarse legacy path: the whole document goes regardless
// of how many slots it held.
func (s *entryService) DeleteDaily(ctx context.Context, sess *domain.Session, dailyID string, current []domain.FlatSlot) ([]domain.FlatSlot, string, error) {
	if dailyID == "" {
		return current, "", domain.NewValidationError("daily timetable id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	message, err := s.api.DeleteDaily(ctx, sess.Token, dailyID)
	if err != nil {
		return current, "", err
	}
	out := make([]domain.FlatSlot, 0, len(current))
	for _, slot := range current {
		if slot.DailyTimetableID == dailyID {
			continue
		}
		out = append(out, slot)
	}
	return out, message, nil
}
