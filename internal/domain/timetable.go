package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
)

// Weekdays is the canonical day-name list used by the manual-entry form and
// accepted by the upstream day-lookup endpoint.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// PeriodTimes are the taught period labels offered by the manual-entry form.
var PeriodTimes = []string{
	"09:00 AM", "09:55 AM", "11:05 AM", "12:00 PM",
	"1:45 PM", "2:40 PM", "3:35 PM", "4:30 PM",
}

// IsWeekday reports whether day is one of the canonical weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Slot is one scheduled course occurrence inside a DailyTimetable.
// Time labels are free text, e.g. "09:00 AM".
// swagger:model Slot
type Slot struct {
	ID            string `json:"_id,omitempty"`
	Time          string `json:"time"`
	CourseCode    string `json:"courseCode"`
	CourseName    string `json:"courseName"`
	FacultyName   string `json:"facultyName,omitempty"`
	FacultyID     string `json:"facultyId,omitempty"`
	RoomNo        string `json:"roomNo,omitempty"`
	Section       string `json:"section,omitempty"`
	Semester      string `json:"semester,omitempty"`
	RoundingsTime string `json:"roundingsTime,omitempty"`
}

// DailyTimetable groups all slots for one role/day/department combination,
// plus role-specific discriminators. The upstream API owns these documents.
// swagger:model DailyTimetable
type DailyTimetable struct {
	ID             string `json:"_id,omitempty"`
	Role           Role   `json:"role"`
	Day            string `json:"day"`
	Department     string `json:"department"`
	Section        string `json:"section,omitempty"`
	Semester       string `json:"semester,omitempty"`
	FacultyID      string `json:"facultyId,omitempty"`
	FacultyName    string `json:"facultyName,omitempty"`
	Duration       string `json:"duration,omitempty"`
	OddEvenTerm    string `json:"oddEvenTerm,omitempty"`
	TimetableSlots []Slot `json:"timetableSlots"`
}

// FlatSlot is a Slot annotated with the synthesized identifier pair that
// addresses it across all fetched documents: the owning document's id and the
// slot's own subdocument id. DocFacultyID carries the parent document's
// faculty id for the faculty filter and the HOD fallback chain.
// swagger:model FlatSlot
type FlatSlot struct {
	Slot
	DailyTimetableID string `json:"dailyTimetableId"`
	SlotID           string `json:"slotId,omitempty"`
	DocFacultyID     string `json:"-"`
}

// SlotEdit is the set of per-slot fields the update endpoint accepts.
// swagger:model SlotEdit
type SlotEdit struct {
	Time          string `json:"time"`
	CourseCode    string `json:"courseCode"`
	CourseName    string `json:"courseName"`
	FacultyName   string `json:"facultyName,omitempty"`
	RoomNo        string `json:"roomNo,omitempty"`
	RoundingsTime string `json:"roundingsTime,omitempty"`
}

// FacultyOption is one entry of the HOD view's faculty filter dropdown.
// swagger:model FacultyOption
type FacultyOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DayShape tags the decoded shape of a day-lookup response.
type DayShape int

const (
	DayShapeEmpty DayShape = iota
	DayShapeSingle
	DayShapeList
)

// DayResponse is the day-lookup payload decoded once at the API boundary.
// The upstream returns either an array of documents or a single document;
// anything else decodes as empty rather than failing.
type DayResponse struct {
	Shape     DayShape
	Documents []DailyTimetable
	Document  *DailyTimetable
}

// UnmarshalJSON sniffs the payload shape exactly once. A JSON array becomes
// DayShapeList, an object carrying a timetableSlots array becomes
// DayShapeSingle, and everything else (null, scalars, objects without slots)
// becomes DayShapeEmpty.
func (d *DayResponse) UnmarshalJSON(b []byte) error {
	*d = DayResponse{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var docs []DailyTimetable
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return err
		}
		d.Shape = DayShapeList
		d.Documents = docs
	case '{':
		var doc DailyTimetable
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return err
		}
		if doc.TimetableSlots == nil {
			return nil
		}
		d.Shape = DayShapeSingle
		d.Document = &doc
	}
	return nil
}

// LoginInput are the credentials sent to the upstream login endpoint.
// Faculty logins additionally identify themselves by faculty id.
type LoginInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FacultyID string `json:"faculty_id,omitempty"`
}

// RegisterInput is the upstream registration payload. Department, section,
// semester and faculty id are included per the registering role.
type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Section    string `json:"section,omitempty"`
	Semester   string `json:"semester,omitempty"`
	FacultyID  string `json:"faculty_id,omitempty"`
}

// CampusAPI is the outbound client for the remote college timetable API.
// Every call attaches the session's upstream token; errors surface the
// upstream message unchanged, with no retry.
type CampusAPI interface {
	LookupDay(ctx context.Context, token, day string, params url.Values) (DayResponse, error)
	CreateDaily(ctx context.Context, token string, t DailyTimetable) (string, error)
	UpdateSlot(ctx context.Context, token, dailyID, slotID string, edit SlotEdit) (string, error)
	DeleteSlot(ctx context.Context, token, dailyID, slotID string) (string, error)
	DeleteDaily(ctx context.Context, token, dailyID string) (string, error)
	Login(ctx context.Context, in LoginInput) (string, *User, error)
	Register(ctx context.Context, in RegisterInput) (string, error)
}

// HODDayView is the HOD view payload: the department's slots for one day,
// fallback-filled and time-sorted, plus the faculty filter options.
type HODDayView struct {
	Slots   []FlatSlot      `json:"slots"`
	Faculty []FacultyOption `json:"faculty"`
}

// ViewerService builds the role-shaped day views.
type ViewerService interface {
	AdminDay(ctx context.Context, s *Session, targetRole Role, day, date string) ([]FlatSlot, error)
	FacultyDay(ctx context.Context, s *Session, day, date string) ([]FlatSlot, error)
	HODDay(ctx context.Context, s *Session, day, date, facultyID string) (*HODDayView, error)
	StudentDay(ctx context.Context, s *Session, day, date string, overrides StudentFilters) ([]FlatSlot, error)
}

// StudentFilters are the student view's query overrides; empty fields fall
// back to the session user's profile.
type StudentFilters struct {
	Department string
	Section    string
	Semester   string
}

// DayRef identifies the day grid a mutation was made against, so the service
// can refresh it after an edit. Role is the grid's target role, not the
// caller's.
type DayRef struct {
	Role Role
	Day  string
	Date string
}

// EntryService performs timetable mutations against the upstream API.
// UpdateSlot re-fetches the referenced day on success instead of patching
// locally; the delete operations prune the caller's current list by the
// upstream response message, with no re-fetch.
type EntryService interface {
	CreateDaily(ctx context.Context, s *Session, t DailyTimetable) (string, error)
	UpdateSlot(ctx context.Context, s *Session, dailyID, slotID string, edit SlotEdit, ref DayRef) ([]FlatSlot, error)
	DeleteSlot(ctx context.Context, s *Session, dailyID, slotID string, current []FlatSlot) ([]FlatSlot, string, error)
	DeleteDaily(ctx context.Context, s *Session, dailyID string, current []FlatSlot) ([]FlatSlot, string, error)
}
