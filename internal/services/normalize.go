package services

import (
	"sort"
	"time"

	"timetableportal/internal/domain"
)

// Fallback values applied by FillDefaults so the HOD view never renders an
// empty faculty id, section, or semester.
const (
	DefaultFacultyID = "CAN"
	NotAvailable     = "N/A"
)

// Flatten reshapes a day-lookup response into one flat ordered slot list.
// Every output record carries the parent document's id; the slot's own
// subdocument id lands under the distinct SlotID key. An empty or
// unknown-shaped response flattens to an empty list, never an error.
func Flatten(res domain.DayResponse) []domain.FlatSlot {
	switch res.Shape {
	case domain.DayShapeList:
		out := make([]domain.FlatSlot, 0)
		for _, doc := range res.Documents {
			out = append(out, flattenDoc(doc)...)
		}
		return out
	case domain.DayShapeSingle:
		return flattenDoc(*res.Document)
	default:
		return []domain.FlatSlot{}
	}
}

func flattenDoc(doc domain.DailyTimetable) []domain.FlatSlot {
	out := make([]domain.FlatSlot, 0, len(doc.TimetableSlots))
	for _, slot := range doc.TimetableSlots {
		out = append(out, domain.FlatSlot{
			Slot:             slot,
			DailyTimetableID: doc.ID,
			SlotID:           slot.ID,
			DocFacultyID:     doc.FacultyID,
		})
	}
	return out
}

// effectiveFacultyID resolves a flat slot's faculty id: the slot's own when
// set, else the parent document's.
func effectiveFacultyID(s domain.FlatSlot) string {
	if s.FacultyID != "" {
		return s.FacultyID
	}
	return s.DocFacultyID
}

// FilterByFaculty keeps only slots whose effective faculty id equals
// facultyID. Applied strictly after flattening.
func FilterByFaculty(slots []domain.FlatSlot, facultyID string) []domain.FlatSlot {
	out := make([]domain.FlatSlot, 0, len(slots))
	for _, s := range slots {
		if effectiveFacultyID(s) == facultyID {
			out = append(out, s)
		}
	}
	return out
}

// FillDefaults assigns placeholder values so downstream rendering never sees
// a missing key: faculty id falls back slot -> parent document -> the "CAN"
// sentinel; section and semester fall back to "N/A".
func FillDefaults(slots []domain.FlatSlot) []domain.FlatSlot {
	out := make([]domain.FlatSlot, len(slots))
	for i, s := range slots {
		if s.FacultyID = effectiveFacultyID(s); s.FacultyID == "" {
			s.FacultyID = DefaultFacultyID
		}
		if s.Section == "" {
			s.Section = NotAvailable
		}
		if s.Semester == "" {
			s.Semester = NotAvailable
		}
		out[i] = s
	}
	return out
}

// timeLayouts covers the period label forms seen in real documents:
// zero-padded and bare hours, e.g. "09:00 AM" and "2:40 PM".
var timeLayouts = []string{"3:04 PM", "03:04 PM"}

// parseTimeLabel parses a free-text period label as a clock time.
func parseTimeLabel(label string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByTime orders slots ascending by their parsed time label. The sort is
// stable and unparsable labels compare equal, so malformed times never panic
// or reorder their neighbours.
func SortByTime(slots []domain.FlatSlot) []domain.FlatSlot {
	out := make([]domain.FlatSlot, len(slots))
	copy(out, slots)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := parseTimeLabel(out[i].Time)
		tj, okj := parseTimeLabel(out[j].Time)
		if !oki || !okj {
			return false
		}
		return ti.Before(tj)
	})
	return out
}

// UniqueFaculty collects the deduped (id, name) faculty pairs present in the
// slots, excluding "N/A" ids, sorted by name. Feeds the HOD filter dropdown.
func UniqueFaculty(slots []domain.FlatSlot) []domain.FacultyOption {
	seen := make(map[string]struct{})
	out := make([]domain.FacultyOption, 0)
	for _, s := range slots {
		id := s.FacultyID
		if id == "" || id == NotAvailable {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, domain.FacultyOption{ID: id, Name: s.FacultyName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
