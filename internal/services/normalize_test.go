package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetableportal/internal/domain"
)

func listResponse(docs ...domain.DailyTimetable) domain.DayResponse {
	return domain.DayResponse{Shape: domain.DayShapeList, Documents: docs}
}

func singleResponse(doc domain.DailyTimetable) domain.DayResponse {
	return domain.DayResponse{Shape: domain.DayShapeSingle, Document: &doc}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		res  domain.DayResponse
		want []domain.FlatSlot
	}{
		{
			name: "list of documents",
			res: listResponse(
				domain.DailyTimetable{
					ID:        "doc-1",
					FacultyID: "F-01",
					TimetableSlots: []domain.Slot{
						{ID: "s-1", Time: "09:00 AM", CourseCode: "CS101"},
						{ID: "s-2", Time: "09:55 AM", CourseCode: "CS102", FacultyID: "F-02"},
					},
				},
				domain.DailyTimetable{
					ID: "doc-2",
					TimetableSlots: []domain.Slot{
						{ID: "s-3", Time: "11:05 AM", CourseCode: "MA201"},
					},
				},
			),
			want: []domain.FlatSlot{
				{Slot: domain.Slot{ID: "s-1", Time: "09:00 AM", CourseCode: "CS101"}, DailyTimetableID: "doc-1", SlotID: "s-1", DocFacultyID: "F-01"},
				{Slot: domain.Slot{ID: "s-2", Time: "09:55 AM", CourseCode: "CS102", FacultyID: "F-02"}, DailyTimetableID: "doc-1", SlotID: "s-2", DocFacultyID: "F-01"},
				{Slot: domain.Slot{ID: "s-3", Time: "11:05 AM", CourseCode: "MA201"}, DailyTimetableID: "doc-2", SlotID: "s-3"},
			},
		},
		{
			name: "single document",
			res: singleResponse(domain.DailyTimetable{
				ID: "doc-1",
				TimetableSlots: []domain.Slot{
					{ID: "s-1", Time: "09:00 AM", CourseCode: "CS101"},
				},
			}),
			want: []domain.FlatSlot{
				{Slot: domain.Slot{ID: "s-1", Time: "09:00 AM", CourseCode: "CS101"}, DailyTimetableID: "doc-1", SlotID: "s-1"},
			},
		},
		{
			name: "empty response",
			res:  domain.DayResponse{},
			want: []domain.FlatSlot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.res)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatten_EveryRecordHasParentID(t *testing.T) {
	res := listResponse(
		domain.DailyTimetable{ID: "doc-1", TimetableSlots: []domain.Slot{{Time: "09:00 AM"}, {Time: "09:55 AM"}}},
		domain.DailyTimetable{ID: "doc-2", TimetableSlots: []domain.Slot{{Time: "11:05 AM"}}},
	)
	for _, s := range Flatten(res) {
		assert.NotEmpty(t, s.DailyTimetableID)
	}
}

func TestFillDefaults(t *testing.T) {
	in := []domain.FlatSlot{
		{Slot: domain.Slot{FacultyID: "F-01", Section: "A", Semester: "3"}},
		{DocFacultyID: "F-02"},
		{},
	}
	got := FillDefaults(in)

	require.Len(t, got, 3)
	assert.Equal(t, "F-01", got[0].FacultyID)
	assert.Equal(t, "A", got[0].Section)
	assert.Equal(t, "3", got[0].Semester)

	// Parent document id wins over the sentinel.
	assert.Equal(t, "F-02", got[1].FacultyID)
	assert.Equal(t, NotAvailable, got[1].Section)
	assert.Equal(t, NotAvailable, got[1].Semester)

	assert.Equal(t, DefaultFacultyID, got[2].FacultyID)
	assert.Equal(t, NotAvailable, got[2].Section)
	assert.Equal(t, NotAvailable, got[2].Semester)

	// The input is left untouched.
	assert.Empty(t, in[2].FacultyID)
}

func TestFilterByFaculty(t *testing.T) {
	slots := []domain.FlatSlot{
		{Slot: domain.Slot{ID: "a", FacultyID: "F-01"}},
		{Slot: domain.Slot{ID: "b"}, DocFacultyID: "F-01"},
		{Slot: domain.Slot{ID: "c", FacultyID: "F-02"}},
		{Slot: domain.Slot{ID: "d"}},
	}
	got := FilterByFaculty(slots, "F-01")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestSortByTime(t *testing.T) {
	in := []domain.FlatSlot{
		{Slot: domain.Slot{Time: "11:05 AM"}},
		{Slot: domain.Slot{Time: "2:40 PM"}},
		{Slot: domain.Slot{Time: "09:00 AM"}},
	}
	got := SortByTime(in)

	require.Len(t, got, 3)
	assert.Equal(t, "09:00 AM", got[0].Time)
	assert.Equal(t, "11:05 AM", got[1].Time)
	assert.Equal(t, "2:40 PM", got[2].Time)

	// Input order is preserved.
	assert.Equal(t, "11:05 AM", in[0].Time)
}

func TestSortByTime_UnparsableLabelsKeepOrder(t *testing.T) {
	in := []domain.FlatSlot{
		{Slot: domain.Slot{ID: "a", Time: "nonsense"}},
		{Slot: domain.Slot{ID: "b", Time: "also nonsense"}},
		{Slot: domain.Slot{ID: "c", Time: "09:00 AM"}},
	}
	got := SortByTime(in)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestUniqueFaculty(t *testing.T) {
	slots := []domain.FlatSlot{
		{Slot: domain.Slot{FacultyID: "F-02", FacultyName: "Dr. Rao"}},
		{Slot: domain.Slot{FacultyID: "F-01", FacultyName: "Dr. Amin"}},
		{Slot: domain.Slot{FacultyID: "F-02", FacultyName: "Dr. Rao"}},
		{Slot: domain.Slot{FacultyID: NotAvailable}},
		{Slot: domain.Slot{FacultyID: ""}},
	}
	got := UniqueFaculty(slots)
	require.Len(t, got, 2)
	assert.Equal(t, domain.FacultyOption{ID: "F-01", Name: "Dr. Amin"}, got[0])
	assert.Equal(t, domain.FacultyOption{ID: "F-02", Name: "Dr. Rao"}, got[1])
}
