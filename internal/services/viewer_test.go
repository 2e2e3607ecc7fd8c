package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetableportal/internal/domain"
)

// fakeCampusAPI records calls and returns configurable responses.
type fakeCampusAPI struct {
	lookupCalls  int
	lastToken    string
	lastDay      string
	lastParams   url.Values
	dayRes       domain.DayResponse
	lookupErr    error
	createMsg    string
	createErr    error
	createdDaily []domain.DailyTimetable
	updateErr    error
	updatedSlots []string
	deleteMsg    string
	deleteErr    error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
	registerMsg  string
	registerErr  error
	registered   []domain.RegisterInput
}

func (f *fakeCampusAPI) LookupDay(ctx context.Context, token, day string, params url.Values) (domain.DayResponse, error) {
	f.lookupCalls++
	f.lastToken, f.lastDay, f.lastParams = token, day, params
	if f.lookupErr != nil {
		return domain.DayResponse{}, f.lookupErr
	}
	return f.dayRes, nil
}

func (f *fakeCampusAPI) CreateDaily(ctx context.Context, token string, t domain.DailyTimetable) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdDaily = append(f.createdDaily, t)
	return f.createMsg, nil
}

func (f *fakeCampusAPI) UpdateSlot(ctx context.Context, token, dailyID, slotID string, edit domain.SlotEdit) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.updatedSlots = append(f.updatedSlots, dailyID+"/"+slotID)
	return "timetable updated", nil
}

func (f *fakeCampusAPI) DeleteSlot(ctx context.Context, token, dailyID, slotID string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.deleteMsg, nil
}

func (f *fakeCampusAPI) DeleteDaily(ctx context.Context, token, dailyID string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.deleteMsg, nil
}

func (f *fakeCampusAPI) Login(ctx context.Context, in domain.LoginInput) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func (f *fakeCampusAPI) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	if f.registerErr != nil {
		return "", f.registerErr
	}
	f.registered = append(f.registered, in)
	return f.registerMsg, nil
}

func testSession(u domain.User) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        "sess-1",
		Token:     "upstream-token",
		User:      u,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestViewerService_StudentDay(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("missing filters blocks the network call", func(t *testing.T) {
		api := &fakeCampusAPI{}
		svc := NewViewerService(api, timeout)
		sess := testSession(domain.User{Role: domain.RoleStudent, Department: "CSE"})

		_, err := svc.StudentDay(ctx, sess, "Monday", "", domain.StudentFilters{})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 0, api.lookupCalls)
	})

	t.Run("session profile fills the filters", func(t *testing.T) {
		api := &fakeCampusAPI{dayRes: listResponse(domain.DailyTimetable{
			ID:             "doc-1",
			TimetableSlots: []domain.Slot{{ID: "s-1", Time: "09:00 AM"}},
		})}
		svc := NewViewerService(api, timeout)
		sess := testSession(domain.User{
			Role: domain.RoleStudent, Department: "CSE", Section: "A", Semester: "3",
		})

		slots, err := svc.StudentDay(ctx, sess, "Monday", "2026-02-09", domain.StudentFilters{})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, 1, api.lookupCalls)
		assert.Equal(t, "upstream-token", api.lastToken)
		assert.Equal(t, "Monday", api.lastDay)
		assert.Equal(t, "student", api.lastParams.Get("role"))
		assert.Equal(t, "CSE", api.lastParams.Get("department"))
		assert.Equal(t, "A", api.lastParams.Get("section"))
		assert.Equal(t, "3", api.lastParams.Get("semester"))
		assert.Equal(t, "2026-02-09", api.lastParams.Get("date"))
	})

	t.Run("overrides win over the profile", func(t *testing.T) {
		api := &fakeCampusAPI{}
		svc := NewViewerService(api, timeout)
		sess := testSession(domain.User{
			Role: domain.RoleStudent, Department: "CSE", Section: "A", Semester: "3",
		})

		_, err := svc.StudentDay(ctx, sess, "Monday", "", domain.StudentFilters{Section: "B"})

		require.NoError(t, err)
		assert.Equal(t, "B", api.lastParams.Get("section"))
		assert.Equal(t, "CSE", api.lastParams.Get("department"))
	})

	t.Run("unknown day", func(t *testing.T) {
		api := &fakeCampusAPI{}
		svc := NewViewerService(api, timeout)
		sess := testSession(domain.User{
			Role: domain.RoleStudent, Department: "CSE", Section: "A", Semester: "3",
		})

		_, err := svc.StudentDay(ctx, sess, "Funday", "", domain.StudentFilters{})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 0, api.lookupCalls)
	})
}

func TestViewerService_FacultyDay(t *testing.T) {
	ctx := context.Background()
	api := &fakeCampusAPI{dayRes: listResponse(domain.DailyTimetable{
		ID:        "doc-1",
		FacultyID: "F-01",
		TimetableSlots: []domain.Slot{
			{ID: "s-1", Time: "09:00 AM"},
			{ID: "s-2", Time: "09:55 AM", FacultyID: "F-02"},
		},
	})}
	svc := NewViewerService(api, 5*time.Second)
	sess := testSession(domain.User{Role: domain.RoleFaculty, Department: "CSE", FacultyID: "F-01"})

	slots, err := svc.FacultyDay(ctx, sess, "Tuesday", "")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "s-1", slots[0].ID)
	assert.Equal(t, "F-01", api.lastParams.Get("facultyId"))
}

func TestViewerService_HODDay(t *testing.T) {
	ctx := context.Background()
	res := listResponse(
		domain.DailyTimetable{
			ID:        "doc-1",
			FacultyID: "F-01",
			TimetableSlots: []domain.Slot{
				{ID: "s-2", Time: "11:05 AM", FacultyName: "Dr. Rao", FacultyID: "F-02"},
				{ID: "s-1", Time: "09:00 AM", FacultyName: "Dr. Amin"},
			},
		},
		domain.DailyTimetable{
			ID:             "doc-2",
			TimetableSlots: []domain.Slot{{ID: "s-3", Time: "09:55 AM"}},
		},
	)

	t.Run("department wide, filled and sorted", func(t *testing.T) {
		api := &fakeCampusAPI{dayRes: res}
		svc := NewViewerService(api, 5*time.Second)
		sess := testSession(domain.User{Role: domain.RoleHOD, Department: "CSE"})

		view, err := svc.HODDay(ctx, sess, "Monday", "", "")

		require.NoError(t, err)
		require.Len(t, view.Slots, 3)
		assert.Equal(t, "s-1", view.Slots[0].ID)
		assert.Equal(t, "s-3", view.Slots[1].ID)
		assert.Equal(t, "s-2", view.Slots[2].ID)

		// Fallback chain: slot id, then document id, then the sentinel.
		assert.Equal(t, "F-01", view.Slots[0].FacultyID)
		assert.Equal(t, DefaultFacultyID, view.Slots[1].FacultyID)
		assert.Equal(t, "F-02", view.Slots[2].FacultyID)
		assert.Equal(t, NotAvailable, view.Slots[0].Section)

		require.Len(t, view.Faculty, 3)
		assert.Equal(t, "CSE", api.lastParams.Get("department"))
		assert.Empty(t, api.lastParams.Get("facultyId"))
	})

	t.Run("faculty filter narrows slots but not options", func(t *testing.T) {
		api := &fakeCampusAPI{dayRes: res}
		svc := NewViewerService(api, 5*time.Second)
		sess := testSession(domain.User{Role: domain.RoleHOD, Department: "CSE"})

		view, err := svc.HODDay(ctx, sess, "Monday", "", "F-02")

		require.NoError(t, err)
		require.Len(t, view.Slots, 1)
		assert.Equal(t, "s-2", view.Slots[0].ID)
		assert.Len(t, view.Faculty, 3)
	})
}

func TestViewerService_AdminDay(t *testing.T) {
	ctx := context.Background()
	api := &fakeCampusAPI{dayRes: singleResponse(domain.DailyTimetable{
		ID:             "doc-1",
		TimetableSlots: []domain.Slot{{ID: "s-1", Time: "09:00 AM"}},
	})}
	svc := NewViewerService(api, 5*time.Second)
	sess := testSession(domain.User{Role: domain.RoleAdmin})

	slots, err := svc.AdminDay(ctx, sess, domain.RoleStudent, "Friday", "")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "doc-1", slots[0].DailyTimetableID)
	assert.Equal(t, "student", api.lastParams.Get("role"))
}

func TestViewerService_UpstreamError(t *testing.T) {
	ctx := context.Background()
	api := &fakeCampusAPI{lookupErr: errors.New("upstream down")}
	svc := NewViewerService(api, 5*time.Second)
	sess := testSession(domain.User{Role: domain.RoleHOD, Department: "CSE"})

	_, err := svc.HODDay(ctx, sess, "Monday", "", "")

	require.Error(t, err)
	assert.Equal(t, 1, api.lookupCalls)
}
