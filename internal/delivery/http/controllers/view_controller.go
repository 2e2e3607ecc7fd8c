package controllers

import (
	"log/slog"
	"net/http"

	h "timetableportal/internal/delivery/http/helpers"
	"timetableportal/internal/delivery/http/middleware"
	"timetableportal/internal/domain"
)

// DayViewResponse is the slot list payload of the admin, faculty, and student
// day views.
type DayViewResponse struct {
	Day   string            `json:"day"`
	Slots []domain.FlatSlot `json:"slots"`
}

// MetaResponse lists the canonical weekday names and taught period labels for
// form rendering.
type MetaResponse struct {
	Weekdays    []string `json:"weekdays"`
	PeriodTimes []string `json:"periodTimes"`
}

type ViewController struct {
	Logger *slog.Logger
	Viewer domain.ViewerService
}

func NewViewController(logger *slog.Logger, viewer domain.ViewerService) *ViewController {
	return &ViewController{
		Logger: logger,
		Viewer: viewer,
	}
}

func (c *ViewController) session(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return session, true
}

// AdminDay godoc
// @Summary Admin day overview
// @Description The full timetable grid of the chosen role for one day. Slots keep their owning document id so whole documents can be deleted from this view.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday name, e.g. Monday"
// @Param role query string true "Target role: hod, faculty, or student"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains day and slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /views/admin/day/{day} [get]
func (c *ViewController) AdminDay(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	day := r.PathValue("day")
	targetRole, err := domain.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "role must be hod, faculty, or student")
		return
	}
	slots, err := c.Viewer.AdminDay(r.Context(), session, targetRole, day, r.URL.Query().Get("date"))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DayViewResponse{Day: day, Slots: slots})
}

// FacultyDay godoc
// @Summary Faculty personal day view
// @Description The logged-in faculty member's schedule for one day, filtered to their faculty id after flattening.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday name"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains day and slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /views/faculty/day/{day} [get]
func (c *ViewController) FacultyDay(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	day := r.PathValue("day")
	slots, err := c.Viewer.FacultyDay(r.Context(), session, day, r.URL.Query().Get("date"))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DayViewResponse{Day: day, Slots: slots})
}

// HODDay godoc
// @Summary HOD department day view
// @Description The whole department's schedule for one day, fallback-filled and sorted by time, with the faculty filter options. An optional facultyId query narrows the slots.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday name"
// @Param facultyId query string false "Narrow to one faculty member"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains slots and faculty options"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /views/hod/day/{day} [get]
func (c *ViewController) HODDay(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	day := r.PathValue("day")
	view, err := c.Viewer.HODDay(r.Context(), session, day, r.URL.Query().Get("date"), r.URL.Query().Get("facultyId"))
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// StudentDay godoc
// @Summary Student day view
// @Description The student's section schedule for one day. Department, section, and semester default to the profile; query params override them, and all three must resolve or the request fails before any upstream call.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday name"
// @Param department query string false "Override department"
// @Param section query string false "Override section"
// @Param semester query string false "Override semester"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains day and slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /views/student/day/{day} [get]
func (c *ViewController) StudentDay(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	day := r.PathValue("day")
	q := r.URL.Query()
	slots, err := c.Viewer.StudentDay(r.Context(), session, day, q.Get("date"), domain.StudentFilters{
		Department: q.Get("department"),
		Section:    q.Get("section"),
		Semester:   q.Get("semester"),
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DayViewResponse{Day: day, Slots: slots})
}

// Meta godoc
// @Summary Form metadata
// @Description Canonical weekday names and taught period labels for the manual-entry form.
// @Tags views
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains weekdays and periodTimes"
// @Router /views/meta [get]
func (c *ViewController) Meta(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.session(w, r); !ok {
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, MetaResponse{
		Weekdays:    domain.Weekdays,
		PeriodTimes: domain.PeriodTimes,
	})
}
