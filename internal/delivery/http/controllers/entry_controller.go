package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "timetableportal/internal/delivery/http/helpers"
	"timetableportal/internal/delivery/http/middleware"
	"timetableportal/internal/domain"
)

// CreateDailyRequest is the request body for POST /timetable/daily: one
// complete daily timetable submitted in a single call, as the manual-entry
// form does.
type CreateDailyRequest struct {
	Role           string        `json:"role"`
	Day            string        `json:"day"`
	Department     string        `json:"department"`
	Duration       string        `json:"duration"`
	OddEvenTerm    string        `json:"oddEvenTerm"`
	Section        string        `json:"section,omitempty"`
	Semester       string        `json:"semester,omitempty"`
	FacultyID      string        `json:"facultyId,omitempty"`
	FacultyName    string        `json:"facultyName,omitempty"`
	TimetableSlots []domain.Slot `json:"timetableSlots"`
}

// Validate implements Validator. Field-level rules live in the entry
// service; only the outline is checked here.
func (c CreateDailyRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Role) == "" {
		errs = append(errs, "role is required")
	}
	if strings.TrimSpace(c.Day) == "" {
		errs = append(errs, "day is required")
	}
	return errs
}

// UpdateSlotRequest is the request body for PUT /timetable/{dailyID}/slot/{slotID}.
type UpdateSlotRequest struct {
	Time          string `json:"time"`
	CourseCode    string `json:"courseCode"`
	CourseName    string `json:"courseName"`
	FacultyName   string `json:"facultyName,omitempty"`
	RoomNo        string `json:"roomNo,omitempty"`
	RoundingsTime string `json:"roundingsTime,omitempty"`
}

// Validate implements Validator.
func (u UpdateSlotRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(u.CourseCode) == "" {
		errs = append(errs, "course code is required")
	}
	if strings.TrimSpace(u.CourseName) == "" {
		errs = append(errs, "course name is required")
	}
	return errs
}

// DeleteResponse is the payload of both delete endpoints: the upstream
// message plus the day's remaining slots after reconciliation.
type DeleteResponse struct {
	Message string            `json:"message"`
	Slots   []domain.FlatSlot `json:"slots"`
}

type EntryController struct {
	Logger *slog.Logger
	Entry  domain.EntryService
	Viewer domain.ViewerService
}

func NewEntryController(logger *slog.Logger, entry domain.EntryService, viewer domain.ViewerService) *EntryController {
	return &EntryController{
		Logger: logger,
		Entry:  entry,
		Viewer: viewer,
	}
}

func (c *EntryController) session(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return session, true
}

// dayRef reads the grid reference (role, day, date) that the mutation was
// made against from the query string.
func (c *EntryController) dayRef(w http.ResponseWriter, r *http.Request) (domain.DayRef, bool) {
	q := r.URL.Query()
	role, err := domain.ParseRole(q.Get("role"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "role query parameter must be hod, faculty, or student")
		return domain.DayRef{}, false
	}
	day := q.Get("day")
	if !domain.IsWeekday(day) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "day query parameter must be a weekday name")
		return domain.DayRef{}, false
	}
	return domain.DayRef{Role: role, Day: day, Date: q.Get("date")}, true
}

// CreateDaily godoc
// @Summary Create a daily timetable
// @Description Submit one complete daily timetable (role, day, department, term fields, ordered slots) to the college API in a single call.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDailyRequest true "Daily timetable"
// @Success 201 {object} helpers.APIResponse "data contains the upstream message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /timetable/daily [post]
func (c *EntryController) CreateDaily(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	var req CreateDailyRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	message, err := c.Entry.CreateDaily(r.Context(), session, domain.DailyTimetable{
		Role:           domain.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		Day:            req.Day,
		Department:     strings.TrimSpace(req.Department),
		Duration:       strings.TrimSpace(req.Duration),
		OddEvenTerm:    strings.ToLower(strings.TrimSpace(req.OddEvenTerm)),
		Section:        strings.TrimSpace(req.Section),
		Semester:       strings.TrimSpace(req.Semester),
		FacultyID:      strings.TrimSpace(req.FacultyID),
		FacultyName:    strings.TrimSpace(req.FacultyName),
		TimetableSlots: req.TimetableSlots,
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{Message: message})
}

// UpdateSlot godoc
// @Summary Update one slot
// @Description Update a slot's editable fields, addressed by its daily timetable id and slot id. On success the referenced day grid (role, day, date query parameters) is re-fetched and returned; local state is never patched in place.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dailyID path string true "Daily timetable id"
// @Param slotID path string true "Slot id"
// @Param role query string true "Grid role the edit was made against"
// @Param day query string true "Weekday name"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param body body UpdateSlotRequest true "Slot fields"
// @Success 200 {object} helpers.APIResponse "data contains the refreshed day slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /timetable/{dailyID}/slot/{slotID} [put]
func (c *EntryController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	ref, ok := c.dayRef(w, r)
	if !ok {
		return
	}
	var req UpdateSlotRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	slots, err := c.Entry.UpdateSlot(r.Context(), session, r.PathValue("dailyID"), r.PathValue("slotID"), domain.SlotEdit{
		Time:          req.Time,
		CourseCode:    req.CourseCode,
		CourseName:    req.CourseName,
		FacultyName:   req.FacultyName,
		RoomNo:        req.RoomNo,
		RoundingsTime: req.RoundingsTime,
	}, ref)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DayViewResponse{Day: ref.Day, Slots: slots})
}

// DeleteSlot godoc
// @Summary Delete one slot
// @Description Delete a slot by its daily timetable id and slot id. The day grid is snapshotted first; the upstream message decides whether only the slot or the whole document is pruned from it, and the remaining slots are returned without a re-fetch.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param dailyID path string true "Daily timetable id"
// @Param slotID path string true "Slot id"
// @Param role query string true "Grid role the delete was made against"
// @Param day query string true "Weekday name"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the upstream message and remaining slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /timetable/{dailyID}/slot/{slotID} [delete]
func (c *EntryController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	ref, ok := c.dayRef(w, r)
	if !ok {
		return
	}
	current, err := c.Viewer.AdminDay(r.Context(), session, ref.Role, ref.Day, ref.Date)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	slots, message, err := c.Entry.DeleteSlot(r.Context(), session, r.PathValue("dailyID"), r.PathValue("slotID"), current)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Message: message, Slots: slots})
}

// DeleteDaily godoc
// @Summary Delete a whole daily timetable
// @Description Legacy coarse path: delete an entire daily timetable document by its id and prune all of its slots from the day grid.
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param dailyID path string true "Daily timetable id"
// @Param role query string true "Grid role the delete was made against"
// @Param day query string true "Weekday name"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the upstream message and remaining slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /timetable/{dailyID} [delete]
func (c *EntryController) DeleteDaily(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	ref, ok := c.dayRef(w, r)
	if !ok {
		return
	}
	current, err := c.Viewer.AdminDay(r.Context(), session, ref.Role, ref.Day, ref.Date)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	slots, message, err := c.Entry.DeleteDaily(r.Context(), session, r.PathValue("dailyID"), current)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Message: message, Slots: slots})
}
