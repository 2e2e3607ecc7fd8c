package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "timetableportal/internal/delivery/http/helpers"
	"timetableportal/internal/delivery/http/middleware"
	"timetableportal/internal/domain"
)

// LoginRequest is the request body for POST /auth/login. Faculty members also
// send their faculty id, matching the upstream login contract.
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FacultyID string `json:"faculty_id,omitempty"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// RegisterRequest is the request body for POST /auth/register. Role-specific
// requirements (department, section, semester, faculty id) are enforced by
// the auth service.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Section    string `json:"section,omitempty"`
	Semester   string `json:"semester,omitempty"`
	FacultyID  string `json:"faculty_id,omitempty"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, "role is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// MessageResponse wraps an upstream acknowledgement message.
type MessageResponse struct {
	Message string `json:"message"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticate against the college API. On success a portal session is created holding the upstream token and user profile; the returned Bearer token references that session.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), domain.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		FacultyID: strings.TrimSpace(req.FacultyID),
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

// Register godoc
// @Summary Register a new user
// @Description Forward a registration to the college API. Students send department, section, and semester; faculty send department and faculty id; HODs send department.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains the upstream message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	message, err := c.Service.Register(r.Context(), domain.RegisterInput{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		Department: strings.TrimSpace(req.Department),
		Section:    strings.TrimSpace(req.Section),
		Semester:   strings.TrimSpace(req.Semester),
		FacultyID:  strings.TrimSpace(req.FacultyID),
	})
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, MessageResponse{Message: message})
}

// Logout godoc
// @Summary Log out
// @Description Delete the portal session; the stored upstream token is forgotten with it.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Logout(r.Context(), session.ID); err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "logged out"})
}
