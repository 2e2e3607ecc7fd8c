package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services.
var (
	ErrNotFound       = errors.New("not found")
	ErrSessionExpired = errors.New("session expired")
)

// Role determines which filters a day lookup requires and which view a user sees.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHOD     Role = "hod"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// ParseRole returns the Role for s (case-insensitive) or an error for
// anything outside the four known roles.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleHOD:
		return RoleHOD, nil
	case RoleFaculty:
		return RoleFaculty, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the profile returned by the upstream login and persisted with the
// session. Department, faculty id, section and semester are role-conditional.
// swagger:model User
type User struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	FacultyID  string `json:"faculty_id,omitempty"`
	Section    string `json:"section,omitempty"`
	Semester   string `json:"semester,omitempty"`
}

// ValidationError reports required filters or fields that were missing from a
// request. It is raised locally, before any upstream call is made.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
