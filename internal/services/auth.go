package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"timetableportal/internal/domain"
)

const minPasswordLen = 6

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	api        domain.CampusAPI
	sessions   domain.SessionRepository
	issuer     domain.TokenIssuer
	sessionTTL time.Duration
}

// NewAuthService exchanges credentials with the upstream identity endpoints
// and manages the local session records that hold the upstream token.
func NewAuthService(api domain.CampusAPI, sessions domain.SessionRepository, issuer domain.TokenIssuer, sessionTTL time.Duration) domain.AuthService {
	return &authService{
		api:        api,
		sessions:   sessions,
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// Login verifies credentials upstream, persists the returned token and user
// as a session row, and issues the portal token that references it.
func (s *authService) Login(ctx context.Context, in domain.LoginInput) (string, *domain.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	var errs []string
	if in.Email == "" {
		errs = append(errs, "email is required")
	}
	if in.Password == "" {
		errs = append(errs, "password is required")
	}
	if len(errs) > 0 {
		return "", nil, domain.NewValidationError(errs...)
	}

	upstreamToken, user, err := s.api.Login(ctx, in)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Token:     upstreamToken,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	portalToken, err := s.issuer.Issue(session.ID, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return portalToken, user, nil
}

// Register forwards a role-shaped registration to the upstream API. No local
// state is created; the user logs in afterwards.
func (s *authService) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	var errs []string
	if in.Name == "" {
		errs = append(errs, "name is required")
	}
	if !emailRegexp.MatchString(in.Email) {
		errs = append(errs, "invalid email format")
	}
	if len(in.Password) < minPasswordLen {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	role, err := domain.ParseRole(string(in.Role))
	if err != nil {
		errs = append(errs, "role must be admin, hod, faculty, or student")
	}
	switch role {
	case domain.RoleStudent:
		if in.Department == "" || in.Section == "" || in.Semester == "" {
			errs = append(errs, "department, section, and semester are required for students")
		}
	case domain.RoleFaculty:
		if in.Department == "" || in.FacultyID == "" {
			errs = append(errs, "department and faculty id are required for faculty")
		}
	case domain.RoleHOD:
		if in.Department == "" {
			errs = append(errs, "department is required for hod")
		}
	}
	if len(errs) > 0 {
		return "", domain.NewValidationError(errs...)
	}
	in.Role = role
	return s.api.Register(ctx, in)
}

// Logout removes the session row; the upstream token is forgotten with it.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionByID loads a session fresh from the store. Expired sessions are
// deleted on sight and reported as expired.
func (s *authService) SessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}
