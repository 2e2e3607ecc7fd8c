package postgres

import (
	"context"
	"database/sql"
	"time"

	"timetableportal/internal/domain"
)

// Schema is the session store DDL, applied at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	token       TEXT NOT NULL,
	name        TEXT NOT NULL DEFAULT '',
	email       TEXT NOT NULL DEFAULT '',
	role        TEXT NOT NULL,
	department  TEXT NOT NULL DEFAULT '',
	faculty_id  TEXT NOT NULL DEFAULT '',
	section     TEXT NOT NULL DEFAULT '',
	semester    TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	expires_at  TIMESTAMPTZ NOT NULL
)`

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

// EnsureSchema creates the sessions table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, token, name, email, role, department, faculty_id, section, semester, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Token,
		s.User.Name, s.User.Email, string(s.User.Role),
		s.User.Department, s.User.FacultyID, s.User.Section, s.User.Semester,
		s.CreatedAt, s.ExpiresAt,
	)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, token, name, email, role, department, faculty_id, section, semester, created_at, expires_at
		FROM sessions
		WHERE id = $1
	`
	s := &domain.Session{}
	var role string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Token,
		&s.User.Name, &s.User.Email, &role,
		&s.User.Department, &s.User.FacultyID, &s.User.Section, &s.User.Semester,
		&s.CreatedAt, &s.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.User.Role = domain.Role(role)
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
