package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors returned by the Store. Handlers map these to HTTP statuses.
var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// User is a persisted account row. HashedPassword never leaves this package
// in a response.
type User struct {
	ID             string
	Username       string
	Email          string
	FullName       *string
	HashedPassword string
	Disabled       bool
}

// Store manages the users table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an existing *sql.DB connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser hashes the password and inserts a new account.
// Returns ErrUsernameTaken or ErrEmailTaken on unique violations.
func (s *Store) CreateUser(ctx context.Context, username, email string, fullName *string, password string) (*User, error) {
	// Probe the username first so the two unique columns surface distinct
	// errors; a conflict on the insert below can then only be the email.
	switch _, err := s.GetByUsername(ctx, username); {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		FullName:       fullName,
		HashedPassword: string(hash),
	}

	var ok bool
	err = s.db.QueryRowContext(ctx, queryInsertUser,
		u.ID, u.Username, u.Email, nullStr(u.FullName), u.HashedPassword,
	).Scan(&ok)
	switch {
	case err == sql.ErrNoRows:
		return nil, ErrEmailTaken
	case err != nil:
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByUsername loads an account by its unique username.
func (s *Store) GetByUsername(ctx context.Context, username string) (*User, error) {
	var (
		u        User
		fullName sql.NullString
	)
	err := s.db.QueryRowContext(ctx, queryUserByUsername, username).Scan(
		&u.ID, &u.Username, &u.Email, &fullName, &u.HashedPassword, &u.Disabled,
	)
	switch {
	case err == sql.ErrNoRows:
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	if fullName.Valid {
		u.FullName = &fullName.String
	}
	return &u, nil
}

// Authenticate verifies a username/password pair against the stored bcrypt
// hash. Returns ErrInvalidCredentials for both unknown users and wrong
// passwords so callers cannot distinguish the two.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func nullStr(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
