package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/fitlog-app/fitlog/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	// ErrUserNotFound is returned when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a username is already registered
	ErrUsernameTaken = errors.New("username already exists")
)

// User represents a registered account that owns exercises
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *database.Connection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.Connection) *UserRepository {
	return &UserRepository{db: db}
}

// Create registers a new user. Username uniqueness is enforced by the
// database constraint and surfaced as ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, username string) (*User, error) {
	user := &User{
		ID:       uuid.New().String(),
		Username: username,
	}

	query := `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query, user.ID, user.Username).Scan(&user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by ID. A malformed ID cannot match any user, so
// it reports ErrUserNotFound rather than a type error from the store.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUserNotFound
	}

	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// List retrieves all users in registration order
func (r *UserRepository) List(ctx context.Context) ([]*User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
