package tracker

import (
	"context"

	"github.com/fitlog-app/fitlog/internal/database"
	"github.com/google/uuid"
)

// Exercise represents one logged activity owned by a user
type Exercise struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is the response shape of one exercise in a user's log
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseRepository handles database operations for exercises
type ExerciseRepository struct {
	db *database.Connection
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *database.Connection) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create stores a validated exercise for a user. The foreign key surfaces
// a concurrent user deletion as ErrUserNotFound.
func (r *ExerciseRepository) Create(ctx context.Context, userID string, input ExerciseInput) (*Exercise, error) {
	exercise := &Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	}

	query := `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return exercise, nil
}

// ListByUser returns the user's log entries matching the query: inclusive
// date window, ascending by date, insertion order on ties, optional limit.
func (r *ExerciseRepository) ListByUser(ctx context.Context, userID string, q LogQuery) ([]LogEntry, error) {
	sql, args := q.DataQuery(userID)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LogEntry{}
	for rows.Next() {
		var entry LogEntry
		if err := rows.Scan(&entry.Description, &entry.Duration, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CountByUser returns how many exercises match the query's date window.
// The query's limit never affects the count.
func (r *ExerciseRepository) CountByUser(ctx context.Context, userID string, q LogQuery) (int, error) {
	sql, args := q.CountQuery(userID)

	var count int
	err := r.db.QueryRow(ctx, sql, args...).Scan(&count)
	return count, err
}
