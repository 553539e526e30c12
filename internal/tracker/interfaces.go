package tracker

import "context"

// UserStore is the user persistence interface consumed by HTTP handlers.
// *UserRepository implements it against PostgreSQL; MockUserStore
// implements it in memory for tests.
type UserStore interface {
	Create(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// ExerciseStore is the exercise persistence interface consumed by HTTP
// handlers.
type ExerciseStore interface {
	Create(ctx context.Context, userID string, input ExerciseInput) (*Exercise, error)
	ListByUser(ctx context.Context, userID string, q LogQuery) ([]LogEntry, error)
	CountByUser(ctx context.Context, userID string, q LogQuery) (int, error)
}

var (
	_ UserStore     = (*UserRepository)(nil)
	_ ExerciseStore = (*ExerciseRepository)(nil)
)
