package tracker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockUserStore is an in-memory implementation of UserStore for testing.
type MockUserStore struct {
	mu     sync.RWMutex
	users  map[string]*User
	byName map[string]*User
	order  []string
}

// NewMockUserStore creates a new mock user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[string]*User),
		byName: make(map[string]*User),
	}
}

func (m *MockUserStore) Create(ctx context.Context, username string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[username]; exists {
		return nil, ErrUsernameTaken
	}

	user := &User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}

	m.users[user.ID] = user
	m.byName[user.Username] = user
	m.order = append(m.order, user.ID)
	return user, nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*User, 0, len(m.order))
	for _, id := range m.order {
		users = append(users, m.users[id])
	}
	return users, nil
}

// MockExerciseStore is an in-memory implementation of ExerciseStore for
// testing. It mirrors the SQL semantics: inclusive date window, ascending
// date order with insertion order on ties, and a count that ignores the
// limit.
type MockExerciseStore struct {
	mu     sync.RWMutex
	byUser map[string][]Exercise
}

// NewMockExerciseStore creates a new mock exercise store.
func NewMockExerciseStore() *MockExerciseStore {
	return &MockExerciseStore{
		byUser: make(map[string][]Exercise),
	}
}

func (m *MockExerciseStore) Create(ctx context.Context, userID string, input ExerciseInput) (*Exercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exercise := Exercise{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	}

	m.byUser[userID] = append(m.byUser[userID], exercise)
	return &exercise, nil
}

func (m *MockExerciseStore) ListByUser(ctx context.Context, userID string, q LogQuery) ([]LogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.filter(userID, q)

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	entries := []LogEntry{}
	for _, ex := range matched {
		entries = append(entries, LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		})
	}
	return entries, nil
}

func (m *MockExerciseStore) CountByUser(ctx context.Context, userID string, q LogQuery) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.filter(userID, q)), nil
}

// filter applies the inclusive date window; callers hold the lock.
func (m *MockExerciseStore) filter(userID string, q LogQuery) []Exercise {
	matched := []Exercise{}
	for _, ex := range m.byUser[userID] {
		if q.From != "" && ex.Date < q.From {
			continue
		}
		if q.To != "" && ex.Date > q.To {
			continue
		}
		matched = append(matched, ex)
	}
	return matched
}

var (
	_ UserStore     = (*MockUserStore)(nil)
	_ ExerciseStore = (*MockExerciseStore)(nil)
)
