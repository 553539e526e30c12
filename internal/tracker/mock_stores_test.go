package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUserStore_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := NewMockUserStore()

	first, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = store.Create(ctx, "alice")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestMockUserStore_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMockUserStore()

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := store.Create(ctx, name)
		require.NoError(t, err)
	}

	users, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}

func seedExercises(t *testing.T, store *MockExerciseStore, userID string, dates ...string) {
	t.Helper()
	for i, date := range dates {
		_, err := store.Create(context.Background(), userID, ExerciseInput{
			Description: "exercise",
			Duration:    10 + i,
			Date:        date,
		})
		require.NoError(t, err)
	}
}

func TestMockExerciseStore_CountIgnoresLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()
	seedExercises(t, store, "u1", "2024-01-01", "2024-01-02", "2024-01-03")

	q := LogQuery{Limit: 1}

	entries, err := store.ListByUser(ctx, "u1", q)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	count, err := store.CountByUser(ctx, "u1", q)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMockExerciseStore_InclusiveWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()
	seedExercises(t, store, "u1", "2024-01-01", "2024-01-10", "2024-01-20", "2024-01-31")

	q := LogQuery{From: "2024-01-10", To: "2024-01-20"}

	entries, err := store.ListByUser(ctx, "u1", q)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-10", entries[0].Date)
	assert.Equal(t, "2024-01-20", entries[1].Date)

	count, err := store.CountByUser(ctx, "u1", q)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMockExerciseStore_FromAfterTo(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()
	seedExercises(t, store, "u1", "2024-01-01", "2024-01-02")

	q := LogQuery{From: "2024-06-01", To: "2024-01-01"}

	entries, err := store.ListByUser(ctx, "u1", q)
	require.NoError(t, err)
	assert.Empty(t, entries)

	count, err := store.CountByUser(ctx, "u1", q)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMockExerciseStore_StableOrderOnEqualDates(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()

	for _, desc := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, "u1", ExerciseInput{Description: desc, Duration: 10, Date: "2024-01-15"})
		require.NoError(t, err)
	}

	entries, err := store.ListByUser(ctx, "u1", LogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Description)
	assert.Equal(t, "second", entries[1].Description)
	assert.Equal(t, "third", entries[2].Description)
}

func TestMockExerciseStore_SortsAcrossInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()
	seedExercises(t, store, "u1", "2024-03-01", "2024-01-01", "2024-02-01")

	entries, err := store.ListByUser(ctx, "u1", LogQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-01", entries[0].Date)
	assert.Equal(t, "2024-02-01", entries[1].Date)
	assert.Equal(t, "2024-03-01", entries[2].Date)
}

func TestMockExerciseStore_UserIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMockExerciseStore()
	seedExercises(t, store, "u1", "2024-01-01")
	seedExercises(t, store, "u2", "2024-01-01", "2024-01-02")

	count, err := store.CountByUser(ctx, "u1", LogQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := store.ListByUser(ctx, "u2", LogQuery{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
