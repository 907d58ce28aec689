package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/store"
)

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func add(t *testing.T, s *store.SQLiteStore, contextID, title, hint string) *gradable.Activity {
	t.Helper()
	a, err := gradable.New(contextID, title, hint, nil)
	require.NoError(t, err)
	require.NoError(t, s.AddActivity(context.Background(), a))
	return a
}

func titles(t *testing.T, s *store.SQLiteStore, contextID string) []string {
	t.Helper()
	list, err := s.ListActivities(context.Background(), contextID)
	require.NoError(t, err)
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Title
	}
	return out
}

func TestAddActivity_AppendsDisplayOrder(t *testing.T) {
	s := newStore(t)

	first := add(t, s, "ctx-1", "Lab 1", "http://example.edu/labs/lab1")
	second := add(t, s, "ctx-1", "Lab 2", "")
	other := add(t, s, "ctx-2", "Elsewhere", "")

	assert.NotZero(t, first.ID)
	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
	assert.Equal(t, 1, other.DisplayOrder, "display order is per context")
	assert.False(t, first.CreatedAt.IsZero())

	got, err := s.GetActivity(context.Background(), "ctx-1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab 1", got.Title)
	assert.Equal(t, "http://example.edu/labs/lab1", got.MatchHint())
	assert.Equal(t, gradable.DefaultPointsPossible, got.PointsPossible)
	assert.Equal(t, first.CreatedAt.Unix(), got.CreatedAt.Unix())

	got, err = s.GetActivity(context.Background(), "ctx-1", second.ID)
	require.NoError(t, err)
	assert.Nil(t, got.XAPIActivityID)

	assert.Equal(t, []string{"Lab 1", "Lab 2"}, titles(t, s, "ctx-1"))
	assert.Empty(t, titles(t, s, "ctx-unknown"))
}

func TestGetActivity_ScopedToContext(t *testing.T) {
	s := newStore(t)
	a := add(t, s, "ctx-1", "Lab 1", "")

	_, err := s.GetActivity(context.Background(), "ctx-2", a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateActivity(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := add(t, s, "ctx-1", "Lab 1", "urn:lab1")

	points := 25.0
	require.NoError(t, a.Edit("Lab One", "", &points))
	require.NoError(t, s.UpdateActivity(ctx, a))

	got, err := s.GetActivity(ctx, "ctx-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab One", got.Title)
	assert.Nil(t, got.XAPIActivityID)
	assert.Equal(t, 25.0, got.PointsPossible)
	assert.Equal(t, 1, got.DisplayOrder)

	a.ContextID = "ctx-2"
	assert.ErrorIs(t, s.UpdateActivity(ctx, a), store.ErrNotFound)
}

func TestDeleteActivity(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := add(t, s, "ctx-1", "Lab 1", "")
	add(t, s, "ctx-1", "Lab 2", "")

	assert.ErrorIs(t, s.DeleteActivity(ctx, "ctx-2", a.ID), store.ErrNotFound)
	require.NoError(t, s.DeleteActivity(ctx, "ctx-1", a.ID))
	assert.ErrorIs(t, s.DeleteActivity(ctx, "ctx-1", a.ID), store.ErrNotFound)

	assert.Equal(t, []string{"Lab 2"}, titles(t, s, "ctx-1"))
}

func TestMoveActivity(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := add(t, s, "ctx-1", "A", "")
	b := add(t, s, "ctx-1", "B", "")
	c := add(t, s, "ctx-1", "C", "")

	require.NoError(t, s.MoveActivity(ctx, "ctx-1", c.ID, gradable.Up))
	assert.Equal(t, []string{"A", "C", "B"}, titles(t, s, "ctx-1"))

	require.NoError(t, s.MoveActivity(ctx, "ctx-1", a.ID, gradable.Down))
	assert.Equal(t, []string{"C", "A", "B"}, titles(t, s, "ctx-1"))

	// Ends are no-ops.
	require.NoError(t, s.MoveActivity(ctx, "ctx-1", c.ID, gradable.Up))
	require.NoError(t, s.MoveActivity(ctx, "ctx-1", b.ID, gradable.Down))
	assert.Equal(t, []string{"C", "A", "B"}, titles(t, s, "ctx-1"))

	assert.ErrorIs(t, s.MoveActivity(ctx, "ctx-2", a.ID, gradable.Up), store.ErrNotFound)
}

func TestMoveActivity_SkipsGapsLeftByDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := add(t, s, "ctx-1", "A", "")
	b := add(t, s, "ctx-1", "B", "")
	c := add(t, s, "ctx-1", "C", "")
	require.NoError(t, s.DeleteActivity(ctx, "ctx-1", b.ID))

	require.NoError(t, s.MoveActivity(ctx, "ctx-1", c.ID, gradable.Up))
	assert.Equal(t, []string{"C", "A"}, titles(t, s, "ctx-1"))

	moved, err := s.GetActivity(ctx, "ctx-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, moved.DisplayOrder)
}
