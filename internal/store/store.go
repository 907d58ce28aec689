package store

import (
	"context"
	"errors"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists the gradable activities instructors configure per course
// context. Every lookup is scoped to a context so one course can never read
// or change another's rows.
type Store interface {
	// ListActivities returns a context's activities by display order.
	ListActivities(ctx context.Context, contextID string) ([]*gradable.Activity, error)
	GetActivity(ctx context.Context, contextID string, id int64) (*gradable.Activity, error)
	// AddActivity appends a to the end of its context's display order and
	// fills in ID, DisplayOrder and the timestamps.
	AddActivity(ctx context.Context, a *gradable.Activity) error
	UpdateActivity(ctx context.Context, a *gradable.Activity) error
	DeleteActivity(ctx context.Context, contextID string, id int64) error
	// MoveActivity swaps display order with the nearest neighbour in the
	// given direction. Moving past either end is a no-op.
	MoveActivity(ctx context.Context, contextID string, id int64, dir gradable.Direction) error
	Close() error
}
