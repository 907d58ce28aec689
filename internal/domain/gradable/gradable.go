package gradable

import (
	"errors"
	"strings"
	"time"
)

// DefaultPointsPossible is used when an instructor does not set points.
const DefaultPointsPossible = 100.0

var (
	ErrTitleRequired   = errors.New("activity title is required")
	ErrNegativePoints  = errors.New("points possible must not be negative")
	ErrInvalidMoveStep = errors.New("direction must be \"up\" or \"down\"")
)

// Activity is an instructor-configured gradable activity for one course
// context. The pipeline only reads it.
type Activity struct {
	ID        int64
	ContextID string
	Title     string
	// XAPIActivityID is an optional matching hint: a full activity IRI or a
	// fragment of one.
	XAPIActivityID *string
	PointsPossible float64
	DisplayOrder   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New creates an activity with a trimmed title. An empty xAPI id is stored as
// nil and nil points fall back to DefaultPointsPossible. DisplayOrder is
// assigned by the store.
func New(contextID, title, xapiActivityID string, points *float64) (*Activity, error) {
	a := &Activity{ContextID: contextID, PointsPossible: DefaultPointsPossible}
	if err := a.Edit(title, xapiActivityID, points); err != nil {
		return nil, err
	}
	return a, nil
}

// Edit replaces the editable fields, applying the same normalization as New.
func (a *Activity) Edit(title, xapiActivityID string, points *float64) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleRequired
	}
	p := DefaultPointsPossible
	if points != nil {
		p = *points
	}
	if p < 0 {
		return ErrNegativePoints
	}
	a.Title = title
	a.PointsPossible = p
	a.XAPIActivityID = nil
	if id := strings.TrimSpace(xapiActivityID); id != "" {
		a.XAPIActivityID = &id
	}
	return nil
}

// MatchHint returns the xAPI id hint, or "" when matching is by title only.
func (a *Activity) MatchHint() string {
	if a.XAPIActivityID == nil {
		return ""
	}
	return *a.XAPIActivityID
}

// Direction moves an activity within its context's display order.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, ErrInvalidMoveStep
}
