package activity

import (
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// Accumulator folds the statements of one activity into a Summary. It is
// the only mutable form; Summary freezes it.
type Accumulator struct {
	id       string
	name     string
	object   xapi.Object
	status   Status
	highest  *float64
	best     *xapi.Statement
	attempts []xapi.Statement

	latestRaw string
	latestAt  time.Time
	latestOK  bool
}

// NewAccumulator starts an activity from its first statement. The statement
// itself still has to be passed to Add.
func NewAccumulator(first xapi.Statement) *Accumulator {
	a := &Accumulator{
		id:        first.ObjectID(),
		name:      first.Object.Name(),
		object:    first.Object,
		status:    StatusAttempted,
		latestRaw: first.Timestamp,
	}
	a.latestAt, a.latestOK = first.Time()
	return a
}

// ID returns the activity id being accumulated.
func (a *Accumulator) ID() string { return a.id }

// Add folds one statement. Statements may arrive in any order.
func (a *Accumulator) Add(st xapi.Statement) {
	a.attempts = append(a.attempts, st)
	a.observeTimestamp(st)
	a.status = NextStatus(a.status, st.Verb.Name())

	if score, ok := st.ScaledScore(); ok {
		if a.highest == nil || score > *a.highest {
			v := score
			a.highest = &v
			best := st
			a.best = &best
		}
	}
}

// observeTimestamp keeps the most recent instant. Raw string comparison is
// only used when neither side parses.
func (a *Accumulator) observeTimestamp(st xapi.Statement) {
	t, ok := st.Time()
	switch {
	case ok && (!a.latestOK || t.After(a.latestAt)):
		a.latestRaw, a.latestAt, a.latestOK = st.Timestamp, t, true
	case !ok && !a.latestOK && st.Timestamp > a.latestRaw:
		a.latestRaw = st.Timestamp
	}
}

// Summary returns a frozen copy of the accumulated state.
func (a *Accumulator) Summary() *Summary {
	s := &Summary{
		ID:              a.id,
		Name:            a.name,
		Object:          a.object,
		Status:          a.status,
		BestAttempt:     a.best,
		Attempts:        append([]xapi.Statement(nil), a.attempts...),
		LatestTimestamp: a.latestRaw,
	}
	if a.highest != nil {
		v := *a.highest
		s.HighestScore = &v
	}
	if a.latestOK {
		s.LatestAt = a.latestAt
	}
	return s
}
