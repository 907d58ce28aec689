package activity

import (
	"encoding/json"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// Summary is the frozen view of one activity after aggregation. Values
// handed out by Build must not be mutated.
type Summary struct {
	ID     string
	Name   string
	Object xapi.Object
	Status Status

	// HighestScore is the best scaled score seen, nil when no statement carried one.
	HighestScore *float64
	// BestAttempt is the statement that produced HighestScore.
	BestAttempt *xapi.Statement
	// Attempts lists contributing statements in arrival order.
	Attempts []xapi.Statement

	// LatestTimestamp is the raw timestamp of the most recent statement.
	LatestTimestamp string
	// LatestAt is LatestTimestamp parsed; zero when it could not be parsed.
	LatestAt time.Time

	// Children is empty for child activities; the hierarchy is two levels deep.
	Children Collection
}

// HasChildren reports whether the activity is a container with nested tasks.
func (s *Summary) HasChildren() bool {
	return s.Children.Len() > 0
}

// PassedChildren counts children whose status is passed.
func (s *Summary) PassedChildren() int {
	n := 0
	for _, c := range s.Children.items {
		if c.Status == StatusPassed {
			n++
		}
	}
	return n
}

// Collection is an ordered mapping from activity id to Summary. Iteration
// follows insertion order unless the collection has been sorted.
type Collection struct {
	items []*Summary
	index map[string]int
}

func (c *Collection) Len() int { return len(c.items) }

// Items returns the summaries in order. The slice is a copy.
func (c *Collection) Items() []*Summary {
	out := make([]*Summary, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns activity ids in order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.items))
	for i, s := range c.items {
		ids[i] = s.ID
	}
	return ids
}

// Get looks up a summary by activity id.
func (c *Collection) Get(id string) (*Summary, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.items[i], true
}

// put appends s, or replaces the entry with the same id in place.
func (c *Collection) put(s *Summary) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[s.ID]; ok {
		c.items[i] = s
		return
	}
	c.index[s.ID] = len(c.items)
	c.items = append(c.items, s)
}

func (c *Collection) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, s := range c.items {
		c.index[s.ID] = i
	}
}

type summaryJSON struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Status          Status          `json:"status"`
	HighestScore    *float64        `json:"highest_score"`
	Attempts        int             `json:"attempts"`
	LatestTimestamp string          `json:"latest_timestamp"`
	BestAttempt     *xapi.Statement `json:"best_attempt,omitempty"`
	Children        *Collection     `json:"children,omitempty"`
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	out := summaryJSON{
		ID:              s.ID,
		Name:            s.Name,
		Status:          s.Status,
		HighestScore:    s.HighestScore,
		Attempts:        len(s.Attempts),
		LatestTimestamp: s.LatestTimestamp,
		BestAttempt:     s.BestAttempt,
	}
	if s.HasChildren() {
		out.Children = &s.Children
	}
	return json.Marshal(out)
}

// MarshalJSON encodes the collection as an ordered array.
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}
