package activity

import (
	"slices"
	"strings"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// childBucket collects the children filed under one parent id.
type childBucket struct {
	parentID string
	order    []string
	byID     map[string]*Accumulator
}

// Build turns one learner's statement batch into the ordered two-level
// activity hierarchy, most recently active first. An empty batch yields an
// empty collection.
func Build(statements []xapi.Statement) *Collection {
	cls := NewClassifier(statements)

	var parentOrder []string
	parents := make(map[string]*Accumulator)
	var buckets []*childBucket
	bucketOf := make(map[string]*childBucket)

	for _, st := range statements {
		id := st.ObjectID()
		parentID, nested := cls.Place(id)

		if !nested {
			acc, ok := parents[id]
			if !ok {
				acc = NewAccumulator(st)
				parents[id] = acc
				parentOrder = append(parentOrder, id)
			}
			acc.Add(st)
			continue
		}

		b, ok := bucketOf[parentID]
		if !ok {
			b = &childBucket{parentID: parentID, byID: make(map[string]*Accumulator)}
			bucketOf[parentID] = b
			buckets = append(buckets, b)
		}
		acc, ok := b.byID[id]
		if !ok {
			acc = NewAccumulator(st)
			b.byID[id] = acc
			b.order = append(b.order, id)
		}
		acc.Add(st)
	}

	out := &Collection{}
	for _, id := range parentOrder {
		out.put(parents[id].Summary())
	}

	for _, b := range buckets {
		children := make([]*Summary, 0, len(b.order))
		for _, id := range b.order {
			children = append(children, b.byID[id].Summary())
		}

		parent, ok := out.Get(b.parentID)
		if !ok {
			// The container itself was never logged: keep its children as
			// top-level entries rather than dropping them.
			for _, child := range children {
				out.put(child)
			}
			continue
		}
		for _, child := range children {
			parent.Children.put(child)
		}
		parent.Status = Rollup(parent.Status, children)
	}

	SortByRecency(out)
	return out
}

// Rollup derives a parent's status from its children: all passed forces
// passed, otherwise any failed forces failed, otherwise the parent keeps its
// own status.
func Rollup(own Status, children []*Summary) Status {
	if len(children) == 0 {
		return own
	}
	allPassed := true
	anyFailed := false
	for _, c := range children {
		switch c.Status {
		case StatusPassed:
		case StatusFailed:
			anyFailed = true
			allPassed = false
		default:
			allPassed = false
		}
	}
	switch {
	case allPassed:
		return StatusPassed
	case anyFailed:
		return StatusFailed
	}
	return own
}

// SortByRecency orders the collection by latest activity, newest first.
// Equal timestamps keep their insertion order.
func SortByRecency(c *Collection) {
	slices.SortStableFunc(c.items, func(a, b *Summary) int {
		if a.LatestAt.IsZero() && b.LatestAt.IsZero() {
			return strings.Compare(b.LatestTimestamp, a.LatestTimestamp)
		}
		return b.LatestAt.Compare(a.LatestAt)
	})
	c.reindex()
}
