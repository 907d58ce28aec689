package activity

import "github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"

// Classifier decides, for a whole batch, which object ids are top-level
// activities and which are nested under a parent.
//
// An id is a parent when some statement in the batch names it as its parent,
// or when any statement about it has no parent of its own. Every other id is a
// child, filed under the parent named by its first statement. Placement is per
// id, so each object id ends up in exactly one place.
type Classifier struct {
	referenced map[string]struct{}
	root       map[string]struct{}
	parentOf   map[string]string
}

// NewClassifier scans the batch once to collect parent references.
func NewClassifier(statements []xapi.Statement) *Classifier {
	c := &Classifier{
		referenced: make(map[string]struct{}),
		root:       make(map[string]struct{}),
		parentOf:   make(map[string]string),
	}
	for _, st := range statements {
		id := st.ObjectID()
		parentID := st.ParentID()
		if parentID == "" {
			c.root[id] = struct{}{}
			continue
		}
		c.referenced[parentID] = struct{}{}
		if _, seen := c.parentOf[id]; !seen {
			c.parentOf[id] = parentID
		}
	}
	return c
}

// ReferencedAsParent reports whether any statement names id as its parent.
func (c *Classifier) ReferencedAsParent(id string) bool {
	_, ok := c.referenced[id]
	return ok
}

// Place returns the parent an object id is nested under, or ok=false when the
// id is a top-level activity.
func (c *Classifier) Place(id string) (parentID string, nested bool) {
	if c.ReferencedAsParent(id) {
		return "", false
	}
	if _, ok := c.root[id]; ok {
		return "", false
	}
	parentID, nested = c.parentOf[id]
	return parentID, nested
}
