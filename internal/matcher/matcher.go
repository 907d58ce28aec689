// Package matcher reconciles instructor-configured activities with the
// activities reconstructed from a learner's xAPI statements.
//
// Matching is heuristic and binary: the first activity (in collection order)
// that satisfies the current tier wins, and no confidence is carried forward.
// Tiers, in priority order:
//
//  1. xAPI id hint: case-insensitive containment in either direction.
//  2. Title: containment in either direction, or similar-text overlap above
//     60% of the shorter string.
//  3. Token fallback: any title token longer than three bytes contained in the
//     activity name. Low precision; only reached when everything else fails.
package matcher

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/activity"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/gradable"
)

// Tier records which rule produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierActivityID
	TierTitleContains
	TierTitleSimilar
	TierTitleToken
)

func (t Tier) String() string {
	switch t {
	case TierActivityID:
		return "activity_id"
	case TierTitleContains:
		return "title_contains"
	case TierTitleSimilar:
		return "title_similar"
	case TierTitleToken:
		return "title_token"
	default:
		return "none"
	}
}

// Match pairs a configured activity with the recorded activity it refers to.
type Match struct {
	ActivityID string
	Activity   *activity.Summary
	Tier       Tier
}

var tokenSeparators = regexp.MustCompile(`[\s\-_:]+`)

// minTokenLen is exclusive: tokens must be longer than this.
const minTokenLen = 3

// Find returns the recorded activity a configured row refers to. The xAPI id
// hint is tried first; title tiers run when there is no hint or it matched
// nothing. Several configured rows may resolve to the same activity.
func Find(c *activity.Collection, item *gradable.Activity) (Match, bool) {
	if hint := item.MatchHint(); hint != "" {
		if m, ok := ByActivityID(c, hint); ok {
			return m, true
		}
	}
	if item.Title == "" {
		return Match{}, false
	}
	return ByTitle(c, item.Title)
}

// ByActivityID matches when the hint contains the activity id or the
// activity id contains the hint, ignoring case.
func ByActivityID(c *activity.Collection, hint string) (Match, bool) {
	if hint == "" {
		return Match{}, false
	}
	h := fold(hint)
	for _, s := range c.Items() {
		id := fold(s.ID)
		if strings.Contains(id, h) || strings.Contains(h, id) {
			return Match{ActivityID: s.ID, Activity: s, Tier: TierActivityID}, true
		}
	}
	return Match{}, false
}

// ByLaunch resolves the activity behind an LTI resource link: an activity id
// containing the custom lab id wins, otherwise the link title is matched.
func ByLaunch(c *activity.Collection, resourceLinkTitle, labID string) (Match, bool) {
	if labID != "" {
		lab := fold(labID)
		for _, s := range c.Items() {
			if strings.Contains(fold(s.ID), lab) {
				return Match{ActivityID: s.ID, Activity: s, Tier: TierActivityID}, true
			}
		}
	}
	if resourceLinkTitle == "" {
		return Match{}, false
	}
	return ByTitle(c, resourceLinkTitle)
}

// ByTitle runs the containment/similarity tier over every activity, then the
// token fallback.
func ByTitle(c *activity.Collection, title string) (Match, bool) {
	t := fold(title)
	items := c.Items()

	for _, s := range items {
		name := fold(s.Name)
		if strings.Contains(name, t) || strings.Contains(t, name) {
			return Match{ActivityID: s.ID, Activity: s, Tier: TierTitleContains}, true
		}
		if Similar(name, t) {
			return Match{ActivityID: s.ID, Activity: s, Tier: TierTitleSimilar}, true
		}
	}

	tokens := Tokens(t)
	for _, s := range items {
		name := fold(s.Name)
		for _, tok := range tokens {
			if strings.Contains(name, tok) {
				return Match{ActivityID: s.ID, Activity: s, Tier: TierTitleToken}, true
			}
		}
	}
	return Match{}, false
}

// Tokens splits a title on whitespace, hyphen, underscore and colon runs and
// keeps the tokens long enough to be used by the fallback tier.
func Tokens(title string) []string {
	var out []string
	for _, part := range tokenSeparators.Split(title, -1) {
		if len(part) > minTokenLen {
			out = append(out, part)
		}
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
