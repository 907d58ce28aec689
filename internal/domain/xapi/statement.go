package xapi

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// LanguageMap holds localized strings keyed by language tag (e.g. "en-US").
type LanguageMap map[string]string

// English returns the en-US label, then the generic en label.
func (m LanguageMap) English() (string, bool) {
	if v, ok := m["en-US"]; ok {
		return v, true
	}
	if v, ok := m["en"]; ok {
		return v, true
	}
	return "", false
}

type Verb struct {
	ID      string      `json:"id"`
	Display LanguageMap `json:"display,omitempty"`
}

// Name returns the English display label, falling back to the last path
// segment of the verb IRI with its first letter upper-cased.
func (v Verb) Name() string {
	if name, ok := v.Display.English(); ok {
		return name
	}
	segment := v.ID
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	return upperFirst(segment)
}

type ActivityDefinition struct {
	Name        LanguageMap `json:"name,omitempty"`
	Description LanguageMap `json:"description,omitempty"`
	Type        string      `json:"type,omitempty"`
}

// Object is the target of a statement. Only activities are expected here.
type Object struct {
	ID         string              `json:"id"`
	ObjectType string              `json:"objectType,omitempty"`
	Definition *ActivityDefinition `json:"definition,omitempty"`
}

// Name returns the English definition name, then the raw id, then "Unknown".
func (o Object) Name() string {
	if o.Definition != nil {
		if name, ok := o.Definition.Name.English(); ok {
			return name
		}
	}
	if o.ID != "" {
		return o.ID
	}
	return "Unknown"
}

type Score struct {
	Scaled *float64 `json:"scaled,omitempty"`
	Raw    *float64 `json:"raw,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

type Result struct {
	Score      *Score `json:"score,omitempty"`
	Success    *bool  `json:"success,omitempty"`
	Completion *bool  `json:"completion,omitempty"`
	Duration   string `json:"duration,omitempty"`
}

type ContextActivities struct {
	Parent   []Object `json:"parent,omitempty"`
	Grouping []Object `json:"grouping,omitempty"`
	Category []Object `json:"category,omitempty"`
	Other    []Object `json:"other,omitempty"`
}

type Context struct {
	Registration      string             `json:"registration,omitempty"`
	ContextActivities *ContextActivities `json:"contextActivities,omitempty"`
}

// Agent identifies an actor. Only the mbox inverse functional identifier is used.
type Agent struct {
	ObjectType string `json:"objectType,omitempty"`
	Name       string `json:"name,omitempty"`
	Mbox       string `json:"mbox,omitempty"`
}

// MboxAgent builds the agent descriptor used to query an LRS by email.
func MboxAgent(email string) Agent {
	return Agent{Mbox: "mailto:" + email}
}

// JSON returns the compact encoding expected by the LRS "agent" query parameter.
func (a Agent) JSON() string {
	b, _ := json.Marshal(struct {
		Mbox string `json:"mbox"`
	}{a.Mbox})
	return string(b)
}

// Statement is one learning record as returned by an LRS.
type Statement struct {
	ID        string   `json:"id,omitempty"`
	Actor     *Agent   `json:"actor,omitempty"`
	Verb      Verb     `json:"verb"`
	Object    Object   `json:"object"`
	Result    *Result  `json:"result,omitempty"`
	Context   *Context `json:"context,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Stored    string   `json:"stored,omitempty"`
}

// StatementResult is the body of GET /statements.
type StatementResult struct {
	Statements []Statement `json:"statements"`
	More       string      `json:"more,omitempty"`
}

// ObjectID returns the object id, or "unknown" for statements without one.
func (s Statement) ObjectID() string {
	if s.Object.ID == "" {
		return "unknown"
	}
	return s.Object.ID
}

// ParentID returns the first "parent" context activity id, falling back to
// the first "grouping" id. An empty string means the statement has no parent.
func (s Statement) ParentID() string {
	if s.Context == nil || s.Context.ContextActivities == nil {
		return ""
	}
	ca := s.Context.ContextActivities
	if len(ca.Parent) > 0 && ca.Parent[0].ID != "" {
		return ca.Parent[0].ID
	}
	if len(ca.Grouping) > 0 && ca.Grouping[0].ID != "" {
		return ca.Grouping[0].ID
	}
	return ""
}

// ScaledScore reports result.score.scaled when present.
func (s Statement) ScaledScore() (float64, bool) {
	if s.Result == nil || s.Result.Score == nil || s.Result.Score.Scaled == nil {
		return 0, false
	}
	return *s.Result.Score.Scaled, true
}

// Time parses the statement timestamp. ok is false when it is missing or unparsable.
func (s Statement) Time() (time.Time, bool) {
	t, err := ParseTimestamp(s.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
