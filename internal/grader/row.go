package grader

import (
	"fmt"
	"time"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/activity"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/domain/xapi"
)

// Row is the rendered projection of a Result.
type Row struct {
	ID             int64    `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	XAPIActivityID *string  `json:"xapi_activity_id" yaml:"xapi_activity_id"`
	PointsPossible float64  `json:"points_possible" yaml:"points_possible"`
	Status         string   `json:"status" yaml:"status"`
	Grade          *float64 `json:"grade" yaml:"grade"`
	ScorePercent   *int     `json:"score_percent" yaml:"score_percent"`
	EarnedPoints   *float64 `json:"earned_points" yaml:"earned_points"`

	MatchedActivityID string `json:"matched_activity_id,omitempty" yaml:"matched_activity_id,omitempty"`
	MatchedBy         string `json:"matched_by,omitempty" yaml:"matched_by,omitempty"`
	// Tasks is "passed/total tasks" for containers.
	Tasks        string     `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	LastActivity string     `json:"last_activity,omitempty" yaml:"last_activity,omitempty"`
	Children     []ChildRow `json:"children,omitempty" yaml:"children,omitempty"`
}

type ChildRow struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Status       string `json:"status" yaml:"status"`
	ScorePercent *int   `json:"score_percent" yaml:"score_percent"`
}

// Row renders r, formatting the last activity time in loc.
func (r Result) Row(loc *time.Location) Row {
	a := r.Activity
	row := Row{
		ID:             a.ID,
		Title:          a.Title,
		XAPIActivityID: a.XAPIActivityID,
		PointsPossible: a.PointsPossible,
		Status:         r.StatusLabel(),
		Grade:          r.Grade,
		ScorePercent:   r.Percent(),
		EarnedPoints:   r.EarnedPoints(),
	}
	if !r.Matched() {
		return row
	}

	s := r.Match.Activity
	row.MatchedActivityID = r.Match.ActivityID
	row.MatchedBy = r.Match.Tier.String()
	if s.LatestTimestamp != "" {
		row.LastActivity = xapi.FormatTimestamp(s.LatestTimestamp, loc)
	}
	if s.HasChildren() {
		row.Tasks = fmt.Sprintf("%d/%d tasks", s.PassedChildren(), s.Children.Len())
		for _, c := range s.Children.Items() {
			row.Children = append(row.Children, childRow(c))
		}
	}
	return row
}

func childRow(c *activity.Summary) ChildRow {
	out := ChildRow{ID: c.ID, Name: c.Name, Status: c.Status.Label()}
	if c.HighestScore != nil {
		p := Percent(*c.HighestScore)
		out.ScorePercent = &p
	}
	return out
}
